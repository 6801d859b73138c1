package models

import "time"

// TaskID identifies a Task.
type TaskID int

// Task status values.
const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

// Task is a schedulable unit of farm work, optionally tied to a field
// and/or crop. Both references are soft: the pointed-at record may be
// gone.
type Task struct {
	ID            TaskID     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	FieldID       *FieldID   `json:"fieldId,omitempty"`
	CropID        *CropID    `json:"cropId,omitempty"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	WorkersNeeded int        `json:"workersNeeded"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NewTask is the create payload for a Task. WorkersNeeded defaults to
// 1 and Status to pending when omitted.
type NewTask struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	FieldID       *FieldID   `json:"fieldId"`
	CropID        *CropID    `json:"cropId"`
	StartDate     time.Time  `json:"startDate" binding:"required"`
	EndDate       *time.Time `json:"endDate"`
	WorkersNeeded int        `json:"workersNeeded" binding:"omitempty,min=1"`
	Status        string     `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
}

// TaskPatch is a partial update for a Task.
type TaskPatch struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	FieldID       *FieldID   `json:"fieldId"`
	CropID        *CropID    `json:"cropId"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	WorkersNeeded *int       `json:"workersNeeded" binding:"omitempty,min=1"`
	Status        *string    `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
}

// Apply merges the patch over a stored task.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.FieldID != nil {
		t.FieldID = p.FieldID
	}
	if p.CropID != nil {
		t.CropID = p.CropID
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = p.EndDate
	}
	if p.WorkersNeeded != nil {
		t.WorkersNeeded = *p.WorkersNeeded
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}
