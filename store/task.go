package store

import (
	"sort"
	"time"

	"go-farmtrack/models"
)

// GetAllTasks lists tasks in creation order.
func (s *MemStore) GetAllTasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetTasksByField lists tasks tied to a field id.
func (s *MemStore) GetTasksByField(fieldID models.FieldID) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, 0)
	for _, t := range s.tasks {
		if t.FieldID != nil && *t.FieldID == fieldID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetTasksByCrop lists tasks tied to a crop id.
func (s *MemStore) GetTasksByCrop(cropID models.CropID) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, 0)
	for _, t := range s.tasks {
		if t.CropID != nil && *t.CropID == cropID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetTasksByDate lists tasks whose start date falls on the same UTC
// calendar day as the given timestamp, whatever their time of day.
func (s *MemStore) GetTasksByDate(date time.Time) []models.Task {
	day := dayKey(date)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, 0)
	for _, t := range s.tasks {
		if dayKey(t.StartDate) == day {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetTask fetches a task by id.
func (s *MemStore) GetTask(id models.TaskID) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	return t, ok
}

// CreateTask assigns the next task id, stamps the creation time and
// stores the record. Omitted status and worker count take their
// defaults here so every stored task is fully populated.
func (s *MemStore) CreateTask(in models.NewTask) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskID++
	t := models.Task{
		ID:            s.taskID,
		Title:         in.Title,
		Description:   in.Description,
		FieldID:       in.FieldID,
		CropID:        in.CropID,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		WorkersNeeded: in.WorkersNeeded,
		Status:        in.Status,
		CreatedAt:     time.Now(),
	}
	if t.WorkersNeeded == 0 {
		t.WorkersNeeded = 1
	}
	if t.Status == "" {
		t.Status = models.TaskPending
	}
	s.tasks[t.ID] = t
	return t
}

// UpdateTask merges a patch over the stored task.
func (s *MemStore) UpdateTask(id models.TaskID, patch models.TaskPatch) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return models.Task{}, false
	}
	patch.Apply(&t)
	s.tasks[id] = t
	return t, true
}

// DeleteTask removes a task, reporting whether one existed.
func (s *MemStore) DeleteTask(id models.TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tasks[id]
	delete(s.tasks, id)
	return ok
}
