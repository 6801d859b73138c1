package models

import "time"

// InputID identifies an Input record.
type InputID int

// Input application types.
const (
	InputFertilizer = "fertilizer"
	InputPesticide  = "pesticide"
	InputIrrigation = "irrigation"
	InputOther      = "other"
)

// Input records one agronomic application (fertilizer, pesticide,
// irrigation or other) against a crop. CropID is a soft reference.
type Input struct {
	ID          InputID   `json:"id"`
	CropID      CropID    `json:"cropId"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	Unit        string    `json:"unit"`
	AppliedDate time.Time `json:"appliedDate"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewInput is the create payload for an Input. Amount is a pointer so
// a payload that omits it fails validation while an explicit zero
// passes.
type NewInput struct {
	CropID      CropID    `json:"cropId" binding:"required"`
	Type        string    `json:"type" binding:"required,oneof=fertilizer pesticide irrigation other"`
	Name        string    `json:"name" binding:"required"`
	Amount      *float64  `json:"amount" binding:"required"`
	Unit        string    `json:"unit" binding:"required"`
	AppliedDate time.Time `json:"appliedDate" binding:"required"`
	Notes       string    `json:"notes"`
}

// InputPatch is a partial update for an Input.
type InputPatch struct {
	CropID      *CropID    `json:"cropId"`
	Type        *string    `json:"type" binding:"omitempty,oneof=fertilizer pesticide irrigation other"`
	Name        *string    `json:"name"`
	Amount      *float64   `json:"amount"`
	Unit        *string    `json:"unit"`
	AppliedDate *time.Time `json:"appliedDate"`
	Notes       *string    `json:"notes"`
}

// Apply merges the patch over a stored input.
func (p InputPatch) Apply(in *Input) {
	if p.CropID != nil {
		in.CropID = *p.CropID
	}
	if p.Type != nil {
		in.Type = *p.Type
	}
	if p.Name != nil {
		in.Name = *p.Name
	}
	if p.Amount != nil {
		in.Amount = *p.Amount
	}
	if p.Unit != nil {
		in.Unit = *p.Unit
	}
	if p.AppliedDate != nil {
		in.AppliedDate = *p.AppliedDate
	}
	if p.Notes != nil {
		in.Notes = *p.Notes
	}
}
