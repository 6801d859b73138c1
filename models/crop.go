package models

import "time"

// CropID identifies a Crop. Like FieldID it is a soft reference when
// carried by other records.
type CropID int

// Crop status values.
const (
	CropHealthy         = "healthy"
	CropNeedsWater      = "needs-water"
	CropNeedsFertilizer = "needs-fertilizer"
	CropPestProblem     = "pest-problem"
	CropDisease         = "disease"
)

// Crop is one planting cycle on a field. FieldID may point at a field
// that no longer exists; the store does not enforce the reference.
type Crop struct {
	ID          CropID    `json:"id"`
	FieldID     FieldID   `json:"fieldId"`
	Name        string    `json:"name"`
	SeedType    string    `json:"seedType"`
	PlantedDate time.Time `json:"plantedDate"`
	HarvestDate time.Time `json:"harvestDate"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewCrop is the create payload for a Crop. No ordering between
// planted and harvest dates is required.
type NewCrop struct {
	FieldID     FieldID   `json:"fieldId" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	SeedType    string    `json:"seedType" binding:"required"`
	PlantedDate time.Time `json:"plantedDate" binding:"required"`
	HarvestDate time.Time `json:"harvestDate" binding:"required"`
	Status      string    `json:"status" binding:"required,oneof=healthy needs-water needs-fertilizer pest-problem disease"`
	Notes       string    `json:"notes"`
}

// CropPatch is a partial update for a Crop.
type CropPatch struct {
	FieldID     *FieldID   `json:"fieldId"`
	Name        *string    `json:"name"`
	SeedType    *string    `json:"seedType"`
	PlantedDate *time.Time `json:"plantedDate"`
	HarvestDate *time.Time `json:"harvestDate"`
	Status      *string    `json:"status" binding:"omitempty,oneof=healthy needs-water needs-fertilizer pest-problem disease"`
	Notes       *string    `json:"notes"`
}

// Apply merges the patch over a stored crop.
func (p CropPatch) Apply(c *Crop) {
	if p.FieldID != nil {
		c.FieldID = *p.FieldID
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.SeedType != nil {
		c.SeedType = *p.SeedType
	}
	if p.PlantedDate != nil {
		c.PlantedDate = *p.PlantedDate
	}
	if p.HarvestDate != nil {
		c.HarvestDate = *p.HarvestDate
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}
