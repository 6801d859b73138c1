package models

import "time"

// FieldID identifies a Field. Records elsewhere (crops, tasks) carry a
// FieldID without the store checking it still resolves; callers must
// handle the referenced field being absent.
type FieldID int

// Soil types a field can be recorded with.
const (
	SoilClay      = "Clay"
	SoilClayLoam  = "Clay Loam"
	SoilLoam      = "Loam"
	SoilSandyLoam = "Sandy Loam"
	SoilSandy     = "Sandy"
)

// Field is a physical land parcel. Coordinates hold a GeoJSON Polygon
// serialized as text: one ring of [lon,lat] pairs, first and last
// point identical.
type Field struct {
	ID          FieldID   `json:"id"`
	Name        string    `json:"name"`
	Size        float64   `json:"size"` // acres
	SoilType    string    `json:"soilType"`
	History     string    `json:"history,omitempty"`
	Coordinates string    `json:"coordinates"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewField is the create payload for a Field. The store assigns the id
// and creation timestamp.
type NewField struct {
	Name        string  `json:"name" binding:"required"`
	Size        float64 `json:"size" binding:"required,gt=0"`
	SoilType    string  `json:"soilType" binding:"required,oneof='Clay' 'Clay Loam' 'Loam' 'Sandy Loam' 'Sandy'"`
	History     string  `json:"history"`
	Coordinates string  `json:"coordinates" binding:"required"`
}

// FieldPatch is a partial update. Nil fields keep their stored values;
// the id and creation timestamp are not representable here and so can
// never be overwritten.
type FieldPatch struct {
	Name        *string  `json:"name"`
	Size        *float64 `json:"size" binding:"omitempty,gt=0"`
	SoilType    *string  `json:"soilType" binding:"omitempty,oneof='Clay' 'Clay Loam' 'Loam' 'Sandy Loam' 'Sandy'"`
	History     *string  `json:"history"`
	Coordinates *string  `json:"coordinates"`
}

// Apply merges the patch over a stored field.
func (p FieldPatch) Apply(f *Field) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Size != nil {
		f.Size = *p.Size
	}
	if p.SoilType != nil {
		f.SoilType = *p.SoilType
	}
	if p.History != nil {
		f.History = *p.History
	}
	if p.Coordinates != nil {
		f.Coordinates = *p.Coordinates
	}
}
