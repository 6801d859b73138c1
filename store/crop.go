package store

import (
	"sort"
	"time"

	"go-farmtrack/models"
)

// GetAllCrops lists crops in creation order.
func (s *MemStore) GetAllCrops() []models.Crop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Crop, 0, len(s.crops))
	for _, c := range s.crops {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetCropsByField lists crops recorded against a field id. The id is
// not checked against the fields map; an unknown id yields an empty
// list.
func (s *MemStore) GetCropsByField(fieldID models.FieldID) []models.Crop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Crop, 0)
	for _, c := range s.crops {
		if c.FieldID == fieldID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetCrop fetches a crop by id.
func (s *MemStore) GetCrop(id models.CropID) (models.Crop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.crops[id]
	return c, ok
}

// CreateCrop assigns the next crop id, stamps the creation time and
// stores the record. The field reference is taken as-is.
func (s *MemStore) CreateCrop(in models.NewCrop) models.Crop {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cropID++
	c := models.Crop{
		ID:          s.cropID,
		FieldID:     in.FieldID,
		Name:        in.Name,
		SeedType:    in.SeedType,
		PlantedDate: in.PlantedDate,
		HarvestDate: in.HarvestDate,
		Status:      in.Status,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
	s.crops[c.ID] = c
	return c
}

// UpdateCrop merges a patch over the stored crop.
func (s *MemStore) UpdateCrop(id models.CropID, patch models.CropPatch) (models.Crop, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.crops[id]
	if !ok {
		return models.Crop{}, false
	}
	patch.Apply(&c)
	s.crops[id] = c
	return c, true
}

// DeleteCrop removes a crop, reporting whether one existed.
func (s *MemStore) DeleteCrop(id models.CropID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.crops[id]
	delete(s.crops, id)
	return ok
}
