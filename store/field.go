package store

import (
	"sort"
	"time"

	"go-farmtrack/models"
)

// GetAllFields lists fields in creation order.
func (s *MemStore) GetAllFields() []models.Field {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Field, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetField fetches a field by id.
func (s *MemStore) GetField(id models.FieldID) (models.Field, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.fields[id]
	return f, ok
}

// CreateField assigns the next field id, stamps the creation time and
// stores the record.
func (s *MemStore) CreateField(in models.NewField) models.Field {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fieldID++
	f := models.Field{
		ID:          s.fieldID,
		Name:        in.Name,
		Size:        in.Size,
		SoilType:    in.SoilType,
		History:     in.History,
		Coordinates: in.Coordinates,
		CreatedAt:   time.Now(),
	}
	s.fields[f.ID] = f
	return f
}

// UpdateField merges a patch over the stored field. The bool is false
// when no field exists for the id.
func (s *MemStore) UpdateField(id models.FieldID, patch models.FieldPatch) (models.Field, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.fields[id]
	if !ok {
		return models.Field{}, false
	}
	patch.Apply(&f)
	s.fields[id] = f
	return f, true
}

// DeleteField removes a field, reporting whether one existed. Crops
// and tasks pointing at it keep their now-dangling reference.
func (s *MemStore) DeleteField(id models.FieldID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.fields[id]
	delete(s.fields, id)
	return ok
}
