package store

import (
	"sort"
	"time"

	"go-farmtrack/models"
)

// GetAllInputs lists input records in creation order.
func (s *MemStore) GetAllInputs() []models.Input {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Input, 0, len(s.inputs))
	for _, in := range s.inputs {
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetAllInputsByCrop lists inputs recorded against a crop id.
func (s *MemStore) GetAllInputsByCrop(cropID models.CropID) []models.Input {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Input, 0)
	for _, in := range s.inputs {
		if in.CropID == cropID {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetInput fetches an input by id.
func (s *MemStore) GetInput(id models.InputID) (models.Input, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	in, ok := s.inputs[id]
	return in, ok
}

// CreateInput assigns the next input id, stamps the creation time and
// stores the record.
func (s *MemStore) CreateInput(in models.NewInput) models.Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputID++
	var amount float64
	if in.Amount != nil {
		amount = *in.Amount
	}
	rec := models.Input{
		ID:          s.inputID,
		CropID:      in.CropID,
		Type:        in.Type,
		Name:        in.Name,
		Amount:      amount,
		Unit:        in.Unit,
		AppliedDate: in.AppliedDate,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
	s.inputs[rec.ID] = rec
	return rec
}

// UpdateInput merges a patch over the stored input.
func (s *MemStore) UpdateInput(id models.InputID, patch models.InputPatch) (models.Input, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in, ok := s.inputs[id]
	if !ok {
		return models.Input{}, false
	}
	patch.Apply(&in)
	s.inputs[id] = in
	return in, true
}

// DeleteInput removes an input, reporting whether one existed.
func (s *MemStore) DeleteInput(id models.InputID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inputs[id]
	delete(s.inputs, id)
	return ok
}
