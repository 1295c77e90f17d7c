package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

// SlotStore materializes time slots whose state diverged from a fresh
// pattern expansion: slots that took bookings, were toggled or resized,
// and slots created standalone. Generated slots that were never touched
// are not stored; the availability service overlays stored state onto
// regenerated slots by canonical id.
type SlotStore struct {
	mu    sync.RWMutex
	items map[string]models.TimeSlot
}

// NewSlotStore constructs an empty SlotStore.
func NewSlotStore() *SlotStore {
	return &SlotStore{items: make(map[string]models.TimeSlot)}
}

// Initialize replaces the entire store contents.
func (s *SlotStore) Initialize(ctx context.Context, slots []models.TimeSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]models.TimeSlot, len(slots))
	for _, slot := range slots {
		s.items[slot.ID] = slot
	}
}

// Save stores the slot value, replacing any previous version.
func (s *SlotStore) Save(ctx context.Context, slot models.TimeSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[slot.ID] = slot
}

// FindByID returns the stored slot or nil when absent.
func (s *SlotStore) FindByID(ctx context.Context, id string) *models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if slot, ok := s.items[id]; ok {
		cp := slot
		return &cp
	}
	return nil
}

// GetByID returns the stored slot or a NotFound error when absent.
func (s *SlotStore) GetByID(ctx context.Context, id string) (*models.TimeSlot, error) {
	if slot := s.FindByID(ctx, id); slot != nil {
		return slot, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "slot not found")
}

// FindByTutor returns the tutor's stored slots sorted by start time.
func (s *SlotStore) FindByTutor(ctx context.Context, tutorID string) []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.TimeSlot
	for _, slot := range s.items {
		if slot.TutorID == tutorID {
			result = append(result, slot)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Start.Before(result[j].Start) })
	return result
}

// Overlay substitutes stored state for generated slots that were touched
// since generation, keyed by canonical slot id.
func (s *SlotStore) Overlay(ctx context.Context, generated []models.TimeSlot) []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.TimeSlot, len(generated))
	for i, slot := range generated {
		if stored, ok := s.items[slot.ID]; ok {
			result[i] = stored
			continue
		}
		result[i] = slot
	}
	return result
}
