package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

// PatternStore is the in-memory keyed store for weekly availability
// patterns. Patterns are the sole source of truth for recurring
// availability; concrete slots are generated on demand.
type PatternStore struct {
	mu    sync.RWMutex
	items map[string]models.WeeklyPattern
}

// NewPatternStore constructs an empty PatternStore.
func NewPatternStore() *PatternStore {
	return &PatternStore{items: make(map[string]models.WeeklyPattern)}
}

// Initialize replaces the entire store contents.
func (s *PatternStore) Initialize(ctx context.Context, patterns []models.WeeklyPattern) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]models.WeeklyPattern, len(patterns))
	for _, p := range patterns {
		s.items[p.ID] = p
	}
}

// Insert adds a new pattern.
func (s *PatternStore) Insert(ctx context.Context, pattern models.WeeklyPattern) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[pattern.ID]; exists {
		return appErrors.Clone(appErrors.ErrConflict, "pattern already exists")
	}
	s.items[pattern.ID] = pattern
	return nil
}

// Update replaces an existing pattern with a new instance.
func (s *PatternStore) Update(ctx context.Context, pattern models.WeeklyPattern) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[pattern.ID]; !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "pattern not found")
	}
	s.items[pattern.ID] = pattern
	return nil
}

// Delete removes a pattern from the owning collection.
func (s *PatternStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "pattern not found")
	}
	delete(s.items, id)
	return nil
}

// FindByID returns the pattern or nil when absent.
func (s *PatternStore) FindByID(ctx context.Context, id string) *models.WeeklyPattern {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.items[id]; ok {
		cp := p
		return &cp
	}
	return nil
}

// GetByID returns the pattern or a NotFound error when absent.
func (s *PatternStore) GetByID(ctx context.Context, id string) (*models.WeeklyPattern, error) {
	if p := s.FindByID(ctx, id); p != nil {
		return p, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "pattern not found")
}

// FindAll returns every pattern, sorted by id.
func (s *PatternStore) FindAll(ctx context.Context) []models.WeeklyPattern {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.WeeklyPattern, 0, len(s.items))
	for _, p := range s.items {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// FindByTutor returns the tutor's patterns sorted by id for stable
// listings.
func (s *PatternStore) FindByTutor(ctx context.Context, tutorID string) []models.WeeklyPattern {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.WeeklyPattern
	for _, p := range s.items {
		if p.TutorID == tutorID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
