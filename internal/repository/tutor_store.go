package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

// TutorStore is the in-memory keyed store for tutors. Reads take a
// shared lock so they are safe to run in parallel against a snapshot;
// Initialize is the only writer.
type TutorStore struct {
	mu    sync.RWMutex
	items map[string]models.Tutor
	order []string
}

// NewTutorStore constructs an empty TutorStore.
func NewTutorStore() *TutorStore {
	return &TutorStore{items: make(map[string]models.Tutor)}
}

// Initialize replaces the entire store contents. Used at startup and in
// test setup; clears then repopulates, never additive.
func (s *TutorStore) Initialize(ctx context.Context, tutors []models.Tutor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]models.Tutor, len(tutors))
	s.order = s.order[:0]
	for _, t := range tutors {
		if _, exists := s.items[t.ID]; !exists {
			s.order = append(s.order, t.ID)
		}
		s.items[t.ID] = t
	}
}

// FindByID returns the tutor or nil when absent.
func (s *TutorStore) FindByID(ctx context.Context, id string) *models.Tutor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.items[id]; ok {
		cp := t
		return &cp
	}
	return nil
}

// GetByID returns the tutor or a NotFound error when absent.
func (s *TutorStore) GetByID(ctx context.Context, id string) (*models.Tutor, error) {
	if t := s.FindByID(ctx, id); t != nil {
		return t, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "tutor not found")
}

// FindAll returns every tutor in load order.
func (s *TutorStore) FindAll(ctx context.Context) []models.Tutor {
	return s.FindAllExcluding(ctx, "")
}

// FindAllExcluding returns every tutor except the given id. Supports the
// dual-role scenario where the same person is both student and tutor.
func (s *TutorStore) FindAllExcluding(ctx context.Context, excludeID string) []models.Tutor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Tutor, 0, len(s.order))
	for _, id := range s.order {
		if id == excludeID {
			continue
		}
		result = append(result, s.items[id])
	}
	return result
}

// Search returns tutors whose name, department or any subject contains
// the query, case-insensitively. An empty query matches everyone.
func (s *TutorStore) Search(ctx context.Context, query string) []models.Tutor {
	return s.SearchExcluding(ctx, query, "")
}

// SearchExcluding is Search minus the given tutor id.
func (s *TutorStore) SearchExcluding(ctx context.Context, query, excludeID string) []models.Tutor {
	candidates := s.FindAllExcluding(ctx, excludeID)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return candidates
	}

	result := make([]models.Tutor, 0, len(candidates))
	for _, t := range candidates {
		if tutorMatches(t, query) {
			result = append(result, t)
		}
	}
	return result
}

// FindBySubject returns tutors teaching the subject (case-insensitive
// exact match).
func (s *TutorStore) FindBySubject(ctx context.Context, subject string) []models.Tutor {
	all := s.FindAll(ctx)
	result := make([]models.Tutor, 0, len(all))
	for _, t := range all {
		if t.TeachesSubject(subject) {
			result = append(result, t)
		}
	}
	return result
}

// FindByDepartment returns tutors in the department (case-insensitive).
func (s *TutorStore) FindByDepartment(ctx context.Context, department string) []models.Tutor {
	all := s.FindAll(ctx)
	result := make([]models.Tutor, 0, len(all))
	for _, t := range all {
		if strings.EqualFold(t.Department, department) {
			result = append(result, t)
		}
	}
	return result
}

// Departments returns the unique department names, sorted.
func (s *TutorStore) Departments(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var result []string
	for _, t := range s.items {
		if t.Department == "" {
			continue
		}
		if _, ok := seen[t.Department]; !ok {
			seen[t.Department] = struct{}{}
			result = append(result, t.Department)
		}
	}
	sort.Strings(result)
	return result
}

// Subjects returns the unique subject names across all tutors, sorted.
func (s *TutorStore) Subjects(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var result []string
	for _, t := range s.items {
		for _, subject := range t.Subjects {
			if _, ok := seen[subject]; !ok {
				seen[subject] = struct{}{}
				result = append(result, subject)
			}
		}
	}
	sort.Strings(result)
	return result
}

func tutorMatches(t models.Tutor, query string) bool {
	if strings.Contains(strings.ToLower(t.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Department), query) {
		return true
	}
	for _, subject := range t.Subjects {
		if strings.Contains(strings.ToLower(subject), query) {
			return true
		}
	}
	return false
}
