package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

// StudentStore is the in-memory keyed store for students.
type StudentStore struct {
	mu    sync.RWMutex
	items map[string]models.Student
	order []string
}

// NewStudentStore constructs an empty StudentStore.
func NewStudentStore() *StudentStore {
	return &StudentStore{items: make(map[string]models.Student)}
}

// Initialize replaces the entire store contents.
func (s *StudentStore) Initialize(ctx context.Context, students []models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]models.Student, len(students))
	s.order = s.order[:0]
	for _, st := range students {
		if _, exists := s.items[st.ID]; !exists {
			s.order = append(s.order, st.ID)
		}
		s.items[st.ID] = st
	}
}

// FindByID returns the student or nil when absent.
func (s *StudentStore) FindByID(ctx context.Context, id string) *models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.items[id]; ok {
		cp := st
		return &cp
	}
	return nil
}

// GetByID returns the student or a NotFound error when absent.
func (s *StudentStore) GetByID(ctx context.Context, id string) (*models.Student, error) {
	if st := s.FindByID(ctx, id); st != nil {
		return st, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
}

// FindAll returns every student in load order.
func (s *StudentStore) FindAll(ctx context.Context) []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Student, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.items[id])
	}
	return result
}

// Search returns students whose name, email, program or student number
// contains the query, case-insensitively.
func (s *StudentStore) Search(ctx context.Context, query string) []models.Student {
	all := s.FindAll(ctx)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all
	}

	result := make([]models.Student, 0, len(all))
	for _, st := range all {
		if strings.Contains(strings.ToLower(st.Name), query) ||
			strings.Contains(strings.ToLower(st.Email), query) ||
			strings.Contains(strings.ToLower(st.Program), query) ||
			strings.Contains(strings.ToLower(st.StudentNumber), query) {
			result = append(result, st)
		}
	}
	return result
}
