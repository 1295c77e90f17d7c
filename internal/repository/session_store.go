package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

// SessionStore is the in-memory keyed store for sessions. Sessions are
// never deleted; cancellation and wrap-up are updates.
type SessionStore struct {
	mu    sync.RWMutex
	items map[string]models.Session
	order []string
}

// NewSessionStore constructs an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{items: make(map[string]models.Session)}
}

// Initialize replaces the entire store contents.
func (s *SessionStore) Initialize(ctx context.Context, sessions []models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]models.Session, len(sessions))
	s.order = s.order[:0]
	for _, sess := range sessions {
		if _, exists := s.items[sess.ID]; !exists {
			s.order = append(s.order, sess.ID)
		}
		s.items[sess.ID] = sess
	}
}

// Insert adds a new session.
func (s *SessionStore) Insert(ctx context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[session.ID]; exists {
		return appErrors.Clone(appErrors.ErrConflict, "session already exists")
	}
	s.items[session.ID] = session
	s.order = append(s.order, session.ID)
	return nil
}

// Update replaces an existing session.
func (s *SessionStore) Update(ctx context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[session.ID]; !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "session not found")
	}
	s.items[session.ID] = session
	return nil
}

// FindByID returns the session or nil when absent.
func (s *SessionStore) FindByID(ctx context.Context, id string) *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess, ok := s.items[id]; ok {
		cp := sess
		return &cp
	}
	return nil
}

// GetByID returns the session or a NotFound error when absent.
func (s *SessionStore) GetByID(ctx context.Context, id string) (*models.Session, error) {
	if sess := s.FindByID(ctx, id); sess != nil {
		return sess, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
}

// FindAll returns every session in load order.
func (s *SessionStore) FindAll(ctx context.Context) []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Session, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.items[id])
	}
	return result
}

// UpcomingForStudent returns the student's upcoming sessions sorted by
// start time ascending.
func (s *SessionStore) UpcomingForStudent(ctx context.Context, studentID string, now time.Time) []models.Session {
	return s.filterSorted(ctx, func(sess models.Session) bool {
		return sess.HasStudent(studentID) && sess.IsUpcoming(now)
	}, byStartAsc)
}

// UpcomingForTutor returns the tutor's upcoming sessions sorted by start
// time ascending.
func (s *SessionStore) UpcomingForTutor(ctx context.Context, tutorID string, now time.Time) []models.Session {
	return s.filterSorted(ctx, func(sess models.Session) bool {
		return sess.TutorID == tutorID && sess.IsUpcoming(now)
	}, byStartAsc)
}

// NextForStudent returns the student's next upcoming session, or nil.
func (s *SessionStore) NextForStudent(ctx context.Context, studentID string, now time.Time) *models.Session {
	return first(s.UpcomingForStudent(ctx, studentID, now))
}

// NextForTutor returns the tutor's next upcoming session, or nil.
func (s *SessionStore) NextForTutor(ctx context.Context, tutorID string, now time.Time) *models.Session {
	return first(s.UpcomingForTutor(ctx, tutorID, now))
}

// NeedingFeedback returns the student's completed sessions that still
// lack feedback.
func (s *SessionStore) NeedingFeedback(ctx context.Context, studentID string) []models.Session {
	return s.filterSorted(ctx, func(sess models.Session) bool {
		return sess.HasStudent(studentID) && sess.NeedsFeedback()
	}, byStartAsc)
}

// NeedingWrapUp returns the tutor's completed sessions still missing
// attendance or notes, most recent first.
func (s *SessionStore) NeedingWrapUp(ctx context.Context, tutorID string) []models.Session {
	return s.filterSorted(ctx, func(sess models.Session) bool {
		return sess.TutorID == tutorID && sess.NeedsWrapUp()
	}, byStartDesc)
}

// Joinable returns the student's sessions that may be joined right now.
func (s *SessionStore) Joinable(ctx context.Context, studentID string, now time.Time, joinWindow time.Duration) []models.Session {
	return s.filterSorted(ctx, func(sess models.Session) bool {
		return sess.HasStudent(studentID) && sess.CanJoin(now, joinWindow)
	}, byStartAsc)
}

func (s *SessionStore) filterSorted(ctx context.Context, keep func(models.Session) bool, less func(a, b models.Session) bool) []models.Session {
	all := s.FindAll(ctx)
	result := make([]models.Session, 0, len(all))
	for _, sess := range all {
		if keep(sess) {
			result = append(result, sess)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return less(result[i], result[j]) })
	return result
}

func byStartAsc(a, b models.Session) bool  { return a.Start.Before(b.Start) }
func byStartDesc(a, b models.Session) bool { return a.Start.After(b.Start) }

func first(sessions []models.Session) *models.Session {
	if len(sessions) == 0 {
		return nil
	}
	cp := sessions[0]
	return &cp
}
