package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-booking-api/internal/models"
)

type tutorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Tutor, error)
	SearchExcluding(ctx context.Context, query, excludeID string) []models.Tutor
	FindBySubject(ctx context.Context, subject string) []models.Tutor
	FindByDepartment(ctx context.Context, department string) []models.Tutor
	Departments(ctx context.Context) []string
	Subjects(ctx context.Context) []string
}

// TutorService exposes the read-only tutor surface consumed by display
// code.
type TutorService struct {
	tutors tutorRepository
	logger *zap.Logger
}

// NewTutorService constructs a TutorService.
func NewTutorService(tutors tutorRepository, logger *zap.Logger) *TutorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TutorService{tutors: tutors, logger: logger}
}

// List returns tutors matching the filter, paginated.
func (s *TutorService) List(ctx context.Context, filter models.TutorFilter, page, pageSize int) ([]models.Tutor, *models.Pagination) {
	var tutors []models.Tutor
	switch {
	case filter.Subject != "":
		tutors = s.tutors.FindBySubject(ctx, filter.Subject)
	case filter.Department != "":
		tutors = s.tutors.FindByDepartment(ctx, filter.Department)
	default:
		tutors = s.tutors.SearchExcluding(ctx, filter.Search, filter.ExcludeID)
	}
	return paginate(tutors, page, pageSize)
}

// Get returns a tutor by id.
func (s *TutorService) Get(ctx context.Context, id string) (*models.Tutor, error) {
	return s.tutors.GetByID(ctx, id)
}

// Departments returns the unique department names, sorted.
func (s *TutorService) Departments(ctx context.Context) []string {
	return s.tutors.Departments(ctx)
}

// Subjects returns the unique subject names, sorted.
func (s *TutorService) Subjects(ctx context.Context) []string {
	return s.tutors.Subjects(ctx)
}
