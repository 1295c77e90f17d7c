package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-booking-api/internal/models"
)

type studentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Search(ctx context.Context, query string) []models.Student
}

// StudentService exposes the read-only student surface.
type StudentService struct {
	students studentRepository
	logger   *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(students studentRepository, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, logger: logger}
}

// List returns students matching the search query, paginated.
func (s *StudentService) List(ctx context.Context, search string, page, pageSize int) ([]models.Student, *models.Pagination) {
	return paginate(s.students.Search(ctx, search), page, pageSize)
}

// Get returns a student by id.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}
