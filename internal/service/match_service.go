package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

// maxAlternates caps the number of runner-up tutors returned alongside
// the recommendation.
const maxAlternates = 3

type matchTutorSource interface {
	FindAll(ctx context.Context) []models.Tutor
	FindAllExcluding(ctx context.Context, excludeID string) []models.Tutor
}

// MatchRequest carries the auto-match preferences.
type MatchRequest struct {
	Subject        string `json:"subject"`
	Modality       string `json:"modality" validate:"omitempty,oneof=all online in_person"`
	ExcludeTutorID string `json:"exclude_tutor_id"`
}

// MatchResult is a recommendation plus at most three alternates, ranked
// by rating.
type MatchResult struct {
	Recommended *models.Tutor  `json:"recommended"`
	Alternates  []models.Tutor `json:"alternates"`
}

// MatchService ranks candidate tutors against subject and modality
// preferences. Matching is a pure function of the store snapshot and the
// request; zero candidates is a valid empty result, never an error.
type MatchService struct {
	tutors    matchTutorSource
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMatchService constructs a MatchService.
func NewMatchService(tutors matchTutorSource, validate *validator.Validate, logger *zap.Logger) *MatchService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchService{tutors: tutors, validator: validate, logger: logger}
}

// AutoMatch filters tutors by subject and modality, ranks them by rating
// descending and returns the top pick plus up to three alternates.
// Ties on rating break by total sessions descending, then id ascending,
// so results are deterministic for a fixed snapshot.
func (s *MatchService) AutoMatch(ctx context.Context, req MatchRequest) (*MatchResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid match request")
	}

	candidates := s.tutors.FindAllExcluding(ctx, req.ExcludeTutorID)

	filtered := make([]models.Tutor, 0, len(candidates))
	for _, t := range candidates {
		if req.Subject != "" && !t.TeachesSubject(req.Subject) {
			continue
		}
		if req.Modality != "" && req.Modality != models.ModalityAll && !t.SupportsModality(models.Modality(req.Modality)) {
			continue
		}
		filtered = append(filtered, t)
	}

	result := &MatchResult{Alternates: []models.Tutor{}}
	if len(filtered) == 0 {
		s.logger.Debug("auto-match found no candidates",
			zap.String("subject", req.Subject),
			zap.String("modality", req.Modality))
		return result, nil
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.TotalSessions != b.TotalSessions {
			return a.TotalSessions > b.TotalSessions
		}
		return a.ID < b.ID
	})

	recommended := filtered[0]
	result.Recommended = &recommended
	for _, t := range filtered[1:] {
		if len(result.Alternates) == maxAlternates {
			break
		}
		result.Alternates = append(result.Alternates, t)
	}
	return result, nil
}
