package service

import (
	"context"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

type patternRepository interface {
	Insert(ctx context.Context, pattern models.WeeklyPattern) error
	Update(ctx context.Context, pattern models.WeeklyPattern) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.WeeklyPattern, error)
	FindByTutor(ctx context.Context, tutorID string) []models.WeeklyPattern
}

type availabilityTutorReader interface {
	GetByID(ctx context.Context, id string) (*models.Tutor, error)
}

type slotStateOverlay interface {
	Overlay(ctx context.Context, generated []models.TimeSlot) []models.TimeSlot
	FindByTutor(ctx context.Context, tutorID string) []models.TimeSlot
}

// PatternRequest is the payload for creating, updating or pre-validating
// a weekly availability pattern.
type PatternRequest struct {
	Label           string `json:"label" validate:"omitempty,max=100"`
	Days            []int  `json:"days"`
	StartHour       int    `json:"start_hour" validate:"min=0,max=23"`
	StartMinute     int    `json:"start_minute" validate:"min=0,max=59"`
	EndHour         int    `json:"end_hour" validate:"min=0,max=23"`
	EndMinute       int    `json:"end_minute" validate:"min=0,max=59"`
	DurationMinutes int    `json:"duration_minutes"`
	Modality        string `json:"modality" validate:"required,oneof=online in_person"`
	Capacity        int    `json:"capacity"`
	Active          *bool  `json:"active"`
}

// AvailabilityService owns the pattern lifecycle and the expansion of
// recurring patterns into concrete bookable slots for a target week.
type AvailabilityService struct {
	patterns  patternRepository
	tutors    availabilityTutorReader
	slots     slotStateOverlay
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAvailabilityService constructs an AvailabilityService.
func NewAvailabilityService(patterns patternRepository, tutors availabilityTutorReader, slots slotStateOverlay, validate *validator.Validate, logger *zap.Logger) *AvailabilityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{patterns: patterns, tutors: tutors, slots: slots, validator: validate, logger: logger}
}

// ListPatterns returns the tutor's availability patterns.
func (s *AvailabilityService) ListPatterns(ctx context.Context, tutorID string) ([]models.WeeklyPattern, error) {
	if _, err := s.tutors.GetByID(ctx, tutorID); err != nil {
		return nil, err
	}
	return s.patterns.FindByTutor(ctx, tutorID), nil
}

// ValidatePattern runs the structural checks without committing
// anything. The returned message is empty when the input is valid;
// violations are routine form input, reported as data.
func (s *AvailabilityService) ValidatePattern(ctx context.Context, tutorID string, req PatternRequest) string {
	return s.buildPattern(tutorID, "", req).Validate()
}

// CreatePattern validates and stores a new weekly pattern.
func (s *AvailabilityService) CreatePattern(ctx context.Context, tutorID string, req PatternRequest) (*models.WeeklyPattern, error) {
	if _, err := s.tutors.GetByID(ctx, tutorID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid pattern payload")
	}

	pattern := s.buildPattern(tutorID, uuid.NewString(), req)
	if msg := pattern.Validate(); msg != "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, msg)
	}

	if err := s.patterns.Insert(ctx, pattern); err != nil {
		return nil, err
	}
	s.logger.Info("pattern created",
		zap.String("pattern_id", pattern.ID),
		zap.String("tutor_id", tutorID))
	return &pattern, nil
}

// UpdatePattern validates the payload and replaces the stored pattern
// with a new instance; patterns are never mutated in place.
func (s *AvailabilityService) UpdatePattern(ctx context.Context, id string, req PatternRequest) (*models.WeeklyPattern, error) {
	existing, err := s.patterns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid pattern payload")
	}

	pattern := s.buildPattern(existing.TutorID, existing.ID, req)
	if msg := pattern.Validate(); msg != "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, msg)
	}

	if err := s.patterns.Update(ctx, pattern); err != nil {
		return nil, err
	}
	return &pattern, nil
}

// DeletePattern removes the pattern from the owning collection.
func (s *AvailabilityService) DeletePattern(ctx context.Context, id string) error {
	return s.patterns.Delete(ctx, id)
}

// SlotsForWeek expands all of the tutor's active patterns for the week
// starting at weekStart (normalized to its Monday), overlays any state
// already materialized for those slots, and appends standalone slots
// falling inside the week. Generation itself stays deterministic; demo
// randomization belongs to the seeding layer only.
func (s *AvailabilityService) SlotsForWeek(ctx context.Context, tutorID string, weekStart time.Time) ([]models.TimeSlot, error) {
	if _, err := s.tutors.GetByID(ctx, tutorID); err != nil {
		return nil, err
	}

	weekStart = MondayOf(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 7)

	var generated []models.TimeSlot
	for _, p := range s.patterns.FindByTutor(ctx, tutorID) {
		generated = append(generated, p.GenerateSlotsForWeek(weekStart)...)
	}
	result := s.slots.Overlay(ctx, generated)

	for _, slot := range s.slots.FindByTutor(ctx, tutorID) {
		if slot.PatternID != "" {
			continue
		}
		if slot.Start.Before(weekStart) || !slot.Start.Before(weekEnd) {
			continue
		}
		result = append(result, slot)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Start.Equal(result[j].Start) {
			return result[i].Start.Before(result[j].Start)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// MondayOf returns midnight of the Monday of t's week, in t's location.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

func (s *AvailabilityService) buildPattern(tutorID, id string, req PatternRequest) models.WeeklyPattern {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return models.WeeklyPattern{
		ID:              id,
		TutorID:         tutorID,
		Label:           req.Label,
		Days:            req.Days,
		StartHour:       req.StartHour,
		StartMinute:     req.StartMinute,
		EndHour:         req.EndHour,
		EndMinute:       req.EndMinute,
		DurationMinutes: req.DurationMinutes,
		Modality:        models.Modality(req.Modality),
		Capacity:        req.Capacity,
		Active:          active,
	}
}
