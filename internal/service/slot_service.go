package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

type slotRepository interface {
	Save(ctx context.Context, slot models.TimeSlot)
	FindByID(ctx context.Context, id string) *models.TimeSlot
}

type slotPatternSource interface {
	FindAll(ctx context.Context) []models.WeeklyPattern
}

// CreateSlotRequest is the payload for a standalone slot, one created
// individually rather than derived from a pattern.
type CreateSlotRequest struct {
	TutorID  string    `json:"tutor_id" validate:"required"`
	Start    time.Time `json:"start" validate:"required"`
	End      time.Time `json:"end" validate:"required,gtfield=Start"`
	Modality string    `json:"modality" validate:"required,oneof=online in_person"`
	Capacity int       `json:"capacity" validate:"min=1"`
}

// SlotService applies the capacity and booking transitions to time
// slots. Every transition copies the slot; the stored value is the
// returned copy, so holders of older references never see the change.
type SlotService struct {
	slots     slotRepository
	patterns  slotPatternSource
	tutors    availabilityTutorReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSlotService constructs a SlotService.
func NewSlotService(slots slotRepository, patterns slotPatternSource, tutors availabilityTutorReader, validate *validator.Validate, logger *zap.Logger) *SlotService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SlotService{slots: slots, patterns: patterns, tutors: tutors, validator: validate, logger: logger}
}

// CreateStandalone registers a slot that is not derived from any
// pattern.
func (s *SlotService) CreateStandalone(ctx context.Context, req CreateSlotRequest) (*models.TimeSlot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid slot payload")
	}
	if _, err := s.tutors.GetByID(ctx, req.TutorID); err != nil {
		return nil, err
	}

	slot := models.TimeSlot{
		ID:       models.SlotID(req.Start, uuid.NewString()),
		TutorID:  req.TutorID,
		Start:    req.Start,
		End:      req.End,
		Modality: models.Modality(req.Modality),
		Capacity: req.Capacity,
		Active:   true,
	}
	s.slots.Save(ctx, slot)
	return &slot, nil
}

// Get resolves a slot by its canonical id.
func (s *SlotService) Get(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	slot, err := s.resolve(ctx, slotID)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// Book takes one seat on the slot and stores the new value.
func (s *SlotService) Book(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	return s.transition(ctx, slotID, models.TimeSlot.AddBooking)
}

// Release frees one seat on the slot and stores the new value.
func (s *SlotService) Release(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	return s.transition(ctx, slotID, models.TimeSlot.RemoveBooking)
}

// Resize changes the slot capacity. An undershoot below the current
// booking count is raised, not rejected.
func (s *SlotService) Resize(ctx context.Context, slotID string, capacity int) (*models.TimeSlot, error) {
	slot, err := s.resolve(ctx, slotID)
	if err != nil {
		return nil, err
	}
	next := slot.UpdateCapacity(capacity)
	s.slots.Save(ctx, next)
	return &next, nil
}

// Toggle flips the slot's active flag.
func (s *SlotService) Toggle(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	slot, err := s.resolve(ctx, slotID)
	if err != nil {
		return nil, err
	}
	next := slot.ToggleActive()
	s.slots.Save(ctx, next)
	return &next, nil
}

func (s *SlotService) transition(ctx context.Context, slotID string, op func(models.TimeSlot) (models.TimeSlot, error)) (*models.TimeSlot, error) {
	slot, err := s.resolve(ctx, slotID)
	if err != nil {
		return nil, err
	}
	next, err := op(slot)
	if err != nil {
		return nil, err
	}
	s.slots.Save(ctx, next)
	s.logger.Debug("slot transition applied",
		zap.String("slot_id", next.ID),
		zap.Int("booked", next.Booked),
		zap.Int("capacity", next.Capacity))
	return &next, nil
}

// resolve looks the slot up in the materialized store first; untouched
// pattern-derived slots are reconstructed by regenerating the owning
// pattern for the slot's week. Identity is stable across regenerations,
// so the reconstructed slot carries the same id and timing.
func (s *SlotService) resolve(ctx context.Context, slotID string) (models.TimeSlot, error) {
	if stored := s.slots.FindByID(ctx, slotID); stored != nil {
		return *stored, nil
	}

	for _, p := range s.patterns.FindAll(ctx) {
		suffix := "-" + p.ID
		if !strings.HasPrefix(slotID, "slot-") || !strings.HasSuffix(slotID, suffix) {
			continue
		}
		raw := strings.TrimSuffix(strings.TrimPrefix(slotID, "slot-"), suffix)
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			continue
		}
		for _, slot := range p.GenerateSlotsForWeek(MondayOf(start)) {
			if slot.ID == slotID {
				return slot, nil
			}
		}
	}
	return models.TimeSlot{}, appErrors.Clone(appErrors.ErrNotFound, "slot not found")
}
