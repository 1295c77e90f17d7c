package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	"github.com/noah-isme/tutor-booking-api/internal/repository"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

type availabilityFixture struct {
	svc      *AvailabilityService
	patterns *repository.PatternStore
	slots    *repository.SlotStore
}

func newAvailabilityFixture(t *testing.T) availabilityFixture {
	t.Helper()
	tutors := repository.NewTutorStore()
	tutors.Initialize(context.Background(), []models.Tutor{
		{ID: "t1", Name: "Ava", Department: "Mathematics", Subjects: []string{"Calculus"}, Modalities: []models.Modality{models.ModalityOnline}},
	})
	patterns := repository.NewPatternStore()
	slots := repository.NewSlotStore()
	svc := NewAvailabilityService(patterns, tutors, slots, validator.New(), zap.NewNop())
	return availabilityFixture{svc: svc, patterns: patterns, slots: slots}
}

func validPatternRequest() PatternRequest {
	return PatternRequest{
		Label:           "Office hours",
		Days:            []int{1, 3, 5},
		StartHour:       9,
		EndHour:         12,
		DurationMinutes: 60,
		Modality:        "online",
		Capacity:        3,
	}
}

func TestCreatePattern(t *testing.T) {
	fx := newAvailabilityFixture(t)

	pattern, err := fx.svc.CreatePattern(context.Background(), "t1", validPatternRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, pattern.ID)
	assert.Equal(t, "t1", pattern.TutorID)
	assert.True(t, pattern.Active)

	listed, err := fx.svc.ListPatterns(context.Background(), "t1")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestCreatePatternUnknownTutor(t *testing.T) {
	fx := newAvailabilityFixture(t)

	_, err := fx.svc.CreatePattern(context.Background(), "ghost", validPatternRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCreatePatternSurfacesValidationMessage(t *testing.T) {
	fx := newAvailabilityFixture(t)

	req := validPatternRequest()
	req.Days = []int{}
	_, err := fx.svc.CreatePattern(context.Background(), "t1", req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "select at least one weekday", appErr.Message)
}

func TestValidatePatternReturnsMessageAsData(t *testing.T) {
	fx := newAvailabilityFixture(t)

	assert.Empty(t, fx.svc.ValidatePattern(context.Background(), "t1", validPatternRequest()))

	req := validPatternRequest()
	req.StartHour = 10
	req.EndHour = 9
	assert.Equal(t, "end time must be after start time", fx.svc.ValidatePattern(context.Background(), "t1", req))
}

func TestUpdatePatternReplacesInstance(t *testing.T) {
	fx := newAvailabilityFixture(t)
	ctx := context.Background()

	created, err := fx.svc.CreatePattern(ctx, "t1", validPatternRequest())
	require.NoError(t, err)

	req := validPatternRequest()
	req.Capacity = 5
	updated, err := fx.svc.UpdatePattern(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 5, updated.Capacity)
	assert.Equal(t, 3, created.Capacity)
}

func TestDeletePattern(t *testing.T) {
	fx := newAvailabilityFixture(t)
	ctx := context.Background()

	created, err := fx.svc.CreatePattern(ctx, "t1", validPatternRequest())
	require.NoError(t, err)
	require.NoError(t, fx.svc.DeletePattern(ctx, created.ID))
	require.Error(t, fx.svc.DeletePattern(ctx, created.ID))
}

func TestSlotsForWeek(t *testing.T) {
	fx := newAvailabilityFixture(t)
	ctx := context.Background()

	_, err := fx.svc.CreatePattern(ctx, "t1", validPatternRequest())
	require.NoError(t, err)

	weekStart := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	slots, err := fx.svc.SlotsForWeek(ctx, "t1", weekStart)
	require.NoError(t, err)
	assert.Len(t, slots, 9)

	// Passing any day inside the week normalizes to the same Monday.
	midWeek, err := fx.svc.SlotsForWeek(ctx, "t1", weekStart.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, slots, midWeek)
}

func TestSlotsForWeekOverlaysMaterializedState(t *testing.T) {
	fx := newAvailabilityFixture(t)
	ctx := context.Background()

	_, err := fx.svc.CreatePattern(ctx, "t1", validPatternRequest())
	require.NoError(t, err)

	weekStart := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	slots, err := fx.svc.SlotsForWeek(ctx, "t1", weekStart)
	require.NoError(t, err)

	booked, err := slots[0].AddBooking()
	require.NoError(t, err)
	fx.slots.Save(ctx, booked)

	again, err := fx.svc.SlotsForWeek(ctx, "t1", weekStart)
	require.NoError(t, err)
	assert.Equal(t, 1, again[0].Booked)
	assert.Equal(t, 0, again[1].Booked)
}

func TestSlotsForWeekIncludesStandaloneSlots(t *testing.T) {
	fx := newAvailabilityFixture(t)
	ctx := context.Background()

	weekStart := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	start := weekStart.Add(14 * time.Hour)
	fx.slots.Save(ctx, models.TimeSlot{
		ID: "standalone-1", TutorID: "t1",
		Start: start, End: start.Add(time.Hour),
		Modality: models.ModalityInPerson, Capacity: 1, Active: true,
	})

	slots, err := fx.svc.SlotsForWeek(ctx, "t1", weekStart)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "standalone-1", slots[0].ID)

	// Outside the requested week it is not listed.
	next, err := fx.svc.SlotsForWeek(ctx, "t1", weekStart.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Empty(t, next)
}

func TestMondayOf(t *testing.T) {
	monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < 7; offset++ {
		assert.Equal(t, monday, MondayOf(monday.AddDate(0, 0, offset).Add(13*time.Hour)))
	}
}
