package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

func baseSlot() TimeSlot {
	start := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	return TimeSlot{
		ID:       SlotID(start, "pat-1"),
		TutorID:  "tutor-1",
		Start:    start,
		End:      start.Add(time.Hour),
		Modality: ModalityOnline,
		Capacity: 3,
		Booked:   1,
		Active:   true,
	}
}

func TestTimeSlotDerived(t *testing.T) {
	slot := baseSlot()
	assert.Equal(t, 2, slot.AvailableSeats())
	assert.False(t, slot.IsFullyBooked())
	assert.True(t, slot.IsBookable())

	slot.Booked = 3
	assert.Equal(t, 0, slot.AvailableSeats())
	assert.True(t, slot.IsFullyBooked())
	assert.False(t, slot.IsBookable())

	slot.Booked = 1
	slot.Active = false
	assert.False(t, slot.IsBookable())
}

func TestAddBooking(t *testing.T) {
	slot := baseSlot()

	next, err := slot.AddBooking()
	require.NoError(t, err)
	assert.Equal(t, 2, next.Booked)
	// Value semantics: the receiver is untouched.
	assert.Equal(t, 1, slot.Booked)
}

func TestAddBookingFullSlot(t *testing.T) {
	slot := baseSlot()
	slot.Booked = slot.Capacity

	_, err := slot.AddBooking()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, slot.Capacity, slot.Booked)
}

func TestRemoveBooking(t *testing.T) {
	slot := baseSlot()

	next, err := slot.RemoveBooking()
	require.NoError(t, err)
	assert.Equal(t, 0, next.Booked)
	assert.Equal(t, 1, slot.Booked)
}

func TestRemoveBookingEmptySlot(t *testing.T) {
	slot := baseSlot()
	slot.Booked = 0

	_, err := slot.RemoveBooking()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrInvalidState.Code, appErr.Code)
}

func TestBookingRoundTrip(t *testing.T) {
	slot := baseSlot()

	booked, err := slot.AddBooking()
	require.NoError(t, err)
	released, err := booked.RemoveBooking()
	require.NoError(t, err)
	assert.Equal(t, slot.Booked, released.Booked)
}

func TestUpdateCapacity(t *testing.T) {
	slot := baseSlot()
	slot.Booked = 2

	next := slot.UpdateCapacity(5)
	assert.Equal(t, 5, next.Capacity)

	// Capacity is never forced below the current booking count.
	next = slot.UpdateCapacity(1)
	assert.Equal(t, 2, next.Capacity)
	assert.GreaterOrEqual(t, next.Capacity, next.Booked)
}

func TestToggleActive(t *testing.T) {
	slot := baseSlot()

	next := slot.ToggleActive()
	assert.False(t, next.Active)
	assert.True(t, slot.Active)
	assert.True(t, next.ToggleActive().Active)
}
