package models

import (
	"fmt"
	"time"

	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

// TimeSlot is a concrete, dated, bookable window. Slots derived from a
// weekly pattern are transient: regenerating the same week yields the
// same identity and timing. All mutations return a new value so holders
// of older references never observe changes.
type TimeSlot struct {
	ID        string    `json:"id"`
	TutorID   string    `json:"tutor_id"`
	PatternID string    `json:"pattern_id,omitempty"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Modality  Modality  `json:"modality"`
	Capacity  int       `json:"capacity"`
	Booked    int       `json:"booked"`
	Active    bool      `json:"active"`
}

// SlotID builds the canonical slot identity for a start instant and
// originating pattern. The key is stable across regenerations.
func SlotID(start time.Time, patternID string) string {
	return fmt.Sprintf("slot-%s-%s", start.Format(time.RFC3339), patternID)
}

// AvailableSeats returns the number of seats still open.
func (s TimeSlot) AvailableSeats() int {
	seats := s.Capacity - s.Booked
	if seats < 0 {
		return 0
	}
	return seats
}

// IsFullyBooked reports whether no seats remain.
func (s TimeSlot) IsFullyBooked() bool {
	return s.Booked >= s.Capacity
}

// IsBookable reports whether the slot accepts a new booking.
func (s TimeSlot) IsBookable() bool {
	return s.Active && !s.IsFullyBooked()
}

// AddBooking returns a copy with one more seat taken. Booking a full
// slot is a conflict; callers are expected to check IsBookable first.
func (s TimeSlot) AddBooking() (TimeSlot, error) {
	if s.IsFullyBooked() {
		return s, appErrors.Clone(appErrors.ErrConflict, "slot is fully booked")
	}
	next := s
	next.Booked++
	return next, nil
}

// RemoveBooking returns a copy with one seat released. Releasing a slot
// with zero bookings indicates a caller logic error.
func (s TimeSlot) RemoveBooking() (TimeSlot, error) {
	if s.Booked <= 0 {
		return s, appErrors.Clone(appErrors.ErrInvalidState, "slot has no bookings to remove")
	}
	next := s
	next.Booked--
	return next, nil
}

// UpdateCapacity returns a copy with the new capacity. Capacity is never
// forced below the current booking count; an undershoot is raised to the
// booked count rather than rejected.
func (s TimeSlot) UpdateCapacity(capacity int) TimeSlot {
	next := s
	if capacity < s.Booked {
		capacity = s.Booked
	}
	next.Capacity = capacity
	return next
}

// ToggleActive returns a copy with the active flag flipped.
func (s TimeSlot) ToggleActive() TimeSlot {
	next := s
	next.Active = !next.Active
	return next
}
