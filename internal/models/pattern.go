package models

import (
	"sort"
	"time"
)

// MinSlotDuration is the smallest slot a pattern may generate.
const MinSlotDuration = 15

// WeeklyPattern is a recurring availability template owned by a tutor.
// Patterns describe recurrence only; bookable inventory is produced by
// expanding a pattern into concrete slots for a given week.
type WeeklyPattern struct {
	ID              string   `json:"id"`
	TutorID         string   `json:"tutor_id"`
	Label           string   `json:"label,omitempty"`
	Days            []int    `json:"days"`
	StartHour       int      `json:"start_hour"`
	StartMinute     int      `json:"start_minute"`
	EndHour         int      `json:"end_hour"`
	EndMinute       int      `json:"end_minute"`
	DurationMinutes int      `json:"duration_minutes"`
	Modality        Modality `json:"modality"`
	Capacity        int      `json:"capacity"`
	Active          bool     `json:"active"`
}

// Validate checks the structural invariants of the pattern. It returns a
// user-facing message describing the first violation, or an empty string
// when the pattern is valid. Violations are routine form-editing input,
// reported as data rather than as an error value.
func (p WeeklyPattern) Validate() string {
	if len(p.Days) == 0 {
		return "select at least one weekday"
	}
	for _, d := range p.Days {
		if d < 0 || d > 6 {
			return "weekdays must be between 0 (Sunday) and 6 (Saturday)"
		}
	}

	start := p.StartHour*60 + p.StartMinute
	end := p.EndHour*60 + p.EndMinute
	if end <= start {
		return "end time must be after start time"
	}
	if p.DurationMinutes < MinSlotDuration {
		return "slot duration must be at least 15 minutes"
	}
	if p.DurationMinutes > end-start {
		return "slot duration cannot exceed the availability window"
	}
	if p.Capacity < 1 {
		return "capacity must be at least 1"
	}
	return ""
}

// GenerateSlotsForWeek expands the pattern into concrete slots for the
// week beginning at weekStart (the Monday of the target week). The
// expansion is pure: the same pattern and weekStart always produce the
// same slots, with stable identities. An inactive pattern yields nothing.
//
// A step that would overrun the end of the range is dropped, not clamped.
func (p WeeklyPattern) GenerateSlotsForWeek(weekStart time.Time) []TimeSlot {
	if !p.Active {
		return nil
	}

	days := append([]int(nil), p.Days...)
	sort.Ints(days)

	startMinutes := p.StartHour*60 + p.StartMinute
	endMinutes := p.EndHour*60 + p.EndMinute

	var slots []TimeSlot
	for _, d := range days {
		// Day indices are Sunday-based; weekStart is a Monday.
		offset := d - 1
		if d == 0 {
			offset = 6
		}
		day := weekStart.AddDate(0, 0, offset)

		for cur := startMinutes; cur+p.DurationMinutes <= endMinutes; cur += p.DurationMinutes {
			start := time.Date(day.Year(), day.Month(), day.Day(), cur/60, cur%60, 0, 0, weekStart.Location())
			end := start.Add(time.Duration(p.DurationMinutes) * time.Minute)
			slots = append(slots, TimeSlot{
				ID:        SlotID(start, p.ID),
				TutorID:   p.TutorID,
				PatternID: p.ID,
				Start:     start,
				End:       end,
				Modality:  p.Modality,
				Capacity:  p.Capacity,
				Active:    true,
			})
		}
	}
	return slots
}
