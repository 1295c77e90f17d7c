package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is an arbitrary week start used across generation tests.
var monday = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

func basePattern() WeeklyPattern {
	return WeeklyPattern{
		ID:              "pat-1",
		TutorID:         "tutor-1",
		Days:            []int{1, 3, 5},
		StartHour:       9,
		EndHour:         12,
		DurationMinutes: 60,
		Modality:        ModalityOnline,
		Capacity:        3,
		Active:          true,
	}
}

func TestWeeklyPatternValidate(t *testing.T) {
	valid := basePattern()
	assert.Empty(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*WeeklyPattern)
	}{
		{"no days selected", func(p *WeeklyPattern) { p.Days = nil }},
		{"day out of range", func(p *WeeklyPattern) { p.Days = []int{7} }},
		{"end before start", func(p *WeeklyPattern) { p.StartHour = 10; p.EndHour = 9 }},
		{"end equals start", func(p *WeeklyPattern) { p.StartHour = 9; p.EndHour = 9; p.EndMinute = 0 }},
		{"duration too short", func(p *WeeklyPattern) { p.DurationMinutes = 10 }},
		{"duration exceeds range", func(p *WeeklyPattern) { p.DurationMinutes = 240 }},
		{"capacity below one", func(p *WeeklyPattern) { p.Capacity = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := basePattern()
			tc.mutate(&p)
			assert.NotEmpty(t, p.Validate())
		})
	}
}

func TestGenerateSlotsForWeekScenario(t *testing.T) {
	p := basePattern()

	slots := p.GenerateSlotsForWeek(monday)
	// 3 slots per day across Mon/Wed/Fri.
	require.Len(t, slots, 9)

	for _, slot := range slots {
		assert.Equal(t, time.Hour, slot.End.Sub(slot.Start))
		assert.Equal(t, p.Capacity, slot.Capacity)
		assert.Equal(t, 0, slot.Booked)
		assert.True(t, slot.Active)
		assert.Equal(t, p.ID, slot.PatternID)
		assert.Equal(t, SlotID(slot.Start, p.ID), slot.ID)
	}

	// First slot of each day at 09:00, third at 11:00.
	assert.Equal(t, 9, slots[0].Start.Hour())
	assert.Equal(t, 11, slots[2].Start.Hour())
	assert.Equal(t, 9, slots[3].Start.Hour())
	assert.Equal(t, 11, slots[8].Start.Hour())

	// Monday offset 0, Wednesday offset 2, Friday offset 4.
	assert.Equal(t, monday.Day(), slots[0].Start.Day())
	assert.Equal(t, monday.AddDate(0, 0, 2).Day(), slots[3].Start.Day())
	assert.Equal(t, monday.AddDate(0, 0, 4).Day(), slots[6].Start.Day())
}

func TestGenerateSlotsForWeekIdempotent(t *testing.T) {
	p := basePattern()

	first := p.GenerateSlotsForWeek(monday)
	second := p.GenerateSlotsForWeek(monday)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.True(t, first[i].Start.Equal(second[i].Start))
		assert.True(t, first[i].End.Equal(second[i].End))
	}
}

func TestGenerateSlotsForWeekCountLaw(t *testing.T) {
	p := basePattern()
	p.Days = []int{2, 4}
	p.StartHour = 10
	p.StartMinute = 30
	p.EndHour = 13
	p.EndMinute = 0
	p.DurationMinutes = 45

	// floor(150 / 45) = 3 per day, two days.
	slots := p.GenerateSlotsForWeek(monday)
	assert.Len(t, slots, 6)
}

func TestGenerateSlotsForWeekDropsOverrun(t *testing.T) {
	p := basePattern()
	p.Days = []int{1}
	p.StartHour = 9
	p.EndHour = 10
	p.EndMinute = 30
	p.DurationMinutes = 60

	// A second slot would overrun 10:30 and must be dropped, not clamped.
	slots := p.GenerateSlotsForWeek(monday)
	require.Len(t, slots, 1)
	assert.Equal(t, 9, slots[0].Start.Hour())
}

func TestGenerateSlotsForWeekSundayMapsToEndOfWeek(t *testing.T) {
	p := basePattern()
	p.Days = []int{0}

	slots := p.GenerateSlotsForWeek(monday)
	require.NotEmpty(t, slots)
	for _, slot := range slots {
		assert.Equal(t, time.Sunday, slot.Start.Weekday())
		assert.Equal(t, monday.AddDate(0, 0, 6).Day(), slot.Start.Day())
	}
}

func TestGenerateSlotsForWeekInactivePattern(t *testing.T) {
	p := basePattern()
	p.Active = false

	assert.Empty(t, p.GenerateSlotsForWeek(monday))
}
