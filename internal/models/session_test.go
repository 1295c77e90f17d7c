package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func baseSession(status SessionStatus, start time.Time) Session {
	return Session{
		ID:         "sess-1",
		TutorID:    "tutor-1",
		StudentIDs: []string{"student-1", "student-2"},
		CourseCode: "MATH-201",
		CourseName: "Calculus",
		Modality:   ModalityOnline,
		Status:     status,
		Start:      start,
		End:        start.Add(time.Hour),
		Attendance: AttendancePending,
	}
}

func TestSessionIsActive(t *testing.T) {
	now := time.Date(2026, time.September, 7, 10, 30, 0, 0, time.UTC)

	assert.True(t, baseSession(SessionActive, now.Add(2*time.Hour)).IsActive(now))

	// Upcoming with now inside the window counts as active.
	inWindow := baseSession(SessionUpcoming, now.Add(-30*time.Minute))
	assert.True(t, inWindow.IsActive(now))

	beforeWindow := baseSession(SessionUpcoming, now.Add(time.Hour))
	assert.False(t, beforeWindow.IsActive(now))

	afterWindow := baseSession(SessionUpcoming, now.Add(-2*time.Hour))
	assert.False(t, afterWindow.IsActive(now))

	assert.False(t, baseSession(SessionCompleted, now.Add(-30*time.Minute)).IsActive(now))
}

func TestSessionIsUpcoming(t *testing.T) {
	now := time.Date(2026, time.September, 7, 10, 30, 0, 0, time.UTC)

	assert.True(t, baseSession(SessionUpcoming, now.Add(time.Minute)).IsUpcoming(now))

	// A session whose window has arrived is no longer upcoming even if
	// the status was never transitioned.
	assert.False(t, baseSession(SessionUpcoming, now).IsUpcoming(now))
	assert.False(t, baseSession(SessionUpcoming, now.Add(-time.Minute)).IsUpcoming(now))
	assert.False(t, baseSession(SessionCancelled, now.Add(time.Hour)).IsUpcoming(now))
}

func TestSessionCanCancel(t *testing.T) {
	now := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)

	assert.True(t, baseSession(SessionUpcoming, now.Add(25*time.Hour)).CanCancel(now, DefaultCancelNotice))
	assert.False(t, baseSession(SessionUpcoming, now.Add(23*time.Hour)).CanCancel(now, DefaultCancelNotice))
	assert.False(t, baseSession(SessionUpcoming, now.Add(24*time.Hour)).CanCancel(now, DefaultCancelNotice))
	assert.False(t, baseSession(SessionCompleted, now.Add(48*time.Hour)).CanCancel(now, DefaultCancelNotice))
}

func TestSessionCanJoin(t *testing.T) {
	now := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)

	assert.True(t, baseSession(SessionUpcoming, now.Add(10*time.Minute)).CanJoin(now, DefaultJoinWindow))
	assert.True(t, baseSession(SessionUpcoming, now.Add(15*time.Minute)).CanJoin(now, DefaultJoinWindow))
	assert.False(t, baseSession(SessionUpcoming, now.Add(16*time.Minute)).CanJoin(now, DefaultJoinWindow))

	inProgress := baseSession(SessionActive, now.Add(-30*time.Minute))
	assert.True(t, inProgress.CanJoin(now, DefaultJoinWindow))

	ended := baseSession(SessionUpcoming, now.Add(-2*time.Hour))
	assert.False(t, ended.CanJoin(now, DefaultJoinWindow))

	assert.False(t, baseSession(SessionCancelled, now.Add(10*time.Minute)).CanJoin(now, DefaultJoinWindow))
	assert.False(t, baseSession(SessionNoShow, now.Add(10*time.Minute)).CanJoin(now, DefaultJoinWindow))
}

func TestSessionNeedsFeedback(t *testing.T) {
	now := time.Now()

	completed := baseSession(SessionCompleted, now.Add(-2*time.Hour))
	assert.True(t, completed.NeedsFeedback())

	completed.FeedbackSubmitted = true
	assert.False(t, completed.NeedsFeedback())

	assert.False(t, baseSession(SessionUpcoming, now.Add(time.Hour)).NeedsFeedback())
}

func TestSessionNeedsWrapUp(t *testing.T) {
	now := time.Now()

	completed := baseSession(SessionCompleted, now.Add(-2*time.Hour))
	assert.True(t, completed.NeedsWrapUp())

	completed.Attendance = AttendancePresent
	assert.True(t, completed.NeedsWrapUp()) // notes still missing

	completed.TutorNotes = "worked through integration by parts"
	assert.False(t, completed.NeedsWrapUp())

	pendingOnly := baseSession(SessionCompleted, now.Add(-2*time.Hour))
	pendingOnly.TutorNotes = "solid progress"
	assert.True(t, pendingOnly.NeedsWrapUp()) // attendance still pending
}

func TestSessionHasStudent(t *testing.T) {
	sess := baseSession(SessionUpcoming, time.Now())
	assert.True(t, sess.HasStudent("student-2"))
	assert.False(t, sess.HasStudent("student-9"))
}
