package models

import "time"

// SessionStatus enumerates the lifecycle states of a tutoring session.
type SessionStatus string

const (
	SessionUpcoming  SessionStatus = "upcoming"
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
	SessionNoShow    SessionStatus = "no_show"
)

// Attendance enumerates the tutor-recorded attendance outcome.
type Attendance string

const (
	AttendancePending Attendance = "pending"
	AttendancePresent Attendance = "present"
	AttendanceAbsent  Attendance = "absent"
)

// Policy window defaults used by the session predicates.
const (
	DefaultCancelNotice = 24 * time.Hour
	DefaultJoinWindow   = 15 * time.Minute
)

// Session is a confirmed tutoring engagement between a tutor and one or
// more students. Sessions are never deleted; cancellation is a status
// transition. Time-dependent behaviour is computed from an explicit now
// so callers control the clock.
type Session struct {
	ID                string        `json:"id"`
	TutorID           string        `json:"tutor_id"`
	StudentIDs        []string      `json:"student_ids"`
	CourseCode        string        `json:"course_code"`
	CourseName        string        `json:"course_name"`
	Modality          Modality      `json:"modality"`
	Status            SessionStatus `json:"status"`
	Start             time.Time     `json:"start"`
	End               time.Time     `json:"end"`
	Location          string        `json:"location,omitempty"`
	MeetingURL        string        `json:"meeting_url,omitempty"`
	Notes             string        `json:"notes,omitempty"`
	FeedbackSubmitted bool          `json:"feedback_submitted"`
	Attendance        Attendance    `json:"attendance"`
	TutorNotes        string        `json:"tutor_notes,omitempty"`
}

// HasStudent reports whether the student is a participant.
func (s Session) HasStudent(studentID string) bool {
	for _, id := range s.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// IsActive reports whether the session is in progress: either flagged
// active, or still upcoming with now inside [Start, End).
func (s Session) IsActive(now time.Time) bool {
	if s.Status == SessionActive {
		return true
	}
	return s.Status == SessionUpcoming && !now.Before(s.Start) && now.Before(s.End)
}

// IsUpcoming reports whether the session has not started yet. A session
// whose window has arrived is no longer upcoming even if the status was
// never transitioned.
func (s Session) IsUpcoming(now time.Time) bool {
	return s.Status == SessionUpcoming && s.Start.After(now)
}

// CanCancel reports whether the session may still be cancelled given the
// required notice period before its start.
func (s Session) CanCancel(now time.Time, notice time.Duration) bool {
	if s.Status != SessionUpcoming {
		return false
	}
	return s.Start.After(now.Add(notice))
}

// CanJoin reports whether a participant may join: never for cancelled or
// no-show sessions, otherwise from joinWindow before Start until End.
func (s Session) CanJoin(now time.Time, joinWindow time.Duration) bool {
	if s.Status == SessionCancelled || s.Status == SessionNoShow {
		return false
	}
	return !now.Before(s.Start.Add(-joinWindow)) && now.Before(s.End)
}

// NeedsFeedback reports whether the student still owes feedback.
func (s Session) NeedsFeedback() bool {
	return s.Status == SessionCompleted && !s.FeedbackSubmitted
}

// NeedsWrapUp reports whether the tutor still owes attendance or notes.
func (s Session) NeedsWrapUp() bool {
	return s.Status == SessionCompleted && (s.Attendance == AttendancePending || s.TutorNotes == "")
}
