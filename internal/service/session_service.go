package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

type sessionRepository interface {
	Insert(ctx context.Context, session models.Session) error
	Update(ctx context.Context, session models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	UpcomingForStudent(ctx context.Context, studentID string, now time.Time) []models.Session
	UpcomingForTutor(ctx context.Context, tutorID string, now time.Time) []models.Session
	NextForStudent(ctx context.Context, studentID string, now time.Time) *models.Session
	NextForTutor(ctx context.Context, tutorID string, now time.Time) *models.Session
	NeedingFeedback(ctx context.Context, studentID string) []models.Session
	NeedingWrapUp(ctx context.Context, tutorID string) []models.Session
	Joinable(ctx context.Context, studentID string, now time.Time, joinWindow time.Duration) []models.Session
}

type sessionStudentReader interface {
	GetByID(ctx context.Context, id string) (*models.Student, error)
}

// CreateSessionRequest is the booking-confirmation payload. Group
// sessions list several students.
type CreateSessionRequest struct {
	TutorID    string    `json:"tutor_id" validate:"required"`
	StudentIDs []string  `json:"student_ids" validate:"required,min=1"`
	CourseCode string    `json:"course_code" validate:"required"`
	CourseName string    `json:"course_name" validate:"required"`
	Modality   string    `json:"modality" validate:"required,oneof=online in_person"`
	Start      time.Time `json:"start" validate:"required"`
	End        time.Time `json:"end" validate:"required,gtfield=Start"`
	Location   string    `json:"location"`
	MeetingURL string    `json:"meeting_url" validate:"omitempty,url"`
	Notes      string    `json:"notes"`
}

// WrapUpRequest records the tutor's post-session attendance and notes.
type WrapUpRequest struct {
	Attendance string `json:"attendance" validate:"required,oneof=present absent"`
	TutorNotes string `json:"tutor_notes"`
}

// SessionPolicy holds the notice and join windows applied by the
// time-dependent session checks.
type SessionPolicy struct {
	CancelNotice time.Duration
	JoinWindow   time.Duration
}

// SessionService owns the session lifecycle: creation on booking
// confirmation, cancellation, wrap-up and the role-scoped temporal
// queries. The clock is injected so tests can freeze time.
//
// Confirming a booking creates a session only; it does not touch the
// booked count of any time slot. The two subsystems are deliberately
// independent.
type SessionService struct {
	sessions  sessionRepository
	tutors    availabilityTutorReader
	students  sessionStudentReader
	policy    SessionPolicy
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewSessionService constructs a SessionService.
func NewSessionService(sessions sessionRepository, tutors availabilityTutorReader, students sessionStudentReader, policy SessionPolicy, validate *validator.Validate, logger *zap.Logger, now func() time.Time) *SessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	if policy.CancelNotice <= 0 {
		policy.CancelNotice = models.DefaultCancelNotice
	}
	if policy.JoinWindow <= 0 {
		policy.JoinWindow = models.DefaultJoinWindow
	}
	return &SessionService{
		sessions:  sessions,
		tutors:    tutors,
		students:  students,
		policy:    policy,
		validator: validate,
		logger:    logger,
		now:       now,
	}
}

// Create records a confirmed booking as a new upcoming session.
func (s *SessionService) Create(ctx context.Context, req CreateSessionRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid session payload")
	}
	if _, err := s.tutors.GetByID(ctx, req.TutorID); err != nil {
		return nil, err
	}
	for _, studentID := range req.StudentIDs {
		if _, err := s.students.GetByID(ctx, studentID); err != nil {
			return nil, err
		}
	}

	session := models.Session{
		ID:         uuid.NewString(),
		TutorID:    req.TutorID,
		StudentIDs: req.StudentIDs,
		CourseCode: req.CourseCode,
		CourseName: req.CourseName,
		Modality:   models.Modality(req.Modality),
		Status:     models.SessionUpcoming,
		Start:      req.Start,
		End:        req.End,
		Location:   req.Location,
		MeetingURL: req.MeetingURL,
		Notes:      req.Notes,
		Attendance: models.AttendancePending,
	}
	if err := s.sessions.Insert(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("session created",
		zap.String("session_id", session.ID),
		zap.String("tutor_id", session.TutorID),
		zap.Int("students", len(session.StudentIDs)))
	return &session, nil
}

// Get returns a session by id.
func (s *SessionService) Get(ctx context.Context, id string) (*models.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

// Cancel transitions an upcoming session to cancelled, provided the
// required notice period still holds. Sessions are never deleted.
func (s *SessionService) Cancel(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.CanCancel(s.now(), s.policy.CancelNotice) {
		return nil, appErrors.Clone(appErrors.ErrConflict, "session can no longer be cancelled")
	}

	next := *session
	next.Status = models.SessionCancelled
	if err := s.sessions.Update(ctx, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// WrapUp records attendance and tutor notes once the session window has
// passed, completing the session if it was not transitioned already.
func (s *SessionService) WrapUp(ctx context.Context, id string, req WrapUpRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid wrap-up payload")
	}
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch {
	case session.Status == models.SessionCancelled || session.Status == models.SessionNoShow:
		return nil, appErrors.Clone(appErrors.ErrInvalidState, "session cannot be wrapped up")
	case session.IsUpcoming(now) || session.IsActive(now):
		return nil, appErrors.Clone(appErrors.ErrInvalidState, "session has not finished yet")
	}

	next := *session
	next.Status = models.SessionCompleted
	next.Attendance = models.Attendance(req.Attendance)
	next.TutorNotes = req.TutorNotes
	if err := s.sessions.Update(ctx, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// SubmitFeedback marks the student's feedback as delivered for a
// completed session.
func (s *SessionService) SubmitFeedback(ctx context.Context, id, studentID string) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.HasStudent(studentID) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found for student")
	}
	if !session.NeedsFeedback() {
		return nil, appErrors.Clone(appErrors.ErrInvalidState, "session does not need feedback")
	}

	next := *session
	next.FeedbackSubmitted = true
	if err := s.sessions.Update(ctx, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// UpcomingForStudent lists the student's upcoming sessions.
func (s *SessionService) UpcomingForStudent(ctx context.Context, studentID string) []models.Session {
	return s.sessions.UpcomingForStudent(ctx, studentID, s.now())
}

// UpcomingForTutor lists the tutor's upcoming sessions.
func (s *SessionService) UpcomingForTutor(ctx context.Context, tutorID string) []models.Session {
	return s.sessions.UpcomingForTutor(ctx, tutorID, s.now())
}

// NextForStudent returns the student's next session, or nil.
func (s *SessionService) NextForStudent(ctx context.Context, studentID string) *models.Session {
	return s.sessions.NextForStudent(ctx, studentID, s.now())
}

// NextForTutor returns the tutor's next session, or nil.
func (s *SessionService) NextForTutor(ctx context.Context, tutorID string) *models.Session {
	return s.sessions.NextForTutor(ctx, tutorID, s.now())
}

// NeedingFeedback lists the student's completed sessions lacking
// feedback.
func (s *SessionService) NeedingFeedback(ctx context.Context, studentID string) []models.Session {
	return s.sessions.NeedingFeedback(ctx, studentID)
}

// NeedingWrapUp lists the tutor's sessions still missing attendance or
// notes.
func (s *SessionService) NeedingWrapUp(ctx context.Context, tutorID string) []models.Session {
	return s.sessions.NeedingWrapUp(ctx, tutorID)
}

// Joinable lists the student's sessions open for joining right now.
func (s *SessionService) Joinable(ctx context.Context, studentID string) []models.Session {
	return s.sessions.Joinable(ctx, studentID, s.now(), s.policy.JoinWindow)
}
