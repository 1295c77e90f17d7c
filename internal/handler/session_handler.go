package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-booking-api/internal/service"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
	"github.com/noah-isme/tutor-booking-api/pkg/response"
)

// SessionHandler wires the session lifecycle to HTTP routes.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type feedbackRequest struct {
	StudentID string `json:"student_id"`
}

// Create godoc
// @Summary Record a confirmed booking as a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body service.CreateSessionRequest true "Session payload"
// @Success 201 {object} response.Envelope
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid session payload"))
		return
	}
	session, err := h.sessions.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}

// Get godoc
// @Summary Get session detail
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// Cancel godoc
// @Summary Cancel an upcoming session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/cancel [post]
func (h *SessionHandler) Cancel(c *gin.Context) {
	session, err := h.sessions.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// WrapUp godoc
// @Summary Record attendance and tutor notes
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body service.WrapUpRequest true "Wrap-up payload"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/wrap-up [post]
func (h *SessionHandler) WrapUp(c *gin.Context) {
	var req service.WrapUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid wrap-up payload"))
		return
	}
	session, err := h.sessions.WrapUp(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// Feedback godoc
// @Summary Mark student feedback as submitted
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body feedbackRequest true "Feedback payload"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/feedback [post]
func (h *SessionHandler) Feedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid feedback payload"))
		return
	}
	session, err := h.sessions.SubmitFeedback(c.Request.Context(), c.Param("id"), req.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// StudentUpcoming godoc
// @Summary List a student's upcoming sessions
// @Tags Sessions
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/sessions/upcoming [get]
func (h *SessionHandler) StudentUpcoming(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.sessions.UpcomingForStudent(c.Request.Context(), c.Param("id")), nil)
}

// StudentNext godoc
// @Summary Get a student's next session
// @Tags Sessions
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/sessions/next [get]
func (h *SessionHandler) StudentNext(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.sessions.NextForStudent(c.Request.Context(), c.Param("id")), nil)
}

// StudentFeedbackNeeded godoc
// @Summary List a student's sessions awaiting feedback
// @Tags Sessions
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/sessions/feedback-needed [get]
func (h *SessionHandler) StudentFeedbackNeeded(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.sessions.NeedingFeedback(c.Request.Context(), c.Param("id")), nil)
}

// StudentJoinable godoc
// @Summary List a student's sessions open for joining
// @Tags Sessions
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/sessions/joinable [get]
func (h *SessionHandler) StudentJoinable(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.sessions.Joinable(c.Request.Context(), c.Param("id")), nil)
}

// TutorUpcoming godoc
// @Summary List a tutor's upcoming sessions
// @Tags Sessions
// @Produce json
// @Param id path string true "Tutor ID"
// @Success 200 {object} response.Envelope
// @Router /tutors/{id}/sessions/upcoming [get]
func (h *SessionHandler) TutorUpcoming(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.sessions.UpcomingForTutor(c.Request.Context(), c.Param("id")), nil)
}

// TutorNext godoc
// @Summary Get a tutor's next session
// @Tags Sessions
// @Produce json
// @Param id path string true "Tutor ID"
// @Success 200 {object} response.Envelope
// @Router /tutors/{id}/sessions/next [get]
func (h *SessionHandler) TutorNext(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.sessions.NextForTutor(c.Request.Context(), c.Param("id")), nil)
}

// TutorWrapUpNeeded godoc
// @Summary List a tutor's sessions awaiting wrap-up
// @Tags Sessions
// @Produce json
// @Param id path string true "Tutor ID"
// @Success 200 {object} response.Envelope
// @Router /tutors/{id}/sessions/wrap-up [get]
func (h *SessionHandler) TutorWrapUpNeeded(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.sessions.NeedingWrapUp(c.Request.Context(), c.Param("id")), nil)
}
