package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	"github.com/noah-isme/tutor-booking-api/internal/service"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
	"github.com/noah-isme/tutor-booking-api/pkg/response"
)

// TutorHandler wires the tutor and matching services to HTTP routes.
type TutorHandler struct {
	tutors  *service.TutorService
	match   *service.MatchService
	metrics *service.MetricsService
}

// NewTutorHandler constructs a TutorHandler.
func NewTutorHandler(tutors *service.TutorService, match *service.MatchService, metrics *service.MetricsService) *TutorHandler {
	return &TutorHandler{tutors: tutors, match: match, metrics: metrics}
}

// List godoc
// @Summary List tutors
// @Tags Tutors
// @Produce json
// @Param search query string false "Search by name/department/subject"
// @Param subject query string false "Filter by taught subject"
// @Param department query string false "Filter by department"
// @Param exclude query string false "Tutor ID to exclude"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /tutors [get]
func (h *TutorHandler) List(c *gin.Context) {
	filter := models.TutorFilter{
		Search:     strings.TrimSpace(c.Query("search")),
		Subject:    strings.TrimSpace(c.Query("subject")),
		Department: strings.TrimSpace(c.Query("department")),
		ExcludeID:  c.Query("exclude"),
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	tutors, pagination := h.tutors.List(c.Request.Context(), filter, page, size)
	response.JSON(c, http.StatusOK, tutors, pagination)
}

// Get godoc
// @Summary Get tutor detail
// @Tags Tutors
// @Produce json
// @Param id path string true "Tutor ID"
// @Success 200 {object} response.Envelope
// @Router /tutors/{id} [get]
func (h *TutorHandler) Get(c *gin.Context) {
	tutor, err := h.tutors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tutor, nil)
}

// Departments godoc
// @Summary List distinct departments
// @Tags Tutors
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tutors/meta/departments [get]
func (h *TutorHandler) Departments(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.tutors.Departments(c.Request.Context()), nil)
}

// Subjects godoc
// @Summary List distinct subjects
// @Tags Tutors
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tutors/meta/subjects [get]
func (h *TutorHandler) Subjects(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.tutors.Subjects(c.Request.Context()), nil)
}

// Match godoc
// @Summary Auto-match a tutor
// @Tags Tutors
// @Accept json
// @Produce json
// @Param payload body service.MatchRequest true "Match preferences"
// @Success 200 {object} response.Envelope
// @Router /tutors/match [post]
func (h *TutorHandler) Match(c *gin.Context) {
	var req service.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid match payload"))
		return
	}
	result, err := h.match.AutoMatch(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveMatch(result.Recommended != nil)
	}
	response.JSON(c, http.StatusOK, result, nil)
}
