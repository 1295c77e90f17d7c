package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-booking-api/internal/service"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
	"github.com/noah-isme/tutor-booking-api/pkg/response"
)

// AvailabilityHandler wires pattern management and slot generation to
// HTTP routes.
type AvailabilityHandler struct {
	availability *service.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(availability *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// ListPatterns godoc
// @Summary List a tutor's weekly patterns
// @Tags Availability
// @Produce json
// @Param id path string true "Tutor ID"
// @Success 200 {object} response.Envelope
// @Router /tutors/{id}/patterns [get]
func (h *AvailabilityHandler) ListPatterns(c *gin.Context) {
	patterns, err := h.availability.ListPatterns(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, patterns, nil)
}

// CreatePattern godoc
// @Summary Create a weekly pattern
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Tutor ID"
// @Param payload body service.PatternRequest true "Pattern payload"
// @Success 201 {object} response.Envelope
// @Router /tutors/{id}/patterns [post]
func (h *AvailabilityHandler) CreatePattern(c *gin.Context) {
	var req service.PatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid pattern payload"))
		return
	}
	pattern, err := h.availability.CreatePattern(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, pattern)
}

// ValidatePattern godoc
// @Summary Pre-validate a pattern payload without saving it
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Tutor ID"
// @Param payload body service.PatternRequest true "Pattern payload"
// @Success 200 {object} response.Envelope
// @Router /tutors/{id}/patterns/validate [post]
func (h *AvailabilityHandler) ValidatePattern(c *gin.Context) {
	var req service.PatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid pattern payload"))
		return
	}
	message := h.availability.ValidatePattern(c.Request.Context(), c.Param("id"), req)
	response.JSON(c, http.StatusOK, gin.H{"valid": message == "", "message": message}, nil)
}

// UpdatePattern godoc
// @Summary Update a weekly pattern
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Pattern ID"
// @Param payload body service.PatternRequest true "Pattern payload"
// @Success 200 {object} response.Envelope
// @Router /patterns/{id} [put]
func (h *AvailabilityHandler) UpdatePattern(c *gin.Context) {
	var req service.PatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid pattern payload"))
		return
	}
	pattern, err := h.availability.UpdatePattern(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pattern, nil)
}

// DeletePattern godoc
// @Summary Delete a weekly pattern
// @Tags Availability
// @Param id path string true "Pattern ID"
// @Success 204
// @Router /patterns/{id} [delete]
func (h *AvailabilityHandler) DeletePattern(c *gin.Context) {
	if err := h.availability.DeletePattern(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SlotsForWeek godoc
// @Summary List a tutor's bookable slots for a week
// @Tags Availability
// @Produce json
// @Param id path string true "Tutor ID"
// @Param week query string true "Any date inside the target week (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /tutors/{id}/slots [get]
func (h *AvailabilityHandler) SlotsForWeek(c *gin.Context) {
	week := c.Query("week")
	if week == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "week query parameter is required"))
		return
	}
	weekStart, err := time.ParseInLocation("2006-01-02", week, time.Local)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "week must be formatted as YYYY-MM-DD"))
		return
	}

	slots, err := h.availability.SlotsForWeek(c.Request.Context(), c.Param("id"), weekStart)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots, nil)
}
