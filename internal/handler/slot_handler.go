package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-booking-api/internal/service"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
	"github.com/noah-isme/tutor-booking-api/pkg/response"
)

// SlotHandler wires the slot state machine to HTTP routes.
type SlotHandler struct {
	slots   *service.SlotService
	metrics *service.MetricsService
}

// NewSlotHandler constructs a SlotHandler.
func NewSlotHandler(slots *service.SlotService, metrics *service.MetricsService) *SlotHandler {
	return &SlotHandler{slots: slots, metrics: metrics}
}

type resizeSlotRequest struct {
	Capacity int `json:"capacity"`
}

// Create godoc
// @Summary Create a standalone slot
// @Tags Slots
// @Accept json
// @Produce json
// @Param payload body service.CreateSlotRequest true "Slot payload"
// @Success 201 {object} response.Envelope
// @Router /slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	var req service.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid slot payload"))
		return
	}
	slot, err := h.slots.CreateStandalone(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, slot)
}

// Get godoc
// @Summary Get slot detail
// @Tags Slots
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} response.Envelope
// @Router /slots/{id} [get]
func (h *SlotHandler) Get(c *gin.Context) {
	slot, err := h.slots.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot, nil)
}

// Book godoc
// @Summary Take one seat on a slot
// @Tags Slots
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} response.Envelope
// @Router /slots/{id}/bookings [post]
func (h *SlotHandler) Book(c *gin.Context) {
	slot, err := h.slots.Book(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveBookingTransition("book")
	}
	response.JSON(c, http.StatusOK, slot, nil)
}

// Release godoc
// @Summary Release one seat on a slot
// @Tags Slots
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} response.Envelope
// @Router /slots/{id}/bookings [delete]
func (h *SlotHandler) Release(c *gin.Context) {
	slot, err := h.slots.Release(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveBookingTransition("release")
	}
	response.JSON(c, http.StatusOK, slot, nil)
}

// Resize godoc
// @Summary Update slot capacity
// @Tags Slots
// @Accept json
// @Produce json
// @Param id path string true "Slot ID"
// @Param payload body resizeSlotRequest true "New capacity"
// @Success 200 {object} response.Envelope
// @Router /slots/{id}/capacity [patch]
func (h *SlotHandler) Resize(c *gin.Context) {
	var req resizeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid capacity payload"))
		return
	}
	slot, err := h.slots.Resize(c.Request.Context(), c.Param("id"), req.Capacity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot, nil)
}

// Toggle godoc
// @Summary Flip a slot's active flag
// @Tags Slots
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} response.Envelope
// @Router /slots/{id}/toggle [post]
func (h *SlotHandler) Toggle(c *gin.Context) {
	slot, err := h.slots.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot, nil)
}
