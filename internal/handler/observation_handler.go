package handler

import (
	"errors"
	"net/http"

	"hotel-floor-dashboard/internal/service"
	"hotel-floor-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ObservationHandler struct {
	observationService *service.ObservationService
}

func NewObservationHandler(observationService *service.ObservationService) *ObservationHandler {
	return &ObservationHandler{
		observationService: observationService,
	}
}

// List returns a room's observations, newest first
func (h *ObservationHandler) List(c *gin.Context) {
	observations := h.observationService.ListFor(c.Param("roomId"))
	utils.SuccessResponse(c, map[string]interface{}{
		"observations": observations,
		"count":        len(observations),
	})
}

type AddObservationRequest struct {
	Text string `json:"text" binding:"required"`
}

// Add creates a new observation for a room
func (h *ObservationHandler) Add(c *gin.Context) {
	var req AddObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Field 'text' is required")
		return
	}

	obs, err := h.observationService.Add(c.Param("roomId"), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyObservation) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to add observation")
		return
	}

	utils.CreatedResponse(c, obs)
}

// Delete removes one observation from a room. Unknown ids are a no-op, so
// the response is success either way.
func (h *ObservationHandler) Delete(c *gin.Context) {
	h.observationService.Delete(c.Param("roomId"), c.Param("observationId"))
	utils.MessageResponse(c, "Observation deleted")
}
