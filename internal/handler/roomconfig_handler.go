package handler

import (
	"net/http"

	"hotel-floor-dashboard/internal/models"
	"hotel-floor-dashboard/internal/service"
	"hotel-floor-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomConfigHandler struct {
	configService *service.RoomConfigService
}

func NewRoomConfigHandler(configService *service.RoomConfigService) *RoomConfigHandler {
	return &RoomConfigHandler{
		configService: configService,
	}
}

// Get returns a room's stored overrides; a never-configured room yields an
// empty record
func (h *RoomConfigHandler) Get(c *gin.Context) {
	utils.SuccessResponse(c, h.configService.GetConfig(c.Param("roomId")))
}

type SetBedPositionRequest struct {
	BedPosition string `json:"bedPosition" binding:"required,oneof=top bottom left right"`
}

// SetBedPosition upserts a room's bed position override
func (h *RoomConfigHandler) SetBedPosition(c *gin.Context) {
	var req SetBedPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Field 'bedPosition' must be one of: top, bottom, left, right")
		return
	}

	roomID := c.Param("roomId")
	if err := h.configService.SetBedPosition(roomID, models.BedPosition(req.BedPosition)); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, h.configService.GetConfig(roomID))
}
