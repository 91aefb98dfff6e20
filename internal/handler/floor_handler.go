package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-floor-dashboard/internal/catalog"
	"hotel-floor-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FloorHandler struct{}

func NewFloorHandler() *FloorHandler {
	return &FloorHandler{}
}

// GetRooms returns the fixed room layout for one floor, partitioned into
// the three display groups
func (h *FloorHandler) GetRooms(c *gin.Context) {
	floor, err := strconv.Atoi(c.Param("floor"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Floor must be a number")
		return
	}

	layout, err := catalog.FloorRooms(floor)
	if err != nil {
		if errors.Is(err, catalog.ErrFloorOutOfRange) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to build floor layout")
		return
	}

	utils.SuccessResponse(c, layout)
}
