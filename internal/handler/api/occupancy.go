package api

import (
	"net/http"

	reqdto "logipark/internal/handler/dto/request"
	resdto "logipark/internal/handler/dto/response"
	"logipark/internal/handler/httperr"
	"logipark/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// OccupancyHandler serves the lot operator's walk-up check-in and check-out.
type OccupancyHandler struct {
	cmds commands.OccupancyCommands
}

func NewOccupancyHandler(cmds commands.OccupancyCommands) *OccupancyHandler {
	return &OccupancyHandler{cmds: cmds}
}

// @Summary Occupy space
// @Description Parks a vehicle without a prior booking and opens a provisional reservation
// @Tags occupancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parking space ID"
// @Param request body reqdto.OccupySpaceRequest true "Vehicle id or license plate"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /parking-spaces/{id}/occupy [post]
func (h *OccupancyHandler) Occupy(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	spaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.OccupySpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	reservationID, err := h.cmds.OccupySpace(c.Request.Context(), caller, spaceID, req.VehicleRef)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: reservationID})
}

// @Summary Free space
// @Description Completes the stay on the space and settles its cost
// @Tags occupancy
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parking space ID"
// @Success 200 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parking-spaces/{id}/free [post]
func (h *OccupancyHandler) Free(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	spaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reservationID, err := h.cmds.FreeSpace(c.Request.Context(), caller, spaceID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CreatedResponse{ID: reservationID})
}
