package api

import (
	"net/http"

	reqdto "logipark/internal/handler/dto/request"
	resdto "logipark/internal/handler/dto/response"
	"logipark/internal/handler/httperr"
	"logipark/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type FleetHandler struct {
	cmds commands.FleetCommands
}

func NewFleetHandler(cmds commands.FleetCommands) *FleetHandler {
	return &FleetHandler{cmds: cmds}
}

// @Summary Register vehicle
// @Tags fleet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterVehicleRequest true "Vehicle"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles [post]
func (h *FleetHandler) RegisterVehicle(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var req reqdto.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput(caller)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	id, err := h.cmds.RegisterVehicle(c.Request.Context(), caller, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Register driver
// @Tags fleet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterDriverRequest true "Driver"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drivers [post]
func (h *FleetHandler) RegisterDriver(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var req reqdto.RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput(caller)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	id, err := h.cmds.RegisterDriver(c.Request.Context(), caller, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}
