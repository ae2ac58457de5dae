package api

import (
	"net/http"
	"strconv"

	reqdto "logipark/internal/handler/dto/request"
	resdto "logipark/internal/handler/dto/response"
	"logipark/internal/handler/httperr"
	"logipark/internal/usecase/commands"
	"logipark/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	inventory commands.InventoryCommands
	q         queries.ParkingQueries
}

func NewParkingHandler(inventory commands.InventoryCommands, q queries.ParkingQueries) *ParkingHandler {
	return &ParkingHandler{inventory: inventory, q: q}
}

// @Summary Get parking lot
// @Description Lot details with live space counters
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parking lot ID"
// @Success 200 {object} resdto.ParkingLotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parking-lots/{id} [get]
func (h *ParkingHandler) GetLot(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetLot(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromParkingLotView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List spaces
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parking lot ID"
// @Param available query bool false "Only spaces currently available"
// @Success 200 {array} resdto.ParkingSpaceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parking-lots/{id}/spaces [get]
func (h *ParkingHandler) ListSpaces(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	onlyAvailable := false
	if raw := c.Query("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid available flag", nil)
			return
		}
		onlyAvailable = v
	}

	views, err := h.q.ListSpaces(c.Request.Context(), id, onlyAvailable)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromParkingSpaceViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Add space
// @Tags parking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parking lot ID"
// @Param request body reqdto.AddSpaceRequest true "Space"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /parking-lots/{id}/spaces [post]
func (h *ParkingHandler) AddSpace(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	lotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.AddSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	spaceID, err := h.inventory.AddSpace(c.Request.Context(), caller, lotID, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: spaceID})
}

// @Summary Regenerate spaces
// @Description Replaces every space of the lot with the generated set. Refused while any space backs an active reservation.
// @Tags parking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parking lot ID"
// @Param request body reqdto.RegenerateSpacesRequest true "Generation plan"
// @Success 200 {object} resdto.RegenerateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /parking-lots/{id}/spaces [put]
func (h *ParkingHandler) RegenerateSpaces(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	lotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.RegenerateSpacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	plan, err := req.ToPlan()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	created, err := h.inventory.RegenerateSpaces(c.Request.Context(), caller, lotID, plan)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RegenerateResponse{LotID: lotID, Created: created})
}

// @Summary Reconcile counters
// @Description Recomputes total and available counters from the live space rows
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parking lot ID"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parking-lots/{id}/reconcile [post]
func (h *ParkingHandler) Reconcile(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	lotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.inventory.ReconcileCounters(c.Request.Context(), caller, lotID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileResult(result))
}

// @Summary Remove space
// @Tags parking
// @Security BearerAuth
// @Param id path string true "Parking space ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /parking-spaces/{id} [delete]
func (h *ParkingHandler) RemoveSpace(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	spaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.inventory.RemoveSpace(c.Request.Context(), caller, spaceID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
