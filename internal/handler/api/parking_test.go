//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"logipark/internal/domain/parking"
	"logipark/internal/handler/api"
	resdto "logipark/internal/handler/dto/response"
	"logipark/internal/handler/middleware"
	"logipark/internal/usecase/commands"
	"logipark/internal/usecase/queries"
	"logipark/tests/common/builder"
	"logipark/tests/common/httptest"
	commandsmock "logipark/tests/mock/commands"
	queriesmock "logipark/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ParkingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockInventory *commandsmock.MockInventoryCommands
	mockOccupancy *commandsmock.MockOccupancyCommands
	mockQueries   *queriesmock.MockParkingQueries
	caller        *builder.UserBuilder
	lotID         uuid.UUID
}

func (s *ParkingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockInventory = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockOccupancy = commandsmock.NewMockOccupancyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockParkingQueries(s.mockCtrl)
	s.lotID = uuid.New()
	s.caller = builder.NewUserBuilder().AsOperator(uuid.New())

	parkingHandler := api.NewParkingHandler(s.mockInventory, s.mockQueries)
	occupancyHandler := api.NewOccupancyHandler(s.mockOccupancy)

	authed := s.router.Group("", func(c *gin.Context) {
		middleware.SetCaller(c, s.caller.BuildCaller())
		c.Next()
	})
	authed.GET("/parking-lots/:id", parkingHandler.GetLot)
	authed.GET("/parking-lots/:id/spaces", parkingHandler.ListSpaces)
	authed.POST("/parking-lots/:id/spaces", parkingHandler.AddSpace)
	authed.PUT("/parking-lots/:id/spaces", parkingHandler.RegenerateSpaces)
	authed.POST("/parking-lots/:id/reconcile", parkingHandler.Reconcile)
	authed.DELETE("/parking-spaces/:id", parkingHandler.RemoveSpace)
	authed.POST("/parking-spaces/:id/occupy", occupancyHandler.Occupy)
	authed.POST("/parking-spaces/:id/free", occupancyHandler.Free)
}

func (s *ParkingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestParkingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ParkingHandlerTestSuite))
}

func (s *ParkingHandlerTestSuite) lotURL(suffix string) string {
	return "/parking-lots/" + s.lotID.String() + suffix
}

func (s *ParkingHandlerTestSuite) TestGetLot() {
	s.Run("success: returns lot with counters", func() {
		view := &queries.ParkingLotView{
			ID:              s.lotID,
			CompanyID:       uuid.New(),
			Name:            "Pátio Central",
			PricePerHour:    "15.00",
			TotalSpaces:     10,
			AvailableSpaces: 7,
			IsActive:        true,
			UpdatedAt:       time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		}
		s.mockQueries.EXPECT().GetLot(gomock.Any(), s.lotID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.lotURL(""), nil, "")

		var response resdto.ParkingLotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(10, response.TotalSpaces)
		s.Equal(7, response.AvailableSpaces)
		s.Equal("15.00", response.PricePerHour)
	})

	s.Run("error: 404 when the lot does not exist", func() {
		s.mockQueries.EXPECT().GetLot(gomock.Any(), s.lotID).Return(nil, queries.ErrParkingLotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.lotURL(""), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "parking lot not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/parking-lots/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ParkingHandlerTestSuite) TestListSpaces() {
	spaces := []*queries.ParkingSpaceView{
		{ID: uuid.New(), ParkingLotID: s.lotID, SpaceNumber: "A-01", SpaceType: "TRUCK", IsAvailable: true},
		{ID: uuid.New(), ParkingLotID: s.lotID, SpaceNumber: "A-02", SpaceType: "TRUCK", IsAvailable: false},
	}

	s.Run("success: lists every active space by default", func() {
		s.mockQueries.EXPECT().ListSpaces(gomock.Any(), s.lotID, false).Return(spaces, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.lotURL("/spaces"), nil, "")

		var response []resdto.ParkingSpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("A-01", response[0].SpaceNumber)
		s.False(response[1].IsAvailable)
	})

	s.Run("success: available=true narrows the listing", func() {
		s.mockQueries.EXPECT().ListSpaces(gomock.Any(), s.lotID, true).Return(spaces[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.lotURL("/spaces?available=true"), nil, "")

		var response []resdto.ParkingSpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: empty lot renders an empty array", func() {
		s.mockQueries.EXPECT().ListSpaces(gomock.Any(), s.lotID, false).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.lotURL("/spaces"), nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 400 on a malformed available flag", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.lotURL("/spaces?available=maybe"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid available flag")
	})
}

func (s *ParkingHandlerTestSuite) TestAddSpace() {
	s.Run("success: returns 201 with the new space id", func() {
		spaceID := uuid.New()
		expected := commands.AddSpaceInput{SpaceNumber: "B-07", SpaceType: parking.SpaceTypeTrailer, IsAvailable: true}
		s.mockInventory.EXPECT().AddSpace(gomock.Any(), s.caller.BuildCaller(), s.lotID, expected).
			Return(spaceID, nil).Times(1)

		body := map[string]any{"space_number": "B-07", "space_type": "trailer"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.lotURL("/spaces"), body, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(spaceID, response.ID)
	})

	s.Run("success: is_available=false is passed through", func() {
		expected := commands.AddSpaceInput{SpaceNumber: "B-08", SpaceType: parking.SpaceTypeTruck, IsAvailable: false}
		s.mockInventory.EXPECT().AddSpace(gomock.Any(), gomock.Any(), s.lotID, expected).
			Return(uuid.New(), nil).Times(1)

		body := map[string]any{"space_number": "B-08", "space_type": "TRUCK", "is_available": false}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.lotURL("/spaces"), body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on invalid body", func() {
		testCases := []struct {
			name        string
			body        map[string]any
			expectedMsg string
		}{
			{name: "missing space_number", body: map[string]any{"space_type": "TRUCK"}, expectedMsg: "Invalid request format"},
			{name: "space_number too long", body: map[string]any{"space_number": "A-0000000000000000001", "space_type": "TRUCK"}, expectedMsg: "Invalid request format"},
			{name: "unknown space type", body: map[string]any{"space_number": "A-01", "space_type": "BOAT"}, expectedMsg: "invalid space type"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.lotURL("/spaces"), tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 403 when the caller does not operate the lot", func() {
		s.mockInventory.EXPECT().AddSpace(gomock.Any(), gomock.Any(), s.lotID, gomock.Any()).
			Return(uuid.Nil, commands.ErrLotAccessDenied).Times(1)

		body := map[string]any{"space_number": "B-09", "space_type": "VAN"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.lotURL("/spaces"), body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "does not operate")
	})
}

func (s *ParkingHandlerTestSuite) TestRegenerateSpaces() {
	body := map[string]any{
		"total_spaces": 3,
		"groups": []map[string]any{
			{"space_type": "TRUCK", "count": 2, "prefix": "T-", "start_index": 1},
			{"space_type": "VAN", "count": 1, "prefix": "V-", "start_index": 1},
		},
	}

	s.Run("success: returns the number of spaces created", func() {
		plan, err := parking.NewGenerationPlan(3, []parking.SpaceGroup{
			{Type: parking.SpaceTypeTruck, Count: 2, Prefix: "T-", StartIndex: 1},
			{Type: parking.SpaceTypeVan, Count: 1, Prefix: "V-", StartIndex: 1},
		})
		s.Require().NoError(err)
		s.mockInventory.EXPECT().RegenerateSpaces(gomock.Any(), s.caller.BuildCaller(), s.lotID, plan).
			Return(3, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.lotURL("/spaces"), body, "")

		var response resdto.RegenerateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.lotID, response.LotID)
		s.Equal(3, response.Created)
	})

	s.Run("error: 422 when group counts do not sum to the total", func() {
		mismatched := map[string]any{
			"total_spaces": 5,
			"groups":       []map[string]any{{"space_type": "TRUCK", "count": 2}},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.lotURL("/spaces"), mismatched, "")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Equal("INVALID_STATE", httptest.DecodeErrorBody(s.T(), rec).Error.Kind)
	})

	s.Run("error: 400 when groups are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.lotURL("/spaces"), map[string]any{"total_spaces": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 when spaces are bound to active reservations", func() {
		s.mockInventory.EXPECT().RegenerateSpaces(gomock.Any(), gomock.Any(), s.lotID, gomock.Any()).
			Return(0, commands.ErrLotHasActiveReservations).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.lotURL("/spaces"), body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "active reservations")
	})
}

func (s *ParkingHandlerTestSuite) TestReconcile() {
	s.Run("success: reports before and after counters", func() {
		result := &commands.ReconcileResult{
			LotID:     s.lotID,
			Before:    commands.CounterSnapshot{TotalSpaces: 7, AvailableSpaces: 1},
			After:     commands.CounterSnapshot{TotalSpaces: 3, AvailableSpaces: 3},
			Corrected: true,
		}
		s.mockInventory.EXPECT().ReconcileCounters(gomock.Any(), gomock.Any(), s.lotID).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.lotURL("/reconcile"), nil, "")

		var response resdto.ReconcileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Corrected)
		s.Equal(resdto.CounterSnapshotResponse{TotalSpaces: 7, AvailableSpaces: 1}, response.Before)
		s.Equal(resdto.CounterSnapshotResponse{TotalSpaces: 3, AvailableSpaces: 3}, response.After)
	})

	s.Run("error: 403 for non-admin callers", func() {
		s.mockInventory.EXPECT().ReconcileCounters(gomock.Any(), gomock.Any(), s.lotID).
			Return(nil, commands.ErrRoleNotAllowed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.lotURL("/reconcile"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "role not allowed")
	})
}

func (s *ParkingHandlerTestSuite) TestRemoveSpace() {
	spaceID := uuid.New()
	url := "/parking-spaces/" + spaceID.String()

	s.Run("success: returns 204", func() {
		s.mockInventory.EXPECT().RemoveSpace(gomock.Any(), s.caller.BuildCaller(), spaceID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 422 when the space has active reservations", func() {
		s.mockInventory.EXPECT().RemoveSpace(gomock.Any(), gomock.Any(), spaceID).
			Return(commands.ErrSpaceHasActiveReservations).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "active reservations")
	})

	s.Run("error: 404 when the space does not exist", func() {
		s.mockInventory.EXPECT().RemoveSpace(gomock.Any(), gomock.Any(), spaceID).
			Return(commands.ErrSpaceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "parking space not found")
	})
}

func (s *ParkingHandlerTestSuite) TestOccupy() {
	spaceID := uuid.New()
	url := "/parking-spaces/" + spaceID.String() + "/occupy"

	s.Run("success: returns 201 with the provisional reservation id", func() {
		reservationID := uuid.New()
		s.mockOccupancy.EXPECT().OccupySpace(gomock.Any(), s.caller.BuildCaller(), spaceID, "ABC1D23").
			Return(reservationID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"vehicle_ref": "ABC1D23"}, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(reservationID, response.ID)
	})

	s.Run("error: 400 when vehicle_ref is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "space occupied", err: commands.ErrSpaceOccupied, expectedStatus: http.StatusConflict},
			{name: "vehicle parked elsewhere", err: commands.ErrVehicleAlreadyParked, expectedStatus: http.StatusConflict},
			{name: "vehicle without driver", err: commands.ErrVehicleWithoutDriver, expectedStatus: http.StatusUnprocessableEntity},
			{name: "unknown vehicle", err: commands.ErrVehicleNotFound, expectedStatus: http.StatusNotFound},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockOccupancy.EXPECT().OccupySpace(gomock.Any(), gomock.Any(), spaceID, "ABC1D23").
					Return(uuid.Nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"vehicle_ref": "ABC1D23"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.err.Error())
			})
		}
	})
}

func (s *ParkingHandlerTestSuite) TestFree() {
	spaceID := uuid.New()
	url := "/parking-spaces/" + spaceID.String() + "/free"

	s.Run("success: returns the settled reservation id", func() {
		reservationID := uuid.New()
		s.mockOccupancy.EXPECT().FreeSpace(gomock.Any(), s.caller.BuildCaller(), spaceID).
			Return(reservationID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ID)
	})

	s.Run("error: 404 when nothing is parked on the space", func() {
		s.mockOccupancy.EXPECT().FreeSpace(gomock.Any(), gomock.Any(), spaceID).
			Return(uuid.Nil, commands.ErrNoActiveOccupancy).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "no vehicle is parked")
	})
}
