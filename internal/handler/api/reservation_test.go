//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"logipark/internal/domain/reservation"
	"logipark/internal/handler/api"
	resdto "logipark/internal/handler/dto/response"
	"logipark/internal/handler/middleware"
	"logipark/internal/usecase/commands"
	"logipark/internal/usecase/queries"
	"logipark/tests/common/builder"
	"logipark/tests/common/httptest"
	"logipark/tests/common/testutil"
	commandsmock "logipark/tests/mock/commands"
	queriesmock "logipark/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	caller       *builder.UserBuilder
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.caller = builder.NewUserBuilder()

	h := api.NewReservationHandler(s.mockCommands, s.mockQueries)
	authed := s.router.Group("/reservations", func(c *gin.Context) {
		middleware.SetCaller(c, s.caller.BuildCaller())
		c.Next()
	})
	authed.POST("", h.Create)
	authed.GET("", h.List)
	authed.GET("/:id", h.Get)
	authed.PATCH("/:id", h.Update)
	authed.POST("/:id/cancel", h.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.CompanyID = *s.caller.CompanyID
	})
	reqBody := res.BuildCreateRequest()
	view := res.BuildView()
	expectedInput := commands.CreateReservationInput{
		CompanyID:    res.CompanyID,
		VehicleID:    res.VehicleID,
		DriverID:     res.DriverID,
		ParkingLotID: res.ParkingLotID,
		StartTime:    res.StartTime,
		EndTime:      res.EndTime,
	}

	s.Run("success: returns 201 Created with the reservation view", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.caller.BuildCaller(), expectedInput, (*uuid.UUID)(nil)).
			Return(&commands.CreateReservationResult{ReservationID: res.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.caller.BuildCaller(), res.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(res.ID, response.ID)
		s.Equal("PENDING", response.Status)
		s.Equal("30.00", response.TotalCost)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: company defaults to the caller's company", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("company_id", nil))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), expectedInput, gomock.Nil()).
			Return(&commands.CreateReservationResult{ReservationID: res.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), res.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: replayed idempotency key returns 200 with the replay header", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), expectedInput, &key).
			Return(&commands.CreateReservationResult{ReservationID: res.ID, IsReplayed: true}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), res.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": key.String()}, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(res.ID, response.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 Bad Request on malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid idempotency key format")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing vehicle_id", mutate: testutil.Field("vehicle_id", nil)},
			{name: "missing driver_id", mutate: testutil.Field("driver_id", nil)},
			{name: "missing parking_lot_id", mutate: testutil.Field("parking_lot_id", nil)},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil)},
			{name: "missing end_time", mutate: testutil.Field("end_time", nil)},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "tomorrow morning")},
			{name: "special_requests too long", mutate: testutil.Field("special_requests", strings.Repeat("x", 1001))},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 400 Bad Request when an admin omits company_id", func() {
		s.caller.AsAdmin()
		defer func() { s.caller = builder.NewUserBuilder() }()

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("company_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "company_id is required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		conflictWith := uuid.New()
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedKind   string
			expectedDetail map[string]any
		}{
			{
				name:           "vehicle overlap",
				commandsError:  reservation.NewConflictError(reservation.DimensionVehicle, conflictWith),
				expectedStatus: http.StatusConflict,
				expectedKind:   "CONFLICT",
				expectedDetail: map[string]any{"dimension": "vehicle", "reservation_id": conflictWith.String()},
			},
			{
				name:           "space overlap detected by the database",
				commandsError:  reservation.NewConflictError(reservation.DimensionSpace, uuid.Nil),
				expectedStatus: http.StatusConflict,
				expectedKind:   "CONFLICT",
				expectedDetail: map[string]any{"dimension": "space"},
			},
			{
				name:           "vehicle owned by another company",
				commandsError:  commands.ErrVehicleNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedKind:   "FORBIDDEN",
			},
			{
				name:           "lot not found",
				commandsError:  commands.ErrLotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedKind:   "NOT_FOUND",
			},
			{
				name:           "inverted time slot",
				commandsError:  reservation.ErrInvalidTimeSlot,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedKind:   "INVALID_STATE",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedKind:   "INTERNAL",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				s.Equal(tc.expectedStatus, rec.Code)
				body := httptest.DecodeErrorBody(s.T(), rec)
				s.Equal(tc.expectedKind, body.Error.Kind)
				s.Equal(tc.expectedDetail, body.Detail)
				if tc.expectedStatus == http.StatusInternalServerError {
					s.Equal("Internal server error", body.Error.Message)
				}
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().WithSpace(uuid.New()).BuildView()

	s.Run("success: returns the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.caller.BuildCaller(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID.String(), response["id"])
		s.Equal("A-01", response["space_number"])
		s.Equal("ABC1D23", response["license_plate"])
		s.Nil(response["actual_arrival"])
		s.NotContains(response, "lot_company_id")
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not found", queriesError: queries.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "reservation not found"},
			{name: "not visible", queriesError: queries.ErrReservationAccess, expectedStatus: http.StatusForbidden, expectedMsg: "may not view"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	first := builder.NewReservationBuilder().BuildView()
	second := builder.NewReservationBuilder().BuildView()

	s.Run("success: maps query parameters to filters and returns next_cursor", func() {
		lotID := uuid.New()
		next := &queries.Cursor{After: queries.EncodeAfterCursor(second.StartTime, second.ID)}
		expectedFilters := []queries.ReservationFilter{
			queries.ByStatus(reservation.StatusConfirmed),
			queries.ByLot(lotID),
		}

		s.mockQueries.EXPECT().
			List(gomock.Any(), s.caller.BuildCaller(), expectedFilters, &queries.Cursor{After: "abc"}, 2).
			Return([]*queries.ReservationView{first, second}, next, nil).Times(1)

		path := "/reservations?status=CONFIRMED&parking_lot_id=" + lotID.String() + "&cursor=abc&limit=2"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal(first.ID, response.Items[0].ID)
		s.True(response.NextCursor.Valid)
		s.Equal(next.After, response.NextCursor.String)
	})

	s.Run("success: last page has a null next_cursor", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Len(0), gomock.Nil(), 0).
			Return([]*queries.ReservationView{first}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response["next_cursor"])
	})

	s.Run("success: time range becomes start filters", func() {
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := from.Add(24 * time.Hour)
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), []queries.ReservationFilter{queries.StartsFrom(from), queries.StartsBefore(to)}, gomock.Nil(), 0).
			Return(nil, nil, nil).Times(1)

		path := "/reservations?from=2024-01-01T00:00:00Z&to=2024-01-02T00:00:00Z"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on invalid parameters", func() {
		testCases := []struct {
			name        string
			path        string
			expectedMsg string
		}{
			{name: "unknown status", path: "/reservations?status=PARKED", expectedMsg: "Invalid filter"},
			{name: "malformed lot id", path: "/reservations?parking_lot_id=42", expectedMsg: "Invalid filter"},
			{name: "malformed from", path: "/reservations?from=yesterday", expectedMsg: "Invalid filter"},
			{name: "limit above maximum", path: "/reservations?limit=201", expectedMsg: "Invalid query parameters"},
			{name: "limit below minimum", path: "/reservations?limit=-1", expectedMsg: "Invalid query parameters"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 422 on a bad cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?cursor=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "invalid cursor")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdate() {
	res := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed)
	url := "/reservations/" + res.ID.String()

	s.Run("success: applies a status patch and returns the updated view", func() {
		inProgress := reservation.StatusInProgress
		expectedPatch := commands.ReservationPatch{Status: &inProgress}

		s.mockCommands.EXPECT().Update(gomock.Any(), s.caller.BuildCaller(), res.ID, expectedPatch).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), res.ID).
			Return(builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.ID = res.ID
				b.Status = inProgress
			}).BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "IN_PROGRESS"}, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("IN_PROGRESS", response.Status)
	})

	s.Run("success: trims special requests", func() {
		note := "gate 3"
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), res.ID, commands.ReservationPatch{SpecialRequests: &note}).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), res.ID).Return(res.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"special_requests": "  gate 3 "}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on an empty patch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "at least one field")
	})

	s.Run("error: 400 Bad Request when every field is null", func() {
		body := testutil.DtoMap(s.T(), map[string]any{}, testutil.Null("status"), testutil.Null("start_time"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "at least one field")
	})

	s.Run("error: 400 Bad Request on an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "PARKED"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid reservation status")
	})

	s.Run("error: 422 with transition detail on an invalid transition", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), res.ID, gomock.Any()).
			Return(reservation.CheckTransition(reservation.StatusCompleted, reservation.StatusPending, reservation.ActorAdmin)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "PENDING"}, "")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		body := httptest.DecodeErrorBody(s.T(), rec)
		s.Equal("INVALID_STATE", body.Error.Kind)
		s.Equal(map[string]any{"from": "COMPLETED", "to": "PENDING"}, body.Detail)
	})

	s.Run("error: 403 when the owner edits a non-pending reservation", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), res.ID, gomock.Any()).
			Return(commands.ErrOwnerModifyNonPending).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"special_requests": "late"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only modify pending")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	res := builder.NewReservationBuilder()
	url := "/reservations/" + res.ID.String() + "/cancel"

	s.Run("success: returns the cancelled reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.caller.BuildCaller(), res.ID).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), res.ID).
			Return(res.WithStatus(reservation.StatusCancelled).BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CANCELLED", response.Status)
	})

	s.Run("error: 422 when the reservation is already finished", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), res.ID).Return(commands.ErrCannotCancel).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "cannot be cancelled")
	})
}
