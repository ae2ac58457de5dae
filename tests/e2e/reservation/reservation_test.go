//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"logipark/internal/domain/user"
	resdto "logipark/internal/handler/dto/response"
	"logipark/tests/common/authtest"
	"logipark/tests/common/dbtest"
	"logipark/tests/common/httptest"
	"logipark/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/guregu/null.v4"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite

	carrierID  uuid.UUID
	operatorID uuid.UUID
	lotID      uuid.UUID
	spaceIDs   []uuid.UUID
	driverID   uuid.UUID
	vehicleID  uuid.UUID

	carrierToken  string
	operatorToken string
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.carrierID = dbtest.CompanyIDByType(t, s.DB, "TRANSPORTADORA")
	s.operatorID = dbtest.CompanyIDByType(t, s.DB, "ESTACIONAMENTO")
	s.lotID, s.spaceIDs = dbtest.CreateTestLot(t, s.DB, s.operatorID, "Patio Km 42", 10, 2)
	s.driverID = dbtest.CreateTestDriver(t, s.DB, s.carrierID, "Joao Motorista", "01234567890")
	s.vehicleID = dbtest.CreateTestVehicle(t, s.DB, s.carrierID, &s.driverID, "ABC1D23")

	s.carrierToken = authtest.CreateAndLogin(t, s.DB, s.Router, "carrier@example.com", string(user.RoleTransportadora)).Token
	s.operatorToken = authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", string(user.RoleEstacionamento)).Token
}

func (s *reservationSuite) createBody(spaceID uuid.UUID, start time.Time) map[string]any {
	return map[string]any{
		"vehicle_id":       s.vehicleID,
		"driver_id":        s.driverID,
		"parking_lot_id":   s.lotID,
		"parking_space_id": spaceID,
		"start_time":       start.Format(time.RFC3339),
		"end_time":         start.Add(2 * time.Hour).Format(time.RFC3339),
		"special_requests": "  dock 3  ",
	}
}

func (s *reservationSuite) TestCreate() {
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)

	s.Run("books a space and prices the stay", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createBody(s.spaceIDs[0], start), s.carrierToken)

		var got resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &got)

		want := resdto.ReservationResponse{
			ParkingLotID:    s.lotID,
			ParkingLotName:  "Patio Km 42",
			ParkingSpaceID:  &s.spaceIDs[0],
			SpaceNumber:     null.StringFrom("A01"),
			VehicleID:       s.vehicleID,
			LicensePlate:    "ABC1D23",
			DriverID:        s.driverID,
			DriverName:      "Joao Motorista",
			CompanyID:       s.carrierID,
			CompanyName:     dbtest.CarrierCompanyName,
			StartTime:       start,
			EndTime:         start.Add(2 * time.Hour),
			TotalCost:       "20.00",
			PaymentStatus:   "PENDING",
			Status:          "PENDING",
			SpecialRequests: null.StringFrom("dock 3"),
		}
		opts := cmp.Options{
			cmpopts.IgnoreFields(resdto.ReservationResponse{}, "ID", "CreatedAt", "UpdatedAt"),
			cmpopts.EquateApproxTime(time.Second),
		}
		if diff := cmp.Diff(want, got, opts); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}

		var available int
		err := s.DB.QueryRow(t.Context(), "SELECT available_spaces FROM parking_lots WHERE id = $1", s.lotID).Scan(&available)
		require.NoError(t, err)
		require.Equal(t, 2, available, "a future booking does not take the space yet")
	})

	s.Run("replays the same idempotency key", func() {
		t := s.T()
		key := uuid.NewString()
		headers := map[string]string{"Idempotency-Key": key}
		body := s.createBody(s.spaceIDs[0], start)

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, headers, s.carrierToken)
		var created resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, first, http.StatusCreated, &created)

		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, headers, s.carrierToken)
		var replayed resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, second, http.StatusOK, &replayed)
		require.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))
		require.Equal(t, created.ID, replayed.ID)

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM reservations").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("rejects an overlapping booking of the same vehicle", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createBody(s.spaceIDs[0], start), s.carrierToken)
		var first resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &first)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createBody(s.spaceIDs[1], start.Add(time.Hour)), s.carrierToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		body := httptest.DecodeErrorBody(t, w)
		require.Equal(t, "CONFLICT", body.Error.Kind)
		require.Equal(t, "vehicle", body.Detail["dimension"])
		require.Equal(t, first.ID.String(), body.Detail["reservation_id"])
	})

	s.Run("back-to-back bookings do not conflict", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createBody(s.spaceIDs[0], start), s.carrierToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createBody(s.spaceIDs[0], start.Add(2*time.Hour)), s.carrierToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("operators cannot book", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createBody(s.spaceIDs[0], start), s.operatorToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestLifecycle() {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)

	s.Run("operator confirms and cancels, the owner is locked out after confirmation", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createBody(s.spaceIDs[0], start), s.carrierToken)
		var created resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		itemURL := fmt.Sprintf("%s/%s", reservationsURL, created.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, itemURL, map[string]any{"status": "CONFIRMED"}, s.operatorToken)
		var confirmed resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		require.Equal(t, "CONFIRMED", confirmed.Status)

		// the owner may only edit pending bookings
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, itemURL, map[string]any{"special_requests": "late"}, s.carrierToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, itemURL+"/cancel", nil, s.carrierToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, itemURL+"/cancel", nil, s.operatorToken)
		var cancelled resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "CANCELLED", cancelled.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, itemURL+"/cancel", nil, s.operatorToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("walk-up occupancy opens and closes a provisional stay", func() {
		t := s.T()
		spaceURL := fmt.Sprintf("/api/parking-spaces/%s", s.spaceIDs[1])

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, spaceURL+"/occupy", map[string]any{"vehicle_ref": "abc-1d23"}, s.operatorToken)
		var occupied resdto.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &occupied)

		var status string
		var provisional bool
		err := s.DB.QueryRow(t.Context(), "SELECT status, provisional FROM reservations WHERE id = $1", occupied.ID).Scan(&status, &provisional)
		require.NoError(t, err)
		require.Equal(t, "IN_PROGRESS", status)
		require.True(t, provisional)

		var available int
		err = s.DB.QueryRow(t.Context(), "SELECT available_spaces FROM parking_lots WHERE id = $1", s.lotID).Scan(&available)
		require.NoError(t, err)
		require.Equal(t, 1, available)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, spaceURL+"/occupy", map[string]any{"vehicle_ref": s.vehicleID.String()}, s.operatorToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, spaceURL+"/free", nil, s.operatorToken)
		var freed resdto.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &freed)
		require.Equal(t, occupied.ID, freed.ID)

		err = s.DB.QueryRow(t.Context(), "SELECT status FROM reservations WHERE id = $1", occupied.ID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "COMPLETED", status)

		err = s.DB.QueryRow(t.Context(), "SELECT available_spaces FROM parking_lots WHERE id = $1", s.lotID).Scan(&available)
		require.NoError(t, err)
		require.Equal(t, 2, available)
	})
}

func (s *reservationSuite) TestList() {
	start := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Hour)

	s.Run("pages newest first with a cursor", func() {
		t := s.T()
		for i := range 3 {
			body := s.createBody(s.spaceIDs[0], start.Add(time.Duration(i)*3*time.Hour))
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.carrierToken)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?limit=2", nil, s.carrierToken)
		var page1 resdto.ReservationListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page1)
		require.Len(t, page1.Items, 2)
		require.True(t, page1.NextCursor.Valid)
		require.True(t, page1.Items[0].StartTime.After(page1.Items[1].StartTime))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?limit=2&cursor="+page1.NextCursor.String, nil, s.carrierToken)
		var page2 resdto.ReservationListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page2)
		require.Len(t, page2.Items, 1)
		require.False(t, page2.NextCursor.Valid)
		require.True(t, page2.Items[0].StartTime.Before(page1.Items[1].StartTime))
	})

	s.Run("operators see bookings on their lots", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createBody(s.spaceIDs[0], start), s.carrierToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, s.operatorToken)
		var list resdto.ReservationListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Items, 1)
		require.Equal(t, s.lotID, list.Items[0].ParkingLotID)
	})
}
