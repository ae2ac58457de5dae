package commands

import (
	"context"
	"encoding/json"
	"time"

	"logipark/internal/domain/reservation"
	"logipark/internal/pkg/errs"
	"logipark/internal/usecase/shared"
)

const (
	notificationKind = "reservation_event"

	topicReservationCreated       = "reservation_created"
	topicReservationStatusChanged = "reservation_status_changed"
)

type reservationEvent struct {
	ReservationID string `json:"reservation_id"`
	CompanyID     string `json:"company_id"`
	ParkingLotID  string `json:"parking_lot_id"`
	From          string `json:"from,omitempty"`
	Status        string `json:"status"`
	TotalCost     string `json:"total_cost"`
}

// enqueueEvent writes an outbox row in the caller's transaction. Delivery is
// somebody else's job.
func enqueueEvent(ctx context.Context, tx shared.Tx, topic string, res *reservation.Reservation, from reservation.Status, now time.Time) error {
	payload, err := json.Marshal(reservationEvent{
		ReservationID: res.ID().String(),
		CompanyID:     res.CompanyID().String(),
		ParkingLotID:  res.ParkingLotID().String(),
		From:          string(from),
		Status:        string(res.Status()),
		TotalCost:     res.TotalCost().String(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal notification payload")
	}
	return tx.Notifications().CreateJob(ctx, notificationKind, topic, payload, now)
}
