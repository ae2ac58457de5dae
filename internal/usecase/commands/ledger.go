package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"logipark/internal/domain/parking"
	"logipark/internal/infra"
	"logipark/internal/pkg/clock"
	"logipark/internal/pkg/errs"
	"logipark/internal/usecase/shared"
)

// SpaceLedger is the only writer of parking_spaces.is_available and of the
// lot counters. Every operation starts by locking the lot row, so operations
// on one lot serialize; the flag change and the ±1 counter move share the
// caller's transaction.
type SpaceLedger struct {
	clock clock.Clock
}

func NewSpaceLedger(clk clock.Clock) *SpaceLedger {
	return &SpaceLedger{clock: clk}
}

type CounterSnapshot struct {
	TotalSpaces     int
	AvailableSpaces int
}

type ReconcileResult struct {
	LotID     uuid.UUID
	Before    CounterSnapshot
	After     CounterSnapshot
	Corrected bool
}

func (l *SpaceLedger) lockLot(ctx context.Context, tx shared.Tx, lotID uuid.UUID) (*parking.Lot, error) {
	lot, err := tx.Lots().LockByID(ctx, lotID)
	if err != nil {
		return nil, translateNotFound(err, ErrLotNotFound, lotID)
	}
	return lot, nil
}

func (l *SpaceLedger) AddSpace(
	ctx context.Context,
	tx shared.Tx,
	lotID uuid.UUID,
	number string,
	spaceType parking.SpaceType,
	available bool,
) (*parking.Space, error) {
	lot, err := l.lockLot(ctx, tx, lotID)
	if err != nil {
		return nil, err
	}

	space, err := parking.NewSpace(lotID, number, spaceType, available, l.clock.Now())
	if err != nil {
		return nil, err
	}

	exists, err := tx.Spaces().ActiveNumberExists(ctx, lotID, space.Number())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.Wrapf(parking.ErrDuplicateSpaceNumber, "%s", space.Number())
	}

	deltaAvailable := 0
	if available {
		deltaAvailable = 1
	}
	if err := lot.Adjust(1, deltaAvailable); err != nil {
		return nil, err
	}

	if err := tx.Spaces().Create(ctx, space); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Wrapf(parking.ErrDuplicateSpaceNumber, "%s", space.Number())
		}
		return nil, err
	}
	if err := tx.Lots().AdjustCounters(ctx, lotID, 1, deltaAvailable); err != nil {
		return nil, err
	}

	slog.Debug("ledger: space added", "lot_id", lotID, "space_id", space.ID(), "number", space.Number())
	return space, nil
}

// RemoveSpace soft-deletes the space. Spaces referenced by an active
// reservation stay.
func (l *SpaceLedger) RemoveSpace(ctx context.Context, tx shared.Tx, space *parking.Space) error {
	lot, err := l.lockLot(ctx, tx, space.LotID())
	if err != nil {
		return err
	}

	active, err := tx.Reservations().CountActiveBySpace(ctx, space.ID())
	if err != nil {
		return err
	}
	if active > 0 {
		return errs.Wrapf(ErrSpaceHasActiveReservations, "space %s has %d", space.Number(), active)
	}

	deltaAvailable := 0
	if space.IsAvailable() {
		deltaAvailable = -1
	}
	if err := space.Deactivate(l.clock.Now()); err != nil {
		return err
	}
	if err := lot.Adjust(-1, deltaAvailable); err != nil {
		return err
	}

	if err := tx.Spaces().Deactivate(ctx, space); err != nil {
		return err
	}
	return tx.Lots().AdjustCounters(ctx, lot.ID(), -1, deltaAvailable)
}

// SetAvailability flips a space's occupancy flag. Setting the current value is a no-op.
func (l *SpaceLedger) SetAvailability(ctx context.Context, tx shared.Tx, spaceID uuid.UUID, available bool) error {
	space, err := tx.Spaces().FindByID(ctx, spaceID)
	if err != nil {
		return translateNotFound(err, ErrSpaceNotFound, spaceID)
	}

	lot, err := l.lockLot(ctx, tx, space.LotID())
	if err != nil {
		return err
	}

	changed, err := space.SetAvailable(available, l.clock.Now())
	if err != nil {
		return errs.Wrapf(err, "space %s", spaceID)
	}
	if !changed {
		return nil
	}

	delta := -1
	if available {
		delta = 1
	}
	if err := lot.Adjust(0, delta); err != nil {
		return err
	}

	if err := tx.Spaces().UpdateAvailability(ctx, space); err != nil {
		return err
	}
	return tx.Lots().AdjustCounters(ctx, lot.ID(), 0, delta)
}

// Regenerate replaces the lot's whole space set with the plan. It refuses
// while any existing space is bound to an active reservation.
func (l *SpaceLedger) Regenerate(ctx context.Context, tx shared.Tx, lotID uuid.UUID, plan parking.GenerationPlan) ([]*parking.Space, error) {
	lot, err := l.lockLot(ctx, tx, lotID)
	if err != nil {
		return nil, err
	}

	specs, err := plan.Specs()
	if err != nil {
		return nil, err
	}

	active, err := tx.Reservations().CountActiveByLot(ctx, lotID)
	if err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, errs.Wrapf(ErrLotHasActiveReservations, "%d active reservations", active)
	}

	now := l.clock.Now()
	deactivated, err := tx.Spaces().DeactivateAllInLot(ctx, lotID, now)
	if err != nil {
		return nil, err
	}

	spaces := make([]*parking.Space, 0, len(specs))
	for _, spec := range specs {
		space, err := parking.NewSpace(lotID, spec.Number, spec.Type, true, now)
		if err != nil {
			return nil, err
		}
		if err := tx.Spaces().Create(ctx, space); err != nil {
			return nil, err
		}
		spaces = append(spaces, space)
	}

	if err := lot.Reset(len(spaces), len(spaces)); err != nil {
		return nil, err
	}
	if err := tx.Lots().SetCounters(ctx, lotID, len(spaces), len(spaces)); err != nil {
		return nil, err
	}

	slog.Info("ledger: spaces regenerated", "lot_id", lotID, "deactivated", deactivated, "created", len(spaces))
	return spaces, nil
}

// Reconcile recomputes both counters from the live space rows.
func (l *SpaceLedger) Reconcile(ctx context.Context, tx shared.Tx, lotID uuid.UUID) (*ReconcileResult, error) {
	lot, err := l.lockLot(ctx, tx, lotID)
	if err != nil {
		return nil, err
	}

	total, available, err := tx.Lots().CountLiveSpaces(ctx, lotID)
	if err != nil {
		return nil, err
	}

	result := &ReconcileResult{
		LotID:  lotID,
		Before: CounterSnapshot{TotalSpaces: lot.TotalSpaces(), AvailableSpaces: lot.AvailableSpaces()},
		After:  CounterSnapshot{TotalSpaces: total, AvailableSpaces: available},
	}
	if result.Before == result.After {
		return result, nil
	}

	if err := lot.Reset(total, available); err != nil {
		return nil, err
	}
	if err := tx.Lots().SetCounters(ctx, lotID, total, available); err != nil {
		return nil, err
	}
	result.Corrected = true

	slog.Warn("ledger: counter drift corrected",
		"lot_id", lotID,
		"before_total", result.Before.TotalSpaces,
		"before_available", result.Before.AvailableSpaces,
		"after_total", total,
		"after_available", available)
	return result, nil
}
