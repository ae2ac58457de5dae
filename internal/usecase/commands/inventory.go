package commands

import (
	"context"

	"github.com/google/uuid"

	"logipark/internal/domain/parking"
	"logipark/internal/domain/user"
	"logipark/internal/pkg/errs"
	"logipark/internal/usecase/shared"
)

type AddSpaceInput struct {
	SpaceNumber string
	SpaceType   parking.SpaceType
	IsAvailable bool
}

type InventoryCommands interface {
	AddSpace(ctx context.Context, caller user.Caller, lotID uuid.UUID, in AddSpaceInput) (uuid.UUID, error)
	RemoveSpace(ctx context.Context, caller user.Caller, spaceID uuid.UUID) error
	RegenerateSpaces(ctx context.Context, caller user.Caller, lotID uuid.UUID, plan parking.GenerationPlan) (int, error)
	ReconcileCounters(ctx context.Context, caller user.Caller, lotID uuid.UUID) (*ReconcileResult, error)
}

type inventoryCommandsImpl struct {
	uow    shared.UnitOfWork
	ledger *SpaceLedger
}

func NewInventoryCommands(uow shared.UnitOfWork, ledger *SpaceLedger) InventoryCommands {
	return &inventoryCommandsImpl{
		uow:    uow,
		ledger: ledger,
	}
}

func (c *inventoryCommandsImpl) AddSpace(ctx context.Context, caller user.Caller, lotID uuid.UUID, in AddSpaceInput) (uuid.UUID, error) {
	var spaceID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := c.operatedLot(ctx, tx, caller, lotID); err != nil {
			return err
		}
		space, err := c.ledger.AddSpace(ctx, tx, lotID, in.SpaceNumber, in.SpaceType, in.IsAvailable)
		if err != nil {
			return err
		}
		spaceID = space.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return spaceID, nil
}

func (c *inventoryCommandsImpl) RemoveSpace(ctx context.Context, caller user.Caller, spaceID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		space, err := loadSpace(ctx, tx, spaceID)
		if err != nil {
			return err
		}
		if _, err := c.operatedLot(ctx, tx, caller, space.LotID()); err != nil {
			return err
		}
		return c.ledger.RemoveSpace(ctx, tx, space)
	})
}

func (c *inventoryCommandsImpl) RegenerateSpaces(ctx context.Context, caller user.Caller, lotID uuid.UUID, plan parking.GenerationPlan) (int, error) {
	var created int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := c.operatedLot(ctx, tx, caller, lotID); err != nil {
			return err
		}
		spaces, err := c.ledger.Regenerate(ctx, tx, lotID, plan)
		if err != nil {
			return err
		}
		created = len(spaces)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (c *inventoryCommandsImpl) ReconcileCounters(ctx context.Context, caller user.Caller, lotID uuid.UUID) (*ReconcileResult, error) {
	if !caller.IsAdmin() {
		return nil, errs.Wrapf(ErrRoleNotAllowed, "%s cannot reconcile counters", caller.Role)
	}
	var result *ReconcileResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.ledger.Reconcile(ctx, tx, lotID)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *inventoryCommandsImpl) operatedLot(ctx context.Context, tx shared.Tx, caller user.Caller, lotID uuid.UUID) (*parking.Lot, error) {
	lot, err := loadActiveLot(ctx, tx, lotID)
	if err != nil {
		return nil, err
	}
	if err := authorizeLotOperator(caller, lot); err != nil {
		return nil, err
	}
	return lot, nil
}
