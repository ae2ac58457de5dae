package reservation

import (
	"slices"

	"logipark/internal/pkg/errs"
)

// Actor is the caller's relationship to a reservation, as far as transitions care.
type Actor string

const (
	ActorAdmin    Actor = "admin"
	ActorOperator Actor = "operator" // staff of the company operating the reservation's lot
	ActorOwner    Actor = "owner"    // the transportadora that booked it
)

var transitions = map[Status]map[Status][]Actor{
	StatusPending: {
		StatusConfirmed: {ActorOperator, ActorAdmin},
		StatusCancelled: {ActorOperator, ActorAdmin, ActorOwner},
	},
	StatusConfirmed: {
		StatusInProgress: {ActorOperator, ActorAdmin},
		StatusCancelled:  {ActorOperator, ActorAdmin},
	},
	StatusInProgress: {
		StatusCompleted: {ActorOperator, ActorAdmin},
		StatusCancelled: {ActorOperator, ActorAdmin},
	},
}

// CheckTransition returns an InvalidTransitionError for pairs outside the table and
// ErrTransitionForbidden when the pair exists but the actor may not take it.
func CheckTransition(from, to Status, actor Actor) error {
	allowed, ok := transitions[from][to]
	if !ok {
		return newInvalidTransitionError(from, to)
	}
	if !slices.Contains(allowed, actor) {
		return errs.Wrapf(ErrTransitionForbidden, "%s cannot move a reservation from %s to %s", actor, from, to)
	}
	return nil
}
