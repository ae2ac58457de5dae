package parking

import "logipark/internal/pkg/errs"

var (
	ErrInvalidSpaceNumber   = errs.NewKind("space number is required", errs.ErrInvalidState)
	ErrInvalidSpaceType     = errs.NewKind("invalid space type", errs.ErrInvalidState)
	ErrSpaceInactive        = errs.NewKind("parking space is inactive", errs.ErrNotFound)
	ErrCounterOutOfRange    = errs.NewKind("lot counters out of range", errs.ErrInvalidState)
	ErrPlanTotalMismatch    = errs.NewKind("space counts per type do not sum to the declared total", errs.ErrInvalidState)
	ErrInvalidPlan          = errs.NewKind("invalid space generation plan", errs.ErrInvalidState)
	ErrDuplicateSpaceNumber = errs.NewKind("space number already in use in this lot", errs.ErrConflict)
)
