package infra

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"logipark/internal/pkg/errs"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound            RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure           RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey        RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated  RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindExclusionViolated   RepositoryErrorKind = "EXCLUSION_VIOLATED"
	KindCheckViolated       RepositoryErrorKind = "CHECK_VIOLATED"
	KindSerializationFailed RepositoryErrorKind = "SERIALIZATION_FAILED"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgExclusionViolation  = "23P01"
	pgSerializationFail   = "40001"
	pgDeadlockDetected    = "40P01"
)

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err by its Postgres error code unless kind is given.
// Serialization failures keep the *pgconn.PgError reachable so the UoW can retry.
// KindDBFailure errors are also marked errs.ErrUnavailable.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k, constraint := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	switch k {
	case KindNotFound, KindSerializationFailed:
		slog.Debug("repository: "+msg, "kind", string(k))
	default:
		slog.Error("repository error: "+msg, "kind", string(k), "constraint", constraint, "error", errString(err))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	repoErr := RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: err}
	if k == KindDBFailure {
		// storage itself failed; callers may retry the whole operation
		return errs.Mark(repoErr, errs.ErrUnavailable)
	}
	return repoErr
}

func classify(err error) (RepositoryErrorKind, string) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure, ""
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return KindDuplicateKey, pgErr.ConstraintName
	case pgForeignKeyViolation:
		return KindForeignKeyViolated, pgErr.ConstraintName
	case pgExclusionViolation:
		return KindExclusionViolated, pgErr.ConstraintName
	case pgCheckViolation:
		return KindCheckViolated, pgErr.ConstraintName
	case pgSerializationFail, pgDeadlockDetected:
		return KindSerializationFailed, ""
	default:
		return KindDBFailure, pgErr.ConstraintName
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintOf returns the violated constraint name, if any.
func ConstraintOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}
