package errs

import cr "github.com/cockroachdb/errors"

// Kind markers. Every sentinel in the domain and usecase layers carries exactly one.
var (
	ErrNotFound     = cr.New("not found")
	ErrForbidden    = cr.New("forbidden")
	ErrConflict     = cr.New("conflict")
	ErrInvalidState = cr.New("invalid state")
	ErrUnavailable  = cr.New("unavailable")
)

type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindForbidden    Kind = "FORBIDDEN"
	KindConflict     Kind = "CONFLICT"
	KindInvalidState Kind = "INVALID_STATE"
	KindUnavailable  Kind = "UNAVAILABLE"
	KindInternal     Kind = "INTERNAL"
)

var kindMarkers = []struct {
	kind   Kind
	marker error
}{
	{KindNotFound, ErrNotFound},
	{KindForbidden, ErrForbidden},
	{KindConflict, ErrConflict},
	{KindInvalidState, ErrInvalidState},
	{KindUnavailable, ErrUnavailable},
}

// NewKind creates a sentinel error marked with the given kind.
func NewKind(msg string, kind error) error {
	return cr.Mark(cr.New(msg), kind)
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, km := range kindMarkers {
		if cr.Is(err, km.marker) {
			return km.kind
		}
	}
	return KindInternal
}
