// Package patch holds helpers for partial updates where a nil pointer means "leave unchanged".
package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr is Coalesce for fields that are themselves optional.
func CoalescePtr[T any](ptr, fallback *T) *T {
	if ptr != nil {
		return ptr
	}
	return fallback
}

// Changes reports whether ptr is set to something other than current.
func Changes[T comparable](ptr *T, current T) bool {
	return ptr != nil && *ptr != current
}
