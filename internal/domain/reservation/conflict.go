package reservation

import "github.com/google/uuid"

// Booking is the part of a reservation the conflict checker looks at.
type Booking struct {
	ReservationID uuid.UUID
	VehicleID     uuid.UUID
	DriverID      uuid.UUID
	SpaceID       *uuid.UUID
	Slot          TimeSlot
	Status        Status
}

// FindConflict tests candidate against existing on the vehicle, driver and space
// dimensions, in that order, and returns the first overlap as a ConflictError.
// Inactive bookings and the candidate itself are ignored.
func FindConflict(candidate Booking, existing []Booking) error {
	for _, dim := range []Dimension{DimensionVehicle, DimensionDriver, DimensionSpace} {
		for _, other := range existing {
			if other.ReservationID == candidate.ReservationID || !other.Status.IsActive() {
				continue
			}
			if !sameResource(dim, candidate, other) {
				continue
			}
			if candidate.Slot.Overlaps(other.Slot) {
				return NewConflictError(dim, other.ReservationID)
			}
		}
	}
	return nil
}

func sameResource(dim Dimension, a, b Booking) bool {
	switch dim {
	case DimensionVehicle:
		return a.VehicleID == b.VehicleID
	case DimensionDriver:
		return a.DriverID == b.DriverID
	case DimensionSpace:
		return a.SpaceID != nil && b.SpaceID != nil && *a.SpaceID == *b.SpaceID
	default:
		return false
	}
}
