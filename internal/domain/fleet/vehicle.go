package fleet

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"logipark/internal/pkg/errs"
)

var (
	ErrInvalidPlate       = errs.NewKind("invalid license plate", errs.ErrInvalidState)
	ErrInvalidVehicleType = errs.NewKind("invalid vehicle type", errs.ErrInvalidState)
	ErrInvalidDriver      = errs.NewKind("invalid driver", errs.ErrInvalidState)
)

// LicensePlate is stored normalized: upper case, alphanumerics only.
type LicensePlate string

// NormalizePlate turns "abc-1234" and "ABC 1234" into "ABC1234".
func NormalizePlate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

func NewLicensePlate(s string) (LicensePlate, error) {
	n := NormalizePlate(s)
	if len(n) < 5 || len(n) > 10 {
		return "", errs.Wrapf(ErrInvalidPlate, "%q", s)
	}
	return LicensePlate(n), nil
}

func (p LicensePlate) String() string { return string(p) }

type VehicleType string

const (
	VehicleTypeTruck   VehicleType = "TRUCK"
	VehicleTypeTrailer VehicleType = "TRAILER"
	VehicleTypeBitruck VehicleType = "BITRUCK"
	VehicleTypeVan     VehicleType = "VAN"
	VehicleTypeCar     VehicleType = "CAR"
)

func ParseVehicleType(s string) (VehicleType, error) {
	t := VehicleType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case VehicleTypeTruck, VehicleTypeTrailer, VehicleTypeBitruck, VehicleTypeVan, VehicleTypeCar:
		return t, nil
	default:
		return "", errs.Wrapf(ErrInvalidVehicleType, "%q", s)
	}
}

type Vehicle struct {
	id          uuid.UUID
	companyID   uuid.UUID
	driverID    *uuid.UUID
	plate       LicensePlate
	vehicleType VehicleType
	isActive    bool
	createdAt   time.Time
}

func NewVehicle(companyID uuid.UUID, plate LicensePlate, vehicleType VehicleType, driverID *uuid.UUID, now time.Time) *Vehicle {
	return &Vehicle{
		id:          uuid.New(),
		companyID:   companyID,
		driverID:    driverID,
		plate:       plate,
		vehicleType: vehicleType,
		isActive:    true,
		createdAt:   now,
	}
}

func ReconstructVehicle(id, companyID uuid.UUID, driverID *uuid.UUID, plate LicensePlate, vehicleType VehicleType, isActive bool, createdAt time.Time) *Vehicle {
	return &Vehicle{
		id:          id,
		companyID:   companyID,
		driverID:    driverID,
		plate:       plate,
		vehicleType: vehicleType,
		isActive:    isActive,
		createdAt:   createdAt,
	}
}

func (v *Vehicle) BelongsTo(companyID uuid.UUID) bool { return v.companyID == companyID }

func (v *Vehicle) ID() uuid.UUID        { return v.id }
func (v *Vehicle) CompanyID() uuid.UUID { return v.companyID }
func (v *Vehicle) DriverID() *uuid.UUID { return v.driverID }
func (v *Vehicle) Plate() LicensePlate  { return v.plate }
func (v *Vehicle) Type() VehicleType    { return v.vehicleType }
func (v *Vehicle) IsActive() bool       { return v.isActive }
func (v *Vehicle) CreatedAt() time.Time { return v.createdAt }
