package fleet

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"logipark/internal/pkg/errs"
)

type Driver struct {
	id            uuid.UUID
	companyID     uuid.UUID
	name          string
	licenseNumber string
	phone         string
	isActive      bool
	createdAt     time.Time
}

func NewDriver(companyID uuid.UUID, name, licenseNumber, phone string, now time.Time) (*Driver, error) {
	name = strings.TrimSpace(name)
	licenseNumber = strings.ToUpper(strings.TrimSpace(licenseNumber))
	if name == "" {
		return nil, errs.Wrap(ErrInvalidDriver, "name is required")
	}
	if licenseNumber == "" {
		return nil, errs.Wrap(ErrInvalidDriver, "license number is required")
	}
	return &Driver{
		id:            uuid.New(),
		companyID:     companyID,
		name:          name,
		licenseNumber: licenseNumber,
		phone:         strings.TrimSpace(phone),
		isActive:      true,
		createdAt:     now,
	}, nil
}

func ReconstructDriver(id, companyID uuid.UUID, name, licenseNumber, phone string, isActive bool, createdAt time.Time) *Driver {
	return &Driver{
		id:            id,
		companyID:     companyID,
		name:          name,
		licenseNumber: licenseNumber,
		phone:         phone,
		isActive:      isActive,
		createdAt:     createdAt,
	}
}

func (d *Driver) BelongsTo(companyID uuid.UUID) bool { return d.companyID == companyID }

func (d *Driver) ID() uuid.UUID         { return d.id }
func (d *Driver) CompanyID() uuid.UUID  { return d.companyID }
func (d *Driver) Name() string          { return d.name }
func (d *Driver) LicenseNumber() string { return d.licenseNumber }
func (d *Driver) Phone() string         { return d.phone }
func (d *Driver) IsActive() bool        { return d.isActive }
func (d *Driver) CreatedAt() time.Time  { return d.createdAt }
