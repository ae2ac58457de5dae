package parking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"logipark/internal/pkg/errs"
)

type SpaceType string

const (
	SpaceTypeTruck   SpaceType = "TRUCK"
	SpaceTypeTrailer SpaceType = "TRAILER"
	SpaceTypeVan     SpaceType = "VAN"
	SpaceTypeCar     SpaceType = "CAR"
)

func (t SpaceType) IsValid() bool {
	switch t {
	case SpaceTypeTruck, SpaceTypeTrailer, SpaceTypeVan, SpaceTypeCar:
		return true
	default:
		return false
	}
}

func ParseSpaceType(s string) (SpaceType, error) {
	t := SpaceType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", errs.Wrapf(ErrInvalidSpaceType, "%q", s)
	}
	return t, nil
}

type Space struct {
	id          uuid.UUID
	lotID       uuid.UUID
	number      string
	spaceType   SpaceType
	isAvailable bool
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSpace(lotID uuid.UUID, number string, spaceType SpaceType, available bool, now time.Time) (*Space, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrInvalidSpaceNumber
	}
	if !spaceType.IsValid() {
		return nil, errs.Wrapf(ErrInvalidSpaceType, "%q", spaceType)
	}
	return &Space{
		id:          uuid.New(),
		lotID:       lotID,
		number:      number,
		spaceType:   spaceType,
		isAvailable: available,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSpace(
	id, lotID uuid.UUID,
	number string,
	spaceType SpaceType,
	isAvailable, isActive bool,
	createdAt, updatedAt time.Time,
) *Space {
	return &Space{
		id:          id,
		lotID:       lotID,
		number:      number,
		spaceType:   spaceType,
		isAvailable: isAvailable,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// SetAvailable flips the occupancy flag and reports whether it changed.
func (s *Space) SetAvailable(available bool, now time.Time) (bool, error) {
	if !s.isActive {
		return false, ErrSpaceInactive
	}
	if s.isAvailable == available {
		return false, nil
	}
	s.isAvailable = available
	s.updatedAt = now
	return true, nil
}

func (s *Space) Deactivate(now time.Time) error {
	if !s.isActive {
		return ErrSpaceInactive
	}
	s.isActive = false
	s.updatedAt = now
	return nil
}

func (s *Space) ID() uuid.UUID        { return s.id }
func (s *Space) LotID() uuid.UUID     { return s.lotID }
func (s *Space) Number() string       { return s.number }
func (s *Space) Type() SpaceType      { return s.spaceType }
func (s *Space) IsAvailable() bool    { return s.isAvailable }
func (s *Space) IsActive() bool       { return s.isActive }
func (s *Space) CreatedAt() time.Time { return s.createdAt }
func (s *Space) UpdatedAt() time.Time { return s.updatedAt }
