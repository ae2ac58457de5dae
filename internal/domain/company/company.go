package company

import "github.com/google/uuid"

type Type string

const (
	TypeTransportadora Type = "TRANSPORTADORA"
	TypeEstacionamento Type = "ESTACIONAMENTO"
)

type Company struct {
	id          uuid.UUID
	name        string
	companyType Type
	isActive    bool
}

func ReconstructCompany(id uuid.UUID, name string, companyType Type, isActive bool) *Company {
	return &Company{id: id, name: name, companyType: companyType, isActive: isActive}
}

// CanBook reports whether the company may own reservations.
func (c *Company) CanBook() bool {
	return c.isActive && c.companyType == TypeTransportadora
}

func (c *Company) ID() uuid.UUID  { return c.id }
func (c *Company) Name() string   { return c.name }
func (c *Company) Type() Type     { return c.companyType }
func (c *Company) IsActive() bool { return c.isActive }
