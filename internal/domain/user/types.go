package user

type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleTransportadora Role = "TRANSPORTADORA" // carrier staff, books spaces
	RoleEstacionamento Role = "ESTACIONAMENTO" // lot operator staff
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTransportadora, RoleEstacionamento:
		return true
	default:
		return false
	}
}

// RequiresCompany is true for every role except ADMIN.
func (r Role) RequiresCompany() bool {
	return r != RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
