package user

import "github.com/google/uuid"

// Caller is the already-authenticated identity every command and query runs as.
type Caller struct {
	ID        uuid.UUID
	Role      Role
	CompanyID *uuid.UUID
}

func NewCaller(id uuid.UUID, role Role, companyID *uuid.UUID) Caller {
	return Caller{ID: id, Role: role, CompanyID: companyID}
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// ActsFor reports whether the caller is affiliated with companyID.
func (c Caller) ActsFor(companyID uuid.UUID) bool {
	return c.CompanyID != nil && *c.CompanyID == companyID
}

// IsCompanyUser reports whether the caller has role r and belongs to companyID.
func (c Caller) IsCompanyUser(r Role, companyID uuid.UUID) bool {
	return c.Role == r && c.ActsFor(companyID)
}
