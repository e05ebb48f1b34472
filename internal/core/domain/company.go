package domain

import "time"

// Company is the tenant that owns projects, billings and cash requests.
type Company struct {
	CompanyID string `json:"companyID"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	NPWP      string `json:"npwp"` // Indonesian taxpayer number
	IsActive  bool   `json:"isActive"`
	AuditFields
}

// CompanyRole defines the possible roles a user can have within a company.
type CompanyRole string

const (
	RoleAdmin    CompanyRole = "ADMIN"
	RoleMember   CompanyRole = "MEMBER"
	RoleReadOnly CompanyRole = "READONLY"
	RoleRemoved  CompanyRole = "REMOVED"
)

// Satisfies reports whether r grants at least the access of required.
func (r CompanyRole) Satisfies(required CompanyRole) bool {
	switch required {
	case RoleReadOnly:
		return r == RoleReadOnly || r == RoleMember || r == RoleAdmin
	case RoleMember:
		return r == RoleMember || r == RoleAdmin
	case RoleAdmin:
		return r == RoleAdmin
	default:
		return false
	}
}

// CompanyMember represents the membership of a User in a Company.
type CompanyMember struct {
	UserID    string      `json:"userID"`
	UserName  string      `json:"userName"`
	CompanyID string      `json:"companyID"`
	Role      CompanyRole `json:"role"`
	JoinedAt  time.Time   `json:"joinedAt"`
}
