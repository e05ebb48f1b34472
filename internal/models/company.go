package models

import (
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
)

// Company is a row of the companies table.
type Company struct {
	CompanyID string `db:"company_id"`
	Name      string `db:"name"`
	Address   string `db:"address"`
	NPWP      string `db:"npwp"`
	IsActive  bool   `db:"is_active"`
	AuditFields
}

func ToModelCompany(d domain.Company) Company {
	return Company{
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		Address:     d.Address,
		NPWP:        d.NPWP,
		IsActive:    d.IsActive,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

func ToDomainCompany(m Company) domain.Company {
	return domain.Company{
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Address:     m.Address,
		NPWP:        m.NPWP,
		IsActive:    m.IsActive,
		AuditFields: m.AuditFields.toDomain(),
	}
}

// CompanyMember is a row of company_members, joined with the user's display name.
type CompanyMember struct {
	UserID    string    `db:"user_id"`
	UserName  string    `db:"user_name"`
	CompanyID string    `db:"company_id"`
	Role      string    `db:"role"`
	JoinedAt  time.Time `db:"joined_at"`
}

func ToDomainCompanyMember(m CompanyMember) domain.CompanyMember {
	return domain.CompanyMember{
		UserID:    m.UserID,
		UserName:  m.UserName,
		CompanyID: m.CompanyID,
		Role:      domain.CompanyRole(m.Role),
		JoinedAt:  m.JoinedAt,
	}
}
