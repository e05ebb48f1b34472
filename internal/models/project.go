package models

import (
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Project is a row of the projects table.
type Project struct {
	ProjectID     string          `db:"project_id"`
	CompanyID     string          `db:"company_id"`
	Code          string          `db:"code"`
	Name          string          `db:"name"`
	ClientName    string          `db:"client_name"`
	Location      string          `db:"location"`
	ContractValue decimal.Decimal `db:"contract_value"`
	DownPayment   decimal.Decimal `db:"down_payment"`
	StartDate     time.Time       `db:"start_date"`
	EndDate       *time.Time      `db:"end_date"`
	Status        string          `db:"status"`
	AuditFields
}

func ToModelProject(d domain.Project) Project {
	return Project{
		ProjectID:     d.ProjectID,
		CompanyID:     d.CompanyID,
		Code:          d.Code,
		Name:          d.Name,
		ClientName:    d.ClientName,
		Location:      d.Location,
		ContractValue: d.ContractValue,
		DownPayment:   d.DownPayment,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Status:        string(d.Status),
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

func ToDomainProject(m Project) domain.Project {
	return domain.Project{
		ProjectID:     m.ProjectID,
		CompanyID:     m.CompanyID,
		Code:          m.Code,
		Name:          m.Name,
		ClientName:    m.ClientName,
		Location:      m.Location,
		ContractValue: m.ContractValue,
		DownPayment:   m.DownPayment,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Status:        domain.ProjectStatus(m.Status),
		AuditFields:   m.AuditFields.toDomain(),
	}
}
