package models

import (
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
)

// AuditFields mirrors the audit columns shared by most tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

func toModelAudit(a domain.AuditFields) AuditFields {
	return AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func (a AuditFields) toDomain() domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// ToDomainSlice converts rows with convert.
func ToDomainSlice[M any, D any](rows []M, convert func(M) D) []D {
	out := make([]D, len(rows))
	for i, m := range rows {
		out[i] = convert(m)
	}
	return out
}
