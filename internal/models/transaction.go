package models

import (
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Transaction is a row of the cash_transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	ProjectID       string          `db:"project_id"`
	CompanyID       string          `db:"company_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	Type            string          `db:"type"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	Reference       string          `db:"reference"`
	AuditFields
}

func ToModelTransaction(d domain.Transaction) Transaction {
	return Transaction{
		TransactionID:   d.TransactionID,
		ProjectID:       d.ProjectID,
		CompanyID:       d.CompanyID,
		TransactionDate: d.TransactionDate,
		Type:            string(d.Type),
		Category:        string(d.Category),
		Amount:          d.Amount,
		Description:     d.Description,
		Reference:       d.Reference,
		AuditFields:     toModelAudit(d.AuditFields),
	}
}

func ToDomainTransaction(m Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		ProjectID:       m.ProjectID,
		CompanyID:       m.CompanyID,
		TransactionDate: m.TransactionDate,
		Type:            domain.TransactionType(m.Type),
		Category:        domain.TransactionCategory(m.Category),
		Amount:          m.Amount,
		Description:     m.Description,
		Reference:       m.Reference,
		AuditFields:     m.AuditFields.toDomain(),
	}
}
