package domain

import (
	"fmt"
	"time"

	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// TransactionType indicates whether cash came in or went out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "PEMASUKAN"
	TransactionExpense TransactionType = "PENGELUARAN"
)

// TransactionTypes lists every transaction type.
var TransactionTypes = []TransactionType{TransactionIncome, TransactionExpense}

func (t TransactionType) IsValid() bool {
	return lo.Contains(TransactionTypes, t)
}

// TransactionCategory groups cash transactions for reporting.
type TransactionCategory string

const (
	CategoryMaterial        TransactionCategory = "MATERIAL"
	CategoryLabour          TransactionCategory = "UPAH"
	CategoryEquipment       TransactionCategory = "ALAT"
	CategorySubcontractor   TransactionCategory = "SUBKON"
	CategoryOperational     TransactionCategory = "OPERASIONAL"
	CategoryProgressPayment TransactionCategory = "PEMBAYARAN_TERMIN"
	CategoryOther           TransactionCategory = "LAINNYA"
)

// TransactionCategories lists every category in display order.
var TransactionCategories = []TransactionCategory{
	CategoryMaterial,
	CategoryLabour,
	CategoryEquipment,
	CategorySubcontractor,
	CategoryOperational,
	CategoryProgressPayment,
	CategoryOther,
}

func (c TransactionCategory) IsValid() bool {
	return lo.Contains(TransactionCategories, c)
}

// Transaction is a single cash movement recorded against a project.
type Transaction struct {
	TransactionID   string              `json:"transactionID"`
	ProjectID       string              `json:"projectID"`
	CompanyID       string              `json:"companyID"`
	TransactionDate time.Time           `json:"transactionDate"`
	Type            TransactionType     `json:"type"`
	Category        TransactionCategory `json:"category"`
	Amount          decimal.Decimal     `json:"amount"`
	Description     string              `json:"description"`
	Reference       string              `json:"reference"`
	AuditFields
}

// Validate checks the fields that must hold regardless of how the transaction was built.
func (t *Transaction) Validate() error {
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, t.Type)
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: unknown transaction category %q", apperrors.ErrValidation, t.Category)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

// SignedAmount is positive for income and negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionFilter narrows a transaction listing. Nil fields are ignored;
// From and To are inclusive transaction dates.
type TransactionFilter struct {
	Type     *TransactionType
	Category *TransactionCategory
	From     *time.Time
	To       *time.Time
}
