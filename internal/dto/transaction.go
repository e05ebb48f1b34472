package dto

import (
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines data for recording a cash transaction.
type CreateTransactionRequest struct {
	TransactionDate time.Time                  `json:"transactionDate" binding:"required"`
	Type            domain.TransactionType     `json:"type" binding:"required,txtype"`
	Category        domain.TransactionCategory `json:"category" binding:"required,txcategory"`
	Amount          decimal.Decimal            `json:"amount"`
	Description     string                     `json:"description" binding:"max=1000"`
	Reference       string                     `json:"reference" binding:"max=100"`
}

// UpdateTransactionRequest defines the updatable fields of a transaction. Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	TransactionDate *time.Time                  `json:"transactionDate"`
	Type            *domain.TransactionType     `json:"type" binding:"omitempty,txtype"`
	Category        *domain.TransactionCategory `json:"category" binding:"omitempty,txcategory"`
	Amount          *decimal.Decimal            `json:"amount"`
	Description     *string                     `json:"description" binding:"omitempty,max=1000"`
	Reference       *string                     `json:"reference" binding:"omitempty,max=100"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int        `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string    `form:"nextToken"`
	Type      *string    `form:"type" binding:"omitempty,txtype"`
	Category  *string    `form:"category" binding:"omitempty,txcategory"`
	From      *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To        *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
}

// Filter converts the query parameters to a repository filter.
func (p ListTransactionsParams) Filter() domain.TransactionFilter {
	f := domain.TransactionFilter{From: p.From, To: p.To}
	if p.Type != nil {
		t := domain.TransactionType(*p.Type)
		f.Type = &t
	}
	if p.Category != nil {
		c := domain.TransactionCategory(*p.Category)
		f.Category = &c
	}
	return f
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextToken    *string              `json:"nextToken,omitempty"`
}
