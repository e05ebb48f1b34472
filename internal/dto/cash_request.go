package dto

import (
	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashRequestItemRequest is one line of a cash request.
type CashRequestItemRequest struct {
	Description string          `json:"description" binding:"required,max=500"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" binding:"max=30"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// CreateCashRequestRequest defines data for submitting a cash request.
type CreateCashRequestRequest struct {
	Description string                   `json:"description" binding:"required,max=1000"`
	TotalAmount decimal.Decimal          `json:"totalAmount"`
	Items       []CashRequestItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateCashRequestRequest replaces the description, total and items of a pending request.
type UpdateCashRequestRequest struct {
	Description string                   `json:"description" binding:"required,max=1000"`
	TotalAmount decimal.Decimal          `json:"totalAmount"`
	Items       []CashRequestItemRequest `json:"items" binding:"required,min=1,dive"`
	Comment     string                   `json:"comment" binding:"max=500"`
}

// DecideCashRequestRequest approves or rejects a pending request.
type DecideCashRequestRequest struct {
	Status  domain.CashRequestStatus `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	Comment string                   `json:"comment" binding:"max=500"`
}

// ListCashRequestsParams defines query parameters for listing cash requests.
type ListCashRequestsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
	Status    *string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// ListCashRequestsResponse wraps a page of cash requests.
type ListCashRequestsResponse struct {
	CashRequests []domain.CashRequest `json:"cashRequests"`
	NextToken    *string              `json:"nextToken,omitempty"`
}

// ToDomainItems converts request lines to domain items numbered from 1.
func ToDomainItems(items []CashRequestItemRequest) []domain.CashRequestItem {
	out := make([]domain.CashRequestItem, len(items))
	for i, it := range items {
		out[i] = domain.CashRequestItem{
			LineNo:      i + 1,
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		}
	}
	return out
}
