package models

import (
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashRequest is a row of the cash_requests table.
type CashRequest struct {
	CashRequestID string          `db:"cash_request_id"`
	ProjectID     string          `db:"project_id"`
	CompanyID     string          `db:"company_id"`
	RequestNumber string          `db:"request_number"`
	Description   string          `db:"description"`
	RequestedBy   string          `db:"requested_by"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Status        string          `db:"status"`
	ReviewedBy    *string         `db:"reviewed_by"`
	ReviewedAt    *time.Time      `db:"reviewed_at"`
	AuditFields
}

// CashRequestItem is a row of the cash_request_items table.
type CashRequestItem struct {
	ItemID        string          `db:"item_id"`
	CashRequestID string          `db:"cash_request_id"`
	LineNo        int             `db:"line_no"`
	Description   string          `db:"description"`
	Quantity      decimal.Decimal `db:"quantity"`
	Unit          string          `db:"unit"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	TotalPrice    decimal.Decimal `db:"total_price"`
}

// CashRequestHistory is a row of the cash_request_history table.
type CashRequestHistory struct {
	HistoryID     string    `db:"history_id"`
	CashRequestID string    `db:"cash_request_id"`
	Action        string    `db:"action"`
	ActorID       string    `db:"actor_id"`
	Comment       string    `db:"comment"`
	CreatedAt     time.Time `db:"created_at"`
}

func ToModelCashRequest(d domain.CashRequest) CashRequest {
	return CashRequest{
		CashRequestID: d.CashRequestID,
		ProjectID:     d.ProjectID,
		CompanyID:     d.CompanyID,
		RequestNumber: d.RequestNumber,
		Description:   d.Description,
		RequestedBy:   d.RequestedBy,
		TotalAmount:   d.TotalAmount,
		Status:        string(d.Status),
		ReviewedBy:    d.ReviewedBy,
		ReviewedAt:    d.ReviewedAt,
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

// ToDomainCashRequest converts the header row. Items and history are attached by the caller.
func ToDomainCashRequest(m CashRequest) domain.CashRequest {
	return domain.CashRequest{
		CashRequestID: m.CashRequestID,
		ProjectID:     m.ProjectID,
		CompanyID:     m.CompanyID,
		RequestNumber: m.RequestNumber,
		Description:   m.Description,
		RequestedBy:   m.RequestedBy,
		TotalAmount:   m.TotalAmount,
		Status:        domain.CashRequestStatus(m.Status),
		ReviewedBy:    m.ReviewedBy,
		ReviewedAt:    m.ReviewedAt,
		AuditFields:   m.AuditFields.toDomain(),
	}
}

func ToDomainCashRequestItem(m CashRequestItem) domain.CashRequestItem {
	return domain.CashRequestItem{
		ItemID:        m.ItemID,
		CashRequestID: m.CashRequestID,
		LineNo:        m.LineNo,
		Description:   m.Description,
		Quantity:      m.Quantity,
		Unit:          m.Unit,
		UnitPrice:     m.UnitPrice,
		TotalPrice:    m.TotalPrice,
	}
}

func ToDomainCashRequestHistory(m CashRequestHistory) domain.CashRequestHistory {
	return domain.CashRequestHistory{
		HistoryID:     m.HistoryID,
		CashRequestID: m.CashRequestID,
		Action:        domain.CashRequestAction(m.Action),
		ActorID:       m.ActorID,
		Comment:       m.Comment,
		CreatedAt:     m.CreatedAt,
	}
}
