package domain

import (
	"fmt"
	"time"

	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CashRequestStatus is the approval state of a cash request.
type CashRequestStatus string

const (
	CashRequestPending  CashRequestStatus = "PENDING"
	CashRequestApproved CashRequestStatus = "APPROVED"
	CashRequestRejected CashRequestStatus = "REJECTED"
)

// CashRequestStatuses lists every cash request status.
var CashRequestStatuses = []CashRequestStatus{CashRequestPending, CashRequestApproved, CashRequestRejected}

func (s CashRequestStatus) IsValid() bool {
	return lo.Contains(CashRequestStatuses, s)
}

// CashRequestAction is the kind of event recorded in a cash request history.
type CashRequestAction string

const (
	ActionCreated  CashRequestAction = "CREATED"
	ActionUpdated  CashRequestAction = "UPDATED"
	ActionApproved CashRequestAction = "APPROVED"
	ActionRejected CashRequestAction = "REJECTED"
)

// CashRequestItem is one expense line of a cash request.
type CashRequestItem struct {
	ItemID        string          `json:"itemID"`
	CashRequestID string          `json:"cashRequestID"`
	LineNo        int             `json:"lineNo"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

// CashRequestHistory is an immutable record of something that happened to a cash request.
type CashRequestHistory struct {
	HistoryID     string            `json:"historyID"`
	CashRequestID string            `json:"cashRequestID"`
	Action        CashRequestAction `json:"action"`
	ActorID       string            `json:"actorID"`
	Comment       string            `json:"comment"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// CashRequest is a request to disburse project funds for itemized expenses.
type CashRequest struct {
	CashRequestID string               `json:"cashRequestID"`
	ProjectID     string               `json:"projectID"`
	CompanyID     string               `json:"companyID"`
	RequestNumber string               `json:"requestNumber"`
	Description   string               `json:"description"`
	RequestedBy   string               `json:"requestedBy"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	Status        CashRequestStatus    `json:"status"`
	ReviewedBy    *string              `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time           `json:"reviewedAt,omitempty"`
	Items         []CashRequestItem    `json:"items"`
	History       []CashRequestHistory `json:"history"`
	AuditFields
}

// EnsureEditable refuses edits once a decision has been made.
func (cr *CashRequest) EnsureEditable() error {
	if cr.Status != CashRequestPending {
		return fmt.Errorf("%w: cash request %s is %s and can no longer be edited", apperrors.ErrForbidden, cr.CashRequestID, cr.Status)
	}
	return nil
}

// Decide records an approve or reject decision by actorID. The requester can
// never decide on their own request, and a request is decided only once.
func (cr *CashRequest) Decide(actorID string, to CashRequestStatus, now time.Time) error {
	if actorID == cr.RequestedBy {
		return fmt.Errorf("%w: requester cannot approve or reject their own cash request", apperrors.ErrForbidden)
	}
	if to != CashRequestApproved && to != CashRequestRejected {
		return fmt.Errorf("%w: cash request can only be moved to %s or %s", apperrors.ErrValidation, CashRequestApproved, CashRequestRejected)
	}
	if cr.Status != CashRequestPending {
		return fmt.Errorf("%w: cash request %s has already been %s", apperrors.ErrForbidden, cr.CashRequestID, cr.Status)
	}
	cr.Status = to
	cr.ReviewedBy = &actorID
	reviewedAt := now
	cr.ReviewedAt = &reviewedAt
	cr.Touch(actorID, now)
	return nil
}

// ActionFor maps a decision status to its history action.
func ActionFor(status CashRequestStatus) CashRequestAction {
	if status == CashRequestApproved {
		return ActionApproved
	}
	return ActionRejected
}

// TotalMismatchError reports a declared total that does not match the line items.
// Line is set (1-based) when a single line's total disagrees with quantity * unit price.
type TotalMismatchError struct {
	Expected decimal.Decimal `json:"expected"`
	Actual   decimal.Decimal `json:"actual"`
	Line     int             `json:"line,omitempty"`
}

func (e *TotalMismatchError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d total mismatch: expected %s, got %s", e.Line, e.Expected.String(), e.Actual.String())
	}
	return fmt.Sprintf("total mismatch: items sum to %s but total amount is %s", e.Expected.String(), e.Actual.String())
}

func (e *TotalMismatchError) Unwrap() error {
	return apperrors.ErrMismatch
}

// TotalValidator checks cash request totals against their line items.
type TotalValidator struct {
	Tolerance decimal.Decimal
	// StrictLineTotals recomputes quantity * unit price for every line instead
	// of trusting the submitted line total.
	StrictLineTotals bool
}

// DefaultTotalValidator trusts line totals and allows a 0.01 difference.
func DefaultTotalValidator() TotalValidator {
	return TotalValidator{Tolerance: decimal.RequireFromString("0.01")}
}

// Validate returns nil when the items are well formed and sum to totalAmount
// within the tolerance, or a *TotalMismatchError otherwise.
func (v TotalValidator) Validate(items []CashRequestItem, totalAmount decimal.Decimal) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: cash request needs at least one item", apperrors.ErrValidation)
	}
	for i, item := range items {
		if !item.Quantity.IsPositive() {
			return fmt.Errorf("%w: item %d quantity must be greater than zero", apperrors.ErrValidation, i+1)
		}
		if !item.UnitPrice.IsPositive() {
			return fmt.Errorf("%w: item %d unit price must be greater than zero", apperrors.ErrValidation, i+1)
		}
		if v.StrictLineTotals {
			want := item.Quantity.Mul(item.UnitPrice)
			if want.Sub(item.TotalPrice).Abs().GreaterThan(v.Tolerance) {
				return &TotalMismatchError{Expected: want, Actual: item.TotalPrice, Line: i + 1}
			}
		}
	}

	sum := lo.Reduce(items, func(acc decimal.Decimal, item CashRequestItem, _ int) decimal.Decimal {
		return acc.Add(item.TotalPrice)
	}, decimal.Zero)
	if sum.Sub(totalAmount).Abs().GreaterThan(v.Tolerance) {
		return &TotalMismatchError{Expected: sum, Actual: totalAmount}
	}
	return nil
}

// ValidateCashRequestTotal runs the default validator.
func ValidateCashRequestTotal(items []CashRequestItem, totalAmount decimal.Decimal) error {
	return DefaultTotalValidator().Validate(items, totalAmount)
}
