package domain

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ProjectStatus indicates where a project is in its life.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectCancelled ProjectStatus = "CANCELLED"
)

// ProjectStatuses lists every project status.
var ProjectStatuses = []ProjectStatus{ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled}

func (s ProjectStatus) IsValid() bool {
	return lo.Contains(ProjectStatuses, s)
}

// Project aggregates billings, transactions and cash requests. ContractValue
// and DownPayment are informational; they do not feed the tax calculation.
type Project struct {
	ProjectID     string          `json:"projectID"`
	CompanyID     string          `json:"companyID"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	ClientName    string          `json:"clientName"`
	Location      string          `json:"location"`
	ContractValue decimal.Decimal `json:"contractValue"`
	DownPayment   decimal.Decimal `json:"downPayment"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       *time.Time      `json:"endDate,omitempty"`
	Status        ProjectStatus   `json:"status"`
	AuditFields
}

// ProjectSummary is the dashboard view of a project's money.
type ProjectSummary struct {
	Project             Project         `json:"project"`
	BillingCount        int             `json:"billingCount"`
	TotalBilled         decimal.Decimal `json:"totalBilled"`
	TotalNetReceivable  decimal.Decimal `json:"totalNetReceivable"`
	TotalReceived       decimal.Decimal `json:"totalReceived"`
	RetentionHeld       decimal.Decimal `json:"retentionHeld"`
	TotalIncome         decimal.Decimal `json:"totalIncome"`
	TotalExpense        decimal.Decimal `json:"totalExpense"`
	CashBalance         decimal.Decimal `json:"cashBalance"`
	PendingCashRequests decimal.Decimal `json:"pendingCashRequests"`
	ProgressPercent     decimal.Decimal `json:"progressPercent"`
}

var hundred = decimal.NewFromInt(100)

// ProgressPercent is billed / contract value as a percentage with two decimals.
func ProgressPercent(totalBilled, contractValue decimal.Decimal) decimal.Decimal {
	if !contractValue.IsPositive() {
		return decimal.Zero
	}
	return totalBilled.Div(contractValue).Mul(hundred).Round(2)
}

// SummarizeBillings fills the billing part of a summary.
func (s *ProjectSummary) SummarizeBillings(billings []Billing) {
	s.BillingCount = len(billings)
	s.TotalBilled = decimal.Zero
	s.TotalNetReceivable = decimal.Zero
	s.TotalReceived = decimal.Zero
	s.RetentionHeld = decimal.Zero
	for _, b := range billings {
		s.TotalBilled = s.TotalBilled.Add(b.BillingValue)
		s.TotalNetReceivable = s.TotalNetReceivable.Add(b.NetReceivable)
		if b.Status.IsSettled() {
			s.TotalReceived = s.TotalReceived.Add(b.NetReceivable)
		}
		if b.Status == BillingPaidRetentionHeld {
			s.RetentionHeld = s.RetentionHeld.Add(b.Retention)
		}
	}
	s.ProgressPercent = ProgressPercent(s.TotalBilled, s.Project.ContractValue)
}

// SummarizeTransactions fills the cash part of a summary.
func (s *ProjectSummary) SummarizeTransactions(txns []Transaction) {
	income := lo.Filter(txns, func(t Transaction, _ int) bool { return t.Type == TransactionIncome })
	expense := lo.Filter(txns, func(t Transaction, _ int) bool { return t.Type == TransactionExpense })
	s.TotalIncome = sumAmounts(income)
	s.TotalExpense = sumAmounts(expense)
	s.CashBalance = s.TotalIncome.Sub(s.TotalExpense)
}

// SummarizeCashRequests fills the pending cash request total.
func (s *ProjectSummary) SummarizeCashRequests(requests []CashRequest) {
	s.PendingCashRequests = decimal.Zero
	for _, cr := range requests {
		if cr.Status == CashRequestPending {
			s.PendingCashRequests = s.PendingCashRequests.Add(cr.TotalAmount)
		}
	}
}

func sumAmounts(txns []Transaction) decimal.Decimal {
	return lo.Reduce(txns, func(acc decimal.Decimal, t Transaction, _ int) decimal.Decimal {
		return acc.Add(t.Amount)
	}, decimal.Zero)
}
