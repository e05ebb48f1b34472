package domain

import "time"

// Warnings attached to a billing status transition. They never block the transition.
const (
	WarningRetentionNotReleasable = "retention released while other billings on the project are still unpaid"
	WarningRevertFromPaid         = "billing was fully paid; moving it out of DIBAYAR is an administrative override"
)

type transitionGuard uint8

const (
	guardNone transitionGuard = iota
	guardSiblingsSettled
	guardAdminOverride
)

// billingTransitions lists the guard applied to each from -> to pair.
// Every pair is permitted; the guard only decides which warning may apply.
var billingTransitions = map[BillingStatus]map[BillingStatus]transitionGuard{
	BillingUnpaid: {
		BillingUnpaid:            guardNone,
		BillingPaidRetentionHeld: guardNone,
		BillingPaid:              guardNone,
	},
	BillingPaidRetentionHeld: {
		BillingUnpaid:            guardNone,
		BillingPaidRetentionHeld: guardNone,
		BillingPaid:              guardSiblingsSettled,
	},
	BillingPaid: {
		BillingUnpaid:            guardAdminOverride,
		BillingPaidRetentionHeld: guardAdminOverride,
		BillingPaid:              guardNone,
	},
}

// TransitionDecision is the outcome of evaluating a status change.
type TransitionDecision struct {
	From     BillingStatus `json:"from"`
	To       BillingStatus `json:"to"`
	Warnings []string      `json:"warnings"`
}

// HasWarnings reports whether the transition broke a soft business rule.
func (d TransitionDecision) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// CanReleaseRetention reports whether every other billing of the same project
// is settled. billings may include the billing itself, which is skipped.
func CanReleaseRetention(billingID string, billings []Billing) bool {
	for _, b := range billings {
		if b.BillingID == billingID {
			continue
		}
		if !b.Status.IsSettled() {
			return false
		}
	}
	return true
}

// EvaluateBillingTransition checks a from -> to move. canReleaseRetention is
// only consulted for PAID_RETENTION_HELD -> PAID.
func EvaluateBillingTransition(from, to BillingStatus, canReleaseRetention bool) TransitionDecision {
	decision := TransitionDecision{From: from, To: to, Warnings: []string{}}
	switch billingTransitions[from][to] {
	case guardSiblingsSettled:
		if !canReleaseRetention {
			decision.Warnings = append(decision.Warnings, WarningRetentionNotReleasable)
		}
	case guardAdminOverride:
		decision.Warnings = append(decision.Warnings, WarningRevertFromPaid)
	}
	return decision
}

// ApplyStatus moves the billing to status and applies the side effects on
// payment date and retention flag. paymentDate, when given, is used instead
// of now whenever a payment date is set.
func (b *Billing) ApplyStatus(status BillingStatus, paymentDate *time.Time, now time.Time) {
	b.Status = status

	switch {
	case status == BillingUnpaid:
		b.PaymentDate = nil
	case paymentDate != nil:
		d := *paymentDate
		b.PaymentDate = &d
	case b.PaymentDate == nil:
		d := now
		b.PaymentDate = &d
	}

	switch status {
	case BillingPaid:
		b.RetentionPaid = true
	case BillingPaidRetentionHeld:
		b.RetentionPaid = false
	}
}
