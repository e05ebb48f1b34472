package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBillingTransition(t *testing.T) {
	tests := []struct {
		name        string
		from        domain.BillingStatus
		to          domain.BillingStatus
		canRelease  bool
		wantWarning string
	}{
		{"unpaid to retention held", domain.BillingUnpaid, domain.BillingPaidRetentionHeld, false, ""},
		{"unpaid straight to paid", domain.BillingUnpaid, domain.BillingPaid, false, ""},
		{"retention held to paid with unpaid siblings", domain.BillingPaidRetentionHeld, domain.BillingPaid, false, domain.WarningRetentionNotReleasable},
		{"retention held to paid with settled siblings", domain.BillingPaidRetentionHeld, domain.BillingPaid, true, ""},
		{"retention held back to unpaid", domain.BillingPaidRetentionHeld, domain.BillingUnpaid, false, ""},
		{"paid back to unpaid", domain.BillingPaid, domain.BillingUnpaid, true, domain.WarningRevertFromPaid},
		{"paid back to retention held", domain.BillingPaid, domain.BillingPaidRetentionHeld, true, domain.WarningRevertFromPaid},
		{"same status", domain.BillingUnpaid, domain.BillingUnpaid, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := domain.EvaluateBillingTransition(tt.from, tt.to, tt.canRelease)

			assert.Equal(t, tt.from, decision.From)
			assert.Equal(t, tt.to, decision.To)
			require.NotNil(t, decision.Warnings)
			if tt.wantWarning == "" {
				assert.False(t, decision.HasWarnings())
				assert.Empty(t, decision.Warnings)
				return
			}
			assert.Equal(t, []string{tt.wantWarning}, decision.Warnings)
		})
	}
}

func TestCanReleaseRetention(t *testing.T) {
	self := domain.Billing{BillingID: "b1", Status: domain.BillingPaidRetentionHeld}

	t.Run("one sibling unpaid", func(t *testing.T) {
		billings := []domain.Billing{
			self,
			{BillingID: "b2", Status: domain.BillingPaid},
			{BillingID: "b3", Status: domain.BillingUnpaid},
		}
		assert.False(t, domain.CanReleaseRetention("b1", billings))
	})

	t.Run("all siblings settled", func(t *testing.T) {
		billings := []domain.Billing{
			self,
			{BillingID: "b2", Status: domain.BillingPaid},
			{BillingID: "b3", Status: domain.BillingPaidRetentionHeld},
		}
		assert.True(t, domain.CanReleaseRetention("b1", billings))
	})

	t.Run("only billing on the project", func(t *testing.T) {
		assert.True(t, domain.CanReleaseRetention("b1", []domain.Billing{self}))
		assert.True(t, domain.CanReleaseRetention("b1", nil))
	})
}

func TestBilling_ApplyStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	paidOn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("paying sets payment date to now", func(t *testing.T) {
		b := domain.Billing{Status: domain.BillingUnpaid}
		b.ApplyStatus(domain.BillingPaidRetentionHeld, nil, now)

		require.NotNil(t, b.PaymentDate)
		assert.Equal(t, now, *b.PaymentDate)
		assert.False(t, b.RetentionPaid)
	})

	t.Run("explicit payment date wins", func(t *testing.T) {
		b := domain.Billing{Status: domain.BillingUnpaid}
		b.ApplyStatus(domain.BillingPaid, &paidOn, now)

		require.NotNil(t, b.PaymentDate)
		assert.Equal(t, paidOn, *b.PaymentDate)
		assert.True(t, b.RetentionPaid)
	})

	t.Run("existing payment date is kept when releasing retention", func(t *testing.T) {
		existing := paidOn
		b := domain.Billing{Status: domain.BillingPaidRetentionHeld, PaymentDate: &existing}
		b.ApplyStatus(domain.BillingPaid, nil, now)

		assert.Equal(t, paidOn, *b.PaymentDate)
		assert.True(t, b.RetentionPaid)
	})

	t.Run("reverting to unpaid clears payment date", func(t *testing.T) {
		existing := paidOn
		b := domain.Billing{Status: domain.BillingPaid, PaymentDate: &existing, RetentionPaid: true}
		b.ApplyStatus(domain.BillingUnpaid, &now, now)

		assert.Equal(t, domain.BillingUnpaid, b.Status)
		assert.Nil(t, b.PaymentDate)
	})
}

func TestBillingStatus_Text(t *testing.T) {
	for _, s := range domain.BillingStatuses {
		parsed, err := domain.ParseBillingStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	assert.Equal(t, "BELUM_DIBAYAR", domain.BillingUnpaid.String())
	assert.Equal(t, "DIBAYAR_RETENSI_BELUM_DIBAYARKAN", domain.BillingPaidRetentionHeld.String())
	assert.Equal(t, "DIBAYAR", domain.BillingPaid.String())

	_, err := domain.ParseBillingStatus("LUNAS")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestBillingStatus_JSON(t *testing.T) {
	type payload struct {
		Status domain.BillingStatus `json:"status"`
	}

	raw, err := json.Marshal(payload{Status: domain.BillingPaidRetentionHeld})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"DIBAYAR_RETENSI_BELUM_DIBAYARKAN"}`, string(raw))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"status":"DIBAYAR"}`), &decoded))
	assert.Equal(t, domain.BillingPaid, decoded.Status)

	err = json.Unmarshal([]byte(`{"status":"PAID"}`), &decoded)
	assert.Error(t, err)
}
