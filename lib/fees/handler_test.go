package fees

import (
	"strings"
	"testing"
	"time"

	"campus-backend/models"
	feeapimodels "campus-backend/models/api/fee"

	"github.com/stretchr/testify/require"
)

func TestPaymentStatus(t *testing.T) {
	t.Run("nothing paid yet", func(t *testing.T) {
		status := paymentStatus(feeapimodels.PaymentData{AmountDue: 1000})
		require.Equal(t, models.FeeStatusPending, status)
	})

	t.Run("partial payment", func(t *testing.T) {
		status := paymentStatus(feeapimodels.PaymentData{AmountDue: 1000, AmountPaid: 400})
		require.Equal(t, models.FeeStatusPartial, status)
	})

	t.Run("full payment", func(t *testing.T) {
		status := paymentStatus(feeapimodels.PaymentData{AmountDue: 1000, AmountPaid: 1000})
		require.Equal(t, models.FeeStatusCompleted, status)
	})

	t.Run("late fee raises the bar for completion", func(t *testing.T) {
		data := feeapimodels.PaymentData{AmountDue: 1000, AmountPaid: 1000, LateFee: 50}
		require.Equal(t, models.FeeStatusPartial, paymentStatus(data))
		data.AmountPaid = 1050
		require.Equal(t, models.FeeStatusCompleted, paymentStatus(data))
	})
}

func TestNewReceiptNumber(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	receipt := newReceiptNumber(now)
	require.True(t, strings.HasPrefix(receipt, "RCPT-2026-"))
	require.Len(t, receipt, len("RCPT-2026-")+8)

	// receipt numbers are unique across calls
	require.NotEqual(t, receipt, newReceiptNumber(now))
}

func TestPaymentDataValidate(t *testing.T) {
	valid := feeapimodels.PaymentData{
		StudentID:   "student-1",
		AmountDue:   1000,
		AmountPaid:  500,
		PaymentMode: models.PaymentModeCash,
	}

	t.Run("valid payload passes", func(t *testing.T) {
		require.Nil(t, valid.Validate())
	})

	t.Run("zero due amount fails", func(t *testing.T) {
		data := valid
		data.AmountDue = 0
		require.NotNil(t, data.Validate())
	})

	t.Run("negative paid amount fails", func(t *testing.T) {
		data := valid
		data.AmountPaid = -1
		require.NotNil(t, data.Validate())
	})

	t.Run("overpayment fails", func(t *testing.T) {
		data := valid
		data.AmountPaid = 2000
		require.NotNil(t, data.Validate())
	})
}
