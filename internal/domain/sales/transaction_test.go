package sales

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentType_IsValid(t *testing.T) {
	assert.True(t, PaymentTypeCash.IsValid())
	assert.True(t, PaymentTypeCard.IsValid())
	assert.True(t, PaymentTypeTransfer.IsValid())
	assert.False(t, PaymentType("BARTER").IsValid())
	assert.False(t, PaymentType("cash").IsValid())
	assert.False(t, PaymentType("").IsValid())
}

func TestNewTransaction(t *testing.T) {
	sellerID := uuid.New()

	t.Run("creates transaction successfully", func(t *testing.T) {
		tx, err := NewTransaction(sellerID, decimal.RequireFromString("100.50"), PaymentTypeCard)

		require.NoError(t, err)
		assert.Equal(t, sellerID, tx.SellerID)
		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("100.50")))
		assert.Equal(t, PaymentTypeCard, tx.PaymentType)
		assert.False(t, tx.TransactionDate.IsZero())
	})

	t.Run("allows zero amount", func(t *testing.T) {
		tx, err := NewTransaction(sellerID, decimal.Zero, PaymentTypeCash)

		require.NoError(t, err)
		assert.True(t, tx.Amount.IsZero())
	})

	t.Run("fails with negative amount", func(t *testing.T) {
		tx, err := NewTransaction(sellerID, decimal.RequireFromString("-0.01"), PaymentTypeCash)

		assert.Error(t, err)
		assert.Nil(t, tx)
		assert.Contains(t, err.Error(), "cannot be negative")
	})

	t.Run("fails with invalid payment type", func(t *testing.T) {
		tx, err := NewTransaction(sellerID, decimal.NewFromInt(10), PaymentType("CHECK"))

		assert.Error(t, err)
		assert.Nil(t, tx)
	})

	t.Run("fails with nil seller ID", func(t *testing.T) {
		tx, err := NewTransaction(uuid.Nil, decimal.NewFromInt(10), PaymentTypeCash)

		assert.Error(t, err)
		assert.Nil(t, tx)
	})
}

func TestTransaction_Updates(t *testing.T) {
	newTx := func(t *testing.T) *Transaction {
		tx, err := NewTransaction(uuid.New(), decimal.NewFromInt(50), PaymentTypeCash)
		require.NoError(t, err)
		return tx
	}

	t.Run("reassigns seller", func(t *testing.T) {
		tx := newTx(t)
		other := uuid.New()

		require.NoError(t, tx.ReassignSeller(other))
		assert.Equal(t, other, tx.SellerID)
	})

	t.Run("rejects nil seller on reassign", func(t *testing.T) {
		tx := newTx(t)
		original := tx.SellerID

		assert.Error(t, tx.ReassignSeller(uuid.Nil))
		assert.Equal(t, original, tx.SellerID)
	})

	t.Run("updates amount", func(t *testing.T) {
		tx := newTx(t)

		require.NoError(t, tx.UpdateAmount(decimal.RequireFromString("99.99")))
		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("99.99")))
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		tx := newTx(t)

		assert.Error(t, tx.UpdateAmount(decimal.NewFromInt(-1)))
		assert.True(t, tx.Amount.Equal(decimal.NewFromInt(50)))
	})

	t.Run("updates payment type", func(t *testing.T) {
		tx := newTx(t)

		require.NoError(t, tx.UpdatePaymentType(PaymentTypeTransfer))
		assert.Equal(t, PaymentTypeTransfer, tx.PaymentType)
	})

	t.Run("rejects unknown payment type", func(t *testing.T) {
		tx := newTx(t)

		assert.Error(t, tx.UpdatePaymentType(PaymentType("GOLD")))
		assert.Equal(t, PaymentTypeCash, tx.PaymentType)
	})

	t.Run("updates transaction date", func(t *testing.T) {
		tx := newTx(t)
		date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, tx.UpdateTransactionDate(date))
		assert.Equal(t, date, tx.TransactionDate)
	})

	t.Run("rejects zero transaction date", func(t *testing.T) {
		tx := newTx(t)

		assert.Error(t, tx.UpdateTransactionDate(time.Time{}))
	})
}
