package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	now := time.Now()

	t.Run("has attributes", func(t *testing.T) {
		txn, err := NewTransaction(6, 8, "4242424242424242", TransactionSuccess, now, now)

		require.NoError(t, err)
		assert.Equal(t, 6, txn.ID)
		assert.Equal(t, 8, txn.InvoiceID)
		assert.Equal(t, "4242424242424242", txn.CreditCardNumber)
		assert.True(t, txn.Succeeded())
	})

	t.Run("failed transaction did not succeed", func(t *testing.T) {
		txn, err := NewTransaction(7, 8, "4242424242424242", TransactionFailed, now, now)

		require.NoError(t, err)
		assert.False(t, txn.Succeeded())
	})

	t.Run("rejects result outside the closed set", func(t *testing.T) {
		txn, err := NewTransaction(8, 8, "4242424242424242", TransactionResult("declined"), now, now)

		assert.Nil(t, txn)
		require.ErrorIs(t, err, ErrInvalidResult)
	})
}

func TestParseTransactionResult(t *testing.T) {
	for _, raw := range []string{"success", "failed"} {
		result, err := ParseTransactionResult(raw)
		require.NoError(t, err)
		assert.Equal(t, TransactionResult(raw), result)
	}

	_, err := ParseTransactionResult("chargeback")
	assert.ErrorIs(t, err, ErrInvalidResult)
}
