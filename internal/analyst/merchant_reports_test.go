package analyst

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/salesengine/internal/domain/sales"
)

// itemCountFixture builds ten merchants whose item counts are 0 for the
// first eight, 1 for the ninth and 11 for the tenth. Mean 1.2, sample
// standard deviation 3.46, so only the tenth clears the mean+2*sd bar.
func itemCountFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{}
	for id := 1; id <= 10; id++ {
		f.merchants = append(f.merchants, newMerchant(t, id, fmt.Sprintf("merchant-%d", id), date(2010, time.March, 1)))
	}
	itemID := 100
	f.items = append(f.items, newItem(t, itemID, 9, "10.00"))
	for i := 0; i < 11; i++ {
		itemID++
		f.items = append(f.items, newItem(t, itemID, 10, "10.00"))
	}
	return f
}

// invoiceCountFixture builds ten merchants with 5 invoices each except the
// ninth (10) and the tenth (0). Mean 5, sample standard deviation 2.36.
func invoiceCountFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{customers: []*sales.Customer{newCustomer(t, 1, "Joey", "Ondricka")}}
	for id := 1; id <= 10; id++ {
		f.merchants = append(f.merchants, newMerchant(t, id, fmt.Sprintf("merchant-%d", id), date(2010, time.March, 1)))
	}
	invoiceID := 0
	addInvoices := func(merchantID, count int) {
		for i := 0; i < count; i++ {
			invoiceID++
			f.invoices = append(f.invoices, newInvoice(t, invoiceID, 1, merchantID, sales.InvoiceStatusPending, date(2012, time.June, 4)))
		}
	}
	for id := 1; id <= 8; id++ {
		addInvoices(id, 5)
	}
	addInvoices(9, 10)
	return f
}

func TestAverageItemsPerMerchant(t *testing.T) {
	t.Run("items over merchants", func(t *testing.T) {
		a := itemCountFixture(t).analyst(t)
		avg, err := a.AverageItemsPerMerchant()
		require.NoError(t, err)
		assert.InDelta(t, 1.2, avg, 0.0001)
	})

	t.Run("no merchants", func(t *testing.T) {
		a := (&fixture{}).analyst(t)
		_, err := a.AverageItemsPerMerchant()
		assert.ErrorIs(t, err, sales.ErrEmptyDataset)
	})
}

func TestAverageItemsPerMerchantStdDev(t *testing.T) {
	t.Run("sample deviation of per merchant counts", func(t *testing.T) {
		f := &fixture{
			merchants: []*sales.Merchant{
				newMerchant(t, 1, "a", date(2010, time.March, 1)),
				newMerchant(t, 2, "b", date(2010, time.March, 1)),
				newMerchant(t, 3, "c", date(2010, time.March, 1)),
			},
			items: []*sales.Item{
				newItem(t, 101, 1, "1.00"),
				newItem(t, 102, 1, "1.00"),
				newItem(t, 103, 1, "1.00"),
				newItem(t, 104, 2, "1.00"),
				newItem(t, 105, 2, "1.00"),
				newItem(t, 106, 3, "1.00"),
			},
		}
		sd, err := f.analyst(t).AverageItemsPerMerchantStdDev()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, sd, 0.0001)
	})

	t.Run("single merchant", func(t *testing.T) {
		f := &fixture{merchants: []*sales.Merchant{newMerchant(t, 1, "a", date(2010, time.March, 1))}}
		_, err := f.analyst(t).AverageItemsPerMerchantStdDev()
		assert.ErrorIs(t, err, sales.ErrInsufficientData)
	})
}

func TestMerchantsWithHighItemCount(t *testing.T) {
	t.Run("only merchants above mean plus two deviations", func(t *testing.T) {
		a := itemCountFixture(t).analyst(t)
		merchants, err := a.MerchantsWithHighItemCount()
		require.NoError(t, err)
		// Threshold 1.2 + 2*3.46 = 8.12 excludes the one-item merchant.
		assert.Equal(t, []int{10}, merchantIDs(merchants))
	})

	t.Run("no merchants", func(t *testing.T) {
		_, err := (&fixture{}).analyst(t).MerchantsWithHighItemCount()
		assert.ErrorIs(t, err, sales.ErrEmptyDataset)
	})
}

func TestAverageInvoicesPerMerchant(t *testing.T) {
	a := invoiceCountFixture(t).analyst(t)

	avg, err := a.AverageInvoicesPerMerchant()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, avg, 0.0001)

	sd, err := a.AverageInvoicesPerMerchantStdDev()
	require.NoError(t, err)
	assert.InDelta(t, 2.36, sd, 0.0001)
}

func TestTopAndBottomMerchantsByInvoiceCount(t *testing.T) {
	a := invoiceCountFixture(t).analyst(t)

	top, err := a.TopMerchantsByInvoiceCount()
	require.NoError(t, err)
	assert.Equal(t, []int{9}, merchantIDs(top))

	bottom, err := a.BottomMerchantsByInvoiceCount()
	require.NoError(t, err)
	assert.Equal(t, []int{10}, merchantIDs(bottom))
}

func TestMerchantsWithPendingInvoices(t *testing.T) {
	created := date(2012, time.June, 4)
	f := &fixture{
		merchants: []*sales.Merchant{
			newMerchant(t, 1, "paid", date(2010, time.March, 1)),
			newMerchant(t, 2, "failed only", date(2010, time.March, 1)),
			newMerchant(t, 3, "no transactions", date(2010, time.March, 1)),
		},
		customers: []*sales.Customer{newCustomer(t, 1, "Joey", "Ondricka")},
		invoices: []*sales.Invoice{
			newInvoice(t, 1, 1, 1, sales.InvoiceStatusShipped, created),
			newInvoice(t, 2, 1, 2, sales.InvoiceStatusShipped, created),
			// Status "pending" is irrelevant here; classification is by
			// transaction outcome only.
			newInvoice(t, 3, 1, 3, sales.InvoiceStatusPending, created),
		},
		transactions: []*sales.Transaction{
			newTransaction(t, 1, 1, sales.TransactionSuccess),
			newTransaction(t, 2, 2, sales.TransactionFailed),
		},
	}

	merchants := f.analyst(t).MerchantsWithPendingInvoices()
	assert.Equal(t, []int{2, 3}, merchantIDs(merchants))
}

func TestMerchantsWithOnlyOneItem(t *testing.T) {
	f := &fixture{
		merchants: []*sales.Merchant{
			newMerchant(t, 1, "two items", date(2010, time.March, 5)),
			newMerchant(t, 2, "one item march", date(2010, time.March, 5)),
			newMerchant(t, 3, "one item june", date(2010, time.June, 5)),
			newMerchant(t, 4, "no items", date(2010, time.March, 5)),
		},
		items: []*sales.Item{
			newItem(t, 101, 1, "1.00"),
			newItem(t, 102, 1, "1.00"),
			newItem(t, 103, 2, "1.00"),
			newItem(t, 104, 3, "1.00"),
		},
	}
	a := f.analyst(t)

	assert.Equal(t, []int{2, 3}, merchantIDs(a.MerchantsWithOnlyOneItem()))
	assert.Equal(t, []int{2}, merchantIDs(a.MerchantsWithOnlyOneItemRegisteredInMonth(time.March)))
	assert.Empty(t, a.MerchantsWithOnlyOneItemRegisteredInMonth(time.December))
}
