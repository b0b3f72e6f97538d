package analyst

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/salesengine/internal/domain/sales"
)

func itemPriceFixture(t *testing.T) *fixture {
	t.Helper()
	created := date(2010, time.March, 1)
	return &fixture{
		merchants: []*sales.Merchant{
			newMerchant(t, 1, "a", created),
			newMerchant(t, 2, "b", created),
			newMerchant(t, 3, "no items", created),
		},
		items: []*sales.Item{
			newItem(t, 101, 1, "10.00"),
			newItem(t, 102, 1, "20.00"),
			newItem(t, 103, 2, "5.00"),
		},
	}
}

func TestAverageItemPriceForMerchant(t *testing.T) {
	a := itemPriceFixture(t).analyst(t)

	avg, err := a.AverageItemPriceForMerchant(1)
	require.NoError(t, err)
	assert.Equal(t, "15.00", avg.StringFixed(2))

	t.Run("merchant without items", func(t *testing.T) {
		_, err := a.AverageItemPriceForMerchant(3)
		assert.ErrorIs(t, err, sales.ErrEmptyDataset)
	})
}

func TestAverageAveragePricePerMerchant(t *testing.T) {
	a := itemPriceFixture(t).analyst(t)

	// Per-merchant averages 15.00 and 5.00 divided over all three
	// merchants, including the one without items.
	avg, err := a.AverageAveragePricePerMerchant()
	require.NoError(t, err)
	assert.Equal(t, "6.67", avg.StringFixed(2))

	t.Run("no merchants", func(t *testing.T) {
		_, err := (&fixture{}).analyst(t).AverageAveragePricePerMerchant()
		assert.ErrorIs(t, err, sales.ErrEmptyDataset)
	})
}

func TestAverageItemCost(t *testing.T) {
	a := itemPriceFixture(t).analyst(t)

	avg, err := a.AverageItemCost()
	require.NoError(t, err)
	assert.Equal(t, "11.67", avg.StringFixed(2))

	t.Run("no items", func(t *testing.T) {
		_, err := (&fixture{}).analyst(t).AverageItemCost()
		assert.ErrorIs(t, err, sales.ErrEmptyDataset)
	})
}

func TestItemUnitPriceStdDev(t *testing.T) {
	a := itemPriceFixture(t).analyst(t)

	sd, err := a.ItemUnitPriceStdDev()
	require.NoError(t, err)
	assert.InDelta(t, 7.64, sd, 0.0001)

	t.Run("single item", func(t *testing.T) {
		f := &fixture{
			merchants: []*sales.Merchant{newMerchant(t, 1, "a", date(2010, time.March, 1))},
			items:     []*sales.Item{newItem(t, 101, 1, "10.00")},
		}
		_, err := f.analyst(t).ItemUnitPriceStdDev()
		assert.ErrorIs(t, err, sales.ErrInsufficientData)
	})
}

func TestGoldenItems(t *testing.T) {
	// Nine items at 1.00 and one at 20.00: mean 2.90, sample standard
	// deviation 6.01, threshold 14.92.
	f := &fixture{merchants: []*sales.Merchant{newMerchant(t, 1, "a", date(2010, time.March, 1))}}
	for id := 101; id <= 109; id++ {
		f.items = append(f.items, newItem(t, id, 1, "1.00"))
	}
	f.items = append(f.items, newItem(t, 110, 1, "20.00"))

	golden, err := f.analyst(t).GoldenItems()
	require.NoError(t, err)
	assert.Equal(t, []int{110}, itemIDs(golden))
}

// soldItemsFixture gives merchant 1 one paid invoice whose line items tie at
// quantity 5 for items 101 and 102, with item 103 carrying the largest line
// revenue. A second, unpaid invoice holds a quantity-50 line that must not
// count.
func soldItemsFixture(t *testing.T) *fixture {
	t.Helper()
	created := date(2012, time.June, 4)
	return &fixture{
		merchants: []*sales.Merchant{
			newMerchant(t, 1, "a", created),
			newMerchant(t, 2, "no sales", created),
		},
		customers: []*sales.Customer{newCustomer(t, 1, "Joey", "Ondricka")},
		items: []*sales.Item{
			newItem(t, 101, 1, "2.00"),
			newItem(t, 102, 1, "1.00"),
			newItem(t, 103, 1, "10.00"),
		},
		invoices: []*sales.Invoice{
			newInvoice(t, 1, 1, 1, sales.InvoiceStatusShipped, created),
			newInvoice(t, 2, 1, 1, sales.InvoiceStatusShipped, created),
		},
		invoiceItems: []*sales.InvoiceItem{
			newInvoiceItem(t, 1, 101, 1, 5, "2.00"),
			newInvoiceItem(t, 2, 102, 1, 5, "1.00"),
			newInvoiceItem(t, 3, 103, 1, 3, "10.00"),
			newInvoiceItem(t, 4, 101, 2, 50, "2.00"),
		},
		transactions: []*sales.Transaction{
			newTransaction(t, 1, 1, sales.TransactionSuccess),
			newTransaction(t, 2, 2, sales.TransactionFailed),
		},
	}
}

func TestMostSoldItemsForMerchant(t *testing.T) {
	a := soldItemsFixture(t).analyst(t)

	t.Run("ties at the top quantity are all returned", func(t *testing.T) {
		items := a.MostSoldItemsForMerchant(1)
		assert.Equal(t, []int{101, 102}, itemIDs(items))
	})

	t.Run("unpaid invoices do not count", func(t *testing.T) {
		// The quantity-50 line sits on the unpaid invoice; if it counted,
		// item 101 alone would win.
		items := a.MostSoldItemsForMerchant(1)
		assert.Len(t, items, 2)
	})

	t.Run("merchant without sales", func(t *testing.T) {
		assert.Empty(t, a.MostSoldItemsForMerchant(2))
	})
}

func TestBestItemForMerchant(t *testing.T) {
	a := soldItemsFixture(t).analyst(t)

	t.Run("largest line revenue wins", func(t *testing.T) {
		item, ok := a.BestItemForMerchant(1)
		require.True(t, ok)
		assert.Equal(t, 103, item.ID)
	})

	t.Run("merchant without sales", func(t *testing.T) {
		_, ok := a.BestItemForMerchant(2)
		assert.False(t, ok)
	})
}
