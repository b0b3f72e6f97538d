package analyst

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/erp/salesengine/internal/domain/sales"
	"github.com/erp/salesengine/internal/engine"
)

// fixture collects the entities of one test dataset. Zero-value fields load
// as empty collections.
type fixture struct {
	merchants    []*sales.Merchant
	items        []*sales.Item
	invoices     []*sales.Invoice
	invoiceItems []*sales.InvoiceItem
	transactions []*sales.Transaction
	customers    []*sales.Customer
}

func (f *fixture) analyst(t *testing.T) *SalesAnalyst {
	t.Helper()
	e := engine.New(zap.NewNop())
	require.NoError(t, e.Merchants().Replace(f.merchants))
	require.NoError(t, e.Items().Replace(f.items))
	require.NoError(t, e.Invoices().Replace(f.invoices))
	require.NoError(t, e.InvoiceItems().Replace(f.invoiceItems))
	require.NoError(t, e.Transactions().Replace(f.transactions))
	require.NoError(t, e.Customers().Replace(f.customers))
	return New(e)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newMerchant(t *testing.T, id int, name string, created time.Time) *sales.Merchant {
	t.Helper()
	m, err := sales.NewMerchant(id, name, created, created)
	require.NoError(t, err)
	return m
}

func newItem(t *testing.T, id int, merchantID int, unitPrice string) *sales.Item {
	t.Helper()
	created := date(2016, time.January, 11)
	item, err := sales.NewItem(id, "item", "", price(unitPrice), merchantID, created, created)
	require.NoError(t, err)
	return item
}

func newInvoice(t *testing.T, id, customerID, merchantID int, status sales.InvoiceStatus, created time.Time) *sales.Invoice {
	t.Helper()
	inv, err := sales.NewInvoice(id, customerID, merchantID, status, created, created)
	require.NoError(t, err)
	return inv
}

func newInvoiceItem(t *testing.T, id, itemID, invoiceID, quantity int, unitPrice string) *sales.InvoiceItem {
	t.Helper()
	created := date(2016, time.January, 11)
	ii, err := sales.NewInvoiceItem(id, itemID, invoiceID, quantity, price(unitPrice), created, created)
	require.NoError(t, err)
	return ii
}

func newTransaction(t *testing.T, id, invoiceID int, result sales.TransactionResult) *sales.Transaction {
	t.Helper()
	created := date(2016, time.January, 11)
	tx, err := sales.NewTransaction(id, invoiceID, "4068631943231473", result, created, created)
	require.NoError(t, err)
	return tx
}

func newCustomer(t *testing.T, id int, first, last string) *sales.Customer {
	t.Helper()
	created := date(2016, time.January, 11)
	c, err := sales.NewCustomer(id, first, last, created, created)
	require.NoError(t, err)
	return c
}

func merchantIDs(merchants []*sales.Merchant) []int {
	ids := make([]int, len(merchants))
	for i, m := range merchants {
		ids[i] = m.ID
	}
	return ids
}

func itemIDs(items []*sales.Item) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
