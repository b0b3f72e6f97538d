// Package engine wires one indexed collection per entity type into the
// SalesEngine composition root. Every other component reaches the loaded
// dataset through it.
package engine

import (
	"go.uber.org/zap"

	"github.com/erp/salesengine/internal/domain/sales"
	"github.com/erp/salesengine/internal/repository"
)

// Sources maps entity types to their CSV source paths. An empty path means
// that entity type is not part of the dataset; its collection stays empty
// and reports that do not touch it still work.
type Sources struct {
	Merchants    string
	Items        string
	Invoices     string
	InvoiceItems string
	Transactions string
	Customers    string
}

// SalesEngine aggregates the per-entity collections of one loaded dataset.
// Collections are read-only from the analytics layer's perspective.
type SalesEngine struct {
	merchants    *repository.Collection[*sales.Merchant]
	items        *repository.Collection[*sales.Item]
	invoices     *repository.Collection[*sales.Invoice]
	invoiceItems *repository.Collection[*sales.InvoiceItem]
	transactions *repository.Collection[*sales.Transaction]
	customers    *repository.Collection[*sales.Customer]
	log          *zap.Logger
}

// New creates a SalesEngine with empty collections and the foreign-key
// indexes the analytics layer scans by.
func New(logger *zap.Logger) *SalesEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesEngine{
		merchants: repository.NewCollection[*sales.Merchant](),
		items: repository.NewCollection(
			repository.WithIndex("merchant_id", func(i *sales.Item) int { return i.MerchantID }),
		),
		invoices: repository.NewCollection(
			repository.WithIndex("merchant_id", func(i *sales.Invoice) int { return i.MerchantID }),
			repository.WithIndex("customer_id", func(i *sales.Invoice) int { return i.CustomerID }),
		),
		invoiceItems: repository.NewCollection(
			repository.WithIndex("invoice_id", func(ii *sales.InvoiceItem) int { return ii.InvoiceID }),
			repository.WithIndex("item_id", func(ii *sales.InvoiceItem) int { return ii.ItemID }),
		),
		transactions: repository.NewCollection(
			repository.WithIndex("invoice_id", func(t *sales.Transaction) int { return t.InvoiceID }),
		),
		customers: repository.NewCollection[*sales.Customer](),
		log:       logger,
	}
}

// FromCSV builds a SalesEngine from CSV sources. Loading one source is
// atomic: nothing is swapped in unless the whole file parses.
func FromCSV(src Sources, logger *zap.Logger) (*SalesEngine, error) {
	e := New(logger)
	if err := e.Load(src); err != nil {
		return nil, err
	}
	return e, nil
}

// Merchants returns the merchant collection.
func (e *SalesEngine) Merchants() *repository.Collection[*sales.Merchant] {
	return e.merchants
}

// Items returns the item collection.
func (e *SalesEngine) Items() *repository.Collection[*sales.Item] {
	return e.items
}

// Invoices returns the invoice collection.
func (e *SalesEngine) Invoices() *repository.Collection[*sales.Invoice] {
	return e.invoices
}

// InvoiceItems returns the invoice line-item collection.
func (e *SalesEngine) InvoiceItems() *repository.Collection[*sales.InvoiceItem] {
	return e.invoiceItems
}

// Transactions returns the transaction collection.
func (e *SalesEngine) Transactions() *repository.Collection[*sales.Transaction] {
	return e.transactions
}

// Customers returns the customer collection.
func (e *SalesEngine) Customers() *repository.Collection[*sales.Customer] {
	return e.customers
}
