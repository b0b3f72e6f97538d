package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp/salesengine/internal/repository"
)

// InvoiceItem is one line of an invoice: a quantity of one item at the unit
// price in effect when the sale happened.
type InvoiceItem struct {
	ID        int
	ItemID    int
	InvoiceID int
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewInvoiceItem creates an invoice line-item record
func NewInvoiceItem(id, itemID, invoiceID, quantity int, unitPrice decimal.Decimal, createdAt, updatedAt time.Time) (*InvoiceItem, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return &InvoiceItem{
		ID:        id,
		ItemID:    itemID,
		InvoiceID: invoiceID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// EntityID implements repository.Entity
func (ii *InvoiceItem) EntityID() int {
	return ii.ID
}

// LineTotal returns quantity times the at-sale unit price.
func (ii *InvoiceItem) LineTotal() decimal.Decimal {
	return ii.UnitPrice.Mul(decimal.NewFromInt(int64(ii.Quantity)))
}

// Item resolves the referenced item through the given collection.
func (ii *InvoiceItem) Item(items *repository.Collection[*Item]) (*Item, bool) {
	return items.FindByID(ii.ItemID)
}

// Invoice resolves the owning invoice through the given collection.
func (ii *InvoiceItem) Invoice(invoices *repository.Collection[*Invoice]) (*Invoice, bool) {
	return invoices.FindByID(ii.InvoiceID)
}
