package sales

import (
	"time"

	"github.com/erp/salesengine/internal/repository"
)

// InvoiceStatus is the fulfilment state of an invoice. It is a closed
// enumeration: any other raw value is rejected at load time.
type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusShipped  InvoiceStatus = "shipped"
	InvoiceStatusReturned InvoiceStatus = "returned"
)

// ParseInvoiceStatus validates a raw status value against the closed set.
func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	switch InvoiceStatus(raw) {
	case InvoiceStatusPending, InvoiceStatusShipped, InvoiceStatusReturned:
		return InvoiceStatus(raw), nil
	}
	return "", ErrInvalidStatus
}

// Invoice represents a customer's order with one merchant. Line items and
// payment attempts are separate records keyed by invoice_id.
type Invoice struct {
	ID         int
	CustomerID int
	MerchantID int
	Status     InvoiceStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewInvoice creates an invoice record, validating the status enum
func NewInvoice(id, customerID, merchantID int, status InvoiceStatus, createdAt, updatedAt time.Time) (*Invoice, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if _, err := ParseInvoiceStatus(string(status)); err != nil {
		return nil, err
	}
	return &Invoice{
		ID:         id,
		CustomerID: customerID,
		MerchantID: merchantID,
		Status:     status,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

// EntityID implements repository.Entity
func (i *Invoice) EntityID() int {
	return i.ID
}

// Merchant resolves the owning merchant through the given collection at call
// time, so it always reflects that collection's current state. A dangling
// merchant_id yields ok == false.
func (i *Invoice) Merchant(merchants *repository.Collection[*Merchant]) (*Merchant, bool) {
	return merchants.FindByID(i.MerchantID)
}

// Customer resolves the owning customer through the given collection.
func (i *Invoice) Customer(customers *repository.Collection[*Customer]) (*Customer, bool) {
	return customers.FindByID(i.CustomerID)
}
