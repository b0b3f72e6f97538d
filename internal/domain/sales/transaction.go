package sales

import (
	"time"

	"github.com/erp/salesengine/internal/repository"
)

// TransactionResult is the outcome of a payment attempt. Closed enumeration.
type TransactionResult string

const (
	TransactionSuccess TransactionResult = "success"
	TransactionFailed  TransactionResult = "failed"
)

// ParseTransactionResult validates a raw result value against the closed set.
func ParseTransactionResult(raw string) (TransactionResult, error) {
	switch TransactionResult(raw) {
	case TransactionSuccess, TransactionFailed:
		return TransactionResult(raw), nil
	}
	return "", ErrInvalidResult
}

// Transaction represents one payment attempt against an invoice. An invoice
// may carry any number of transactions, including none.
type Transaction struct {
	ID               int
	InvoiceID        int
	CreditCardNumber string
	Result           TransactionResult
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewTransaction creates a transaction record, validating the result enum
func NewTransaction(id, invoiceID int, creditCardNumber string, result TransactionResult, createdAt, updatedAt time.Time) (*Transaction, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if _, err := ParseTransactionResult(string(result)); err != nil {
		return nil, err
	}
	return &Transaction{
		ID:               id,
		InvoiceID:        invoiceID,
		CreditCardNumber: creditCardNumber,
		Result:           result,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

// EntityID implements repository.Entity
func (t *Transaction) EntityID() int {
	return t.ID
}

// Succeeded reports whether this payment attempt went through.
func (t *Transaction) Succeeded() bool {
	return t.Result == TransactionSuccess
}

// Invoice resolves the owning invoice through the given collection.
func (t *Transaction) Invoice(invoices *repository.Collection[*Invoice]) (*Invoice, bool) {
	return invoices.FindByID(t.InvoiceID)
}
