package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp/salesengine/internal/repository"
)

// Item represents a product listed by a merchant. UnitPrice is the current
// listing price; the price actually charged on a sale lives on the
// InvoiceItem.
type Item struct {
	ID          int
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	MerchantID  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem creates an item record
func NewItem(id int, name, description string, unitPrice decimal.Decimal, merchantID int, createdAt, updatedAt time.Time) (*Item, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return &Item{
		ID:          id,
		Name:        name,
		Description: description,
		UnitPrice:   unitPrice,
		MerchantID:  merchantID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// EntityID implements repository.Entity
func (i *Item) EntityID() int {
	return i.ID
}

// Merchant resolves the owning merchant through the given collection.
// A dangling merchant_id yields ok == false, never an error.
func (i *Item) Merchant(merchants *repository.Collection[*Merchant]) (*Merchant, bool) {
	return merchants.FindByID(i.MerchantID)
}
