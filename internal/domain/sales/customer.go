package sales

import (
	"strings"
	"time"
)

// Customer represents a buyer. Customers place invoices with merchants.
type Customer struct {
	ID        int
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer creates a customer record
func NewCustomer(id int, firstName, lastName string, createdAt, updatedAt time.Time) (*Customer, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return &Customer{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// EntityID implements repository.Entity
func (c *Customer) EntityID() int {
	return c.ID
}

// FullName returns "First Last" with empty parts trimmed.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
