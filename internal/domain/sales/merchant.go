package sales

import "time"

// Merchant represents a seller on the marketplace. Merchants own items and
// receive invoices from customers.
type Merchant struct {
	ID        int
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMerchant creates a merchant record
func NewMerchant(id int, name string, createdAt, updatedAt time.Time) (*Merchant, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return &Merchant{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// EntityID implements repository.Entity
func (m *Merchant) EntityID() int {
	return m.ID
}
