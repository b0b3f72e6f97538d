package analyst

import (
	"github.com/erp/salesengine/internal/domain/sales"
)

// itemQuantities accumulates summed quantities per item id while remembering
// first-appearance order, so maximum selection stays deterministic.
type itemQuantities struct {
	totals map[int]int
	order  []int
}

func newItemQuantities() *itemQuantities {
	return &itemQuantities{totals: make(map[int]int)}
}

func (q *itemQuantities) add(itemID, quantity int) {
	if _, seen := q.totals[itemID]; !seen {
		q.order = append(q.order, itemID)
	}
	q.totals[itemID] += quantity
}

// max returns the largest summed quantity, or 0 for an empty accumulation.
func (q *itemQuantities) max() int {
	max := 0
	for _, total := range q.totals {
		if total > max {
			max = total
		}
	}
	return max
}

// itemIDsAt returns the item ids whose total equals n, in first-appearance order.
func (q *itemQuantities) itemIDsAt(n int) []int {
	ids := []int{}
	for _, id := range q.order {
		if q.totals[id] == n {
			ids = append(ids, id)
		}
	}
	return ids
}

// OneTimeBuyers returns customers with exactly one invoice.
func (a *SalesAnalyst) OneTimeBuyers() []*sales.Customer {
	out := []*sales.Customer{}
	for _, c := range a.engine.Customers().All() {
		if len(a.engine.Invoices().FindAllBy("customer_id", c.ID)) == 1 {
			out = append(out, c)
		}
	}
	return out
}

// OneTimeBuyersTopItem returns the single most purchased item across all
// one-time buyers, summing quantities per item over their paid-in-full
// invoices. ok is false when no such purchases exist or the top item id
// dangles.
func (a *SalesAnalyst) OneTimeBuyersTopItem() (*sales.Item, bool) {
	quantities := newItemQuantities()
	for _, c := range a.OneTimeBuyers() {
		for _, inv := range a.engine.Invoices().FindAllBy("customer_id", c.ID) {
			if !a.InvoicePaidInFull(inv.ID) {
				continue
			}
			for _, ii := range a.engine.InvoiceItems().FindAllBy("invoice_id", inv.ID) {
				quantities.add(ii.ItemID, ii.Quantity)
			}
		}
	}

	max := quantities.max()
	if max == 0 {
		return nil, false
	}
	ids := quantities.itemIDsAt(max)
	if len(ids) == 0 {
		return nil, false
	}
	return a.engine.Items().FindByID(ids[0])
}

// HighestVolumeItems returns the customer's most purchased items by summed
// quantity across all their invoices, ties included, in first-appearance
// order. Dangling item ids are dropped.
func (a *SalesAnalyst) HighestVolumeItems(customerID int) []*sales.Item {
	quantities := newItemQuantities()
	for _, inv := range a.engine.Invoices().FindAllBy("customer_id", customerID) {
		for _, ii := range a.engine.InvoiceItems().FindAllBy("invoice_id", inv.ID) {
			quantities.add(ii.ItemID, ii.Quantity)
		}
	}

	out := []*sales.Item{}
	max := quantities.max()
	if max == 0 {
		return out
	}
	for _, id := range quantities.itemIDsAt(max) {
		if item, ok := a.engine.Items().FindByID(id); ok {
			out = append(out, item)
		}
	}
	return out
}

// TopMerchantForCustomer returns the merchant from whom the customer bought
// the largest total quantity of items. Ties resolve to the merchant whose
// invoice appears first. ok is false when the customer has no purchases or
// the merchant id dangles.
func (a *SalesAnalyst) TopMerchantForCustomer(customerID int) (*sales.Merchant, bool) {
	totals := make(map[int]int)
	order := []int{}
	for _, inv := range a.engine.Invoices().FindAllBy("customer_id", customerID) {
		if _, seen := totals[inv.MerchantID]; !seen {
			order = append(order, inv.MerchantID)
		}
		for _, ii := range a.engine.InvoiceItems().FindAllBy("invoice_id", inv.ID) {
			totals[inv.MerchantID] += ii.Quantity
		}
	}

	best, bestQuantity := 0, -1
	for _, merchantID := range order {
		if totals[merchantID] > bestQuantity {
			best, bestQuantity = merchantID, totals[merchantID]
		}
	}
	if bestQuantity < 0 {
		return nil, false
	}
	return a.engine.Merchants().FindByID(best)
}

// ItemsBoughtInYear returns the items on the customer's paid-in-full
// invoices created in the given year, one entry per line item.
func (a *SalesAnalyst) ItemsBoughtInYear(customerID, year int) []*sales.Item {
	out := []*sales.Item{}
	for _, inv := range a.engine.Invoices().FindAllBy("customer_id", customerID) {
		if inv.CreatedAt.Year() != year || !a.InvoicePaidInFull(inv.ID) {
			continue
		}
		for _, ii := range a.engine.InvoiceItems().FindAllBy("invoice_id", inv.ID) {
			if item, ok := ii.Item(a.engine.Items()); ok {
				out = append(out, item)
			}
		}
	}
	return out
}
