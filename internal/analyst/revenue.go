package analyst

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/erp/salesengine/internal/domain/sales"
)

const defaultRankingSize = 20

// paidRevenue folds invoice totals over a set of invoices, counting only
// invoices paid in full.
func (a *SalesAnalyst) paidRevenue(invoices []*sales.Invoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if !a.InvoicePaidInFull(inv.ID) {
			continue
		}
		total = total.Add(a.InvoiceTotal(inv.ID))
	}
	return total
}

// RevenueByMerchant returns the merchant's total revenue over its
// paid-in-full invoices.
func (a *SalesAnalyst) RevenueByMerchant(merchantID int) decimal.Decimal {
	return a.paidRevenue(a.engine.Invoices().FindAllBy("merchant_id", merchantID))
}

// RevenueByCustomer returns the customer's total spend over their
// paid-in-full invoices.
func (a *SalesAnalyst) RevenueByCustomer(customerID int) decimal.Decimal {
	return a.paidRevenue(a.engine.Invoices().FindAllBy("customer_id", customerID))
}

// MerchantsRankedByRevenue returns all merchants sorted by paid revenue,
// highest first. The sort is stable: merchants with equal revenue keep
// collection insertion order, which makes rankings deterministic.
func (a *SalesAnalyst) MerchantsRankedByRevenue() []*sales.Merchant {
	merchants := a.engine.Merchants().All()
	revenues := make([]decimal.Decimal, len(merchants))
	for i, m := range merchants {
		revenues[i] = a.RevenueByMerchant(m.ID)
	}

	order := make([]int, len(merchants))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return revenues[order[i]].GreaterThan(revenues[order[j]])
	})

	out := make([]*sales.Merchant, len(merchants))
	for i, idx := range order {
		out[i] = merchants[idx]
	}
	return out
}

// TopRevenueEarners returns the top n merchants by paid revenue. A
// non-positive n falls back to the default of 20.
func (a *SalesAnalyst) TopRevenueEarners(n int) []*sales.Merchant {
	if n <= 0 {
		n = defaultRankingSize
	}
	ranked := a.MerchantsRankedByRevenue()
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// CustomersRankedByRevenue returns all customers sorted by paid spend,
// highest first, with insertion-order ties.
func (a *SalesAnalyst) CustomersRankedByRevenue() []*sales.Customer {
	customers := a.engine.Customers().All()
	revenues := make([]decimal.Decimal, len(customers))
	for i, c := range customers {
		revenues[i] = a.RevenueByCustomer(c.ID)
	}

	order := make([]int, len(customers))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return revenues[order[i]].GreaterThan(revenues[order[j]])
	})

	out := make([]*sales.Customer, len(customers))
	for i, idx := range order {
		out[i] = customers[idx]
	}
	return out
}

// TopBuyers returns the top n customers by paid spend. A non-positive n
// falls back to the default of 20.
func (a *SalesAnalyst) TopBuyers(n int) []*sales.Customer {
	if n <= 0 {
		n = defaultRankingSize
	}
	ranked := a.CustomersRankedByRevenue()
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
