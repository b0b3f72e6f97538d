package analyst

import (
	"github.com/shopspring/decimal"

	"github.com/erp/salesengine/internal/domain/sales"
)

// AverageItemPriceForMerchant returns the mean listing price of the
// merchant's items, rounded to 2 decimals. A merchant with no items has no
// defined average and fails with ErrEmptyDataset.
func (a *SalesAnalyst) AverageItemPriceForMerchant(merchantID int) (decimal.Decimal, error) {
	items := a.engine.Items().FindAllBy("merchant_id", merchantID)
	if len(items) == 0 {
		return decimal.Zero, sales.ErrEmptyDataset
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice)
	}
	return total.Div(decimal.NewFromInt(int64(len(items)))).Round(2), nil
}

// AverageAveragePricePerMerchant returns the mean of per-merchant average
// item prices, rounded to 2 decimals. Merchants without items contribute a
// zero average, matching the reference behavior of an empty fold.
func (a *SalesAnalyst) AverageAveragePricePerMerchant() (decimal.Decimal, error) {
	merchants := a.engine.Merchants().All()
	if len(merchants) == 0 {
		return decimal.Zero, sales.ErrEmptyDataset
	}
	total := decimal.Zero
	for _, m := range merchants {
		avg, err := a.AverageItemPriceForMerchant(m.ID)
		if err != nil {
			continue
		}
		total = total.Add(avg)
	}
	return total.Div(decimal.NewFromInt(int64(len(merchants)))).Round(2), nil
}

// AverageItemCost returns the mean listing price across all items, rounded
// to 2 decimals.
func (a *SalesAnalyst) AverageItemCost() (decimal.Decimal, error) {
	items := a.engine.Items().All()
	if len(items) == 0 {
		return decimal.Zero, sales.ErrEmptyDataset
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice)
	}
	return total.Div(decimal.NewFromInt(int64(len(items)))).Round(2), nil
}

// ItemUnitPriceStdDev returns the sample standard deviation of item listing
// prices around AverageItemCost.
func (a *SalesAnalyst) ItemUnitPriceStdDev() (float64, error) {
	mean, err := a.AverageItemCost()
	if err != nil {
		return 0, err
	}
	items := a.engine.Items().All()
	prices := make([]float64, 0, len(items))
	for _, item := range items {
		prices = append(prices, item.UnitPrice.InexactFloat64())
	}
	return sampleStdDev(prices, mean.InexactFloat64())
}

// GoldenItems returns items priced more than two standard deviations above
// the mean listing price.
func (a *SalesAnalyst) GoldenItems() ([]*sales.Item, error) {
	mean, err := a.AverageItemCost()
	if err != nil {
		return nil, err
	}
	stddev, err := a.ItemUnitPriceStdDev()
	if err != nil {
		return nil, err
	}
	threshold := mean.Add(decimal.NewFromFloat(stddev * 2))

	out := []*sales.Item{}
	for _, item := range a.engine.Items().All() {
		if item.UnitPrice.GreaterThan(threshold) {
			out = append(out, item)
		}
	}
	return out, nil
}

// invoiceItemsForMerchant collects line items belonging to the merchant's
// non-pending invoices, in invoice then line-item insertion order.
func (a *SalesAnalyst) invoiceItemsForMerchant(merchantID int) []*sales.InvoiceItem {
	out := []*sales.InvoiceItem{}
	for _, inv := range a.engine.Invoices().FindAllBy("merchant_id", merchantID) {
		if a.invoiceIsPending(inv.ID) {
			continue
		}
		out = append(out, a.engine.InvoiceItems().FindAllBy("invoice_id", inv.ID)...)
	}
	return out
}

// MostSoldItemsForMerchant groups the merchant's line items by quantity and
// returns the items referenced at the single largest quantity value that
// occurs, ties included. Selection is by the maximum group key, not the
// largest aggregate; see DESIGN.md for the tie policy.
func (a *SalesAnalyst) MostSoldItemsForMerchant(merchantID int) []*sales.Item {
	lineItems := a.invoiceItemsForMerchant(merchantID)

	maxQuantity := 0
	for _, ii := range lineItems {
		if ii.Quantity > maxQuantity {
			maxQuantity = ii.Quantity
		}
	}

	out := []*sales.Item{}
	for _, ii := range lineItems {
		if ii.Quantity != maxQuantity {
			continue
		}
		if item, ok := ii.Item(a.engine.Items()); ok {
			out = append(out, item)
		}
	}
	return out
}

// BestItemForMerchant groups the merchant's line items by line revenue
// (quantity times at-sale price) and returns the first item at the largest
// revenue value. ok is false when the merchant has no resolvable line items.
func (a *SalesAnalyst) BestItemForMerchant(merchantID int) (*sales.Item, bool) {
	lineItems := a.invoiceItemsForMerchant(merchantID)

	maxRevenue := decimal.Zero
	found := false
	for _, ii := range lineItems {
		if r := ii.LineTotal(); !found || r.GreaterThan(maxRevenue) {
			maxRevenue = r
			found = true
		}
	}
	if !found {
		return nil, false
	}

	for _, ii := range lineItems {
		if !ii.LineTotal().Equal(maxRevenue) {
			continue
		}
		if item, ok := ii.Item(a.engine.Items()); ok {
			return item, true
		}
	}
	return nil, false
}
