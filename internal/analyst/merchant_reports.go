package analyst

import (
	"time"

	"github.com/erp/salesengine/internal/domain/sales"
)

// countsPerMerchant maps each merchant to a per-merchant count produced by
// the given lookup, in merchant insertion order.
func (a *SalesAnalyst) countsPerMerchant(count func(merchantID int) int) []float64 {
	merchants := a.engine.Merchants().All()
	counts := make([]float64, 0, len(merchants))
	for _, m := range merchants {
		counts = append(counts, float64(count(m.ID)))
	}
	return counts
}

// AverageItemsPerMerchant returns count(items) / count(merchants), rounded
// to 2 decimals. Fails with ErrEmptyDataset when no merchants are loaded.
func (a *SalesAnalyst) AverageItemsPerMerchant() (float64, error) {
	merchants := a.engine.Merchants().Len()
	if merchants == 0 {
		return 0, sales.ErrEmptyDataset
	}
	return round2(float64(a.engine.Items().Len()) / float64(merchants)), nil
}

// AverageItemsPerMerchantStdDev returns the sample standard deviation of
// per-merchant item counts around AverageItemsPerMerchant.
func (a *SalesAnalyst) AverageItemsPerMerchantStdDev() (float64, error) {
	mean, err := a.AverageItemsPerMerchant()
	if err != nil {
		return 0, err
	}
	counts := a.countsPerMerchant(func(id int) int {
		return len(a.engine.Items().FindAllBy("merchant_id", id))
	})
	return sampleStdDev(counts, mean)
}

// MerchantsWithHighItemCount returns merchants whose item count exceeds the
// mean by more than two standard deviations.
func (a *SalesAnalyst) MerchantsWithHighItemCount() ([]*sales.Merchant, error) {
	mean, err := a.AverageItemsPerMerchant()
	if err != nil {
		return nil, err
	}
	stddev, err := a.AverageItemsPerMerchantStdDev()
	if err != nil {
		return nil, err
	}
	threshold := mean + stddev*2

	out := []*sales.Merchant{}
	for _, m := range a.engine.Merchants().All() {
		if float64(len(a.engine.Items().FindAllBy("merchant_id", m.ID))) > threshold {
			out = append(out, m)
		}
	}
	return out, nil
}

// AverageInvoicesPerMerchant returns count(invoices) / count(merchants),
// rounded to 2 decimals.
func (a *SalesAnalyst) AverageInvoicesPerMerchant() (float64, error) {
	merchants := a.engine.Merchants().Len()
	if merchants == 0 {
		return 0, sales.ErrEmptyDataset
	}
	return round2(float64(a.engine.Invoices().Len()) / float64(merchants)), nil
}

// AverageInvoicesPerMerchantStdDev returns the sample standard deviation of
// per-merchant invoice counts.
func (a *SalesAnalyst) AverageInvoicesPerMerchantStdDev() (float64, error) {
	mean, err := a.AverageInvoicesPerMerchant()
	if err != nil {
		return 0, err
	}
	counts := a.countsPerMerchant(func(id int) int {
		return len(a.engine.Invoices().FindAllBy("merchant_id", id))
	})
	return sampleStdDev(counts, mean)
}

// TopMerchantsByInvoiceCount returns merchants more than two standard
// deviations above the mean invoice count.
func (a *SalesAnalyst) TopMerchantsByInvoiceCount() ([]*sales.Merchant, error) {
	return a.merchantsByInvoiceCount(func(count, mean, stddev float64) bool {
		return count > mean+stddev*2
	})
}

// BottomMerchantsByInvoiceCount returns merchants more than two standard
// deviations below the mean invoice count.
func (a *SalesAnalyst) BottomMerchantsByInvoiceCount() ([]*sales.Merchant, error) {
	return a.merchantsByInvoiceCount(func(count, mean, stddev float64) bool {
		return count < mean-stddev*2
	})
}

func (a *SalesAnalyst) merchantsByInvoiceCount(keep func(count, mean, stddev float64) bool) ([]*sales.Merchant, error) {
	mean, err := a.AverageInvoicesPerMerchant()
	if err != nil {
		return nil, err
	}
	stddev, err := a.AverageInvoicesPerMerchantStdDev()
	if err != nil {
		return nil, err
	}

	out := []*sales.Merchant{}
	for _, m := range a.engine.Merchants().All() {
		count := float64(len(a.engine.Invoices().FindAllBy("merchant_id", m.ID)))
		if keep(count, mean, stddev) {
			out = append(out, m)
		}
	}
	return out, nil
}

// MerchantsWithPendingInvoices returns merchants with at least one invoice
// that has no successful transaction.
func (a *SalesAnalyst) MerchantsWithPendingInvoices() []*sales.Merchant {
	out := []*sales.Merchant{}
	for _, m := range a.engine.Merchants().All() {
		if a.merchantHasPendingInvoice(m.ID) {
			out = append(out, m)
		}
	}
	return out
}

func (a *SalesAnalyst) merchantHasPendingInvoice(merchantID int) bool {
	for _, inv := range a.engine.Invoices().FindAllBy("merchant_id", merchantID) {
		if a.invoiceIsPending(inv.ID) {
			return true
		}
	}
	return false
}

// MerchantsWithOnlyOneItem returns merchants that list exactly one item.
func (a *SalesAnalyst) MerchantsWithOnlyOneItem() []*sales.Merchant {
	out := []*sales.Merchant{}
	for _, m := range a.engine.Merchants().All() {
		if len(a.engine.Items().FindAllBy("merchant_id", m.ID)) == 1 {
			out = append(out, m)
		}
	}
	return out
}

// MerchantsWithOnlyOneItemRegisteredInMonth restricts MerchantsWithOnlyOneItem
// to merchants created in the given calendar month.
func (a *SalesAnalyst) MerchantsWithOnlyOneItemRegisteredInMonth(month time.Month) []*sales.Merchant {
	out := []*sales.Merchant{}
	for _, m := range a.MerchantsWithOnlyOneItem() {
		if m.CreatedAt.Month() == month {
			out = append(out, m)
		}
	}
	return out
}
