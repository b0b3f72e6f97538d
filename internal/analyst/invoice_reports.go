package analyst

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp/salesengine/internal/domain/sales"
)

// InvoicePaidInFull reports whether the invoice has at least one successful
// transaction. An unknown invoice id simply has no transactions and is not
// paid in full.
func (a *SalesAnalyst) InvoicePaidInFull(invoiceID int) bool {
	for _, t := range a.engine.Transactions().FindAllBy("invoice_id", invoiceID) {
		if t.Succeeded() {
			return true
		}
	}
	return false
}

// invoiceIsPending is the complement of paid in full: zero transactions or
// all of them failed.
func (a *SalesAnalyst) invoiceIsPending(invoiceID int) bool {
	return !a.InvoicePaidInFull(invoiceID)
}

// InvoiceTotal sums quantity times at-sale unit price over the invoice's
// line items. A dangling or unknown invoice id totals to zero.
func (a *SalesAnalyst) InvoiceTotal(invoiceID int) decimal.Decimal {
	total := decimal.Zero
	for _, ii := range a.engine.InvoiceItems().FindAllBy("invoice_id", invoiceID) {
		total = total.Add(ii.LineTotal())
	}
	return total
}

// InvoiceStatus returns the percentage of invoices with the given status out
// of all invoices, in [0, 100] rounded to 2 decimals.
func (a *SalesAnalyst) InvoiceStatus(status sales.InvoiceStatus) (float64, error) {
	invoices := a.engine.Invoices().All()
	if len(invoices) == 0 {
		return 0, sales.ErrEmptyDataset
	}
	matched := 0
	for _, inv := range invoices {
		if inv.Status == status {
			matched++
		}
	}
	return round2(float64(matched) / float64(len(invoices)) * 100), nil
}

// invoicesByWeekday buckets all invoices into exactly 7 weekday counts,
// Sunday first. Weekdays with no invoices count as zero.
func (a *SalesAnalyst) invoicesByWeekday() [7]float64 {
	var days [7]float64
	for _, inv := range a.engine.Invoices().All() {
		days[int(inv.CreatedAt.Weekday())]++
	}
	return days
}

// InvoiceByDayStdDev returns the sample standard deviation of invoice counts
// across the 7 weekday buckets.
func (a *SalesAnalyst) InvoiceByDayStdDev() (float64, error) {
	if a.engine.Invoices().Len() == 0 {
		return 0, sales.ErrEmptyDataset
	}
	days := a.invoicesByWeekday()
	mean, err := average(days[:])
	if err != nil {
		return 0, err
	}
	return sampleStdDev(days[:], mean)
}

// TopDaysByInvoiceCount returns the names of weekdays whose invoice count
// exceeds the mean by more than one standard deviation, in canonical order
// Sunday through Saturday.
func (a *SalesAnalyst) TopDaysByInvoiceCount() ([]string, error) {
	if a.engine.Invoices().Len() == 0 {
		return nil, sales.ErrEmptyDataset
	}
	days := a.invoicesByWeekday()
	mean, err := average(days[:])
	if err != nil {
		return nil, err
	}
	stddev, err := sampleStdDev(days[:], mean)
	if err != nil {
		return nil, err
	}
	threshold := mean + stddev

	out := []string{}
	for d, count := range days {
		if count > threshold {
			out = append(out, time.Weekday(d).String())
		}
	}
	return out, nil
}

// TotalRevenueByDate sums invoice totals over the invoices created on the
// given calendar day, regardless of payment state.
func (a *SalesAnalyst) TotalRevenueByDate(date time.Time) decimal.Decimal {
	y, m, d := date.Date()
	total := decimal.Zero
	for _, inv := range a.engine.Invoices().All() {
		iy, im, id := inv.CreatedAt.Date()
		if iy == y && im == m && id == d {
			total = total.Add(a.InvoiceTotal(inv.ID))
		}
	}
	return total
}
