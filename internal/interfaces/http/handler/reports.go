// Package handler exposes the analyst's reports over a read-only JSON API.
// This layer is presentation glue: every computation happens in the analyst,
// and nothing here mutates the dataset.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/erp/salesengine/internal/analyst"
	"github.com/erp/salesengine/internal/domain/sales"
)

// ReportHandler handles report API endpoints
type ReportHandler struct {
	analyst *analyst.SalesAnalyst
}

// NewReportHandler creates a ReportHandler over the given analyst
func NewReportHandler(a *analyst.SalesAnalyst) *ReportHandler {
	return &ReportHandler{analyst: a}
}

// intParam parses an integer path parameter.
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondBadRequest(c, "parameter '"+name+"' must be an integer")
		return 0, false
	}
	return v, true
}

// topN parses the optional top_n query parameter; 0 means report default.
func topN(c *gin.Context) (int, bool) {
	raw := c.Query("top_n")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondBadRequest(c, "query parameter 'top_n' must be a non-negative integer")
		return 0, false
	}
	return n, true
}

// AverageItemsPerMerchant handles GET /reports/merchants/average-items
func (h *ReportHandler) AverageItemsPerMerchant(c *gin.Context) {
	v, err := h.analyst.AverageItemsPerMerchant()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, ValueData{Value: v})
}

// AverageItemsPerMerchantStdDev handles GET /reports/merchants/average-items/stddev
func (h *ReportHandler) AverageItemsPerMerchantStdDev(c *gin.Context) {
	v, err := h.analyst.AverageItemsPerMerchantStdDev()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, ValueData{Value: v})
}

// MerchantsWithHighItemCount handles GET /reports/merchants/high-item-count
func (h *ReportHandler) MerchantsWithHighItemCount(c *gin.Context) {
	merchants, err := h.analyst.MerchantsWithHighItemCount()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, toMerchantResponses(merchants))
}

// AverageInvoicesPerMerchant handles GET /reports/merchants/average-invoices
func (h *ReportHandler) AverageInvoicesPerMerchant(c *gin.Context) {
	v, err := h.analyst.AverageInvoicesPerMerchant()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, ValueData{Value: v})
}

// TopMerchantsByInvoiceCount handles GET /reports/merchants/top-by-invoice-count
func (h *ReportHandler) TopMerchantsByInvoiceCount(c *gin.Context) {
	merchants, err := h.analyst.TopMerchantsByInvoiceCount()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, toMerchantResponses(merchants))
}

// BottomMerchantsByInvoiceCount handles GET /reports/merchants/bottom-by-invoice-count
func (h *ReportHandler) BottomMerchantsByInvoiceCount(c *gin.Context) {
	merchants, err := h.analyst.BottomMerchantsByInvoiceCount()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, toMerchantResponses(merchants))
}

// MerchantsWithPendingInvoices handles GET /reports/merchants/pending-invoices
func (h *ReportHandler) MerchantsWithPendingInvoices(c *gin.Context) {
	respondOK(c, toMerchantResponses(h.analyst.MerchantsWithPendingInvoices()))
}

// TopRevenueEarners handles GET /reports/merchants/top-revenue
func (h *ReportHandler) TopRevenueEarners(c *gin.Context) {
	n, ok := topN(c)
	if !ok {
		return
	}
	respondOK(c, toMerchantResponses(h.analyst.TopRevenueEarners(n)))
}

// MerchantRevenue handles GET /reports/merchants/:id/revenue
func (h *ReportHandler) MerchantRevenue(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	respondOK(c, amount(h.analyst.RevenueByMerchant(id)))
}

// MerchantAverageItemPrice handles GET /reports/merchants/:id/average-item-price
func (h *ReportHandler) MerchantAverageItemPrice(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	avg, err := h.analyst.AverageItemPriceForMerchant(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, AmountData{Amount: avg.StringFixed(2)})
}

// MerchantBestItem handles GET /reports/merchants/:id/best-item
func (h *ReportHandler) MerchantBestItem(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	item, found := h.analyst.BestItemForMerchant(id)
	if !found {
		respondOK(c, nil)
		return
	}
	respondOK(c, toItemResponse(item))
}

// MerchantMostSoldItems handles GET /reports/merchants/:id/most-sold-items
func (h *ReportHandler) MerchantMostSoldItems(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	respondOK(c, toItemResponses(h.analyst.MostSoldItemsForMerchant(id)))
}

// GoldenItems handles GET /reports/items/golden
func (h *ReportHandler) GoldenItems(c *gin.Context) {
	items, err := h.analyst.GoldenItems()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, toItemResponses(items))
}

// InvoiceStatus handles GET /reports/invoices/status/:status
func (h *ReportHandler) InvoiceStatus(c *gin.Context) {
	status, err := sales.ParseInvoiceStatus(c.Param("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	v, err := h.analyst.InvoiceStatus(status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, ValueData{Value: v})
}

// TopDaysByInvoiceCount handles GET /reports/invoices/top-days
func (h *ReportHandler) TopDaysByInvoiceCount(c *gin.Context) {
	days, err := h.analyst.TopDaysByInvoiceCount()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, days)
}

// InvoiceTotal handles GET /reports/invoices/:id/total
func (h *ReportHandler) InvoiceTotal(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	respondOK(c, amount(h.analyst.InvoiceTotal(id)))
}

// InvoicePaidInFull handles GET /reports/invoices/:id/paid
func (h *ReportHandler) InvoicePaidInFull(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	respondOK(c, gin.H{"paid_in_full": h.analyst.InvoicePaidInFull(id)})
}

// TopBuyers handles GET /reports/customers/top-buyers
func (h *ReportHandler) TopBuyers(c *gin.Context) {
	n, ok := topN(c)
	if !ok {
		return
	}
	respondOK(c, toCustomerResponses(h.analyst.TopBuyers(n)))
}

// OneTimeBuyers handles GET /reports/customers/one-time-buyers
func (h *ReportHandler) OneTimeBuyers(c *gin.Context) {
	respondOK(c, toCustomerResponses(h.analyst.OneTimeBuyers()))
}

// OneTimeBuyersTopItem handles GET /reports/customers/one-time-buyers/top-item
func (h *ReportHandler) OneTimeBuyersTopItem(c *gin.Context) {
	item, found := h.analyst.OneTimeBuyersTopItem()
	if !found {
		respondOK(c, nil)
		return
	}
	respondOK(c, toItemResponse(item))
}

// CustomerHighestVolumeItems handles GET /reports/customers/:id/highest-volume-items
func (h *ReportHandler) CustomerHighestVolumeItems(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	respondOK(c, toItemResponses(h.analyst.HighestVolumeItems(id)))
}

// CustomerTopMerchant handles GET /reports/customers/:id/top-merchant
func (h *ReportHandler) CustomerTopMerchant(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	m, found := h.analyst.TopMerchantForCustomer(id)
	if !found {
		respondOK(c, nil)
		return
	}
	respondOK(c, MerchantResponse{ID: m.ID, Name: m.Name})
}
