// Package router assembles the gin engine for the report API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/erp/salesengine/internal/analyst"
	"github.com/erp/salesengine/internal/infrastructure/logger"
	"github.com/erp/salesengine/internal/interfaces/http/handler"
)

// New builds the HTTP router with logging and recovery middleware.
func New(a *analyst.SalesAnalyst, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(logger.RequestID())
	r.Use(logger.GinMiddleware(log))
	r.Use(logger.Recovery(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := handler.NewReportHandler(a)
	reports := r.Group("/api/v1/reports")
	{
		merchants := reports.Group("/merchants")
		{
			merchants.GET("/average-items", h.AverageItemsPerMerchant)
			merchants.GET("/average-items/stddev", h.AverageItemsPerMerchantStdDev)
			merchants.GET("/high-item-count", h.MerchantsWithHighItemCount)
			merchants.GET("/average-invoices", h.AverageInvoicesPerMerchant)
			merchants.GET("/top-by-invoice-count", h.TopMerchantsByInvoiceCount)
			merchants.GET("/bottom-by-invoice-count", h.BottomMerchantsByInvoiceCount)
			merchants.GET("/pending-invoices", h.MerchantsWithPendingInvoices)
			merchants.GET("/top-revenue", h.TopRevenueEarners)
			merchants.GET("/:id/revenue", h.MerchantRevenue)
			merchants.GET("/:id/average-item-price", h.MerchantAverageItemPrice)
			merchants.GET("/:id/best-item", h.MerchantBestItem)
			merchants.GET("/:id/most-sold-items", h.MerchantMostSoldItems)
		}

		invoices := reports.Group("/invoices")
		{
			invoices.GET("/status/:status", h.InvoiceStatus)
			invoices.GET("/top-days", h.TopDaysByInvoiceCount)
			invoices.GET("/:id/total", h.InvoiceTotal)
			invoices.GET("/:id/paid", h.InvoicePaidInFull)
		}

		customers := reports.Group("/customers")
		{
			customers.GET("/top-buyers", h.TopBuyers)
			customers.GET("/one-time-buyers", h.OneTimeBuyers)
			customers.GET("/one-time-buyers/top-item", h.OneTimeBuyersTopItem)
			customers.GET("/:id/highest-volume-items", h.CustomerHighestVolumeItems)
			customers.GET("/:id/top-merchant", h.CustomerTopMerchant)
		}

		reports.GET("/items/golden", h.GoldenItems)
	}

	return r
}
