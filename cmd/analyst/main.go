// Command analyst loads the sales dataset and prints a summary of the main
// reports to stdout. It is a thin presentation wrapper around the analytics
// layer; degenerate statistics print as "insufficient data".
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/erp/salesengine/internal/analyst"
	"github.com/erp/salesengine/internal/domain/sales"
	"github.com/erp/salesengine/internal/engine"
	"github.com/erp/salesengine/internal/infrastructure/config"
	"github.com/erp/salesengine/internal/infrastructure/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	eng, err := engine.FromCSV(engine.Sources{
		Merchants:    cfg.Data.Merchants,
		Items:        cfg.Data.Items,
		Invoices:     cfg.Data.Invoices,
		InvoiceItems: cfg.Data.InvoiceItems,
		Transactions: cfg.Data.Transactions,
		Customers:    cfg.Data.Customers,
	}, log)
	if err != nil {
		log.Fatal("dataset load failed", zap.Error(err))
	}

	a := analyst.New(eng)

	printStat("average items per merchant", a.AverageItemsPerMerchant)
	printStat("items per merchant stddev", a.AverageItemsPerMerchantStdDev)
	printStat("average invoices per merchant", a.AverageInvoicesPerMerchant)
	printStat("invoices per merchant stddev", a.AverageInvoicesPerMerchantStdDev)

	if days, err := a.TopDaysByInvoiceCount(); err == nil {
		fmt.Println("top days by invoice count:", days)
	} else {
		printUnavailable("top days by invoice count", err)
	}

	for _, status := range []sales.InvoiceStatus{sales.InvoiceStatusPending, sales.InvoiceStatusShipped, sales.InvoiceStatusReturned} {
		if pct, err := a.InvoiceStatus(status); err == nil {
			fmt.Printf("invoices %s: %.2f%%\n", status, pct)
		} else {
			printUnavailable("invoices "+string(status), err)
		}
	}

	fmt.Println("top revenue earners:")
	for i, m := range a.TopRevenueEarners(0) {
		fmt.Printf("  %2d. %s (%s)\n", i+1, m.Name, a.RevenueByMerchant(m.ID).StringFixed(2))
	}
}

func printStat(name string, report func() (float64, error)) {
	v, err := report()
	if err != nil {
		printUnavailable(name, err)
		return
	}
	fmt.Printf("%s: %.2f\n", name, v)
}

func printUnavailable(name string, err error) {
	if errors.Is(err, sales.ErrEmptyDataset) || errors.Is(err, sales.ErrInsufficientData) {
		fmt.Printf("%s: insufficient data\n", name)
		return
	}
	fmt.Printf("%s: unavailable (%v)\n", name, err)
}
