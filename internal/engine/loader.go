package engine

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/erp/salesengine/internal/domain/sales"
	"github.com/erp/salesengine/internal/infrastructure/csvimport"
	"github.com/erp/salesengine/internal/repository"
)

// Required columns per entity source.
var (
	merchantColumns    = []string{"id", "name", "created_at", "updated_at"}
	itemColumns        = []string{"id", "name", "description", "unit_price", "merchant_id", "created_at", "updated_at"}
	invoiceColumns     = []string{"id", "customer_id", "merchant_id", "status", "created_at", "updated_at"}
	invoiceItemColumns = []string{"id", "item_id", "invoice_id", "quantity", "unit_price", "created_at", "updated_at"}
	transactionColumns = []string{"id", "invoice_id", "credit_card_number", "result", "created_at", "updated_at"}
	customerColumns    = []string{"id", "first_name", "last_name", "created_at", "updated_at"}
)

// Load populates the engine's collections from the given sources. Each
// configured source replaces its collection wholesale; unset sources are
// skipped, leaving that collection as it was.
func (e *SalesEngine) Load(src Sources) error {
	if err := loadCollection(e.log, "merchants", src.Merchants, e.merchants, merchantColumns, decodeMerchant); err != nil {
		return err
	}
	if err := loadCollection(e.log, "items", src.Items, e.items, itemColumns, decodeItem); err != nil {
		return err
	}
	if err := loadCollection(e.log, "invoices", src.Invoices, e.invoices, invoiceColumns, decodeInvoice); err != nil {
		return err
	}
	if err := loadCollection(e.log, "invoice_items", src.InvoiceItems, e.invoiceItems, invoiceItemColumns, decodeInvoiceItem); err != nil {
		return err
	}
	if err := loadCollection(e.log, "transactions", src.Transactions, e.transactions, transactionColumns, decodeTransaction); err != nil {
		return err
	}
	if err := loadCollection(e.log, "customers", src.Customers, e.customers, customerColumns, decodeCustomer); err != nil {
		return err
	}
	return nil
}

// loadCollection parses one CSV source into records of the owned type and
// swaps them into the collection. Any schema or row error aborts the load
// of that collection with the previous state intact.
func loadCollection[T repository.Entity](
	log *zap.Logger,
	name, path string,
	coll *repository.Collection[T],
	required []string,
	decode func(*csvimport.Row) (T, error),
) error {
	if path == "" {
		return nil
	}
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s source: %w", name, err)
	}
	defer f.Close()

	parser, err := csvimport.NewParser(f)
	if err != nil {
		return fmt.Errorf("parse %s source %s: %w", name, path, err)
	}
	if err := parser.RequireHeaders(path, required); err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}

	rows, err := parser.ReadAllRows()
	if err != nil {
		return fmt.Errorf("load %s from %s: %w", name, path, err)
	}

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		record, err := decode(row)
		if err != nil {
			return fmt.Errorf("load %s from %s: %w", name, path, err)
		}
		records = append(records, record)
	}

	if err := coll.Replace(records); err != nil {
		return fmt.Errorf("load %s from %s: %w", name, path, err)
	}

	log.Info("collection loaded",
		zap.String("entity", name),
		zap.String("source", path),
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func decodeTimestamps(row *csvimport.Row) (created, updated time.Time, err error) {
	created, err = csvimport.DecodeTimestamp(row, "created_at")
	if err != nil {
		return
	}
	updated, err = csvimport.DecodeTimestamp(row, "updated_at")
	return
}

func decodeMerchant(row *csvimport.Row) (*sales.Merchant, error) {
	id, err := csvimport.DecodeInt(row, "id")
	if err != nil {
		return nil, err
	}
	created, updated, err := decodeTimestamps(row)
	if err != nil {
		return nil, err
	}
	return sales.NewMerchant(id, row.Get("name"), created, updated)
}

func decodeItem(row *csvimport.Row) (*sales.Item, error) {
	id, err := csvimport.DecodeInt(row, "id")
	if err != nil {
		return nil, err
	}
	merchantID, err := csvimport.DecodeInt(row, "merchant_id")
	if err != nil {
		return nil, err
	}
	unitPrice, err := csvimport.DecodeDecimal(row, "unit_price")
	if err != nil {
		return nil, err
	}
	created, updated, err := decodeTimestamps(row)
	if err != nil {
		return nil, err
	}
	return sales.NewItem(id, row.Get("name"), row.Get("description"), unitPrice, merchantID, created, updated)
}

func decodeInvoice(row *csvimport.Row) (*sales.Invoice, error) {
	id, err := csvimport.DecodeInt(row, "id")
	if err != nil {
		return nil, err
	}
	customerID, err := csvimport.DecodeInt(row, "customer_id")
	if err != nil {
		return nil, err
	}
	merchantID, err := csvimport.DecodeInt(row, "merchant_id")
	if err != nil {
		return nil, err
	}
	status, err := csvimport.DecodeEnum(row, "status", sales.ParseInvoiceStatus)
	if err != nil {
		return nil, err
	}
	created, updated, err := decodeTimestamps(row)
	if err != nil {
		return nil, err
	}
	return sales.NewInvoice(id, customerID, merchantID, status, created, updated)
}

func decodeInvoiceItem(row *csvimport.Row) (*sales.InvoiceItem, error) {
	id, err := csvimport.DecodeInt(row, "id")
	if err != nil {
		return nil, err
	}
	itemID, err := csvimport.DecodeInt(row, "item_id")
	if err != nil {
		return nil, err
	}
	invoiceID, err := csvimport.DecodeInt(row, "invoice_id")
	if err != nil {
		return nil, err
	}
	quantity, err := csvimport.DecodeInt(row, "quantity")
	if err != nil {
		return nil, err
	}
	unitPrice, err := csvimport.DecodeDecimal(row, "unit_price")
	if err != nil {
		return nil, err
	}
	created, updated, err := decodeTimestamps(row)
	if err != nil {
		return nil, err
	}
	return sales.NewInvoiceItem(id, itemID, invoiceID, quantity, unitPrice, created, updated)
}

func decodeTransaction(row *csvimport.Row) (*sales.Transaction, error) {
	id, err := csvimport.DecodeInt(row, "id")
	if err != nil {
		return nil, err
	}
	invoiceID, err := csvimport.DecodeInt(row, "invoice_id")
	if err != nil {
		return nil, err
	}
	result, err := csvimport.DecodeEnum(row, "result", sales.ParseTransactionResult)
	if err != nil {
		return nil, err
	}
	created, updated, err := decodeTimestamps(row)
	if err != nil {
		return nil, err
	}
	return sales.NewTransaction(id, invoiceID, row.Get("credit_card_number"), result, created, updated)
}

func decodeCustomer(row *csvimport.Row) (*sales.Customer, error) {
	id, err := csvimport.DecodeInt(row, "id")
	if err != nil {
		return nil, err
	}
	created, updated, err := decodeTimestamps(row)
	if err != nil {
		return nil, err
	}
	return sales.NewCustomer(id, row.Get("first_name"), row.Get("last_name"), created, updated)
}
