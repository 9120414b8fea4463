package postgres

import (
	"fmt"
	"strings"

	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/invoicerepo"
	"storefront/internal/adapters/out/postgres/orderrepo"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Tables lists every table owned by the service, parents first.
var Tables = []string{"vendors", "products", "orders", "invoices"}

// Migrate creates or alters the schema to match the DTOs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.VendorDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&invoicerepo.InvoiceDTO{},
	)
}

// Truncate empties the given tables, or all of Tables when none are named.
func Truncate(db *gorm.DB, tables ...string) error {
	if len(tables) == 0 {
		tables = Tables
	}

	quoted := make([]string, 0, len(tables))
	for _, table := range tables {
		quoted = append(quoted, pq.QuoteIdentifier(table))
	}

	return db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(quoted, ", "))).Error
}
