// Package catalogrepo provides data transfer objects and mapping functions for
// the product catalog. This package implements the catalog side of the
// repository pattern: product codes and unit prices live in the database, the
// workflow reaches them through the ProductCatalog port.
package catalogrepo

import (
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for catalog entries.
// The product code is the natural key; unit prices are stored as exact
// numerics so no precision is lost between catalog and billing.
type ProductDTO struct {
	Code        string          `gorm:"primaryKey;size:50"`
	Description string          `gorm:"size:200"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(19,4)"`
}

// TableName specifies the database table name for catalog entries.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}
