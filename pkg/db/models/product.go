package models

import (
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog row. Stock never goes below zero; the
// checkout transaction guards every decrement before it commits.
type Product struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string          `gorm:"column:name;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric;not null"`
	Stock     int             `gorm:"column:stock;not null;default:0"`
}
