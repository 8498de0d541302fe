package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SoldAtLayout is the ISO-8601 format sale timestamps are stored in.
// Fixed millisecond precision keeps lexical and chronological ordering
// aligned for text comparisons in queries.
const SoldAtLayout = "2006-01-02T15:04:05.000Z07:00"

// SaleRecord is one line of a finalized sale. Rows are append-only: no
// update or delete path exists anywhere in the codebase. Every line of a
// single finalization shares one SaleID and one SoldAt value.
type SaleRecord struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	SaleID      uuid.UUID       `gorm:"column:sale_id;type:text;not null"`
	ProductName string          `gorm:"column:product_name;not null"`
	Quantity    int             `gorm:"column:quantity;not null"`
	LineTotal   decimal.Decimal `gorm:"column:line_total;type:numeric;not null"`
	SoldAt      string          `gorm:"column:sold_at;not null"`
}
