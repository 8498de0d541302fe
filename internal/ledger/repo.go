package ledger

import (
	"context"

	"github.com/counterdesk/pos-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductTally is a per-product quantity aggregate over a sold_at window.
type ProductTally struct {
	ProductName string
	Quantity    int64
}

// Repository manages persistence for sale records. The ledger is
// append-only: there is deliberately no update or delete method.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Append(ctx context.Context, records []models.SaleRecord) error
	Recent(ctx context.Context, limit int) ([]models.SaleRecord, error)
	ListBetween(ctx context.Context, fromSoldAt, toSoldAt string) ([]models.SaleRecord, error)
	LineTotals(ctx context.Context) ([]decimal.Decimal, error)
	TopProductBetween(ctx context.Context, fromSoldAt, toSoldAt string) (*ProductTally, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a ledger repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Append(ctx context.Context, records []models.SaleRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

// Recent returns the newest records first. sold_at is ISO-8601 text with
// fixed precision, so the lexical DESC order is the chronological one; id
// DESC breaks ties in favor of the later insert.
func (r *repository) Recent(ctx context.Context, limit int) ([]models.SaleRecord, error) {
	var rows []models.SaleRecord
	if err := r.db.WithContext(ctx).
		Order("sold_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListBetween(ctx context.Context, fromSoldAt, toSoldAt string) ([]models.SaleRecord, error) {
	var rows []models.SaleRecord
	if err := r.db.WithContext(ctx).
		Where("sold_at >= ? AND sold_at < ?", fromSoldAt, toSoldAt).
		Order("sold_at ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) LineTotals(ctx context.Context) ([]decimal.Decimal, error) {
	var totals []decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.SaleRecord{}).
		Pluck("line_total", &totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}

// TopProductBetween returns the product with the greatest summed quantity
// inside the window, ties broken by the lexicographically smaller name.
// Returns nil when the window holds no records.
func (r *repository) TopProductBetween(ctx context.Context, fromSoldAt, toSoldAt string) (*ProductTally, error) {
	var tallies []ProductTally
	err := r.db.WithContext(ctx).
		Model(&models.SaleRecord{}).
		Select("product_name, SUM(quantity) AS quantity").
		Where("sold_at >= ? AND sold_at < ?", fromSoldAt, toSoldAt).
		Group("product_name").
		Order("quantity DESC").
		Order("product_name ASC").
		Limit(1).
		Scan(&tallies).Error
	if err != nil {
		return nil, err
	}
	if len(tallies) == 0 {
		return nil, nil
	}
	return &tallies[0], nil
}
