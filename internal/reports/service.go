package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/counterdesk/pos-backend/internal/ledger"
	"github.com/counterdesk/pos-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// TopProduct names the best selling product of a reporting window.
type TopProduct struct {
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// DailySummary aggregates the current business day at the counter.
type DailySummary struct {
	Date       string          `json:"date"`
	Total      decimal.Decimal `json:"total"`
	SaleCount  int             `json:"sale_count"`
	TopProduct *TopProduct     `json:"top_product,omitempty"`
}

// Service answers read-only questions over the sale ledger.
type Service interface {
	RecentSales(ctx context.Context, limit int) ([]models.SaleRecord, error)
	AllTimeTotal(ctx context.Context) (decimal.Decimal, error)
	TodayTotal(ctx context.Context, ref time.Time) (decimal.Decimal, error)
	TodayTopProduct(ctx context.Context, ref time.Time) (*TopProduct, error)
	TodaySummary(ctx context.Context, ref time.Time) (*DailySummary, error)
}

type service struct {
	ledger       ledger.Repository
	defaultLimit int
}

// NewService wires the report aggregator over the ledger repository.
func NewService(repo ledger.Repository, defaultRecentLimit int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ledger repository required")
	}
	if defaultRecentLimit <= 0 {
		defaultRecentLimit = 10
	}
	return &service{ledger: repo, defaultLimit: defaultRecentLimit}, nil
}

// RecentSales returns the newest ledger records, most recent first. A
// non-positive limit falls back to the configured default.
func (s *service) RecentSales(ctx context.Context, limit int) ([]models.SaleRecord, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	return s.ledger.Recent(ctx, limit)
}

// AllTimeTotal sums every line total ever recorded. The sum runs over exact
// decimals in process rather than the database's float arithmetic.
func (s *service) AllTimeTotal(ctx context.Context) (decimal.Decimal, error) {
	totals, err := s.ledger.LineTotals(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t)
	}
	return sum, nil
}

// TodayTotal sums the line totals of the business day containing ref.
func (s *service) TodayTotal(ctx context.Context, ref time.Time) (decimal.Decimal, error) {
	from, to := dayWindow(ref)
	rows, err := s.ledger.ListBetween(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.LineTotal)
	}
	return total, nil
}

// TodayTopProduct returns the best selling product of ref's business day,
// nil when nothing sold. Ties go to the lexicographically smaller name.
func (s *service) TodayTopProduct(ctx context.Context, ref time.Time) (*TopProduct, error) {
	from, to := dayWindow(ref)
	tally, err := s.ledger.TopProductBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if tally == nil {
		return nil, nil
	}
	return &TopProduct{ProductName: tally.ProductName, Quantity: tally.Quantity}, nil
}

// TodaySummary aggregates the business day containing ref, interpreted in
// ref's location. A day with no sales yields a zero total and nil TopProduct.
func (s *service) TodaySummary(ctx context.Context, ref time.Time) (*DailySummary, error) {
	from, to := dayWindow(ref)

	rows, err := s.ledger.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	sales := map[string]struct{}{}
	for _, row := range rows {
		total = total.Add(row.LineTotal)
		sales[row.SaleID.String()] = struct{}{}
	}

	summary := &DailySummary{
		Date:      ref.Format("2006-01-02"),
		Total:     total,
		SaleCount: len(sales),
	}
	if len(rows) == 0 {
		return summary, nil
	}

	tally, err := s.ledger.TopProductBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if tally != nil {
		summary.TopProduct = &TopProduct{
			ProductName: tally.ProductName,
			Quantity:    tally.Quantity,
		}
	}
	return summary, nil
}

// dayWindow returns the half-open [from, to) bounds of ref's calendar day as
// sold_at strings. Day bounds are taken in ref's location, then converted to
// UTC to match how the ledger stores timestamps.
func dayWindow(ref time.Time) (string, string) {
	year, month, day := ref.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 0, 1)
	return start.UTC().Format(models.SoldAtLayout), end.UTC().Format(models.SoldAtLayout)
}
