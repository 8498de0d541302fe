package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/counterdesk/pos-backend/internal/cart"
	"github.com/counterdesk/pos-backend/internal/catalog"
	"github.com/counterdesk/pos-backend/internal/ledger"
	"github.com/counterdesk/pos-backend/pkg/db/models"
	pkgerrors "github.com/counterdesk/pos-backend/pkg/errors"
	"github.com/counterdesk/pos-backend/pkg/logger"
	"github.com/counterdesk/pos-backend/pkg/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// SaleLine is one finalized line of a completed sale.
type SaleLine struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Sale is the result of a successful finalization. Every line shares the
// sale's id and timestamp, which is how the ledger groups them back together.
type Sale struct {
	SaleID uuid.UUID       `json:"sale_id"`
	SoldAt string          `json:"sold_at"`
	Lines  []SaleLine      `json:"lines"`
	Total  decimal.Decimal `json:"total"`
}

// Service finalizes the active cart into the ledger.
type Service interface {
	Finalize(ctx context.Context) (*Sale, error)
}

type service struct {
	tx       txRunner
	cart     cart.Service
	catalog  catalog.Repository
	ledger   ledger.Repository
	metrics  *metrics.SaleMetrics
	logg     *logger.Logger
	clock    func() time.Time
	register string
}

// Params collects the dependencies for NewService.
type Params struct {
	Tx       txRunner
	Cart     cart.Service
	Catalog  catalog.Repository
	Ledger   ledger.Repository
	Metrics  *metrics.SaleMetrics
	Logger   *logger.Logger
	Clock    func() time.Time
	Register string
}

// NewService wires the sale engine. Metrics and logger may be nil; clock
// defaults to time.Now and register to "counter-1".
func NewService(p Params) (Service, error) {
	if p.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if p.Cart == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if p.Catalog == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if p.Ledger == nil {
		return nil, fmt.Errorf("ledger repository required")
	}
	if p.Clock == nil {
		p.Clock = time.Now
	}
	if p.Register == "" {
		p.Register = "counter-1"
	}
	return &service{
		tx:       p.Tx,
		cart:     p.Cart,
		catalog:  p.Catalog,
		ledger:   p.Ledger,
		metrics:  p.Metrics,
		logg:     p.Logger,
		clock:    p.Clock,
		register: p.Register,
	}, nil
}

// Finalize turns the active cart into decremented stock plus ledger records,
// all inside one transaction. The cart stays intact whenever any step fails,
// so the cashier can adjust quantities and retry.
func (s *service) Finalize(ctx context.Context) (*Sale, error) {
	var sale *Sale

	err := s.cart.Checkout(func(lines []cart.Line) error {
		if len(lines) == 0 {
			return pkgerrors.New(pkgerrors.CodeEmptyCart, "cannot finalize an empty cart")
		}

		saleID := uuid.New()
		soldAt := s.clock().UTC().Format(models.SoldAtLayout)
		if s.logg != nil {
			ctx = s.logg.WithSaleID(ctx, saleID.String())
		}

		built, err := s.finalizeTx(ctx, lines, saleID, soldAt)
		if err != nil {
			return err
		}
		sale = built
		return nil
	})
	if err != nil {
		s.recordFailure(ctx, err)
		return nil, err
	}

	s.metrics.IncFinalized(s.register)
	total, _ := sale.Total.Float64()
	s.metrics.ObserveTotal(total)
	if s.logg != nil {
		s.logg.Info(ctx, "sale finalized")
	}
	return sale, nil
}

func (s *service) finalizeTx(ctx context.Context, lines []cart.Line, saleID uuid.UUID, soldAt string) (*Sale, error) {
	sale := &Sale{
		SaleID: saleID,
		SoldAt: soldAt,
		Total:  decimal.Zero,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		catalogRepo := s.catalog.WithTx(tx)
		ledgerRepo := s.ledger.WithTx(tx)

		// Validate every line before touching any stock so a mid-cart
		// failure never depends on line order.
		for _, line := range lines {
			product, err := catalogRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if product.Stock-line.Quantity < 0 {
				return pkgerrors.New(pkgerrors.CodeInsufficientStock, "insufficient stock to finalize sale").
					WithDetails(map[string]any{
						"product_id":      line.ProductID,
						"requested":       line.Quantity,
						"available_stock": product.Stock,
					})
			}
		}

		records := make([]models.SaleRecord, 0, len(lines))
		for _, line := range lines {
			if err := catalogRepo.ApplyStockDelta(ctx, line.ProductID, -line.Quantity); err != nil {
				return err
			}
			lineTotal := line.LineTotal()
			records = append(records, models.SaleRecord{
				SaleID:      saleID,
				ProductName: line.NameSnapshot,
				Quantity:    line.Quantity,
				LineTotal:   lineTotal,
				SoldAt:      soldAt,
			})
			sale.Lines = append(sale.Lines, SaleLine{
				ProductID:   line.ProductID,
				ProductName: line.NameSnapshot,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPriceSnapshot,
				LineTotal:   lineTotal,
			})
			sale.Total = sale.Total.Add(lineTotal)
		}

		return ledgerRepo.Append(ctx, records)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *service) recordFailure(ctx context.Context, err error) {
	reason := "internal"
	if typed := pkgerrors.As(err); typed != nil {
		reason = string(typed.Code())
	}
	s.metrics.IncFailed(s.register, reason)
	if s.logg != nil {
		s.logg.Warn(ctx, fmt.Sprintf("sale finalization failed: %s", reason))
	}
}
