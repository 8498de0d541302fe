package controllers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/counterdesk/pos-backend/api/responses"
	"github.com/counterdesk/pos-backend/api/validators"
	"github.com/counterdesk/pos-backend/internal/reports"
	"github.com/counterdesk/pos-backend/pkg/db/models"
	pkgerrors "github.com/counterdesk/pos-backend/pkg/errors"
	"github.com/counterdesk/pos-backend/pkg/logger"
)

type saleRecordResponse struct {
	SaleID      string          `json:"sale_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
	SoldAt      string          `json:"sold_at"`
}

func newSaleRecordListResponse(records []models.SaleRecord) []saleRecordResponse {
	out := make([]saleRecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, saleRecordResponse{
			SaleID:      record.SaleID.String(),
			ProductName: record.ProductName,
			Quantity:    record.Quantity,
			LineTotal:   record.LineTotal,
			SoldAt:      record.SoldAt,
		})
	}
	return out
}

// noTopProduct is what the counter display shows for a day without sales.
const noTopProduct = "Nenhum"

type summaryResponse struct {
	Date           string          `json:"date"`
	Total          decimal.Decimal `json:"total"`
	SaleCount      int             `json:"sale_count"`
	TopProductName string          `json:"top_product_name"`
	TopProductQty  int64           `json:"top_product_quantity"`
}

// ReportSummary aggregates the current business day: total, distinct sale
// count and the best selling product.
func ReportSummary(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable"))
			return
		}

		summary, err := svc.TodaySummary(r.Context(), time.Now())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := summaryResponse{
			Date:           summary.Date,
			Total:          summary.Total,
			SaleCount:      summary.SaleCount,
			TopProductName: noTopProduct,
		}
		if summary.TopProduct != nil {
			resp.TopProductName = summary.TopProduct.ProductName
			resp.TopProductQty = summary.TopProduct.Quantity
		}
		responses.WriteSuccess(w, resp)
	}
}

// ReportRecentSales lists the newest ledger lines, most recent first.
func ReportRecentSales(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 500)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records, err := svc.RecentSales(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSaleRecordListResponse(records))
	}
}

// ReportAllTimeTotal sums every sale ever recorded.
func ReportAllTimeTotal(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable"))
			return
		}

		total, err := svc.AllTimeTotal(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]decimal.Decimal{"total": total})
	}
}
