package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/counterdesk/pos-backend/api/responses"
	"github.com/counterdesk/pos-backend/api/validators"
	cartsvc "github.com/counterdesk/pos-backend/internal/cart"
	pkgerrors "github.com/counterdesk/pos-backend/pkg/errors"
	"github.com/counterdesk/pos-backend/pkg/logger"
)

type cartLineResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type cartResponse struct {
	Lines []cartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

func newCartResponse(view cartsvc.View) cartResponse {
	lines := make([]cartLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, cartLineResponse{
			ProductID: line.ProductID,
			Name:      line.NameSnapshot,
			UnitPrice: line.UnitPriceSnapshot,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal(),
		})
	}
	return cartResponse{Lines: lines, Total: view.Total}
}

// CartFetch returns the active cart with its running total.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartResponse(svc.View()))
	}
}

type cartAddRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
}

// CartAddItem adds the product to the cart, or bumps its quantity when a
// line already exists.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.AddProduct(r.Context(), payload.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(svc.View()))
	}
}

// CartDecrementItem lowers the line's quantity by one, dropping the line
// when it reaches zero.
func CartDecrementItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		id, err := productIDFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Decrement(id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(svc.View()))
	}
}

// CartClear abandons the session, dropping every line.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		svc.Clear()
		responses.WriteSuccess(w, newCartResponse(svc.View()))
	}
}
