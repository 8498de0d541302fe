package controllers

import (
	"net/http"

	"github.com/counterdesk/pos-backend/api/responses"
	checkoutsvc "github.com/counterdesk/pos-backend/internal/checkout"
	pkgerrors "github.com/counterdesk/pos-backend/pkg/errors"
	"github.com/counterdesk/pos-backend/pkg/logger"
)

// Checkout finalizes the active cart into a sale.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sale, err := svc.Finalize(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, sale)
	}
}
