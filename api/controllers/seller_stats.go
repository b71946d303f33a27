package controllers

import (
	"net/http"

	"github.com/tetraedu/desempenho-backend/api/middleware"
	"github.com/tetraedu/desempenho-backend/api/responses"
	"github.com/tetraedu/desempenho-backend/internal/sales"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
)

// SellerOwnStats serves stats scoped to the authenticated seller. The
// seller identity comes from the token, never from the query string.
func SellerOwnStats(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sellerName := middleware.SellerNameFromContext(r.Context())
		if sellerName == "" {
			err := pkgerrors.New(pkgerrors.CodeForbidden, "no seller identity on this account")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		stats, err := svc.SellerStats(r.Context(), sellerName)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}
