package controllers

import (
	"net/http"

	"github.com/tetraedu/desempenho-backend/api/responses"
	"github.com/tetraedu/desempenho-backend/internal/filters"
	"github.com/tetraedu/desempenho-backend/internal/funnel"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
)

// FunnelSummary serves the stage counts for the requested filter
// combination. Absent query params fall back to the unrestricted
// defaults.
func FunnelSummary(svc funnel.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "funnel service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		set := filters.DecodeQuery(r.URL.Query(), filters.DefaultSet())
		summary, err := svc.Summary(r.Context(), set)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}
