package controllers

import (
	"net/http"

	"github.com/tetraedu/desempenho-backend/api/responses"
	"github.com/tetraedu/desempenho-backend/api/validators"
	"github.com/tetraedu/desempenho-backend/internal/traffic"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
)

// TrafficReport proxies the ad-platform webhook into normalized daily
// rows plus derived totals. Optional start_date/end_date bound the
// series.
func TrafficReport(svc *traffic.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "traffic service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		start, err := validators.ParseQueryDate(r, "start_date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		end, err := validators.ParseQueryDate(r, "end_date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var startStr, endStr string
		if !start.IsZero() {
			startStr = start.Format("2006-01-02")
		}
		if !end.IsZero() {
			endStr = end.Format("2006-01-02")
		}

		report, err := svc.Report(r.Context(), startStr, endStr)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}
