package controllers

import (
	"net/http"

	"github.com/tetraedu/desempenho-backend/api/responses"
	"github.com/tetraedu/desempenho-backend/internal/reports"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
)

func DailyReport(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.Daily(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}

func MonthlyReport(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.Monthly(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}
