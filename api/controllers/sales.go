package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tetraedu/desempenho-backend/api/responses"
	"github.com/tetraedu/desempenho-backend/api/validators"
	"github.com/tetraedu/desempenho-backend/internal/sales"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
)

const (
	defaultSalesLimit = 50
	maxSalesLimit     = 500
)

// SalesList returns the most recent sales, newest first.
func SalesList(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultSalesLimit, 1, maxSalesLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records, err := svc.Recent(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, records)
	}
}

// SalesStats returns the overview aggregates for the requested window.
func SalesStats(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		q, err := statsQueryFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		stats, err := svc.Stats(r.Context(), q)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}

func statsQueryFromRequest(r *http.Request) (sales.StatsQuery, error) {
	var q sales.StatsQuery

	start, err := validators.ParseQueryDate(r, "start_date")
	if err != nil {
		return q, err
	}
	end, err := validators.ParseQueryDate(r, "end_date")
	if err != nil {
		return q, err
	}
	if !start.IsZero() {
		q.StartDate = start.Format("2006-01-02")
	}
	if !end.IsZero() {
		q.EndDate = end.Format("2006-01-02")
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return q, pkgerrors.New(pkgerrors.CodeValidation, "end_date must not precede start_date")
	}

	if month := strings.TrimSpace(r.URL.Query().Get("month")); month != "" {
		n, err := strconv.Atoi(month)
		if err != nil || len(month) != 2 || n < 1 || n > 12 {
			return q, pkgerrors.New(pkgerrors.CodeValidation, "month must be two digits between 01 and 12")
		}
		q.Month = month
	}

	year, err := validators.ParseQueryInt(r, "year", 0, 2000, 2100)
	if err != nil {
		return q, err
	}
	q.Year = year
	q.Launch = strings.TrimSpace(r.URL.Query().Get("launch"))
	return q, nil
}
