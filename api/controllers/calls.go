package controllers

import (
	"context"
	"net/http"

	"github.com/tetraedu/desempenho-backend/api/responses"
	"github.com/tetraedu/desempenho-backend/api/validators"
	"github.com/tetraedu/desempenho-backend/internal/calls"
	"github.com/tetraedu/desempenho-backend/pkg/db/models"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
)

const (
	defaultCallsLimit = 60
	maxCallsLimit     = 500
)

type callsRepository interface {
	ListRecent(ctx context.Context, limit int) ([]models.CallRecord, error)
	UpsertBatch(ctx context.Context, rows []calls.UpsertRow) (int, error)
}

type callsUpsertRequest struct {
	Rows []calls.UpsertRow `json:"rows" validate:"required,min=1,dive"`
}

// CallsList returns the most recent daily call rows.
func CallsList(repo callsRepository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "calls repository unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultCallsLimit, 1, maxCallsLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := repo.ListRecent(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// CallsUpsert ingests a batch of daily call rows, replacing any row
// that already exists for the same date and seller.
func CallsUpsert(repo callsRepository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "calls repository unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body callsUpsertRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		count, err := repo.UpsertBatch(r.Context(), body.Rows)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]int{"upserted": count})
	}
}
