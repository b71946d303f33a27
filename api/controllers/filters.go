package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tetraedu/desempenho-backend/api/responses"
	"github.com/tetraedu/desempenho-backend/api/validators"
	"github.com/tetraedu/desempenho-backend/internal/filters"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
)

const maxFilterKeyLen = 64

type filterOptionsLoader interface {
	Load(ctx context.Context) (*filters.Options, error)
}

// FilterOptions lists the distinct sellers, origins and tags available
// for filtering, sourced from the lead table.
func FilterOptions(repo filterOptionsLoader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "filter options unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		options, err := repo.Load(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, options)
	}
}

// FiltersGet resolves the effective filter state for a key: URL query
// parameters win over the stored state, which wins over defaults.
func FiltersGet(store *filters.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "filter store unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		key, err := filterKey(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		set, err := store.Resolve(r.Context(), key, r.URL.Query())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, set)
	}
}

// FiltersPut persists a filter state under the key. Unknown or
// malformed dimension values collapse to the unrestricted sentinel.
func FiltersPut(store *filters.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "filter store unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		key, err := filterKey(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body filters.Set
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// Round-tripping through the query codec normalizes sentinels
		// and drops malformed dates.
		set := filters.DecodeQuery(body.EncodeQuery(), filters.DefaultSet())
		if err := store.Save(r.Context(), key, set); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, set)
	}
}

// FiltersDelete clears the stored state for a key.
func FiltersDelete(store *filters.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "filter store unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		key, err := filterKey(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.Clear(r.Context(), key); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}

func filterKey(r *http.Request) (string, error) {
	key := strings.TrimSpace(chi.URLParam(r, "key"))
	if key == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "filter key is required")
	}
	if len(key) > maxFilterKeyLen {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "filter key is too long")
	}
	return key, nil
}
