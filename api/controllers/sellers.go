package controllers

import (
	"context"
	"net/http"

	"github.com/tetraedu/desempenho-backend/api/responses"
	"github.com/tetraedu/desempenho-backend/internal/sellers"
	"github.com/tetraedu/desempenho-backend/pkg/db/models"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
)

type sellersRepository interface {
	ListActive(ctx context.Context) ([]models.Seller, error)
}

// SellersList returns the active seller roster, used by the dashboard
// for podium photos and display names.
func SellersList(repo sellersRepository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "sellers repository unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := repo.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dtos := make([]*sellers.SellerDTO, 0, len(rows))
		for i := range rows {
			dtos = append(dtos, sellers.FromModel(&rows[i]))
		}
		responses.WriteSuccess(w, dtos)
	}
}
