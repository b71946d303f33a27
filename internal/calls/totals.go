package calls

import (
	"github.com/tetraedu/desempenho-backend/pkg/db/models"
	"github.com/tetraedu/desempenho-backend/pkg/normalize"
)

// SellerTotals is one seller's attempt/connect fold.
type SellerTotals struct {
	Attempts int `json:"attempts"`
	Connects int `json:"connects"`
}

// TotalsBySeller folds rows into per-seller sums keyed by normalized
// seller name, so historic rows written before ingest normalization
// still merge with their canonical spelling.
func TotalsBySeller(rows []models.CallRecord) map[string]SellerTotals {
	out := map[string]SellerTotals{}
	for _, row := range rows {
		seller := normalize.SellerName(row.SellerName)
		if seller == "" {
			continue
		}
		totals := out[seller]
		totals.Attempts += row.Attempts
		totals.Connects += row.Connects
		out[seller] = totals
	}
	return out
}
