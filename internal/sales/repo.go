package sales

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tetraedu/desempenho-backend/pkg/db/models"
)

// Repository reads raw rows from the wide sales table.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a sales repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListRecent returns the newest rows first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]models.Sale, error) {
	var rows []models.Sale
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// FetchForStats returns the rows feeding a stats computation. Column
// filters (year, launch) run in SQL; date and month narrowing happen
// in memory after the boundary adapter fixes the encoding.
func (r *Repository) FetchForStats(ctx context.Context, q StatsQuery) ([]models.Sale, error) {
	query := r.db.WithContext(ctx).Model(&models.Sale{})
	if q.Year != 0 {
		query = query.Where("year = ?", q.Year)
	}
	if q.Launch != "" {
		query = query.Where("launch = ?", q.Launch)
	}
	var rows []models.Sale
	err := query.Find(&rows).Error
	return rows, err
}

// FetchBySeller returns the rows whose seller column contains the
// given first name, case-insensitively. The sheet stores sellers under
// full names and inconsistent casing, so exact matching undercounts.
func (r *Repository) FetchBySeller(ctx context.Context, firstName string) ([]models.Sale, error) {
	var rows []models.Sale
	err := r.db.WithContext(ctx).
		Where("UPPER(seller) LIKE ?", "%"+strings.ToUpper(firstName)+"%").
		Find(&rows).Error
	return rows, err
}
