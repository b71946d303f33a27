package calls

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tetraedu/desempenho-backend/pkg/db/models"
	"github.com/tetraedu/desempenho-backend/pkg/normalize"
)

// Repository persists per-day call activity rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a calls repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertRow is one ingested call-activity line.
type UpsertRow struct {
	ReferenceDate string `json:"reference_date" validate:"required,datetime=2006-01-02"`
	SellerName    string `json:"seller_name" validate:"required"`
	Attempts      int    `json:"attempts" validate:"gte=0"`
	Connects      int    `json:"connects" validate:"gte=0"`
}

// UpsertBatch inserts or replaces rows on the (reference_date,
// seller_name) natural key. Seller names are normalized before the
// write so re-uploads with different spellings land on the same row.
func (r *Repository) UpsertBatch(ctx context.Context, rows []UpsertRow) (int, error) {
	records := make([]models.CallRecord, 0, len(rows))
	for _, row := range rows {
		seller := normalize.SellerName(row.SellerName)
		if seller == "" || strings.TrimSpace(row.ReferenceDate) == "" {
			continue
		}
		records = append(records, models.CallRecord{
			ReferenceDate: row.ReferenceDate,
			SellerName:    seller,
			Attempts:      row.Attempts,
			Connects:      row.Connects,
		})
	}
	if len(records) == 0 {
		return 0, nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "reference_date"}, {Name: "seller_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"attempts", "connects", "updated_at"}),
		}).
		Create(&records).Error
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// ListRecent returns the newest rows first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]models.CallRecord, error) {
	var rows []models.CallRecord
	err := r.db.WithContext(ctx).
		Order("reference_date DESC, seller_name ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// DayRows returns every row for one reference date.
func (r *Repository) DayRows(ctx context.Context, date string) ([]models.CallRecord, error) {
	var rows []models.CallRecord
	err := r.db.WithContext(ctx).
		Where("reference_date = ?", date).
		Find(&rows).Error
	return rows, err
}

// MonthRows returns every row whose reference date falls inside the
// given YYYY-MM month.
func (r *Repository) MonthRows(ctx context.Context, month string) ([]models.CallRecord, error) {
	var rows []models.CallRecord
	err := r.db.WithContext(ctx).
		Where("reference_date >= ? AND reference_date < ?", month+"-01", nextMonth(month)+"-01").
		Find(&rows).Error
	return rows, err
}

func nextMonth(month string) string {
	parts := strings.SplitN(month, "-", 2)
	if len(parts) != 2 {
		return month
	}
	year, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	if m >= 12 {
		return fmt.Sprintf("%04d-%02d", year+1, 1)
	}
	return fmt.Sprintf("%04d-%02d", year, m+1)
}
