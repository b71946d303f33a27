package sellers

import (
	"context"

	"gorm.io/gorm"

	"github.com/tetraedu/desempenho-backend/pkg/db/models"
)

// Repository exposes roster persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a sellers repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns active roster entries ordered by name.
func (r *Repository) ListActive(ctx context.Context) ([]models.Seller, error) {
	var out []models.Seller
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

// FindByEmail retrieves the roster entry matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&seller).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}
