package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tetraedu/desempenho-backend/pkg/db/models"
)

// Repository exposes login-account persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an auth repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByEmail retrieves the account matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.SellerUser, error) {
	var user models.SellerUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateLastLogin refreshes the account's last_login_at timestamp.
func (r *Repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.SellerUser{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}
