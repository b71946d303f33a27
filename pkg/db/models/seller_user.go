package models

import (
	"time"

	"github.com/google/uuid"
)

// SellerUser is a dashboard login account. PasswordHash is never
// serialized; login responses use the sanitized auth DTO instead.
type SellerUser struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string     `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;type:text;not null" json:"-"`
	SellerName   string     `gorm:"column:seller_name;type:text"`
	FullName     string     `gorm:"column:full_name;type:text"`
	IsAdmin      bool       `gorm:"column:is_admin;not null;default:false"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName maps the model onto the seller_users table.
func (SellerUser) TableName() string {
	return "seller_users"
}
