package models

import (
	"time"

	"github.com/google/uuid"
)

// Seller is one entry of the active-seller roster, used to resolve
// display names and the dashboard's seller filter list.
type Seller struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text;uniqueIndex"`
	PhotoURL  string    `gorm:"column:photo_url;type:text"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName maps the model onto the sellers table.
func (Seller) TableName() string {
	return "sellers"
}
