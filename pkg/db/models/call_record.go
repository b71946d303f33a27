package models

import (
	"time"

	"github.com/google/uuid"
)

// CallRecord holds one seller's call activity for a single day.
// Rows are upserted on the natural key (reference_date, seller_name).
type CallRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ReferenceDate string    `gorm:"column:reference_date;type:date;not null;uniqueIndex:idx_daily_calls_date_seller"`
	SellerName    string    `gorm:"column:seller_name;type:text;not null;uniqueIndex:idx_daily_calls_date_seller"`
	Attempts      int       `gorm:"column:attempts;not null;default:0"`
	Connects      int       `gorm:"column:connects;not null;default:0"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName maps the model onto the daily_calls table.
func (CallRecord) TableName() string {
	return "daily_calls"
}
