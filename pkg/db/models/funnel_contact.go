package models

import (
	"time"

	"github.com/google/uuid"
)

// FunnelContact is one contact row inside a funnel stage table. All eight
// stage tables share this shape; the stage decides which table a query
// targets, so the struct carries no TableName of its own.
type FunnelContact struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Owner          string     `gorm:"type:text"`
	Origin         string     `gorm:"type:text"`
	Tags           string     `gorm:"type:text"`
	Name           string     `gorm:"type:text"`
	Email          string     `gorm:"type:text"`
	Phone          string     `gorm:"type:text"`
	CreatedAt      time.Time  `gorm:"column:created_at;type:timestamptz"`
	StageEnteredAt *time.Time `gorm:"column:stage_entered_at;type:timestamptz"`
	WonAt          *time.Time `gorm:"column:won_at;type:timestamptz"`
	LostAt         *time.Time `gorm:"column:lost_at;type:timestamptz"`
}
