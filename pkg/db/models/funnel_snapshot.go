package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/tetraedu/desempenho-backend/pkg/enums"
)

// FunnelSnapshot is one precomputed daily aggregate of funnel stage
// counts, maintained by an external rollup job. OwnerScope is either a
// specific seller identifier or the GENERAL sentinel; Origin is nil on
// rows aggregated across all origins.
type FunnelSnapshot struct {
	ID           uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	SnapshotDate string            `gorm:"column:snapshot_date;type:date;not null"`
	OwnerScope   string            `gorm:"column:owner_scope;type:text;not null"`
	SummaryType  enums.SummaryType `gorm:"column:summary_type;type:text;not null"`
	Origin       *string           `gorm:"column:origin;type:text"`
	Entered      int               `gorm:"column:entered;not null;default:0"`
	Prospecting  int               `gorm:"column:prospecting;not null;default:0"`
	Connection   int               `gorm:"column:connection;not null;default:0"`
	Negotiation  int               `gorm:"column:negotiation;not null;default:0"`
	Scheduled    int               `gorm:"column:scheduled;not null;default:0"`
	Closed       int               `gorm:"column:closed;not null;default:0"`
	Won          int               `gorm:"column:won;not null;default:0"`
	Lost         int               `gorm:"column:lost;not null;default:0"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
}

// TableName maps the model onto the funnel_snapshots table.
func (FunnelSnapshot) TableName() string {
	return "funnel_snapshots"
}
