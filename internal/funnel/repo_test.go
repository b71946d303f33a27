package funnel

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tetraedu/desempenho-backend/internal/filters"
	"github.com/tetraedu/desempenho-backend/pkg/enums"
)

func setupFunnelTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	for _, stage := range enums.AllFunnelStages {
		ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
  id TEXT PRIMARY KEY,
  owner TEXT,
  origin TEXT,
  tags TEXT,
  name TEXT,
  email TEXT,
  phone TEXT,
  created_at DATETIME,
  stage_entered_at DATETIME,
  won_at DATETIME,
  lost_at DATETIME
);`, stage.Table())
		require.NoError(t, db.Exec(ddl).Error)
	}

	snapshots := `
CREATE TABLE IF NOT EXISTS funnel_snapshots (
  id TEXT PRIMARY KEY,
  snapshot_date TEXT NOT NULL,
  owner_scope TEXT NOT NULL,
  summary_type TEXT NOT NULL,
  origin TEXT,
  entered INTEGER NOT NULL DEFAULT 0,
  prospecting INTEGER NOT NULL DEFAULT 0,
  connection INTEGER NOT NULL DEFAULT 0,
  negotiation INTEGER NOT NULL DEFAULT 0,
  scheduled INTEGER NOT NULL DEFAULT 0,
  closed INTEGER NOT NULL DEFAULT 0,
  won INTEGER NOT NULL DEFAULT 0,
  lost INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(snapshots).Error)

	return db
}

func insertLead(t *testing.T, db *gorm.DB, table, owner, origin, tags string) {
	t.Helper()
	err := db.Table(table).Create(map[string]any{
		"id":     uuid.NewString(),
		"owner":  owner,
		"origin": origin,
		"tags":   tags,
	}).Error
	require.NoError(t, err)
}

func TestLiveCountsCountsEveryStage(t *testing.T) {
	db := setupFunnelTestDB(t)
	repo := NewRepository(db)

	insertLead(t, db, "funnel_entered", "SABRINA", "instagram", "vip")
	insertLead(t, db, "funnel_entered", "JOAO", "facebook", "")
	insertLead(t, db, "funnel_won", "SABRINA", "instagram", "")

	counts, err := repo.LiveCounts(context.Background(), filters.DefaultSet())
	require.NoError(t, err)

	assert.Equal(t, 2, counts.Entered)
	assert.Equal(t, 1, counts.Won)
	assert.Zero(t, counts.Lost)
}

func TestLiveCountsMatchesSellerSpellings(t *testing.T) {
	db := setupFunnelTestDB(t)
	repo := NewRepository(db)

	insertLead(t, db, "funnel_entered", "Sabrina Lima", "instagram", "")
	insertLead(t, db, "funnel_entered", "SABRINA", "facebook", "")
	insertLead(t, db, "funnel_entered", "JOAO", "facebook", "")

	set := filters.DefaultSet()
	set.Seller = "Sabrina Lima"
	counts, err := repo.LiveCounts(context.Background(), set)
	require.NoError(t, err)

	assert.Equal(t, 2, counts.Entered, "raw and normalized spellings must both match")
}

func TestLiveCountsFiltersOriginAndTag(t *testing.T) {
	db := setupFunnelTestDB(t)
	repo := NewRepository(db)

	insertLead(t, db, "funnel_entered", "SABRINA", "instagram", "vip,quente")
	insertLead(t, db, "funnel_entered", "SABRINA", "instagram", "frio")
	insertLead(t, db, "funnel_entered", "SABRINA", "facebook", "vip")

	set := filters.DefaultSet()
	set.Origin = "instagram"
	set.Tag = "vip"
	counts, err := repo.LiveCounts(context.Background(), set)
	require.NoError(t, err)

	assert.Equal(t, 1, counts.Entered)
}

func insertSnapshot(t *testing.T, db *gorm.DB, date, ownerScope string, summaryType enums.SummaryType, origin *string, entered, won int) {
	t.Helper()
	err := db.Table("funnel_snapshots").Create(map[string]any{
		"id":            uuid.NewString(),
		"snapshot_date": date,
		"owner_scope":   ownerScope,
		"summary_type":  string(summaryType),
		"origin":        origin,
		"entered":       entered,
		"won":           won,
	}).Error
	require.NoError(t, err)
}

func dayOf(date string) filters.Set {
	set := filters.DefaultSet()
	set.StartDate = date
	set.EndDate = date
	return set
}

func TestSnapshotCountsSelectsSummaryType(t *testing.T) {
	db := setupFunnelTestDB(t)
	repo := NewRepository(db)

	origin := "instagram"
	insertSnapshot(t, db, "2024-03-25", enums.OwnerScopeGeneral, enums.SummaryTypeGeneral, nil, 500, 10)
	insertSnapshot(t, db, "2024-03-25", enums.OwnerScopeGeneral, enums.SummaryTypeGeneral, &origin, 200, 6)
	insertSnapshot(t, db, "2024-03-25", "SABRINA", enums.SummaryTypeBySeller, nil, 80, 3)
	insertSnapshot(t, db, "2024-03-25", "SABRINA", enums.SummaryTypeBySellerByOrigin, &origin, 30, 1)

	general, found, err := repo.SnapshotCounts(context.Background(), dayOf("2024-03-25"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 500, general.Entered)

	bySeller := dayOf("2024-03-25")
	bySeller.Seller = "Sabrina Lima"
	counts, found, err := repo.SnapshotCounts(context.Background(), bySeller)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 80, counts.Entered)

	bySellerByOrigin := bySeller
	bySellerByOrigin.Origin = "instagram"
	counts, found, err = repo.SnapshotCounts(context.Background(), bySellerByOrigin)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 30, counts.Entered)
}

func TestSnapshotCountsOriginOnlyUsesGeneralScope(t *testing.T) {
	db := setupFunnelTestDB(t)
	repo := NewRepository(db)

	origin := "instagram"
	other := "facebook"
	insertSnapshot(t, db, "2024-03-25", enums.OwnerScopeGeneral, enums.SummaryTypeGeneral, nil, 500, 10)
	insertSnapshot(t, db, "2024-03-25", enums.OwnerScopeGeneral, enums.SummaryTypeGeneral, &origin, 200, 6)
	insertSnapshot(t, db, "2024-03-25", enums.OwnerScopeGeneral, enums.SummaryTypeGeneral, &other, 90, 2)

	set := dayOf("2024-03-25")
	set.Origin = "instagram"
	counts, found, err := repo.SnapshotCounts(context.Background(), set)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 200, counts.Entered, "origin-scoped rows must win over the all-origin aggregate")
	assert.Equal(t, 6, counts.Won)
}

func TestSnapshotCountsSumsOverDateRange(t *testing.T) {
	db := setupFunnelTestDB(t)
	repo := NewRepository(db)

	insertSnapshot(t, db, "2024-03-24", enums.OwnerScopeGeneral, enums.SummaryTypeGeneral, nil, 120, 4)
	insertSnapshot(t, db, "2024-03-25", enums.OwnerScopeGeneral, enums.SummaryTypeGeneral, nil, 80, 2)
	insertSnapshot(t, db, "2024-04-01", enums.OwnerScopeGeneral, enums.SummaryTypeGeneral, nil, 999, 99)

	set := filters.DefaultSet()
	set.StartDate = "2024-03-24"
	set.EndDate = "2024-03-31"
	counts, found, err := repo.SnapshotCounts(context.Background(), set)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 200, counts.Entered, "rows inside the range must be summed")
	assert.Equal(t, 6, counts.Won)
}

func TestSnapshotCountsOpenEndedRange(t *testing.T) {
	db := setupFunnelTestDB(t)
	repo := NewRepository(db)

	insertSnapshot(t, db, "2024-03-24", enums.OwnerScopeGeneral, enums.SummaryTypeGeneral, nil, 120, 4)
	insertSnapshot(t, db, "2024-04-01", enums.OwnerScopeGeneral, enums.SummaryTypeGeneral, nil, 50, 1)

	set := filters.DefaultSet()
	set.StartDate = "2024-04-01"
	counts, found, err := repo.SnapshotCounts(context.Background(), set)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 50, counts.Entered)
}

func TestSnapshotCountsMissReturnsNotFound(t *testing.T) {
	db := setupFunnelTestDB(t)
	repo := NewRepository(db)

	_, found, err := repo.SnapshotCounts(context.Background(), dayOf("2024-03-25"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSellerCandidatesFromEmail(t *testing.T) {
	names, email := sellerCandidates("sabrina.lima@example.com")
	assert.Equal(t, "sabrina.lima@example.com", email)
	assert.Contains(t, names, "SABRINA")
}
