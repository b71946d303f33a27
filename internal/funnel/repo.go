package funnel

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/tetraedu/desempenho-backend/internal/filters"
	"github.com/tetraedu/desempenho-backend/pkg/db/models"
	"github.com/tetraedu/desempenho-backend/pkg/enums"
	"github.com/tetraedu/desempenho-backend/pkg/normalize"
)

// Repository runs funnel aggregation queries against the stage tables
// and the snapshot table.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a funnel repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LiveCounts counts every stage table concurrently under the filter
// set. A failed member query fails the whole batch.
func (r *Repository) LiveCounts(ctx context.Context, set filters.Set) (StageCounts, error) {
	var counts StageCounts
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, stage := range enums.AllFunnelStages {
		stage := stage
		g.Go(func() error {
			n, err := r.countStage(gctx, stage, set)
			if err != nil {
				return fmt.Errorf("count %s: %w", stage, err)
			}
			mu.Lock()
			counts.Set(stage, n)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return StageCounts{}, err
	}
	return counts, nil
}

// EnteredCount counts the funnel's entry table without filters. The
// entry table doubles as the lead base for conversion rates.
func (r *Repository) EnteredCount(ctx context.Context) (int, error) {
	return r.countStage(ctx, enums.FunnelStageEntered, filters.Set{})
}

// WonCount recounts the won stage directly.
func (r *Repository) WonCount(ctx context.Context, set filters.Set) (int, error) {
	return r.countStage(ctx, enums.FunnelStageWon, set)
}

func (r *Repository) countStage(ctx context.Context, stage enums.FunnelStage, set filters.Set) (int, error) {
	q := applyLeadFilters(r.db.WithContext(ctx).Table(stage.Table()), set)
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

// SnapshotCounts sums the precomputed daily aggregates matching the
// filter set over its date range. Open-ended ranges keep only the
// bound that is present; a single-day range matches that day exactly.
// The boolean is false when no snapshot row matched.
func (r *Repository) SnapshotCounts(ctx context.Context, set filters.Set) (StageCounts, bool, error) {
	q := r.db.WithContext(ctx).Model(&models.FunnelSnapshot{})

	switch {
	case set.SellerRestricted() && set.OriginRestricted():
		q = q.Where("summary_type = ? AND owner_scope = ? AND origin = ?",
			enums.SummaryTypeBySellerByOrigin, normalize.SellerName(set.Seller), set.Origin)
	case set.SellerRestricted():
		q = q.Where("summary_type = ? AND owner_scope = ? AND origin IS NULL",
			enums.SummaryTypeBySeller, normalize.SellerName(set.Seller))
	case set.OriginRestricted():
		q = q.Where("summary_type = ? AND owner_scope = ? AND origin = ?",
			enums.SummaryTypeGeneral, enums.OwnerScopeGeneral, set.Origin)
	default:
		q = q.Where("summary_type = ? AND owner_scope = ? AND origin IS NULL",
			enums.SummaryTypeGeneral, enums.OwnerScopeGeneral)
	}

	switch {
	case set.StartDate != "" && set.StartDate == set.EndDate:
		q = q.Where("snapshot_date = ?", set.StartDate)
	default:
		if set.StartDate != "" {
			q = q.Where("snapshot_date >= ?", set.StartDate)
		}
		if set.EndDate != "" {
			q = q.Where("snapshot_date <= ?", set.EndDate)
		}
	}

	var agg struct {
		Matched     int64
		Entered     int
		Prospecting int
		Connection  int
		Negotiation int
		Scheduled   int
		Closed      int
		Won         int
		Lost        int
	}
	err := q.Select(`COUNT(*) AS matched,
		COALESCE(SUM(entered), 0) AS entered,
		COALESCE(SUM(prospecting), 0) AS prospecting,
		COALESCE(SUM(connection), 0) AS connection,
		COALESCE(SUM(negotiation), 0) AS negotiation,
		COALESCE(SUM(scheduled), 0) AS scheduled,
		COALESCE(SUM(closed), 0) AS closed,
		COALESCE(SUM(won), 0) AS won,
		COALESCE(SUM(lost), 0) AS lost`).
		Scan(&agg).Error
	if err != nil {
		return StageCounts{}, false, err
	}
	if agg.Matched == 0 {
		return StageCounts{}, false, nil
	}

	return StageCounts{
		Entered:     agg.Entered,
		Prospecting: agg.Prospecting,
		Connection:  agg.Connection,
		Negotiation: agg.Negotiation,
		Scheduled:   agg.Scheduled,
		Closed:      agg.Closed,
		Won:         agg.Won,
		Lost:        agg.Lost,
	}, true, nil
}

// applyLeadFilters narrows a stage-table query by the filter set. The
// seller dimension matches the owner column against every spelling the
// sheets produce, plus the lead email when the filter value is one.
func applyLeadFilters(q *gorm.DB, set filters.Set) *gorm.DB {
	if set.SellerRestricted() {
		names, email := sellerCandidates(set.Seller)
		if email != "" {
			q = q.Where("owner IN ? OR email = ?", names, email)
		} else {
			q = q.Where("owner IN ?", names)
		}
	}
	if set.OriginRestricted() {
		q = q.Where("origin = ?", set.Origin)
	}
	if set.TagRestricted() {
		q = q.Where("tags LIKE ?", "%"+set.Tag+"%")
	}
	start, end := set.DateRange()
	if !start.IsZero() {
		q = q.Where("created_at >= ?", start)
	}
	if !end.IsZero() {
		q = q.Where("created_at < ?", end.AddDate(0, 0, 1))
	}
	return q
}

func sellerCandidates(raw string) (names []string, email string) {
	value := strings.TrimSpace(raw)
	if strings.Contains(value, "@") {
		email = strings.ToLower(value)
		value = normalize.SellerNameFromEmail(value)
	}

	seen := map[string]struct{}{}
	add := func(candidate string) {
		if candidate == "" {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		names = append(names, candidate)
	}

	add(value)
	add(normalize.SellerName(value))
	add(normalize.TitleCaseName(value))
	return names, email
}
