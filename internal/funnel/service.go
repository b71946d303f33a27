package funnel

import (
	"context"
	"fmt"
	"time"

	"github.com/tetraedu/desempenho-backend/internal/filters"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
	"github.com/tetraedu/desempenho-backend/pkg/metrics"
)

// Service computes funnel summaries. Date-bounded queries read the
// precomputed snapshots and fall back to live recounts when no
// snapshot covers the range; unrestricted queries always recount live.
type Service interface {
	Summary(ctx context.Context, set filters.Set) (*Summary, error)
}

type repository interface {
	LiveCounts(ctx context.Context, set filters.Set) (StageCounts, error)
	WonCount(ctx context.Context, set filters.Set) (int, error)
	SnapshotCounts(ctx context.Context, set filters.Set) (StageCounts, bool, error)
}

type service struct {
	repo    repository
	metrics *metrics.AggregationMetrics
	logg    *logger.Logger
}

// ServiceParams bundles the dependencies required to build a funnel service.
type ServiceParams struct {
	Repo    repository
	Metrics *metrics.AggregationMetrics
	Logger  *logger.Logger
}

// NewService constructs a funnel service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("funnel repository is required")
	}
	return &service{
		repo:    params.Repo,
		metrics: params.Metrics,
		logg:    params.Logger,
	}, nil
}

func (s *service) Summary(ctx context.Context, set filters.Set) (*Summary, error) {
	start, end := set.DateRange()
	if start.IsZero() && end.IsZero() {
		// No precomputed aggregate describes the current state.
		return s.live(ctx, set, StrategyLive)
	}

	began := time.Now()
	counts, found, err := s.repo.SnapshotCounts(ctx, set)
	s.metrics.ObserveDuration("snapshot", time.Since(began))
	if err != nil {
		s.metrics.IncFailure("snapshot")
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read funnel snapshot")
	}
	if !found {
		return s.live(ctx, set, StrategyLiveFallback)
	}

	// The snapshot job lags intraday wins, so the won stage is always
	// recounted from the live table.
	won, err := s.repo.WonCount(ctx, set)
	if err != nil {
		s.metrics.IncFailure("live")
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recount won stage")
	}
	if won != counts.Won && s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"snapshot_won": counts.Won,
			"live_won":     won,
			"start_date":   set.StartDate,
			"end_date":     set.EndDate,
		})
		s.logg.Warn(logCtx, "funnel.snapshot.won_disagreement")
	}
	counts.Won = won

	s.metrics.IncStrategy(string(StrategySnapshot))
	return &Summary{Counts: counts, Strategy: StrategySnapshot}, nil
}

func (s *service) live(ctx context.Context, set filters.Set, strategy Strategy) (*Summary, error) {
	began := time.Now()
	counts, err := s.repo.LiveCounts(ctx, set)
	s.metrics.ObserveDuration("live", time.Since(began))
	if err != nil {
		s.metrics.IncFailure("live")
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "live funnel counts")
	}
	s.metrics.IncStrategy(string(strategy))
	return &Summary{Counts: counts, Strategy: strategy}, nil
}
