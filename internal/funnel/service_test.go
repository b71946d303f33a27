package funnel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetraedu/desempenho-backend/internal/filters"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
)

type fakeRepo struct {
	live          StageCounts
	liveErr       error
	won           int
	wonErr        error
	snapshot      StageCounts
	snapshotHit   bool
	snapshotErr   error
	snapshotSet   filters.Set
	snapshotCalls int
	liveCalls     int
}

func (f *fakeRepo) LiveCounts(ctx context.Context, set filters.Set) (StageCounts, error) {
	f.liveCalls++
	return f.live, f.liveErr
}

func (f *fakeRepo) WonCount(ctx context.Context, set filters.Set) (int, error) {
	return f.won, f.wonErr
}

func (f *fakeRepo) SnapshotCounts(ctx context.Context, set filters.Set) (StageCounts, bool, error) {
	f.snapshotCalls++
	f.snapshotSet = set
	return f.snapshot, f.snapshotHit, f.snapshotErr
}

func buildService(t *testing.T, repo *fakeRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	require.NoError(t, err)
	return svc
}

func TestSummaryRangedPrefersSnapshot(t *testing.T) {
	repo := &fakeRepo{
		snapshot:    StageCounts{Entered: 100, Prospecting: 60, Won: 4},
		snapshotHit: true,
		won:         7,
	}
	svc := buildService(t, repo)

	set := filters.DefaultSet()
	set.StartDate = "2024-03-01"
	set.EndDate = "2024-03-25"
	got, err := svc.Summary(context.Background(), set)
	require.NoError(t, err)

	assert.Equal(t, StrategySnapshot, got.Strategy)
	assert.Equal(t, 100, got.Counts.Entered)
	assert.Equal(t, 7, got.Counts.Won, "won stage must come from the live table")
	assert.Equal(t, "2024-03-01", repo.snapshotSet.StartDate)
	assert.Equal(t, "2024-03-25", repo.snapshotSet.EndDate)
	assert.Zero(t, repo.liveCalls)
}

func TestSummaryRangedFallsBackToLiveWhenSnapshotEmpty(t *testing.T) {
	repo := &fakeRepo{
		live: StageCounts{Entered: 42, Won: 3},
	}
	svc := buildService(t, repo)

	set := filters.DefaultSet()
	set.StartDate = "2024-03-01"
	got, err := svc.Summary(context.Background(), set)
	require.NoError(t, err)

	assert.Equal(t, StrategyLiveFallback, got.Strategy)
	assert.Equal(t, 42, got.Counts.Entered)
	assert.Equal(t, 1, repo.snapshotCalls)
	assert.Equal(t, 1, repo.liveCalls)
}

func TestSummaryUnfilteredGoesLive(t *testing.T) {
	repo := &fakeRepo{
		snapshotHit: true,
		live:        StageCounts{Entered: 9},
	}
	svc := buildService(t, repo)

	got, err := svc.Summary(context.Background(), filters.DefaultSet())
	require.NoError(t, err)

	assert.Equal(t, StrategyLive, got.Strategy)
	assert.Equal(t, 9, got.Counts.Entered)
	assert.Zero(t, repo.snapshotCalls, "current-state queries have no snapshot to read")
}

func TestSummaryOpenEndedRangeReadsSnapshot(t *testing.T) {
	repo := &fakeRepo{
		snapshot:    StageCounts{Entered: 12, Won: 2},
		snapshotHit: true,
		won:         2,
	}
	svc := buildService(t, repo)

	set := filters.DefaultSet()
	set.EndDate = "2024-03-31"
	got, err := svc.Summary(context.Background(), set)
	require.NoError(t, err)

	assert.Equal(t, StrategySnapshot, got.Strategy)
	assert.Equal(t, 1, repo.snapshotCalls)
	assert.Zero(t, repo.liveCalls)
}

func TestSummaryLiveFailureIsCoded(t *testing.T) {
	repo := &fakeRepo{liveErr: errors.New("connection reset")}
	svc := buildService(t, repo)

	_, err := svc.Summary(context.Background(), filters.DefaultSet())
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInternal, typed.Code())
}

func TestSummarySnapshotErrorSurfaces(t *testing.T) {
	repo := &fakeRepo{snapshotErr: errors.New("boom")}
	svc := buildService(t, repo)

	set := filters.DefaultSet()
	set.StartDate = "2024-03-01"
	_, err := svc.Summary(context.Background(), set)
	require.Error(t, err)
	assert.Zero(t, repo.liveCalls, "snapshot failures must not silently recount")
}
