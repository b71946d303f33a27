package filters

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/tetraedu/desempenho-backend/pkg/enums"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
)

// Options holds the selectable values for each filter dimension.
type Options struct {
	Sellers []string `json:"sellers"`
	Origins []string `json:"origins"`
	Tags    []string `json:"tags"`
}

// OptionsRepository reads distinct dimension values from the lead table.
type OptionsRepository struct {
	db *gorm.DB
}

// NewOptionsRepository constructs a repo bound to the provided GORM DB.
func NewOptionsRepository(db *gorm.DB) *OptionsRepository {
	return &OptionsRepository{db: db}
}

// Load returns the distinct sellers, origins and split tags found on
// the funnel's entry table.
func (r *OptionsRepository) Load(ctx context.Context) (*Options, error) {
	table := enums.FunnelStageEntered.Table()

	sellers, err := r.distinct(ctx, table, "owner")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load seller options")
	}
	origins, err := r.distinct(ctx, table, "origin")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load origin options")
	}
	rawTags, err := r.distinct(ctx, table, "tags")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load tag options")
	}

	return &Options{
		Sellers: sellers,
		Origins: origins,
		Tags:    SplitTags(rawTags),
	}, nil
}

func (r *OptionsRepository) distinct(ctx context.Context, table, column string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Table(table).
		Distinct(column).
		Where(column + " IS NOT NULL AND " + column + " <> ''").
		Order(column + " ASC").
		Pluck(column, &values).Error
	return values, err
}

// SplitTags explodes comma-separated tag cells into a sorted, deduped
// list of individual tags.
func SplitTags(raw []string) []string {
	seen := map[string]struct{}{}
	for _, cell := range raw {
		for _, part := range strings.Split(cell, ",") {
			tag := strings.TrimSpace(part)
			if tag == "" {
				continue
			}
			seen[tag] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
