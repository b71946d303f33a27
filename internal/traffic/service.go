package traffic

import (
	"context"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
)

type rowFetcher interface {
	Fetch(ctx context.Context) ([]DayRow, error)
}

// Service turns raw webhook rows into the traffic report.
type Service struct {
	fetcher rowFetcher
	logg    *logger.Logger
}

func NewService(fetcher rowFetcher, logg *logger.Logger) *Service {
	return &Service{fetcher: fetcher, logg: logg}
}

// Report fetches the current rows and derives totals. The date range
// is optional; bounds are inclusive ISO dates.
func (s *Service) Report(ctx context.Context, startDate, endDate string) (*Report, error) {
	rows, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load traffic rows")
	}

	if s.logg != nil {
		s.logg.Debug(s.logg.WithField(ctx, "rows", len(rows)), "traffic.webhook.fetched")
	}

	filtered := rows[:0:0]
	for _, row := range rows {
		if startDate != "" && row.Date < startDate {
			continue
		}
		if endDate != "" && row.Date > endDate {
			continue
		}
		filtered = append(filtered, row)
	}

	return &Report{
		Totals: ComputeMetrics(filtered),
		Days:   filtered,
	}, nil
}

// ComputeMetrics folds day rows into totals and derives the ratio
// KPIs. Every denominator is guarded; empty input yields all zeros.
func ComputeMetrics(rows []DayRow) Metrics {
	var m Metrics
	for _, row := range rows {
		m.Spend = m.Spend.Add(row.Spend)
		m.Impressions = m.Impressions.Add(row.Impressions)
		m.Reach = m.Reach.Add(row.Reach)
		m.Clicks = m.Clicks.Add(row.Clicks)
		m.PageViews = m.PageViews.Add(row.PageViews)
		m.Leads = m.Leads.Add(row.Leads)
	}

	m.Frequency = safeRatio(m.Impressions, m.Reach, 1)
	m.CTR = safeRatio(m.Clicks, m.Impressions, 100)
	m.CPM = safeRatio(m.Spend, m.Impressions, 1000)
	m.CPL = safeRatio(m.Spend, m.Leads, 1)
	m.PageViewRate = safeRatio(m.PageViews, m.Clicks, 100)
	m.Conversion = safeRatio(m.Leads, m.PageViews, 100)
	return m
}

func safeRatio(num, den decimal.Decimal, scale float64) float64 {
	if den.IsZero() {
		return 0
	}
	value, _ := num.Div(den).Float64()
	return value * scale
}
