package sales

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tetraedu/desempenho-backend/pkg/db/models"
	"github.com/tetraedu/desempenho-backend/pkg/enums"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
	"github.com/tetraedu/desempenho-backend/pkg/normalize"
)

const (
	podiumSize  = 3
	rankingSize = 10
)

// Service computes sales listings and aggregate stats.
type Service interface {
	Recent(ctx context.Context, limit int) ([]Record, error)
	Stats(ctx context.Context, q StatsQuery) (*OverviewStats, error)
	SellerStats(ctx context.Context, sellerName string) (*SellerStats, error)
	MonthTotals(ctx context.Context, month string, year int) ([]SellerTotal, error)
	DayTotals(ctx context.Context, date string) ([]SellerTotal, error)
}

type repository interface {
	ListRecent(ctx context.Context, limit int) ([]models.Sale, error)
	FetchForStats(ctx context.Context, q StatsQuery) ([]models.Sale, error)
	FetchBySeller(ctx context.Context, firstName string) ([]models.Sale, error)
}

type leadCounter interface {
	EnteredCount(ctx context.Context) (int, error)
}

type service struct {
	repo    repository
	leads   leadCounter
	adapter *adapter
	loc     *time.Location
	now     func() time.Time
}

// ServiceParams bundles the dependencies required to build a sales service.
type ServiceParams struct {
	Repo     repository
	Leads    leadCounter
	Logger   *logger.Logger
	Location *time.Location
	Now      func() time.Time
}

// NewService constructs a sales service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("sales repository is required")
	}
	loc := params.Location
	if loc == nil {
		loc = time.Local
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:    params.Repo,
		leads:   params.Leads,
		adapter: newAdapter(params.Logger),
		loc:     loc,
		now:     now,
	}, nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list sales")
	}
	return s.adapter.Records(ctx, rows), nil
}

func (s *service) Stats(ctx context.Context, q StatsQuery) (*OverviewStats, error) {
	rows, err := s.repo.FetchForStats(ctx, q)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch sales")
	}
	records := filterRecords(s.adapter.Records(ctx, rows), q)

	stats := &OverviewStats{
		GrossRevenue: decimal.Zero,
		NetRevenue:   decimal.Zero,
	}
	now := s.now().In(s.loc)
	yesterday := now.AddDate(0, 0, -1)
	stats.Today.Date = now.Format("2006-01-02")
	stats.Yesterday.Date = yesterday.Format("2006-01-02")
	stats.Today.NetValue = decimal.Zero
	stats.Yesterday.NetValue = decimal.Zero

	for _, rec := range records {
		stats.SalesCount++
		stats.GrossRevenue = stats.GrossRevenue.Add(rec.GrossValue)
		stats.NetRevenue = stats.NetRevenue.Add(rec.NetValue)

		if normalize.InstallmentNumber(rec.Installment) > 1 {
			stats.RecurringCount++
		}
		if strings.TrimSpace(rec.Launch) == "" {
			stats.OutOfLaunch++
		}
		if normalize.SameLocalDay(rec.Date, now) {
			stats.Today.SalesCount++
			stats.Today.NetValue = stats.Today.NetValue.Add(rec.NetValue)
		}
		if normalize.SameLocalDay(rec.Date, yesterday) {
			stats.Yesterday.SalesCount++
			stats.Yesterday.NetValue = stats.Yesterday.NetValue.Add(rec.NetValue)
		}
	}

	totals := Totals(records)
	stats.Podium = topN(totals, podiumSize)
	stats.Ranking = topN(totals, rankingSize)

	if s.leads != nil {
		leads, err := s.leads.EnteredCount(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count leads")
		}
		stats.LeadsCount = leads
		if leads > 0 {
			stats.ConversionRate = float64(stats.SalesCount) / float64(leads) * 100
		}
	}

	return stats, nil
}

func (s *service) SellerStats(ctx context.Context, sellerName string) (*SellerStats, error) {
	name := normalize.SellerName(sellerName)
	if strings.Contains(sellerName, "@") {
		name = normalize.SellerNameFromEmail(sellerName)
	}
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "seller name is required")
	}

	rows, err := s.repo.FetchBySeller(ctx, name)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch seller sales")
	}
	records := s.adapter.Records(ctx, rows)

	out := &SellerStats{
		Seller:     name,
		GrossValue: decimal.Zero,
		NetValue:   decimal.Zero,
	}
	byMonth := map[string]*MonthPoint{}
	for _, rec := range records {
		out.SalesCount++
		out.GrossValue = out.GrossValue.Add(rec.GrossValue)
		out.NetValue = out.NetValue.Add(rec.NetValue)

		month := monthKey(rec)
		point, ok := byMonth[month]
		if !ok {
			point = &MonthPoint{Month: month, NetValue: decimal.Zero}
			byMonth[month] = point
		}
		point.SalesCount++
		point.NetValue = point.NetValue.Add(rec.NetValue)
	}

	months := make([]MonthPoint, 0, len(byMonth))
	for _, point := range byMonth {
		months = append(months, *point)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	out.Months = months
	return out, nil
}

// MonthTotals folds the given month's sales per seller, for the
// monthly report.
func (s *service) MonthTotals(ctx context.Context, month string, year int) ([]SellerTotal, error) {
	rows, err := s.repo.FetchForStats(ctx, StatsQuery{Year: year})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch sales")
	}
	records := filterRecords(s.adapter.Records(ctx, rows), StatsQuery{Month: month})
	return Totals(records), nil
}

// DayTotals folds one calendar day's sales per seller.
func (s *service) DayTotals(ctx context.Context, date string) ([]SellerTotal, error) {
	year := 0
	if len(date) >= 4 {
		year, _ = strconv.Atoi(date[:4])
	}
	rows, err := s.repo.FetchForStats(ctx, StatsQuery{Year: year})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch sales")
	}
	records := filterRecords(s.adapter.Records(ctx, rows), StatsQuery{StartDate: date, EndDate: date})
	return Totals(records), nil
}

// Totals folds records into one total per normalized seller name,
// including payment-method percentages.
func Totals(records []Record) []SellerTotal {
	type fold struct {
		total  SellerTotal
		boleto int
		card   int
	}
	bySeller := map[string]*fold{}
	order := []string{}

	for _, rec := range records {
		seller := rec.Seller
		if seller == "" {
			continue
		}
		f, ok := bySeller[seller]
		if !ok {
			f = &fold{total: SellerTotal{
				Seller:     seller,
				GrossValue: decimal.Zero,
				NetValue:   decimal.Zero,
			}}
			bySeller[seller] = f
			order = append(order, seller)
		}
		f.total.SalesCount++
		f.total.GrossValue = f.total.GrossValue.Add(rec.GrossValue)
		f.total.NetValue = f.total.NetValue.Add(rec.NetValue)

		switch enums.ClassifyPaymentPlatform(rec.PaymentPlatform) {
		case enums.PaymentPlatformBoleto:
			f.boleto++
		case enums.PaymentPlatformCard:
			f.card++
		}
	}

	out := make([]SellerTotal, 0, len(order))
	for _, seller := range order {
		f := bySeller[seller]
		if f.total.SalesCount > 0 {
			f.total.BoletoPct = float64(f.boleto) / float64(f.total.SalesCount) * 100
			f.total.CardPct = float64(f.card) / float64(f.total.SalesCount) * 100
		}
		out = append(out, f.total)
	}
	return out
}

func topN(totals []SellerTotal, n int) []SellerTotal {
	sorted := append([]SellerTotal(nil), totals...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].NetValue.GreaterThan(sorted[j].NetValue)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func filterRecords(records []Record, q StatsQuery) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if q.StartDate != "" && rec.Date < q.StartDate {
			continue
		}
		if q.EndDate != "" && rec.Date > q.EndDate {
			continue
		}
		if q.Month != "" && normalize.MonthOfDate(rec.Date) != q.Month {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func monthKey(rec Record) string {
	if len(rec.Date) >= 7 {
		return rec.Date[:7]
	}
	if rec.MonthYear != "" {
		return rec.MonthYear
	}
	return "unknown"
}
