package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/tetraedu/desempenho-backend/internal/calls"
	"github.com/tetraedu/desempenho-backend/internal/sales"
	"github.com/tetraedu/desempenho-backend/pkg/db/models"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
)

// Service produces the daily and monthly dashboard reports.
type Service interface {
	Daily(ctx context.Context) (*DailyReport, error)
	Monthly(ctx context.Context) (*MonthlyReport, error)
}

type salesSource interface {
	DayTotals(ctx context.Context, date string) ([]sales.SellerTotal, error)
	MonthTotals(ctx context.Context, month string, year int) ([]sales.SellerTotal, error)
}

type callsSource interface {
	DayRows(ctx context.Context, date string) ([]models.CallRecord, error)
	MonthRows(ctx context.Context, month string) ([]models.CallRecord, error)
}

type service struct {
	sales salesSource
	calls callsSource
	loc   *time.Location
	now   func() time.Time
}

// ServiceParams bundles the dependencies required to build a reports service.
type ServiceParams struct {
	Sales    salesSource
	Calls    callsSource
	Location *time.Location
	Now      func() time.Time
}

// NewService constructs a reports service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Sales == nil {
		return nil, fmt.Errorf("sales source is required")
	}
	if params.Calls == nil {
		return nil, fmt.Errorf("calls source is required")
	}
	loc := params.Location
	if loc == nil {
		loc = time.Local
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{sales: params.Sales, calls: params.Calls, loc: loc, now: now}, nil
}

func (s *service) Daily(ctx context.Context) (*DailyReport, error) {
	date := s.now().In(s.loc).Format("2006-01-02")

	salesTotals, err := s.sales.DayTotals(ctx, date)
	if err != nil {
		return nil, err
	}
	callRows, err := s.calls.DayRows(ctx, date)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch day calls")
	}

	return AssembleDaily(date, salesTotals, calls.TotalsBySeller(callRows)), nil
}

func (s *service) Monthly(ctx context.Context) (*MonthlyReport, error) {
	now := s.now().In(s.loc)
	month := now.Format("2006-01")

	salesTotals, err := s.sales.MonthTotals(ctx, fmt.Sprintf("%02d", int(now.Month())), now.Year())
	if err != nil {
		return nil, err
	}
	callRows, err := s.calls.MonthRows(ctx, month)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch month calls")
	}

	return AssembleMonthly(month, salesTotals, calls.TotalsBySeller(callRows)), nil
}
