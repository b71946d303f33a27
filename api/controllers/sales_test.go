package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tetraedu/desempenho-backend/api/middleware"
	"github.com/tetraedu/desempenho-backend/internal/sales"
)

type stubSalesService struct {
	records     []sales.Record
	stats       *sales.OverviewStats
	sellerStats *sales.SellerStats
	err         error

	gotLimit  int
	gotQuery  sales.StatsQuery
	gotSeller string
}

func (s *stubSalesService) Recent(ctx context.Context, limit int) ([]sales.Record, error) {
	s.gotLimit = limit
	return s.records, s.err
}

func (s *stubSalesService) Stats(ctx context.Context, q sales.StatsQuery) (*sales.OverviewStats, error) {
	s.gotQuery = q
	return s.stats, s.err
}

func (s *stubSalesService) SellerStats(ctx context.Context, sellerName string) (*sales.SellerStats, error) {
	s.gotSeller = sellerName
	return s.sellerStats, s.err
}

func (s *stubSalesService) MonthTotals(ctx context.Context, month string, year int) ([]sales.SellerTotal, error) {
	return nil, s.err
}

func (s *stubSalesService) DayTotals(ctx context.Context, date string) ([]sales.SellerTotal, error) {
	return nil, s.err
}

func TestSalesListAppliesLimitDefault(t *testing.T) {
	stub := &stubSalesService{records: []sales.Record{{ID: 1, Seller: "SABRINA", NetValue: decimal.NewFromInt(100)}}}
	handler := SalesList(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.gotLimit != defaultSalesLimit {
		t.Fatalf("expected default limit %d got %d", defaultSalesLimit, stub.gotLimit)
	}
}

func TestSalesListRejectsOutOfRangeLimit(t *testing.T) {
	handler := SalesList(&stubSalesService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales?limit=9999", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestSalesStatsParsesQueryWindow(t *testing.T) {
	stub := &stubSalesService{stats: &sales.OverviewStats{SalesCount: 4}}
	handler := SalesStats(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/stats?start_date=2024-03-01&end_date=2024-03-31&month=03&year=2024&launch=L7", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	want := sales.StatsQuery{StartDate: "2024-03-01", EndDate: "2024-03-31", Month: "03", Year: 2024, Launch: "L7"}
	if stub.gotQuery != want {
		t.Fatalf("expected query %+v got %+v", want, stub.gotQuery)
	}
}

func TestSalesStatsRejectsInvertedRangeAndBadMonth(t *testing.T) {
	handler := SalesStats(&stubSalesService{}, nil)

	for _, target := range []string{
		"/api/v1/sales/stats?start_date=2024-03-31&end_date=2024-03-01",
		"/api/v1/sales/stats?month=13",
		"/api/v1/sales/stats?month=3",
		"/api/v1/sales/stats?start_date=31-03-2024",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s got %d", target, resp.Code)
		}
	}
}

func TestSellerOwnStatsRequiresSellerIdentity(t *testing.T) {
	handler := SellerOwnStats(&stubSalesService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/me/stats", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestSellerOwnStatsScopesToTokenSeller(t *testing.T) {
	stub := &stubSalesService{sellerStats: &sales.SellerStats{Seller: "SABRINA"}}
	handler := SellerOwnStats(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/me/stats", nil)
	ctx := middleware.WithIdentity(req.Context(), "user-1", "sabrina.lima@example.com", "SABRINA", false)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req.WithContext(ctx))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.gotSeller != "SABRINA" {
		t.Fatalf("expected seller from token, got %q", stub.gotSeller)
	}

	var envelope struct {
		Data sales.SellerStats `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Seller != "SABRINA" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}
