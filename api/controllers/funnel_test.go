package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tetraedu/desempenho-backend/internal/filters"
	"github.com/tetraedu/desempenho-backend/internal/funnel"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
)

type stubFunnelService struct {
	summary *funnel.Summary
	err     error
	gotSet  filters.Set
}

func (s *stubFunnelService) Summary(ctx context.Context, set filters.Set) (*funnel.Summary, error) {
	s.gotSet = set
	return s.summary, s.err
}

func TestFunnelSummaryDecodesQueryFilters(t *testing.T) {
	stub := &stubFunnelService{summary: &funnel.Summary{
		Counts:   funnel.StageCounts{Entered: 12, Won: 3},
		Strategy: funnel.StrategySnapshot,
	}}
	handler := FunnelSummary(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/funnel?seller=Sabrina&origin=instagram&start_date=2024-03-01", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.gotSet.Seller != "Sabrina" || stub.gotSet.Origin != "instagram" {
		t.Fatalf("unexpected filter set %+v", stub.gotSet)
	}
	if stub.gotSet.Tag != filters.All {
		t.Fatalf("absent tag should default to the sentinel, got %q", stub.gotSet.Tag)
	}
	if stub.gotSet.StartDate != "2024-03-01" {
		t.Fatalf("unexpected start date %q", stub.gotSet.StartDate)
	}

	var envelope struct {
		Data struct {
			Counts   funnel.StageCounts `json:"counts"`
			Strategy string             `json:"strategy"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Strategy != string(funnel.StrategySnapshot) {
		t.Fatalf("expected snapshot strategy got %q", envelope.Data.Strategy)
	}
	if envelope.Data.Counts.Entered != 12 {
		t.Fatalf("expected 12 entered got %d", envelope.Data.Counts.Entered)
	}
}

func TestFunnelSummaryServiceErrorMapsToStatus(t *testing.T) {
	stub := &stubFunnelService{err: pkgerrors.New(pkgerrors.CodeInternal, "boom")}
	handler := FunnelSummary(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/funnel", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
