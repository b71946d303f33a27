package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tetraedu/desempenho-backend/internal/calls"
	"github.com/tetraedu/desempenho-backend/internal/sales"
	"github.com/tetraedu/desempenho-backend/pkg/normalize"
)

// MonthlySellerRow is one seller's line on the monthly report.
type MonthlySellerRow struct {
	Seller     string          `json:"seller"`
	SalesCount int             `json:"sales_count"`
	GrossValue decimal.Decimal `json:"gross_value"`
	NetValue   decimal.Decimal `json:"net_value"`
	BoletoPct  float64         `json:"boleto_pct"`
	CardPct    float64         `json:"card_pct"`
	Attempts   int             `json:"attempts"`
	Connects   int             `json:"connects"`
}

// MonthlyReport joins one month's sales and call activity per seller.
type MonthlyReport struct {
	Month   string             `json:"month"`
	Sellers []MonthlySellerRow `json:"sellers"`
}

// AssembleMonthly merges sales totals with call totals over the union
// of seller keys, deduplicating sellers whose spellings normalize to
// the same first name. Payment percentages of merged entries are
// averaged weighted by sales count, which equals recomputing them over
// the combined sale set.
func AssembleMonthly(month string, salesTotals []sales.SellerTotal, callTotals map[string]calls.SellerTotals) *MonthlyReport {
	rows := map[string]*MonthlySellerRow{}
	ensure := func(seller string) *MonthlySellerRow {
		key := normalize.SellerName(seller)
		if key == "" {
			return nil
		}
		row, ok := rows[key]
		if !ok {
			row = &MonthlySellerRow{
				Seller:     key,
				GrossValue: decimal.Zero,
				NetValue:   decimal.Zero,
			}
			rows[key] = row
		}
		return row
	}

	for _, total := range salesTotals {
		row := ensure(total.Seller)
		if row == nil {
			continue
		}
		merged := row.SalesCount + total.SalesCount
		if merged > 0 {
			row.BoletoPct = (row.BoletoPct*float64(row.SalesCount) + total.BoletoPct*float64(total.SalesCount)) / float64(merged)
			row.CardPct = (row.CardPct*float64(row.SalesCount) + total.CardPct*float64(total.SalesCount)) / float64(merged)
		}
		row.SalesCount = merged
		row.GrossValue = row.GrossValue.Add(total.GrossValue)
		row.NetValue = row.NetValue.Add(total.NetValue)
	}
	for seller, total := range callTotals {
		row := ensure(seller)
		if row == nil {
			continue
		}
		row.Attempts += total.Attempts
		row.Connects += total.Connects
	}

	report := &MonthlyReport{Month: month}
	for _, row := range rows {
		report.Sellers = append(report.Sellers, *row)
	}
	sort.Slice(report.Sellers, func(i, j int) bool {
		a, b := report.Sellers[i], report.Sellers[j]
		if !a.NetValue.Equal(b.NetValue) {
			return a.NetValue.GreaterThan(b.NetValue)
		}
		return a.Seller < b.Seller
	})
	return report
}
