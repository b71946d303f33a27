package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tetraedu/desempenho-backend/internal/calls"
	"github.com/tetraedu/desempenho-backend/internal/sales"
	"github.com/tetraedu/desempenho-backend/pkg/normalize"
)

// DailySellerRow is one seller's line on the daily report.
type DailySellerRow struct {
	Seller     string          `json:"seller"`
	SalesCount int             `json:"sales_count"`
	NetValue   decimal.Decimal `json:"net_value"`
	Attempts   int             `json:"attempts"`
	Connects   int             `json:"connects"`
}

// DailyReport joins one day's sales and call activity per seller.
type DailyReport struct {
	Date       string           `json:"date"`
	Sellers    []DailySellerRow `json:"sellers"`
	SalesCount int              `json:"sales_count"`
	NetValue   decimal.Decimal  `json:"net_value"`
	Attempts   int              `json:"attempts"`
	Connects   int              `json:"connects"`
}

// AssembleDaily merges per-seller sales totals with call totals over
// the union of seller keys. Sellers with calls but no sales (and the
// reverse) still get a row.
func AssembleDaily(date string, salesTotals []sales.SellerTotal, callTotals map[string]calls.SellerTotals) *DailyReport {
	rows := map[string]*DailySellerRow{}
	ensure := func(seller string) *DailySellerRow {
		key := normalize.SellerName(seller)
		if key == "" {
			return nil
		}
		row, ok := rows[key]
		if !ok {
			row = &DailySellerRow{Seller: key, NetValue: decimal.Zero}
			rows[key] = row
		}
		return row
	}

	for _, total := range salesTotals {
		row := ensure(total.Seller)
		if row == nil {
			continue
		}
		row.SalesCount += total.SalesCount
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

	report := &DailyReport{Date: date, NetValue: decimal.Zero}
	for _, row := range rows {
		report.Sellers = append(report.Sellers, *row)
		report.SalesCount += row.SalesCount
		report.NetValue = report.NetValue.Add(row.NetValue)
		report.Attempts += row.Attempts
		report.Connects += row.Connects
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
