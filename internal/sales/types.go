package sales

import (
	"github.com/shopspring/decimal"
)

// Record is the clean transport shape for one sale. Date carries the
// canonical YYYY-MM-DD encoding produced by the boundary adapter.
type Record struct {
	ID              int64           `json:"id"`
	Date            string          `json:"date"`
	Seller          string          `json:"seller"`
	Product         string          `json:"product,omitempty"`
	BuyerName       string          `json:"buyer_name,omitempty"`
	BuyerEmail      string          `json:"buyer_email,omitempty"`
	GrossValue      decimal.Decimal `json:"gross_value"`
	NetValue        decimal.Decimal `json:"net_value"`
	PaymentPlatform string          `json:"payment_platform,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Installment     string          `json:"installment,omitempty"`
	Launch          string          `json:"launch,omitempty"`
	Year            int             `json:"year"`
	MonthYear       string          `json:"month_year,omitempty"`
}

// SellerTotal is one seller's fold over a record slice.
type SellerTotal struct {
	Seller     string          `json:"seller"`
	SalesCount int             `json:"sales_count"`
	GrossValue decimal.Decimal `json:"gross_value"`
	NetValue   decimal.Decimal `json:"net_value"`
	BoletoPct  float64         `json:"boleto_pct"`
	CardPct    float64         `json:"card_pct"`
}

// DayTotals is the gross fold for one local calendar day.
type DayTotals struct {
	Date       string          `json:"date"`
	SalesCount int             `json:"sales_count"`
	NetValue   decimal.Decimal `json:"net_value"`
}

// OverviewStats is the dashboard's headline stats block.
type OverviewStats struct {
	GrossRevenue    decimal.Decimal `json:"gross_revenue"`
	NetRevenue      decimal.Decimal `json:"net_revenue"`
	SalesCount      int             `json:"sales_count"`
	LeadsCount      int             `json:"leads_count"`
	ConversionRate  float64         `json:"conversion_rate"`
	RecurringCount  int             `json:"recurring_count"`
	OutOfLaunch     int             `json:"out_of_launch"`
	Podium          []SellerTotal   `json:"podium"`
	Ranking         []SellerTotal   `json:"ranking"`
	Yesterday       DayTotals       `json:"yesterday"`
	Today           DayTotals       `json:"today"`
}

// MonthPoint is one month of a seller's revenue series.
type MonthPoint struct {
	Month      string          `json:"month"`
	SalesCount int             `json:"sales_count"`
	NetValue   decimal.Decimal `json:"net_value"`
}

// SellerStats is the per-seller stats response.
type SellerStats struct {
	Seller     string          `json:"seller"`
	SalesCount int             `json:"sales_count"`
	GrossValue decimal.Decimal `json:"gross_value"`
	NetValue   decimal.Decimal `json:"net_value"`
	Months     []MonthPoint    `json:"months"`
}

// StatsQuery narrows which sales feed a stats computation.
type StatsQuery struct {
	StartDate string
	EndDate   string
	Month     string
	Year      int
	Launch    string
}
