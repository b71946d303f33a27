package traffic

import "github.com/shopspring/decimal"

// DayRow is one normalized day of ad-platform traffic.
type DayRow struct {
	Date        string          `json:"date"`
	Spend       decimal.Decimal `json:"spend"`
	Impressions decimal.Decimal `json:"impressions"`
	Reach       decimal.Decimal `json:"reach"`
	Clicks      decimal.Decimal `json:"clicks"`
	PageViews   decimal.Decimal `json:"page_views"`
	Leads       decimal.Decimal `json:"leads"`
}

// Metrics are the derived traffic KPIs. Every ratio guards its
// denominator; a division by zero yields zero, never NaN.
type Metrics struct {
	Spend        decimal.Decimal `json:"spend"`
	Impressions  decimal.Decimal `json:"impressions"`
	Reach        decimal.Decimal `json:"reach"`
	Clicks       decimal.Decimal `json:"clicks"`
	PageViews    decimal.Decimal `json:"page_views"`
	Leads        decimal.Decimal `json:"leads"`
	Frequency    float64         `json:"frequency"`
	CTR          float64         `json:"ctr"`
	CPM          float64         `json:"cpm"`
	CPL          float64         `json:"cpl"`
	PageViewRate float64         `json:"page_view_rate"`
	Conversion   float64         `json:"conversion"`
}

// Report is the traffic endpoint's response body.
type Report struct {
	Totals Metrics  `json:"totals"`
	Days   []DayRow `json:"days"`
}
