package models

import "time"

// Sale mirrors the wide billing report table as ingested from the sales
// sheet. The schema drifted over time: net_value_legacy is the misspelled
// predecessor of net_value and older rows only populate the legacy
// column. SaleDate keeps the producer's raw string encoding (year-day-
// month); callers must go through the sales boundary adapter instead of
// reading these columns directly.
type Sale struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	SaleDate        string    `gorm:"column:sale_date;type:text"`
	Seller          string    `gorm:"column:seller;type:text"`
	Product         string    `gorm:"column:product;type:text"`
	BuyerName       string    `gorm:"column:buyer_name;type:text"`
	BuyerEmail      string    `gorm:"column:buyer_email;type:text"`
	BuyerPhone      string    `gorm:"column:buyer_phone;type:text"`
	GrossValue      float64   `gorm:"column:gross_value"`
	NetValue        float64   `gorm:"column:net_value"`
	NetValueLegacy  float64   `gorm:"column:net_value_legacy"`
	ReceivedValue   float64   `gorm:"column:received_value"`
	PaymentPlatform string    `gorm:"column:payment_platform;type:text"`
	PaymentMethod   string    `gorm:"column:payment_method;type:text"`
	Installment     string    `gorm:"column:installment;type:text"`
	Launch          string    `gorm:"column:launch;type:text"`
	Year            int       `gorm:"column:year"`
	MonthYear       string    `gorm:"column:month_year;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName maps the model onto the sales table.
func (Sale) TableName() string {
	return "sales"
}
