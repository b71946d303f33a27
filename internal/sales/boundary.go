package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tetraedu/desempenho-backend/pkg/db/models"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
	"github.com/tetraedu/desempenho-backend/pkg/normalize"
)

// adapter converts raw sales rows into clean records. All date and
// value quirks of the ingested sheet are absorbed here, exactly once,
// so nothing downstream ever sees the producer's encoding.
type adapter struct {
	logg *logger.Logger
}

func newAdapter(logg *logger.Logger) *adapter {
	return &adapter{logg: logg}
}

// Record maps one raw row. The legacy net-value column backfills rows
// written before the column rename; anomalies coerce to zero values.
func (a *adapter) Record(ctx context.Context, sale models.Sale) Record {
	date := normalize.ConvertSalesDate(sale.SaleDate)
	if normalize.AmbiguousSalesDate(sale.SaleDate) && a.logg != nil {
		logCtx := a.logg.WithFields(ctx, map[string]any{
			"sale_id":  sale.ID,
			"raw_date": sale.SaleDate,
		})
		a.logg.Warn(logCtx, "sales.date.ambiguous")
	}

	net := sale.NetValue
	if net == 0 {
		net = sale.NetValueLegacy
	}

	return Record{
		ID:              sale.ID,
		Date:            date,
		Seller:          normalize.SellerName(sale.Seller),
		Product:         sale.Product,
		BuyerName:       sale.BuyerName,
		BuyerEmail:      sale.BuyerEmail,
		GrossValue:      decimal.NewFromFloat(sale.GrossValue),
		NetValue:        decimal.NewFromFloat(net),
		PaymentPlatform: sale.PaymentPlatform,
		PaymentMethod:   sale.PaymentMethod,
		Installment:     sale.Installment,
		Launch:          sale.Launch,
		Year:            sale.Year,
		MonthYear:       sale.MonthYear,
	}
}

// Records maps a raw row slice.
func (a *adapter) Records(ctx context.Context, rows []models.Sale) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, a.Record(ctx, row))
	}
	return out
}
