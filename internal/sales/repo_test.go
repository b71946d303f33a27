package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tetraedu/desempenho-backend/pkg/db/models"
)

func setupSalesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS sales (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  sale_date TEXT,
  seller TEXT,
  product TEXT,
  buyer_name TEXT,
  buyer_email TEXT,
  buyer_phone TEXT,
  gross_value REAL,
  net_value REAL,
  net_value_legacy REAL,
  received_value REAL,
  payment_platform TEXT,
  payment_method TEXT,
  installment TEXT,
  launch TEXT,
  year INTEGER,
  month_year TEXT,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func insertSale(t *testing.T, db *gorm.DB, seller string, net float64) {
	t.Helper()
	err := db.Create(&models.Sale{SaleDate: "2024-25-03", Seller: seller, NetValue: net, Year: 2024}).Error
	require.NoError(t, err)
}

func TestFetchBySellerMatchesFullNamesAndCasing(t *testing.T) {
	db := setupSalesTestDB(t)
	repo := NewRepository(db)

	insertSale(t, db, "Sabrina Lima", 100)
	insertSale(t, db, "SABRINA", 200)
	insertSale(t, db, "sabrina lima", 50)
	insertSale(t, db, "Joao Pedro", 999)

	rows, err := repo.FetchBySeller(context.Background(), "SABRINA")
	require.NoError(t, err)
	require.Len(t, rows, 3, "full-name and lower-case rows must match the first name")

	for _, row := range rows {
		assert.NotEqual(t, "Joao Pedro", row.Seller)
	}
}

func TestFetchForStatsFiltersYearAndLaunch(t *testing.T) {
	db := setupSalesTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, db.Create(&models.Sale{Seller: "SABRINA", Year: 2024, Launch: "L24"}).Error)
	require.NoError(t, db.Create(&models.Sale{Seller: "SABRINA", Year: 2023, Launch: "L23"}).Error)

	rows, err := repo.FetchForStats(context.Background(), StatsQuery{Year: 2024, Launch: "L24"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2024, rows[0].Year)
}
