package ledger

import (
	"context"
	"testing"

	"github.com/counterdesk/pos-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLedgerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS sale_records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  sale_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  line_total NUMERIC NOT NULL,
  sold_at TEXT NOT NULL
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func record(saleID uuid.UUID, name string, qty int, total string, soldAt string) models.SaleRecord {
	return models.SaleRecord{
		SaleID:      saleID,
		ProductName: name,
		Quantity:    qty,
		LineTotal:   decimal.RequireFromString(total),
		SoldAt:      soldAt,
	}
}

func TestAppendAndRecent(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first := uuid.New()
	second := uuid.New()
	require.NoError(t, repo.Append(ctx, []models.SaleRecord{
		record(first, "X-Salada", 2, "31.00", "2026-08-31T12:00:00.000Z"),
		record(first, "Refrigerante Lata", 1, "6.00", "2026-08-31T12:00:00.000Z"),
	}))
	require.NoError(t, repo.Append(ctx, []models.SaleRecord{
		record(second, "X-Salada", 1, "15.50", "2026-08-31T12:05:00.000Z"),
	}))

	rows, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second, rows[0].SaleID)
	// same sold_at: the later insert wins the tie
	assert.Equal(t, "Refrigerante Lata", rows[1].ProductName)
}

func TestAppendEmptyIsNoop(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.Append(context.Background(), nil))

	var count int64
	require.NoError(t, db.Model(&models.SaleRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListBetween(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, []models.SaleRecord{
		record(uuid.New(), "A", 1, "1.00", "2026-08-30T23:59:59.999Z"),
		record(uuid.New(), "B", 1, "2.00", "2026-08-31T00:00:00.000Z"),
		record(uuid.New(), "C", 1, "3.00", "2026-08-31T23:59:59.999Z"),
		record(uuid.New(), "D", 1, "4.00", "2026-09-01T00:00:00.000Z"),
	}))

	rows, err := repo.ListBetween(ctx, "2026-08-31T00:00:00.000Z", "2026-09-01T00:00:00.000Z")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "B", rows[0].ProductName)
	assert.Equal(t, "C", rows[1].ProductName)
}

func TestLineTotals(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	totals, err := repo.LineTotals(ctx)
	require.NoError(t, err)
	assert.Empty(t, totals)

	require.NoError(t, repo.Append(ctx, []models.SaleRecord{
		record(uuid.New(), "A", 1, "0.10", "2026-08-31T10:00:00.000Z"),
		record(uuid.New(), "B", 1, "0.20", "2026-08-31T11:00:00.000Z"),
	}))

	totals, err = repo.LineTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	sum := decimal.Zero
	for _, v := range totals {
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("0.30")), "got %s", sum)
}

func TestTopProductBetween(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	tally, err := repo.TopProductBetween(ctx, "2026-08-31T00:00:00.000Z", "2026-09-01T00:00:00.000Z")
	require.NoError(t, err)
	assert.Nil(t, tally)

	require.NoError(t, repo.Append(ctx, []models.SaleRecord{
		record(uuid.New(), "X-Salada", 2, "31.00", "2026-08-31T10:00:00.000Z"),
		record(uuid.New(), "Refrigerante Lata", 1, "6.00", "2026-08-31T11:00:00.000Z"),
		record(uuid.New(), "Refrigerante Lata", 1, "6.00", "2026-08-31T12:00:00.000Z"),
		record(uuid.New(), "X-Salada", 5, "77.50", "2026-09-01T09:00:00.000Z"),
	}))

	tally, err = repo.TopProductBetween(ctx, "2026-08-31T00:00:00.000Z", "2026-09-01T00:00:00.000Z")
	require.NoError(t, err)
	require.NotNil(t, tally)
	// X-Salada and Refrigerante Lata both sold 2 units today: the
	// lexicographically smaller name wins
	assert.Equal(t, "Refrigerante Lata", tally.ProductName)
	assert.EqualValues(t, 2, tally.Quantity)
}
