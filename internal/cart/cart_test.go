package cart

import (
	"testing"

	"github.com/counterdesk/pos-backend/pkg/db/models"
	pkgerrors "github.com/counterdesk/pos-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, name, price string, stock int) models.Product {
	return models.Product{
		ID:        id,
		Name:      name,
		UnitPrice: decimal.RequireFromString(price),
		Stock:     stock,
	}
}

func TestAddOrIncrement(t *testing.T) {
	var c Cart

	require.NoError(t, c.AddOrIncrement(product(1, "X-Salada", "15.50", 20)))
	require.NoError(t, c.AddOrIncrement(product(1, "X-Salada", "15.50", 20)))
	require.NoError(t, c.AddOrIncrement(product(2, "Refrigerante Lata", "6.00", 50)))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "X-Salada", lines[0].NameSnapshot)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("37.00")), "got %s", c.Total())
}

func TestAddSoldOutProductIsNoop(t *testing.T) {
	var c Cart

	require.NoError(t, c.AddOrIncrement(product(1, "Suco", "8.00", 0)))
	assert.True(t, c.IsEmpty())
}

func TestIncrementBoundedByStock(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddOrIncrement(product(1, "Suco", "8.00", 1)))

	err := c.Increment(1, 1)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeStockExceeded))
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	require.NoError(t, c.Increment(1, 2))
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestIncrementMissingLine(t *testing.T) {
	var c Cart

	err := c.Increment(99, 10)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestDecrementRemovesLineAtOne(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddOrIncrement(product(1, "Suco", "8.00", 5)))
	require.NoError(t, c.Increment(1, 5))

	require.NoError(t, c.Decrement(1))
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	require.NoError(t, c.Decrement(1))
	assert.True(t, c.IsEmpty())

	err := c.Decrement(1)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestSnapshotPricingSurvivesCatalogEdit(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddOrIncrement(product(1, "X-Salada", "15.50", 20)))

	// a later add sees the repriced product but the snapshot stays
	require.NoError(t, c.AddOrIncrement(product(1, "X-Salada Premium", "18.00", 20)))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "X-Salada", lines[0].NameSnapshot)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("31.00")), "got %s", c.Total())
}

func TestLinesReturnsCopy(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddOrIncrement(product(1, "Suco", "8.00", 5)))

	lines := c.Lines()
	lines[0].Quantity = 99
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}
