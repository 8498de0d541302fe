package cart

import (
	"github.com/counterdesk/pos-backend/pkg/db/models"
	pkgerrors "github.com/counterdesk/pos-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Line is one candidate sale line. Name and price are snapshots taken when
// the product was added, so a catalog edit mid-session never changes an
// in-progress cart's pricing. The stock ceiling is always checked against
// the catalog's live value, not the snapshot.
type Line struct {
	ProductID         int64
	NameSnapshot      string
	UnitPriceSnapshot decimal.Decimal
	Quantity          int
}

// LineTotal returns the snapshot price multiplied by the quantity.
func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPriceSnapshot.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart aggregates the candidate lines of one checkout session. It is never
// persisted and keeps at most one line per product. Callers synchronize
// access; see Service.
type Cart struct {
	lines []Line
}

// AddOrIncrement adds a quantity-1 line for the product, or bumps the
// existing line. Adding a product with zero stock is a silent no-op: the
// catalog's available listing should not have offered it.
func (c *Cart) AddOrIncrement(product models.Product) error {
	if idx, ok := c.find(product.ID); ok {
		return c.incrementAt(idx, product.Stock)
	}
	if product.Stock == 0 {
		return nil
	}
	c.lines = append(c.lines, Line{
		ProductID:         product.ID,
		NameSnapshot:      product.Name,
		UnitPriceSnapshot: product.UnitPrice,
		Quantity:          1,
	})
	return nil
}

// Increment bumps the line's quantity by one, bounded by the product's
// current stock. The cart is left unchanged on failure.
func (c *Cart) Increment(productID int64, currentStock int) error {
	idx, ok := c.find(productID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product is not in the cart").
			WithDetails(map[string]any{"product_id": productID})
	}
	return c.incrementAt(idx, currentStock)
}

func (c *Cart) incrementAt(idx, currentStock int) error {
	line := c.lines[idx]
	if line.Quantity+1 > currentStock {
		return pkgerrors.New(pkgerrors.CodeStockExceeded, "quantity would exceed available stock").
			WithDetails(map[string]any{
				"product_id":      line.ProductID,
				"available_stock": currentStock,
			})
	}
	c.lines[idx].Quantity++
	return nil
}

// Decrement lowers the line's quantity by one, removing the line entirely
// when it would reach zero. Zero-quantity lines never exist.
func (c *Cart) Decrement(productID int64) error {
	idx, ok := c.find(productID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product is not in the cart").
			WithDetails(map[string]any{"product_id": productID})
	}
	if c.lines[idx].Quantity == 1 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
		return nil
	}
	c.lines[idx].Quantity--
	return nil
}

// Total sums snapshot price times quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Contains reports whether a line exists for the product.
func (c *Cart) Contains(productID int64) bool {
	_, ok := c.find(productID)
	return ok
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) find(productID int64) (int, bool) {
	for i, line := range c.lines {
		if line.ProductID == productID {
			return i, true
		}
	}
	return 0, false
}
