package pos

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrOutOfStock is returned when adding a product whose known stock is zero.
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrInsufficientStock is returned when a quantity change would exceed
	// the stock known at the last catalog read.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrUnknownProduct is returned for product ids not in the catalog snapshot.
	ErrUnknownProduct = errors.New("product not in catalog")
)

// Line is a single cart entry. UnitPrice is captured when the product is
// first added; a catalog price change during the session does not reprice
// lines already in the cart.
type Line struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice int64 // cents
	Quantity  int
}

// Subtotal returns UnitPrice * Quantity in cents.
func (l Line) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart holds the in-progress sale for one checkout session. At most one line
// exists per product; lines keep insertion order for display. All mutations
// are checked against the catalog snapshot the cart was built with, and a
// failed mutation leaves the cart untouched.
//
// A Cart is not safe for concurrent use: one register, one operator.
type Cart struct {
	snapshot *CatalogSnapshot
	lines    []Line
}

// NewCart creates an empty cart bound to a catalog snapshot.
func NewCart(snapshot *CatalogSnapshot) *Cart {
	return &Cart{snapshot: snapshot}
}

func (c *Cart) lineIndex(productID uuid.UUID) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem adds one unit of the product. A new line starts at quantity 1;
// an existing line is incremented. Fails without mutating when the snapshot
// has no stock left for the requested quantity.
func (c *Cart) AddItem(productID uuid.UUID) error {
	product, ok := c.snapshot.Lookup(productID)
	if !ok {
		return fmt.Errorf("%s: %w", productID, ErrUnknownProduct)
	}

	if i := c.lineIndex(productID); i >= 0 {
		if c.lines[i].Quantity+1 > product.Stock {
			return fmt.Errorf("%q has only %d in stock: %w", product.Name, product.Stock, ErrInsufficientStock)
		}
		c.lines[i].Quantity++
		return nil
	}

	if product.Stock < 1 {
		return fmt.Errorf("%q: %w", product.Name, ErrOutOfStock)
	}
	c.lines = append(c.lines, Line{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  1,
	})
	return nil
}

// SetQuantity replaces the quantity of an existing line. A quantity below 1
// removes the line, same as RemoveItem. A quantity above the known stock
// fails and leaves the current quantity unchanged.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) error {
	i := c.lineIndex(productID)
	if i < 0 {
		return fmt.Errorf("%s: %w", productID, ErrUnknownProduct)
	}

	if quantity < 1 {
		c.RemoveItem(productID)
		return nil
	}

	stock := c.snapshot.StockFor(productID)
	if quantity > stock {
		return fmt.Errorf("%q has only %d in stock: %w", c.lines[i].Name, stock, ErrInsufficientStock)
	}
	c.lines[i].Quantity = quantity
	return nil
}

// RemoveItem removes the line for the product. Removing a product that is
// not in the cart is a no-op, not an error.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	if i := c.lineIndex(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// Total returns the cart total in cents, recomputed from the lines on every
// call.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Change returns amountPaid minus the cart total, in cents. The result may
// be negative; presenting "insufficient payment" is the caller's concern.
func (c *Cart) Change(amountPaid int64) int64 {
	return amountPaid - c.Total()
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear drops all lines. Called after a checkout has been confirmed
// persisted, or on an explicit operator reset.
func (c *Cart) Clear() {
	c.lines = nil
}
