// Package cart implements the in-memory cart and its pricing arithmetic.
// Prices are held as exact decimals; rounding happens once, when totals are
// computed, never during accumulation.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one product entry in a cart. Quantity is always >= 1; removing the
// last unit removes the line instead of leaving a zero-quantity entry.
type Line struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Cart is an ordered collection of lines, unique per product id.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Pricing holds the checkout constants applied on top of the subtotal.
type Pricing struct {
	ShippingFee decimal.Decimal
	TaxRate     decimal.Decimal
}

// Totals is the priced summary of a cart. Tax is rounded to 2 decimal places;
// the subtotal stays exact (line prices carry at most 2 decimals already).
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges by product id: an existing line gains one unit, otherwise a
// new line with quantity 1 is appended. There are no error conditions.
func (c *Cart) AddItem(productID uuid.UUID, name string, unitPrice decimal.Decimal) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity++
			return
		}
	}

	c.Lines = append(c.Lines, Line{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// SetQuantity sets the quantity of an existing line. Quantities below 1 are
// clamped to 1; unknown product ids are a no-op.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for the product id; absent ids are a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ComputeTotals prices the cart: subtotal is the exact sum of unitPrice x
// quantity, tax is subtotal x rate rounded to cents, total is their sum plus
// the flat shipping fee.
func (c *Cart) ComputeTotals(p Pricing) Totals {
	subtotal := decimal.Zero

	for _, line := range c.Lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	tax := subtotal.Mul(p.TaxRate).Round(2)

	return Totals{
		Subtotal:    subtotal,
		ShippingFee: p.ShippingFee,
		Tax:         tax,
		Total:       subtotal.Add(p.ShippingFee).Add(tax),
	}
}
