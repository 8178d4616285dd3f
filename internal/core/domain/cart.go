package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductID identifies a product. Product catalogues send numeric ids, so
// both JSON numbers and strings decode into it.
type ProductID string

func (p *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id must be a string or number: %w", err)
	}
	*p = ProductID(n.String())
	return nil
}

// LineItem is one cart row. Quantity stays >= 1 while the row exists.
type LineItem struct {
	ID       ProductID       `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Quantity int             `json:"quantity"`
}

// Subtotal is price times quantity.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered set of line items, newest row first, at most one row per id.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add merges qty into the row for item.ID, or prepends a new row.
func (c *Cart) Add(item LineItem, qty int) {
	for n := range c.Items {
		if c.Items[n].ID == item.ID {
			c.Items[n].Quantity += qty
			return
		}
	}
	item.Quantity = qty
	c.Items = append([]LineItem{item}, c.Items...)
}

// Remove deletes the row for id. Missing ids are ignored.
func (c *Cart) Remove(id ProductID) {
	for n := range c.Items {
		if c.Items[n].ID == id {
			c.Items = append(c.Items[:n], c.Items[n+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Total is the sum of price times quantity, zero for an empty cart.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CloneItems copies line items by value.
func CloneItems(in []LineItem) []LineItem {
	if in == nil {
		return nil
	}
	out := make([]LineItem, len(in))
	copy(out, in)
	return out
}
