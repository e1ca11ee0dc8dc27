package domain

import (
	"encoding/json"
	"strconv"
)

type OrderStatus string

const (
	StatusEditing OrderStatus = "editing"
	StatusPlaced  OrderStatus = "placed"
)

// TaxRate is applied to the subtotal on every totals computation.
const TaxRate = 0.10

// Price tolerates malformed persisted values: anything that is not a number
// decodes to 0 instead of failing the whole snapshot.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*p = Price(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*p = Price(f)
			return nil
		}
	}
	*p = 0
	return nil
}

// LineItem is one distinct menu item in the cart plus its quantity.
// At most one LineItem exists per menu item id; quantity is always >= 1.
type LineItem struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Price    Price  `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
	TotalItems int     `json:"totalItems"`
}

// ComputeTotals derives the totals from the line items. Never cached:
// total is always subtotal + subtotal*TaxRate so the three figures cannot drift.
func ComputeTotals(items []LineItem) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += float64(it.Price) * float64(it.Quantity)
		t.TotalItems += it.Quantity
	}
	t.Tax = t.Subtotal * TaxRate
	t.Total = t.Subtotal + t.Tax
	return t
}
