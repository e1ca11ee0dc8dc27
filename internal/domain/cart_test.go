package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []LineItem
		expected Totals
	}{
		{
			name:     "empty cart",
			items:    nil,
			expected: Totals{},
		},
		{
			name: "single line",
			items: []LineItem{
				{ID: 1, Price: 10.00, Quantity: 2},
			},
			expected: Totals{Subtotal: 20.00, Tax: 2.00, Total: 22.00, TotalItems: 2},
		},
		{
			name: "mixed lines",
			items: []LineItem{
				{ID: 101, Price: 12.99, Quantity: 1},
				{ID: 301, Price: 5.99, Quantity: 3},
			},
			expected: Totals{Subtotal: 30.96, Tax: 3.096, Total: 34.056, TotalItems: 4},
		},
		{
			name: "coerced zero price contributes nothing",
			items: []LineItem{
				{ID: 1, Price: 0, Quantity: 5},
				{ID: 2, Price: 2.00, Quantity: 1},
			},
			expected: Totals{Subtotal: 2.00, Tax: 0.20, Total: 2.20, TotalItems: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items)

			assert.InDelta(t, tt.expected.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.expected.Tax, got.Tax, 1e-9)
			assert.InDelta(t, tt.expected.Total, got.Total, 1e-9)
			assert.Equal(t, tt.expected.TotalItems, got.TotalItems)
			// Total must always be derived from the subtotal, never drift.
			assert.InDelta(t, got.Subtotal+got.Subtotal*TaxRate, got.Total, 1e-9)
		})
	}
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Price
	}{
		{name: "number", input: `12.99`, expected: 12.99},
		{name: "numeric string", input: `"4.49"`, expected: 4.49},
		{name: "garbage string", input: `"free"`, expected: 0},
		{name: "null", input: `null`, expected: 0},
		{name: "object", input: `{"amount":1}`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			assert.NoError(t, p.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.expected, p)
		})
	}
}
