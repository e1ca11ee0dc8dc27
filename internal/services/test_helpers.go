package services

import (
	"fmt"

	"cart-service/internal/domain"
)

func CreateMockMenuItem(id uint64, name string, price float64, category string) domain.MenuItem {
	return domain.MenuItem{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: category,
		Image:    fmt.Sprintf("https://img.example/%d.jpeg", id),
	}
}

func CreateMockLineItem(id uint64, name string, price float64, quantity int) domain.LineItem {
	return domain.LineItem{
		ID:       id,
		Name:     name,
		Price:    domain.Price(price),
		Quantity: quantity,
	}
}

// SequentialNumbers returns a NumberSource yielding "#1000", "#1001", ...
// so tests can assert order number rotation deterministically.
func SequentialNumbers() NumberSource {
	n := 999
	return func() string {
		n++
		return fmt.Sprintf("#%d", n)
	}
}

const (
	TestBurgerID    = uint64(101)
	TestBurgerName  = "Double Cheddar Stack"
	TestBurgerPrice = 12.99
	TestDrinkID     = uint64(301)
	TestDrinkName   = "Berry Blast Smoothie"
	TestDrinkPrice  = 5.99
)
