package repository

import (
	"cart-service/internal/domain"
)

// CategoryPopular is a pseudo-category: items flagged popular across all
// real categories.
const CategoryPopular = "popular"

type CatalogRepository interface {
	List() ([]domain.MenuItem, error)
	ListByCategory(category string) ([]domain.MenuItem, error)
	FindByID(id uint64) (*domain.MenuItem, error)
}
