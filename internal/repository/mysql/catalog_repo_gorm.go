package mysql

import (
	"errors"
	"log"

	"cart-service/internal/domain"
	"cart-service/internal/repository"

	"gorm.io/gorm"
)

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) List() ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		log.Printf("List menu error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) ListByCategory(category string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	q := r.db.Order("id ASC")
	if category == repository.CategoryPopular {
		q = q.Where("popular = ?", true)
	} else {
		q = q.Where("category = ?", category)
	}
	if err := q.Find(&out).Error; err != nil {
		log.Printf("ListByCategory error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) FindByID(id uint64) (*domain.MenuItem, error) {
	var m domain.MenuItem
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByID error: %v", err)
		return nil, err
	}
	return &m, nil
}

var _ repository.CatalogRepository = (*catalogRepo)(nil)
