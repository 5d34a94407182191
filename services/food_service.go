package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

// Seed loads the built-in catalog, keyed by code so reruns are no-ops.
func (s *FoodService) Seed() error {
	for i := range foodCatalog {
		item := foodCatalog[i]
		if err := s.db.Where("code = ?", item.Code).FirstOrCreate(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

// Search filters the catalog by name substring and/or category ("" or "All"
// means every category).
func (s *FoodService) Search(query, category string) ([]models.FoodItem, error) {
	q := s.db.Model(&models.FoodItem{})
	if query != "" {
		q = q.Where("name LIKE ?", "%"+query+"%")
	}
	if category != "" && category != "All" {
		q = q.Where("category = ?", category)
	}
	var items []models.FoodItem
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

func (s *FoodService) Get(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return &item, nil
}
