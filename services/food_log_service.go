package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
	"github.com/Eswar-Mukku/food-intake-tracker/utils"
)

var (
	ErrUnknownMealType = errors.New("unknown meal type")
	ErrFoodNotFound    = errors.New("food not found")
	ErrLogNotFound     = errors.New("log entry not found")
)

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

type FoodLogService struct{ db *gorm.DB }

func NewFoodLogService(db *gorm.DB) *FoodLogService { return &FoodLogService{db: db} }

// FoodLogRequest carries what the client enters when logging a food: which
// catalog item, the serving it actually ate and how many of them.
type FoodLogRequest struct {
	FoodID      uint    `json:"food_id" binding:"required"`
	MealType    string  `json:"meal_type" binding:"required"`
	Servings    float64 `json:"servings"`
	ServingSize float64 `json:"serving_size"`
	ServingUnit string  `json:"serving_unit"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
}

// Add converts the entered serving against the catalog base serving, scales
// the nutrition snapshot and persists it. The stored log never changes again.
func (s *FoodLogService) Add(userID uint, req FoodLogRequest) (*models.FoodLog, error) {
	if !mealTypes[req.MealType] {
		return nil, ErrUnknownMealType
	}

	var item models.FoodItem
	if err := s.db.First(&item, req.FoodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	servings := req.Servings
	if servings <= 0 {
		servings = 1
	}
	size := req.ServingSize
	unit := req.ServingUnit
	if size <= 0 {
		size = item.ServingSize
		unit = item.ServingUnit
	}

	ratio := SizeRatio(item.ServingSize, item.ServingUnit, size, unit)
	entry := ScaleFood(&item, ratio, servings)

	entry.UserID = userID
	entry.MealType = req.MealType
	entry.ServingSize = size
	entry.ServingUnit = unit
	entry.Date = req.Date
	entry.Time = req.Time
	if entry.Date == "" {
		entry.Date = utils.Today()
	}
	if entry.Time == "" {
		entry.Time = utils.CurrentTime()
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns the user's food logs, optionally for one date, newest first.
func (s *FoodLogService) List(userID uint, date string) ([]models.FoodLog, error) {
	q := s.db.Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	var logs []models.FoodLog
	err := q.Order("date DESC, time DESC").Find(&logs).Error
	return logs, err
}

func (s *FoodLogService) Delete(userID, logID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.FoodLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}
