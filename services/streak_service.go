package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
	"github.com/Eswar-Mukku/food-intake-tracker/utils"
)

type StreakService struct{ db *gorm.DB }

func NewStreakService(db *gorm.DB) *StreakService { return &StreakService{db: db} }

// CalculateStreak counts consecutive calendar days with at least one logged
// date, anchored at today or, when today has no log yet, at yesterday. Only
// presence matters; multiple logs on a day count once.
func CalculateStreak(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	logged := make(map[string]bool, len(dates))
	for _, d := range dates {
		logged[d] = true
	}

	day := today
	if !logged[utils.FormatDate(day)] {
		day = today.AddDate(0, 0, -1)
		if !logged[utils.FormatDate(day)] {
			return 0
		}
	}

	streak := 0
	for logged[utils.FormatDate(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CurrentStreak computes the food-logging streak ending now.
func (s *StreakService) CurrentStreak(userID uint) (int, error) {
	dates, err := s.LoggedDates(userID)
	if err != nil {
		return 0, err
	}
	return CalculateStreak(dates, time.Now()), nil
}

// LoggedDates returns the distinct dates on which the user logged any food.
func (s *StreakService) LoggedDates(userID uint) ([]string, error) {
	var dates []string
	err := s.db.Model(&models.FoodLog{}).
		Distinct("date").
		Where("user_id = ?", userID).
		Pluck("date", &dates).Error
	return dates, err
}
