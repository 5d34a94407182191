package services

import (
	"gorm.io/gorm"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
)

type SummaryService struct{ db *gorm.DB }

func NewSummaryService(db *gorm.DB) *SummaryService { return &SummaryService{db: db} }

// MealCalories breaks calories consumed down by meal type.
type MealCalories struct {
	Breakfast float64 `json:"breakfast"`
	Lunch     float64 `json:"lunch"`
	Dinner    float64 `json:"dinner"`
	Snack     float64 `json:"snack"`
}

// DailySummary is derived on demand and never persisted.
type DailySummary struct {
	Date string `json:"date"`

	CaloriesConsumed float64 `json:"calories_consumed"`
	CaloriesBurned   float64 `json:"calories_burned"`
	NetCalories      float64 `json:"net_calories"`
	Water            float64 `json:"water"` // ml

	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`

	SaturatedFat float64 `json:"saturated_fat"`
	Cholesterol  float64 `json:"cholesterol"`
	Sodium       float64 `json:"sodium"`
	Potassium    float64 `json:"potassium"`
	VitaminA     float64 `json:"vitamin_a"`
	VitaminC     float64 `json:"vitamin_c"`
	Calcium      float64 `json:"calcium"`
	Iron         float64 `json:"iron"`

	Meals MealCalories `json:"meals"`
}

// Aggregate folds one day's logs into a summary. Pure and order-independent;
// missing optional nutrients count as zero.
func Aggregate(date string, foodLogs []models.FoodLog, waterLogs []models.WaterLog, exerciseLogs []models.ExerciseLog) DailySummary {
	s := DailySummary{Date: date}

	for _, l := range foodLogs {
		s.CaloriesConsumed += l.Calories
		s.Protein += l.Protein
		s.Carbs += l.Carbs
		s.Fat += l.Fat
		s.Fiber += l.Fiber

		s.SaturatedFat += orZero(l.SaturatedFat)
		s.Cholesterol += orZero(l.Cholesterol)
		s.Sodium += orZero(l.Sodium)
		s.Potassium += orZero(l.Potassium)
		s.VitaminA += orZero(l.VitaminA)
		s.VitaminC += orZero(l.VitaminC)
		s.Calcium += orZero(l.Calcium)
		s.Iron += orZero(l.Iron)

		switch l.MealType {
		case "breakfast":
			s.Meals.Breakfast += l.Calories
		case "lunch":
			s.Meals.Lunch += l.Calories
		case "dinner":
			s.Meals.Dinner += l.Calories
		case "snack":
			s.Meals.Snack += l.Calories
		}
	}

	for _, l := range exerciseLogs {
		s.CaloriesBurned += l.CaloriesBurned
	}
	for _, l := range waterLogs {
		s.Water += l.Amount
	}

	s.NetCalories = s.CaloriesConsumed - s.CaloriesBurned
	return s
}

// DailyFor loads one user's logs for a calendar date and aggregates them.
func (s *SummaryService) DailyFor(userID uint, date string) (*DailySummary, error) {
	var foodLogs []models.FoodLog
	if err := s.db.Where("user_id = ? AND date = ?", userID, date).Find(&foodLogs).Error; err != nil {
		return nil, err
	}

	var waterLogs []models.WaterLog
	if err := s.db.Where("user_id = ? AND date = ?", userID, date).Find(&waterLogs).Error; err != nil {
		return nil, err
	}

	var exerciseLogs []models.ExerciseLog
	if err := s.db.Where("user_id = ? AND date = ?", userID, date).Find(&exerciseLogs).Error; err != nil {
		return nil, err
	}

	summary := Aggregate(date, foodLogs, waterLogs, exerciseLogs)
	return &summary, nil
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
