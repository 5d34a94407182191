package services

import (
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
	"github.com/Eswar-Mukku/food-intake-tracker/utils"
)

type exerciseFactor struct {
	key    string
	perMin float64
}

// exerciseFactors estimates calories burned per minute by exercise name or
// type. Name match wins over the type default; the slice is ordered because
// the first matching name substring decides.
var exerciseFactors = []exerciseFactor{
	{"running", 11.4},
	{"walking", 4.5},
	{"cycling", 8.5},
	{"swimming", 9.8},
	{"yoga", 3.2},
	{"strength", 5.5},
	{"weightlifting", 6.0},
	{"hiit", 12.5},
	{"football", 10.0},
	{"basketball", 9.5},
	{"tennis", 8.0},
	{"cardio", 8.0},
	{"sports", 9.0},
	{"other", 5.0},
}

func factorForType(exerciseType string) (float64, bool) {
	for _, f := range exerciseFactors {
		if f.key == exerciseType {
			return f.perMin, true
		}
	}
	return 0, false
}

// EstimateCaloriesBurned derives a burn figure for sessions the client logs
// without one.
func EstimateCaloriesBurned(name, exerciseType string, durationMin float64) float64 {
	factor, ok := factorForType(exerciseType)
	if !ok {
		factor = 5.0
	}
	nameLow := strings.ToLower(name)
	for _, f := range exerciseFactors {
		if strings.Contains(nameLow, f.key) {
			factor = f.perMin
			break
		}
	}
	return math.Round(durationMin * factor)
}

type ActivityLogService struct{ db *gorm.DB }

func NewActivityLogService(db *gorm.DB) *ActivityLogService { return &ActivityLogService{db: db} }

// ---------- water ----------

func (s *ActivityLogService) AddWater(userID uint, amount float64, date string) (*models.WaterLog, error) {
	if amount <= 0 {
		return nil, errors.New("water amount must be positive")
	}
	if date == "" {
		date = utils.Today()
	}
	log := models.WaterLog{
		UserID: userID,
		Amount: amount,
		Date:   date,
		Time:   utils.CurrentTime(),
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *ActivityLogService) ListWater(userID uint, date string) ([]models.WaterLog, error) {
	q := s.db.Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	var logs []models.WaterLog
	err := q.Find(&logs).Error
	return logs, err
}

// RemoveLatestWater deletes the most recent pour for the day, the undo the
// water widget offers. No-op error when the day has no entries.
func (s *ActivityLogService) RemoveLatestWater(userID uint, date string) error {
	var log models.WaterLog
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("id DESC").
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLogNotFound
		}
		return err
	}
	return s.db.Delete(&log).Error
}

// ---------- exercise ----------

type ExerciseLogRequest struct {
	ExerciseName   string  `json:"exercise_name" binding:"required"`
	Type           string  `json:"type"`
	Duration       float64 `json:"duration" binding:"required"`
	CaloriesBurned float64 `json:"calories_burned"`
	Date           string  `json:"date"`
}

func (s *ActivityLogService) AddExercise(userID uint, req ExerciseLogRequest) (*models.ExerciseLog, error) {
	burned := req.CaloriesBurned
	if burned <= 0 {
		burned = EstimateCaloriesBurned(req.ExerciseName, req.Type, req.Duration)
	}
	date := req.Date
	if date == "" {
		date = utils.Today()
	}

	log := models.ExerciseLog{
		UserID:         userID,
		ExerciseName:   req.ExerciseName,
		Type:           req.Type,
		Duration:       req.Duration,
		CaloriesBurned: burned,
		Date:           date,
		Time:           utils.CurrentTime(),
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *ActivityLogService) ListExercise(userID uint, date string) ([]models.ExerciseLog, error) {
	q := s.db.Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	var logs []models.ExerciseLog
	err := q.Order("date DESC, time DESC").Find(&logs).Error
	return logs, err
}

func (s *ActivityLogService) DeleteExercise(userID, logID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.ExerciseLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}
