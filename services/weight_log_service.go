package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
	"github.com/Eswar-Mukku/food-intake-tracker/utils"
)

type WeightLogService struct{ db *gorm.DB }

func NewWeightLogService(db *gorm.DB) *WeightLogService { return &WeightLogService{db: db} }

// Add appends a weight entry. Weight history is append-only: entries are
// never edited or deleted, the newest one is the current weight.
func (s *WeightLogService) Add(userID uint, weight float64, date, note string) (*models.WeightLog, error) {
	if weight <= 0 {
		return nil, errors.New("weight must be positive")
	}
	if date == "" {
		date = utils.Today()
	}
	log := models.WeightLog{UserID: userID, Weight: weight, Date: date, Note: note}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// SyncCurrentWeight copies a newly logged weight onto the profile and
// recomputes the four daily targets, the same recompute a profile edit runs.
func (s *WeightLogService) SyncCurrentWeight(userID uint, weight float64) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return err
	}
	user.CurrentWeight = weight
	if err := ApplyGoals(&user); err != nil {
		return err
	}
	return s.db.Save(&user).Error
}

func (s *WeightLogService) List(userID uint) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&logs).Error
	return logs, err
}

// Latest returns the most recent entry, or nil when the user never weighed in.
func (s *WeightLogService) Latest(userID uint) (*models.WeightLog, error) {
	var log models.WeightLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}
