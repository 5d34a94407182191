package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Eswar-Mukku/food-intake-tracker/config"
	"github.com/Eswar-Mukku/food-intake-tracker/models"
	"github.com/Eswar-Mukku/food-intake-tracker/utils"
)

var validGoals = map[string]bool{"lose": true, "maintain": true, "gain": true}

// RegisterInput carries the full onboarding profile; goals are computed from
// it, never supplied by the client.
type RegisterInput struct {
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=6"`
	Name          string  `json:"name" binding:"required"`
	Age           int     `json:"age" binding:"required"`
	Gender        string  `json:"gender" binding:"required"`
	Height        float64 `json:"height" binding:"required"`
	CurrentWeight float64 `json:"current_weight" binding:"required"`
	GoalWeight    float64 `json:"goal_weight" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	Goal          string  `json:"goal" binding:"required"`
}

func RegisterUser(in RegisterInput) (*models.User, error) {
	if !ValidActivityLevel(in.ActivityLevel) {
		return nil, ErrUnknownActivityLevel
	}
	if !validGoals[in.Goal] {
		return nil, errors.New("goal must be lose, maintain or gain")
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		UserID:         uuid.NewString(),
		Email:          in.Email,
		Password:       hashed,
		Name:           in.Name,
		Age:            in.Age,
		Gender:         in.Gender,
		Height:         in.Height,
		CurrentWeight:  in.CurrentWeight,
		GoalWeight:     in.GoalWeight,
		ActivityLevel:  in.ActivityLevel,
		Goal:           in.Goal,
		DailyWaterGoal: 2000,
	}
	if err := ApplyGoals(&user); err != nil {
		return nil, err
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("incorrect password")
	}
	return &user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
