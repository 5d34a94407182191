package services

import (
	"errors"
	"fmt"

	"github.com/Eswar-Mukku/food-intake-tracker/config"
	"github.com/Eswar-Mukku/food-intake-tracker/models"
	"github.com/Eswar-Mukku/food-intake-tracker/utils"
)

// ProfileInput holds the editable profile fields. Pointer fields distinguish
// "not sent" from a real value so partial updates work.
type ProfileInput struct {
	Name           string   `json:"name"`
	Age            *int     `json:"age"`
	Gender         string   `json:"gender"`
	Height         *float64 `json:"height"`
	CurrentWeight  *float64 `json:"current_weight"`
	GoalWeight     *float64 `json:"goal_weight"`
	ActivityLevel  string   `json:"activity_level"`
	Goal           string   `json:"goal"`
	DailyWaterGoal *int     `json:"daily_water_goal"`
	ProfilePicture string   `json:"profile_picture"` // base64 data URL
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"user_id":            user.UserID,
		"email":              user.Email,
		"name":               user.Name,
		"age":                user.Age,
		"gender":             user.Gender,
		"height":             user.Height,
		"current_weight":     user.CurrentWeight,
		"goal_weight":        user.GoalWeight,
		"activity_level":     user.ActivityLevel,
		"goal":               user.Goal,
		"daily_calorie_goal": user.DailyCalorieGoal,
		"daily_protein_goal": user.DailyProteinGoal,
		"daily_carbs_goal":   user.DailyCarbsGoal,
		"daily_fat_goal":     user.DailyFatGoal,
		"daily_water_goal":   user.DailyWaterGoal,
		"profile_picture":    user.ProfilePicture,
		"created_at":         user.CreatedAt,
	}, nil
}

// UpdateUserProfile applies the changed fields and, when any goal-calculator
// input changed, recomputes the four daily targets before saving.
func UpdateUserProfile(email string, input ProfileInput) (*models.User, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	recompute := false

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Age != nil && *input.Age > 0 {
		user.Age = *input.Age
		recompute = true
	}
	if input.Gender != "" {
		user.Gender = input.Gender
		recompute = true
	}
	if input.Height != nil && *input.Height > 0 {
		user.Height = *input.Height
		recompute = true
	}
	if input.CurrentWeight != nil && *input.CurrentWeight > 0 {
		user.CurrentWeight = *input.CurrentWeight
		recompute = true
	}
	if input.GoalWeight != nil && *input.GoalWeight > 0 {
		user.GoalWeight = *input.GoalWeight
	}
	if input.ActivityLevel != "" {
		if !ValidActivityLevel(input.ActivityLevel) {
			return nil, ErrUnknownActivityLevel
		}
		user.ActivityLevel = input.ActivityLevel
		recompute = true
	}
	if input.Goal != "" {
		if !validGoals[input.Goal] {
			return nil, errors.New("goal must be lose, maintain or gain")
		}
		user.Goal = input.Goal
		recompute = true
	}
	if input.DailyWaterGoal != nil && *input.DailyWaterGoal > 0 {
		user.DailyWaterGoal = *input.DailyWaterGoal
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadProfilePicture(input.ProfilePicture, user.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile picture: %w", err)
		}
		user.ProfilePicture = url
	}

	if recompute {
		if err := ApplyGoals(user); err != nil {
			return nil, err
		}
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
