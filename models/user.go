package models

import (
	"time"

	"gorm.io/gorm"
)

// User stores the profile attributes the goal calculator works from plus the
// four derived daily targets. Targets must be recomputed whenever age, gender,
// height, weight, activity level or goal changes.
type User struct {
	gorm.Model
	UserID   string `gorm:"type:varchar(36);uniqueIndex;not null"` // public handle
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string

	Age           int
	Gender        string  `gorm:"size:10"` // "male" | "female" | "other"
	Height        float64 // cm
	CurrentWeight float64 // kg
	GoalWeight    float64 // kg
	ActivityLevel string  `gorm:"size:16"` // sedentary..very-active
	Goal          string  `gorm:"size:10"` // "lose" | "maintain" | "gain"

	DailyCalorieGoal int
	DailyProteinGoal int // g
	DailyCarbsGoal   int // g
	DailyFatGoal     int // g
	DailyWaterGoal   int `gorm:"default:2000"` // ml

	ProfilePicture string

	MFAEnabled    bool
	MFACode       string `gorm:"size:6"`
	ResetToken    string `gorm:"size:16"`
	ResetTokenExp time.Time
}
