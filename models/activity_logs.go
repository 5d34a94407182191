package models

import "gorm.io/gorm"

// WaterLog records one pour, in ml. Deletable (the UI removes the most recent
// entry of the day), otherwise append-only.
type WaterLog struct {
	gorm.Model
	UserID uint    `gorm:"index;not null"`
	Amount float64 `gorm:"not null"`       // ml
	Date   string  `gorm:"size:10;index;not null"`
	Time   string  `gorm:"size:5"`
}

// ExerciseLog records one workout session.
type ExerciseLog struct {
	gorm.Model
	UserID         uint    `gorm:"index;not null"`
	ExerciseName   string  `gorm:"not null"`
	Type           string  `gorm:"size:10"` // cardio|strength|yoga|sports|other
	Duration       float64 // minutes
	CaloriesBurned float64
	Date           string `gorm:"size:10;index;not null"`
	Time           string `gorm:"size:5"`
}

// WeightLog is append-only: history is never rewritten, the newest entry is
// the current weight.
type WeightLog struct {
	gorm.Model
	UserID uint    `gorm:"index;not null"`
	Weight float64 `gorm:"not null"` // kg
	Date   string  `gorm:"size:10;index;not null"`
	Note   string
}
