package models

import "gorm.io/gorm"

// FoodLog is one consumption event. All nutrient values are already scaled by
// the serving-size ratio and serving count at creation time, so the aggregator
// never needs the catalog row again. Immutable after create except deletion.
type FoodLog struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	FoodID   uint   `gorm:"not null"` // FoodItem.ID at log time
	FoodName string // snapshot, survives catalog edits

	MealType string  `gorm:"size:10;not null"` // breakfast|lunch|dinner|snack
	Servings float64 `gorm:"not null"`

	ServingSize float64 // quantity the user entered
	ServingUnit string  `gorm:"size:10"`

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64

	SaturatedFat *float64
	Cholesterol  *float64
	Sodium       *float64
	Potassium    *float64
	VitaminA     *float64
	VitaminC     *float64
	Calcium      *float64
	Iron         *float64

	Date string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	Time string `gorm:"size:5"`                 // HH:MM
}
