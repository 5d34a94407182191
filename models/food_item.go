package models

import "gorm.io/gorm"

// FoodItem is an immutable reference-catalog entry. Nutrition values are per
// the base serving (ServingSize + ServingUnit, e.g. "100 g" or "1 piece").
// Micronutrients are optional: nil means the catalog has no value, which is
// distinct from a measured zero.
type FoodItem struct {
	gorm.Model
	Code     string `gorm:"type:varchar(16);uniqueIndex;not null"` // stable catalog id, e.g. "b1"
	Name     string `gorm:"not null"`
	Category string `gorm:"index"`

	Calories float64
	Protein  float64 // g
	Carbs    float64 // g
	Fat      float64 // g
	Fiber    float64 // g

	ServingSize float64 `gorm:"not null"`
	ServingUnit string  `gorm:"size:10;not null"` // "g", "ml", "piece", "slice", ...

	SaturatedFat *float64 // g
	Cholesterol  *float64 // mg
	Sodium       *float64 // mg
	Potassium    *float64 // mg
	VitaminA     *float64 // µg
	VitaminC     *float64 // mg
	Calcium      *float64 // mg
	Iron         *float64 // mg
}
