package services

import (
	"strings"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
)

// pieceUnits are the count-like serving units. "g" and "ml" are the only
// mass/volume units the catalog uses.
var pieceUnits = map[string]bool{
	"piece":   true,
	"slice":   true,
	"plate":   true,
	"serving": true,
	"unit":    true,
}

func isPieceUnit(unit string) bool {
	return pieceUnits[strings.ToLower(unit)]
}

func isMassUnit(unit string) bool {
	return unit == "g" || unit == "ml"
}

// SizeRatio converts a user-entered quantity into a multiplier against the
// food's base serving. Cross-class conversions assume 1 piece ≈ 100 g/ml.
// A mismatched mass/volume pair falls through to a plain size quotient with
// the unit difference ignored.
func SizeRatio(baseSize float64, baseUnit string, enteredSize float64, enteredUnit string) float64 {
	if baseSize <= 0 {
		baseSize = 1
	}
	if enteredSize < 0 {
		enteredSize = 0
	}

	basePiece := isPieceUnit(baseUnit)
	enteredPiece := isPieceUnit(enteredUnit)

	switch {
	case basePiece && enteredPiece:
		return enteredSize / baseSize
	case isMassUnit(baseUnit) && enteredUnit == baseUnit:
		return enteredSize / baseSize
	case basePiece && isMassUnit(enteredUnit):
		return enteredSize / (baseSize * 100)
	case isMassUnit(baseUnit) && enteredPiece:
		return enteredSize * 100 / baseSize
	default:
		return enteredSize / baseSize
	}
}

// ScaleFood builds the nutrient snapshot for a log entry: base value × size
// ratio × serving count, floored at zero. Micronutrients the catalog doesn't
// carry stay nil rather than becoming zeros.
func ScaleFood(item *models.FoodItem, ratio, servings float64) models.FoodLog {
	mult := ratio * servings
	scale := func(v float64) float64 {
		s := v * mult
		if s < 0 {
			return 0
		}
		return s
	}

	return models.FoodLog{
		FoodID:   item.ID,
		FoodName: item.Name,
		Servings: servings,

		Calories: scale(item.Calories),
		Protein:  scale(item.Protein),
		Carbs:    scale(item.Carbs),
		Fat:      scale(item.Fat),
		Fiber:    scale(item.Fiber),

		SaturatedFat: scaleOptional(item.SaturatedFat, mult),
		Cholesterol:  scaleOptional(item.Cholesterol, mult),
		Sodium:       scaleOptional(item.Sodium, mult),
		Potassium:    scaleOptional(item.Potassium, mult),
		VitaminA:     scaleOptional(item.VitaminA, mult),
		VitaminC:     scaleOptional(item.VitaminC, mult),
		Calcium:      scaleOptional(item.Calcium, mult),
		Iron:         scaleOptional(item.Iron, mult),
	}
}

func scaleOptional(v *float64, mult float64) *float64 {
	if v == nil {
		return nil
	}
	s := *v * mult
	if s < 0 {
		s = 0
	}
	return &s
}
