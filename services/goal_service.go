package services

import (
	"errors"
	"math"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
)

// ErrUnknownActivityLevel is returned for activity levels outside the five
// supported tiers. The enum is closed; callers validate input, we fail fast.
var ErrUnknownActivityLevel = errors.New("unknown activity level")

// activityMultipliers is the single source of truth for valid activity levels.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very-active": 1.9,
}

// ValidActivityLevel reports whether level is one of the five tiers.
func ValidActivityLevel(level string) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// CalculateBMR estimates resting energy expenditure (kcal/day) with the
// Mifflin-St Jeor equation. Gender "other" uses the female offset; the
// equation defines no constant for it, so this is a known approximation.
func CalculateBMR(u *models.User) float64 {
	base := 10*u.CurrentWeight + 6.25*u.Height - 5*float64(u.Age)
	if u.Gender == "male" {
		return base + 5
	}
	return base - 161
}

// CalculateTDEE scales BMR by the activity multiplier.
func CalculateTDEE(u *models.User) (float64, error) {
	mult, ok := activityMultipliers[u.ActivityLevel]
	if !ok {
		return 0, ErrUnknownActivityLevel
	}
	return CalculateBMR(u) * mult, nil
}

// CalculateCalorieGoal adjusts TDEE for the user's goal: a 500 kcal deficit
// for ~0.5 kg/week loss, a 300 kcal surplus for gradual gain, otherwise TDEE
// unchanged (any unrecognized goal maintains).
func CalculateCalorieGoal(u *models.User) (float64, error) {
	tdee, err := CalculateTDEE(u)
	if err != nil {
		return 0, err
	}
	switch u.Goal {
	case "lose":
		return tdee - 500, nil
	case "gain":
		return tdee + 300, nil
	default:
		return tdee, nil
	}
}

type MacroGoals struct {
	Protein float64 // g
	Carbs   float64 // g
	Fat     float64 // g
}

// CalculateMacroGoals splits a calorie goal 30% protein / 40% carbs / 30% fat
// by calories, converted to grams at 4 kcal/g for protein and carbs and
// 9 kcal/g for fat.
func CalculateMacroGoals(calorieGoal float64) MacroGoals {
	return MacroGoals{
		Protein: calorieGoal * 0.30 / 4,
		Carbs:   calorieGoal * 0.40 / 4,
		Fat:     calorieGoal * 0.30 / 9,
	}
}

// ApplyGoals recomputes the user's four daily targets in place. The calorie
// goal is rounded first and macros derived from the rounded value, matching
// how the targets were always produced.
func ApplyGoals(u *models.User) error {
	cal, err := CalculateCalorieGoal(u)
	if err != nil {
		return err
	}
	u.DailyCalorieGoal = int(math.Round(cal))

	macros := CalculateMacroGoals(float64(u.DailyCalorieGoal))
	u.DailyProteinGoal = int(math.Round(macros.Protein))
	u.DailyCarbsGoal = int(math.Round(macros.Carbs))
	u.DailyFatGoal = int(math.Round(macros.Fat))
	return nil
}
