package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
)

func TestSizeRatio(t *testing.T) {
	cases := []struct {
		name        string
		baseSize    float64
		baseUnit    string
		enteredSize float64
		enteredUnit string
		want        float64
	}{
		{"identity piece", 1, "piece", 1, "piece", 1},
		{"two slices of one", 1, "slice", 2, "slice", 2},
		{"same mass unit", 100, "g", 150, "g", 1.5},
		{"same volume unit", 250, "ml", 500, "ml", 2},
		{"piece base, grams entered", 1, "piece", 200, "g", 2},          // 1 piece ≈ 100 g
		{"piece base, half in grams", 2, "piece", 100, "g", 0.5},        // 200/(2*100)
		{"mass base, pieces entered", 200, "g", 1, "piece", 0.5},        // 1*100/200
		{"mass base, several pieces", 50, "g", 3, "serving", 6},         // 3*100/50
		{"mixed mass units fall back", 100, "g", 100, "ml", 1},          // quotient, unit ignored
		{"unknown units fall back", 100, "cup", 50, "cup", 0.5},
		{"zero base guards to one", 0, "g", 50, "g", 50},
		{"negative base guards to one", -3, "piece", 2, "piece", 2},
		{"negative entered floors to zero", 100, "g", -10, "g", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SizeRatio(tc.baseSize, tc.baseUnit, tc.enteredSize, tc.enteredUnit)
			assert.InDelta(t, tc.want, got, 0.0001)
		})
	}
}

func TestSizeRatioUnitCaseInsensitive(t *testing.T) {
	assert.InDelta(t, 2, SizeRatio(1, "Piece", 2, "PIECE"), 0.0001)
}

func TestScaleFood(t *testing.T) {
	sodium := 120.0
	item := &models.FoodItem{
		Name:        "Roti",
		Calories:    120,
		Protein:     3,
		Carbs:       18,
		Fat:         3.7,
		Fiber:       2,
		ServingSize: 1,
		ServingUnit: "piece",
		Sodium:      &sodium,
	}

	entry := ScaleFood(item, 2, 1.5) // ratio 2, 1.5 servings → ×3

	assert.Equal(t, "Roti", entry.FoodName)
	assert.InDelta(t, 360, entry.Calories, 0.001)
	assert.InDelta(t, 9, entry.Protein, 0.001)
	assert.InDelta(t, 54, entry.Carbs, 0.001)
	assert.InDelta(t, 11.1, entry.Fat, 0.001)
	assert.InDelta(t, 6, entry.Fiber, 0.001)

	require.NotNil(t, entry.Sodium)
	assert.InDelta(t, 360, *entry.Sodium, 0.001)
}

func TestScaleFoodMissingMicrosStayNil(t *testing.T) {
	item := &models.FoodItem{Name: "Plain Rice", Calories: 130, ServingSize: 100, ServingUnit: "g"}

	entry := ScaleFood(item, 1, 2)

	assert.Nil(t, entry.SaturatedFat)
	assert.Nil(t, entry.Cholesterol)
	assert.Nil(t, entry.VitaminC)
	assert.Nil(t, entry.Iron)
}

func TestScaleFoodFloorsAtZero(t *testing.T) {
	chol := -5.0
	item := &models.FoodItem{
		Name:        "Bad Data",
		Calories:    -50,
		ServingSize: 1,
		ServingUnit: "piece",
		Cholesterol: &chol,
	}

	entry := ScaleFood(item, 1, 1)

	assert.Zero(t, entry.Calories)
	require.NotNil(t, entry.Cholesterol)
	assert.Zero(t, *entry.Cholesterol)
}
