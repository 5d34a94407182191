package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
	"github.com/Eswar-Mukku/food-intake-tracker/utils"
)

func seedFood(t *testing.T, svc *FoodLogService, item models.FoodItem) models.FoodItem {
	t.Helper()
	require.NoError(t, svc.db.Create(&item).Error)
	return item
}

func TestFoodLogAdd(t *testing.T) {
	db := testDB(t)
	svc := NewFoodLogService(db)

	item := seedFood(t, svc, models.FoodItem{
		Code: "t1", Name: "Chapati", Category: "Indian Breads",
		Calories: 104, Protein: 3.1, Carbs: 15.7, Fat: 3.7, Fiber: 2.6,
		ServingSize: 1, ServingUnit: "piece",
	})

	log, err := svc.Add(7, FoodLogRequest{
		FoodID:   item.ID,
		MealType: "dinner",
		Servings: 2,
		Date:     "2026-08-29",
		Time:     "20:15",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), log.UserID)
	assert.Equal(t, "Chapati", log.FoodName)
	assert.Equal(t, "dinner", log.MealType)
	assert.InDelta(t, 208, log.Calories, 0.001)
	assert.InDelta(t, 6.2, log.Protein, 0.001)
	assert.Equal(t, "2026-08-29", log.Date)
	assert.Equal(t, "20:15", log.Time)
	assert.NotZero(t, log.ID)
}

func TestFoodLogAddCrossUnit(t *testing.T) {
	db := testDB(t)
	svc := NewFoodLogService(db)

	item := seedFood(t, svc, models.FoodItem{
		Code: "t2", Name: "Idli", Category: "Indian Breakfast",
		Calories: 58, Protein: 2, Carbs: 12, Fat: 0.1, Fiber: 0.8,
		ServingSize: 1, ServingUnit: "piece",
	})

	// 200 g against a 1-piece base serving → ratio 2
	log, err := svc.Add(1, FoodLogRequest{
		FoodID:      item.ID,
		MealType:    "breakfast",
		Servings:    1,
		ServingSize: 200,
		ServingUnit: "g",
	})
	require.NoError(t, err)

	assert.InDelta(t, 116, log.Calories, 0.001)
	assert.InDelta(t, 200, log.ServingSize, 0.001)
	assert.Equal(t, "g", log.ServingUnit)
}

func TestFoodLogAddDefaults(t *testing.T) {
	db := testDB(t)
	svc := NewFoodLogService(db)

	item := seedFood(t, svc, models.FoodItem{
		Code: "t3", Name: "Banana", Category: "Fruits",
		Calories: 105, ServingSize: 1, ServingUnit: "piece",
	})

	// zero servings defaults to one, zero size falls back to the base serving
	log, err := svc.Add(1, FoodLogRequest{FoodID: item.ID, MealType: "snack"})
	require.NoError(t, err)

	assert.InDelta(t, 1, log.Servings, 0.001)
	assert.InDelta(t, 105, log.Calories, 0.001)
	assert.Equal(t, "piece", log.ServingUnit)
	assert.Equal(t, utils.Today(), log.Date)
	assert.NotEmpty(t, log.Time)
}

func TestFoodLogAddUnknownMealType(t *testing.T) {
	db := testDB(t)
	svc := NewFoodLogService(db)

	_, err := svc.Add(1, FoodLogRequest{FoodID: 1, MealType: "brunch"})
	assert.ErrorIs(t, err, ErrUnknownMealType)
}

func TestFoodLogAddMissingFood(t *testing.T) {
	db := testDB(t)
	svc := NewFoodLogService(db)

	_, err := svc.Add(1, FoodLogRequest{FoodID: 404, MealType: "lunch"})
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestFoodLogListFiltersByUserAndDate(t *testing.T) {
	db := testDB(t)
	svc := NewFoodLogService(db)

	item := seedFood(t, svc, models.FoodItem{
		Code: "t4", Name: "Dosa", Calories: 133, ServingSize: 1, ServingUnit: "piece",
	})

	for _, req := range []FoodLogRequest{
		{FoodID: item.ID, MealType: "breakfast", Date: "2026-08-29", Time: "08:00"},
		{FoodID: item.ID, MealType: "dinner", Date: "2026-08-29", Time: "20:00"},
		{FoodID: item.ID, MealType: "lunch", Date: "2026-08-28", Time: "13:00"},
	} {
		_, err := svc.Add(1, req)
		require.NoError(t, err)
	}
	_, err := svc.Add(2, FoodLogRequest{FoodID: item.ID, MealType: "lunch", Date: "2026-08-29"})
	require.NoError(t, err)

	logs, err := svc.List(1, "2026-08-29")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	// newest first
	assert.Equal(t, "20:00", logs[0].Time)
	assert.Equal(t, "08:00", logs[1].Time)

	all, err := svc.List(1, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFoodLogDelete(t *testing.T) {
	db := testDB(t)
	svc := NewFoodLogService(db)

	item := seedFood(t, svc, models.FoodItem{
		Code: "t5", Name: "Samosa", Calories: 262, ServingSize: 1, ServingUnit: "piece",
	})
	log, err := svc.Add(1, FoodLogRequest{FoodID: item.ID, MealType: "snack"})
	require.NoError(t, err)

	// wrong owner cannot delete
	assert.ErrorIs(t, svc.Delete(2, log.ID), ErrLogNotFound)

	require.NoError(t, svc.Delete(1, log.ID))
	assert.ErrorIs(t, svc.Delete(1, log.ID), ErrLogNotFound)
}
