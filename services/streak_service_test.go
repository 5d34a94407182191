package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
	"github.com/Eswar-Mukku/food-intake-tracker/utils"
)

func day(today time.Time, offset int) string {
	return utils.FormatDate(today.AddDate(0, 0, offset))
}

func TestCalculateStreak(t *testing.T) {
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		offsets []int
		want    int
	}{
		{"no logs", nil, 0},
		{"today only", []int{0}, 1},
		{"three days ending today", []int{0, -1, -2}, 3},
		{"yesterday anchored", []int{-1, -2, -3}, 3},
		{"gap before today resets", []int{0, -2, -3}, 1},
		{"gap two days back", []int{-3, -4}, 0},
		{"long run with old gap", []int{0, -1, -2, -3, -5, -6}, 4},
		{"only old logs", []int{-10}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dates := make([]string, 0, len(tc.offsets))
			for _, off := range tc.offsets {
				dates = append(dates, day(today, off))
			}
			assert.Equal(t, tc.want, CalculateStreak(dates, today))
		})
	}
}

// Several logs on one date still count the day once.
func TestCalculateStreakDuplicateDates(t *testing.T) {
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	dates := []string{day(today, 0), day(today, 0), day(today, -1), day(today, -1)}

	assert.Equal(t, 2, CalculateStreak(dates, today))
}

func TestLoggedDatesDistinctPerUser(t *testing.T) {
	db := testDB(t)
	svc := NewStreakService(db)

	for _, l := range []models.FoodLog{
		{UserID: 1, MealType: "breakfast", Date: "2026-08-29"},
		{UserID: 1, MealType: "dinner", Date: "2026-08-29"},
		{UserID: 1, MealType: "lunch", Date: "2026-08-28"},
		{UserID: 2, MealType: "lunch", Date: "2026-08-27"},
	} {
		require.NoError(t, db.Create(&l).Error)
	}

	dates, err := svc.LoggedDates(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2026-08-29", "2026-08-28"}, dates)
}
