package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
)

func TestWeightLogAddAndList(t *testing.T) {
	db := testDB(t)
	svc := NewWeightLogService(db)

	_, err := svc.Add(1, 72.5, "2026-08-27", "")
	require.NoError(t, err)
	_, err = svc.Add(1, 72.0, "2026-08-29", "after vacation")
	require.NoError(t, err)
	_, err = svc.Add(2, 90, "2026-08-29", "")
	require.NoError(t, err)

	_, err = svc.Add(1, 0, "2026-08-29", "")
	assert.Error(t, err)
	_, err = svc.Add(1, -5, "2026-08-29", "")
	assert.Error(t, err)

	logs, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	// newest first
	assert.Equal(t, "2026-08-29", logs[0].Date)
	assert.InDelta(t, 72.0, logs[0].Weight, 0.001)

	latest, err := svc.Latest(1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.InDelta(t, 72.0, latest.Weight, 0.001)

	none, err := svc.Latest(99)
	require.NoError(t, err)
	assert.Nil(t, none)
}

// Logging a weight must leave the profile's derived targets in the same
// state a profile edit to that weight would.
func TestSyncCurrentWeightRecomputesGoals(t *testing.T) {
	db := testDB(t)
	svc := NewWeightLogService(db)

	user := models.User{
		UserID:        "u-1",
		Email:         "w@example.com",
		Password:      "hash",
		Age:           30,
		Gender:        "male",
		Height:        175,
		CurrentWeight: 70,
		ActivityLevel: "moderate",
		Goal:          "maintain",
	}
	require.NoError(t, ApplyGoals(&user))
	require.NoError(t, db.Create(&user).Error)
	require.Equal(t, 2556, user.DailyCalorieGoal)

	_, err := svc.Add(user.ID, 90, "2026-08-29", "")
	require.NoError(t, err)
	require.NoError(t, svc.SyncCurrentWeight(user.ID, 90))

	var got models.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.InDelta(t, 90, got.CurrentWeight, 0.001)
	assert.Equal(t, 2866, got.DailyCalorieGoal)
	assert.Equal(t, 215, got.DailyProteinGoal) // 2866*0.30/4 = 214.95
	assert.Equal(t, 287, got.DailyCarbsGoal)   // 2866*0.40/4 = 286.6
	assert.Equal(t, 96, got.DailyFatGoal)      // 2866*0.30/9 = 95.53
}
