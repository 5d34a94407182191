package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCaloriesBurned(t *testing.T) {
	cases := []struct {
		name     string
		exercise string
		typ      string
		duration float64
		want     float64
	}{
		{"by type", "Evening session", "cycling", 30, 255},     // 30*8.5
		{"name wins over type", "Morning running", "yoga", 30, 342}, // 30*11.4
		{"name substring match", "HIIT circuit", "", 20, 250},  // 20*12.5
		{"unknown falls back", "Gardening", "", 60, 300},       // 60*5.0
		{"first listed name wins", "running and walking mix", "", 30, 342}, // running before walking
		{"zero duration", "Running", "", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateCaloriesBurned(tc.exercise, tc.typ, tc.duration)
			assert.InDelta(t, tc.want, got, 0.001)
		})
	}
}

func TestAddWater(t *testing.T) {
	db := testDB(t)
	svc := NewActivityLogService(db)

	log, err := svc.AddWater(1, 250, "2026-08-29")
	require.NoError(t, err)
	assert.InDelta(t, 250, log.Amount, 0.001)
	assert.Equal(t, "2026-08-29", log.Date)

	_, err = svc.AddWater(1, 0, "2026-08-29")
	assert.Error(t, err)
	_, err = svc.AddWater(1, -100, "2026-08-29")
	assert.Error(t, err)
}

func TestRemoveLatestWater(t *testing.T) {
	db := testDB(t)
	svc := NewActivityLogService(db)

	_, err := svc.AddWater(1, 200, "2026-08-29")
	require.NoError(t, err)
	_, err = svc.AddWater(1, 300, "2026-08-29")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveLatestWater(1, "2026-08-29"))

	logs, err := svc.ListWater(1, "2026-08-29")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.InDelta(t, 200, logs[0].Amount, 0.001) // the older pour survives

	require.NoError(t, svc.RemoveLatestWater(1, "2026-08-29"))
	assert.ErrorIs(t, svc.RemoveLatestWater(1, "2026-08-29"), ErrLogNotFound)
}

func TestAddExerciseEstimatesWhenMissing(t *testing.T) {
	db := testDB(t)
	svc := NewActivityLogService(db)

	log, err := svc.AddExercise(1, ExerciseLogRequest{
		ExerciseName: "Morning walk",
		Type:         "walking",
		Duration:     40,
	})
	require.NoError(t, err)
	assert.InDelta(t, 180, log.CaloriesBurned, 0.001) // 40*4.5

	explicit, err := svc.AddExercise(1, ExerciseLogRequest{
		ExerciseName:   "Spin class",
		Duration:       45,
		CaloriesBurned: 410,
	})
	require.NoError(t, err)
	assert.InDelta(t, 410, explicit.CaloriesBurned, 0.001)
}

func TestDeleteExercise(t *testing.T) {
	db := testDB(t)
	svc := NewActivityLogService(db)

	log, err := svc.AddExercise(1, ExerciseLogRequest{ExerciseName: "Swim", Type: "swimming", Duration: 20})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteExercise(2, log.ID), ErrLogNotFound)
	require.NoError(t, svc.DeleteExercise(1, log.ID))
	assert.ErrorIs(t, svc.DeleteExercise(1, log.ID), ErrLogNotFound)
}
