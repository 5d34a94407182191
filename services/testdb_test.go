package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Eswar-Mukku/food-intake-tracker/models"
)

// testDB opens a fresh in-memory SQLite database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.FoodLog{},
		&models.WaterLog{},
		&models.ExerciseLog{},
		&models.WeightLog{},
	))

	return db
}
