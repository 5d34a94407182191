package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := testDB(t)
	svc := NewFoodService(db)

	require.NoError(t, svc.Seed())

	var first int64
	require.NoError(t, db.Model(&foodCatalog[0]).Count(&first).Error)
	assert.EqualValues(t, len(foodCatalog), first)

	// re-seeding must not duplicate rows
	require.NoError(t, svc.Seed())

	var second int64
	require.NoError(t, db.Model(&foodCatalog[0]).Count(&second).Error)
	assert.Equal(t, first, second)
}

func TestSearch(t *testing.T) {
	db := testDB(t)
	svc := NewFoodService(db)
	require.NoError(t, svc.Seed())

	byName, err := svc.Search("rice", "")
	require.NoError(t, err)
	assert.NotEmpty(t, byName)
	for _, item := range byName {
		assert.Contains(t, strings.ToLower(item.Name), "rice")
	}

	byCategory, err := svc.Search("", "Fruits")
	require.NoError(t, err)
	assert.NotEmpty(t, byCategory)
	for _, item := range byCategory {
		assert.Equal(t, "Fruits", item.Category)
	}

	all, err := svc.Search("", "All")
	require.NoError(t, err)
	assert.Len(t, all, len(foodCatalog))

	none, err := svc.Search("zzzz-not-a-food", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGet(t *testing.T) {
	db := testDB(t)
	svc := NewFoodService(db)
	require.NoError(t, svc.Seed())

	item, err := svc.Get(1)
	require.NoError(t, err)
	assert.NotEmpty(t, item.Name)

	_, err = svc.Get(99999)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}
