package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restoran/internal/models"
	"restoran/internal/repositories"
	"restoran/internal/seed"
)

func TestOpenDatabase_SQLite(t *testing.T) {
	db, err := openDatabase("file:opendb_test?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	repo := repositories.NewGORMProductRepository(db)

	// A fresh store seeds exactly once, even when run twice.
	loader := seed.NewLoader(repo)
	require.NoError(t, loader.EnsureSeeded())
	require.NoError(t, loader.EnsureSeeded())

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Greater(t, count, int64(0))

	foods, err := repo.GetByCategory("foods")
	require.NoError(t, err)
	assert.NotEmpty(t, foods)
}
