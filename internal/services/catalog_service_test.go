package services

import (
	"context"
	"testing"

	"github.com/andregumieri/fiap-brigalab/internal/catalog"
	"github.com/andregumieri/fiap-brigalab/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// every pooled connection to :memory: would get its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func setupCatalogService(t *testing.T) (CatalogService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)
	require.NoError(t, svc.Migrate(context.Background()))
	return svc, db
}

func TestCatalogSeedAndLoad(t *testing.T) {
	svc, _ := setupCatalogService(t)
	ctx := context.Background()

	seeded, err := svc.Seed(ctx, catalog.Default())
	require.NoError(t, err)
	assert.True(t, seeded)

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default(), loaded)
}

func TestCatalogSeedOnlyWhenEmpty(t *testing.T) {
	svc, db := setupCatalogService(t)
	ctx := context.Background()

	_, err := svc.Seed(ctx, catalog.Default())
	require.NoError(t, err)

	other := catalog.Catalog{
		Bases:          []catalog.Option{{ID: "x", Name: "X"}},
		Toppings:       []catalog.Option{{ID: "y", Name: "Y"}},
		DefaultBase:    "x",
		DefaultTopping: "y",
	}
	seeded, err := svc.Seed(ctx, other)
	require.NoError(t, err)
	assert.False(t, seeded)

	var count int64
	require.NoError(t, db.Model(&models.CatalogOption{}).Count(&count).Error)
	assert.Equal(t, int64(11), count)
}

func TestCatalogSeedRejectsInvalidCatalog(t *testing.T) {
	svc, _ := setupCatalogService(t)

	_, err := svc.Seed(context.Background(), catalog.Catalog{})
	assert.Error(t, err)
}

func TestCatalogLoadEmptyTableFails(t *testing.T) {
	svc, _ := setupCatalogService(t)

	_, err := svc.Load(context.Background())
	assert.Error(t, err)
}

func TestCatalogLoadKeepsPositionOrder(t *testing.T) {
	svc, db := setupCatalogService(t)
	ctx := context.Background()

	// Insert out of order on purpose.
	rows := []models.CatalogOption{
		{Kind: "topping", OptionID: "t2", Name: "Second", Position: 1},
		{Kind: "base", OptionID: "b1", Name: "Only base", Position: 0, IsDefault: true},
		{Kind: "topping", OptionID: "t1", Name: "First", Position: 0, IsDefault: true},
		{Kind: "size", OptionID: "big", Name: "Ignored", Position: 0},
	}
	require.NoError(t, db.Create(&rows).Error)

	cat, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cat.Toppings, 2)
	assert.Equal(t, "t1", cat.Toppings[0].ID)
	assert.Equal(t, "t2", cat.Toppings[1].ID)
	assert.Equal(t, "b1", cat.DefaultBase)
	assert.Equal(t, "t1", cat.DefaultTopping)
}
