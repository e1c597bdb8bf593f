package seeders

import (
	"context"
	"testing"

	"hangs.link/models"
	"hangs.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StorageEntry{}))
	return db
}

func TestSeedSampleDataPopulatesEmptyStore(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedSampleData(db))

	events := repositories.NewEventRepositoryWithStorage(repositories.NewStorageRepositoryWithDB(db))
	loaded, err := events.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "Game Night at Riley's", loaded[0].Title)

	friendRepo := repositories.NewFriendRepositoryWithStorage(repositories.NewStorageRepositoryWithDB(db))
	friends, err := friendRepo.LoadFriends(context.Background())
	require.NoError(t, err)
	assert.Len(t, friends, 6)

	groups, err := friendRepo.LoadGroups(context.Background())
	require.NoError(t, err)
	assert.Len(t, groups, 4)
}

func TestSeedSampleDataDoesNotOverwrite(t *testing.T) {
	db := newTestDB(t)
	storage := repositories.NewStorageRepositoryWithDB(db)
	events := repositories.NewEventRepositoryWithStorage(storage)
	ctx := context.Background()

	// Kullanıcının kendi verisi seed'den önce yazılmış.
	require.NoError(t, events.SaveAll(ctx, []models.Event{{ID: "42", Title: "My own hang"}}))

	require.NoError(t, SeedSampleData(db))

	loaded, err := events.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "My own hang", loaded[0].Title)

	// Boş olan diğer koleksiyonlar yine de seed'lenir.
	friendRepo := repositories.NewFriendRepositoryWithStorage(storage)
	friends, err := friendRepo.LoadFriends(ctx)
	require.NoError(t, err)
	assert.Len(t, friends, 6)
}

func TestSeedSampleDataIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedSampleData(db))
	require.NoError(t, SeedSampleData(db))

	events := repositories.NewEventRepositoryWithStorage(repositories.NewStorageRepositoryWithDB(db))
	loaded, err := events.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, loaded, 3)
}
