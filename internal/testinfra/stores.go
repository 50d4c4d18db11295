//go:build integration

package testinfra

import (
	"context"
	"strings"
	"testing"
	"time"

	"anime-quotes-backend/internal/config"
	"anime-quotes-backend/internal/database"
	"anime-quotes-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Drivers lists the server-backed stores covered by integration tests.
var Drivers = []string{config.DriverPostgres, config.DriverMongo}

// Open returns empty repositories for driver, isolated from every other test.
func Open(t *testing.T, driver string) *repository.Repositories {
	t.Helper()

	switch driver {
	case config.DriverPostgres:
		return OpenPostgres(t)
	case config.DriverMongo:
		return OpenMongo(t)
	case config.DriverMemory:
		return repository.NewMemoryRepositories()
	default:
		t.Fatalf("unknown store driver %q", driver)
		return nil
	}
}

func uniqueDBName() string {
	return "anime_quotes_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// OpenPostgres creates a fresh database on the shared server, migrates it, and
// drops it when the test ends.
func OpenPostgres(t *testing.T) *repository.Repositories {
	t.Helper()

	server := postgresServer(t)
	admin, err := gorm.Open(postgres.Open(server.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	name := uniqueDBName()
	require.NoError(t, admin.Exec("CREATE DATABASE "+name).Error)

	cfg := server
	cfg.DBName = name
	db, err := database.Connect(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database %s: %v", name, err)
		}
		if err := admin.Exec("DROP DATABASE IF EXISTS " + name).Error; err != nil {
			t.Logf("Warning: failed to drop database %s: %v", name, err)
		}
		if sqlDB, err := admin.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return repository.NewPostgresRepositories(db)
}

// OpenMongo connects to a fresh database on the shared server and drops its
// collections when the test ends.
func OpenMongo(t *testing.T) *repository.Repositories {
	t.Helper()

	db, err := database.ConnectMongo(config.MongoConfig{
		URL:            mongoServer(t),
		DBName:         uniqueDBName(),
		MaxPoolSize:    20,
		ConnectTimeout: 10 * time.Second,
		QueryTimeout:   10 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		for _, name := range []string{
			repository.CollectionAnime,
			repository.CollectionCharacters,
			repository.CollectionQuotes,
			repository.CollectionStatusChecks,
		} {
			if err := db.Collection(name).Drop(ctx); err != nil {
				t.Logf("Warning: failed to drop collection %s: %v", name, err)
			}
		}
		if err := db.Close(ctx); err != nil {
			t.Logf("Warning: failed to disconnect from mongo: %v", err)
		}
	})

	return repository.NewMongoRepositories(db)
}
