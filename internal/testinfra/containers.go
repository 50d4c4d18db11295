//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"testing"
	"time"

	"anime-quotes-backend/internal/config"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage  = "postgres:16-alpine"
	mongoImage     = "mongo:7"
	startupTimeout = 2 * time.Minute
)

// SkipIfNoDocker skips the test if Docker is not available.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	if !IsDockerAvailable() {
		t.Skip("Skipping test: Docker not available")
	}
}

// IsDockerAvailable checks if Docker daemon is running and accessible.
func IsDockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "docker", "info")
	return cmd.Run() == nil
}

var (
	postgresOnce sync.Once
	postgresCfg  config.DatabaseConfig
	postgresErr  error

	mongoOnce sync.Once
	mongoURL  string
	mongoErr  error
)

// postgresServer returns connection settings for the server's maintenance database.
func postgresServer(t *testing.T) config.DatabaseConfig {
	t.Helper()

	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		return postgresConfig(host,
			getEnvOrDefault("TEST_DB_PORT", "5432"),
			getEnvOrDefault("TEST_DB_USER", "postgres"),
			getEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
			getEnvOrDefault("TEST_DB_NAME", "postgres"))
	}

	skipWithoutContainers(t)
	postgresOnce.Do(func() {
		postgresCfg, postgresErr = startPostgres()
	})
	if postgresErr != nil {
		t.Skipf("Skipping: could not start postgres container: %v", postgresErr)
	}
	return postgresCfg
}

// mongoServer returns a connection URL for the shared mongo server.
func mongoServer(t *testing.T) string {
	t.Helper()

	if url := os.Getenv("TEST_MONGO_URL"); url != "" {
		return url
	}

	skipWithoutContainers(t)
	mongoOnce.Do(func() {
		mongoURL, mongoErr = startMongo()
	})
	if mongoErr != nil {
		t.Skipf("Skipping: could not start mongo container: %v", mongoErr)
	}
	return mongoURL
}

func skipWithoutContainers(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	SkipIfNoDocker(t)
}

func startPostgres() (config.DatabaseConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		// The entrypoint restarts the server once after init, hence two occurrences.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(startupTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return config.DatabaseConfig{}, fmt.Errorf("failed to start postgres: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return config.DatabaseConfig{}, fmt.Errorf("failed to get postgres host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return config.DatabaseConfig{}, fmt.Errorf("failed to get postgres port: %w", err)
	}

	return postgresConfig(host, port.Port(), "postgres", "postgres", "postgres"), nil
}

func startMongo() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        mongoImage,
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(startupTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to start mongo: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get mongo host: %w", err)
	}
	port, err := container.MappedPort(ctx, "27017/tcp")
	if err != nil {
		return "", fmt.Errorf("failed to get mongo port: %w", err)
	}

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port()), nil
}

func postgresConfig(host, port, user, password, dbName string) config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:            host,
		Port:            port,
		User:            user,
		Password:        password,
		DBName:          dbName,
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		QueryTimeout:    10 * time.Second,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
