// Package pgtest starts a throwaway PostgreSQL container for integration
// tests. Callers skip their tests when Start returns an empty DSN.
package pgtest

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image          = "postgres:15-alpine"
	database       = "lootforge_test"
	username       = "lootforge"
	password       = "lootforge"
	readyLog       = "database system is ready to accept connections"
	startupTimeout = 30 * time.Second
)

// Start runs a container and returns its DSN and a terminate func. When
// Docker is unavailable the DSN is empty and terminate is a no-op.
func Start(ctx context.Context) (dsn string, terminate func()) {
	terminate = func() {}

	container, err := run(ctx)
	if err != nil {
		warn("failed to start postgres container: %v", err)
		return "", terminate
	}
	terminate = func() {
		if err := container.Terminate(ctx); err != nil {
			warn("failed to terminate postgres container: %v", err)
		}
	}

	dsn, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		warn("failed to read connection string: %v", err)
		return "", terminate
	}
	return dsn, terminate
}

// run converts the panic testcontainers raises without a Docker daemon into an error
func run(ctx context.Context) (c *postgres.PostgresContainer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docker unavailable: %v", r)
		}
	}()
	return postgres.Run(ctx, image,
		postgres.WithDatabase(database),
		postgres.WithUsername(username),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog(readyLog).
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
}

func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARNING: "+format+"\n", args...)
}
