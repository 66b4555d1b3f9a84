package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// NewTestDB spins up a throwaway postgres container with the clip-share
// schema applied. It returns the connection, a terminate func and a func
// that truncates both tables between test cases.
func NewTestDB(t *testing.T) (*sql.DB, func(), func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:13-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "clipshare",
			"POSTGRES_PASSWORD": "clipshare",
			"POSTGRES_DB":       "clipshare_test",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("could not start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("could not resolve container host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("could not resolve container port: %v", err)
	}
	dbURL := fmt.Sprintf("postgres://clipshare:clipshare@%s:%s/clipshare_test?sslmode=disable", host, mappedPort.Port())

	applyMigrations(t, dbURL)

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}

	cleanup := func() {
		db.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate postgres container: %v", err)
		}
	}

	truncate := func() {
		if _, err := db.Exec(`TRUNCATE TABLE links, video_details`); err != nil {
			t.Fatalf("failed to truncate tables: %v", err)
		}
	}

	return db, cleanup, truncate
}

func applyMigrations(t *testing.T, dbURL string) {
	t.Helper()

	root, err := moduleRoot()
	if err != nil {
		t.Fatalf("could not locate module root: %v", err)
	}

	src := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(filepath.Join(root, "db", "migrations")),
	}
	m, err := migrate.New(src.String(), dbURL)
	if err != nil {
		t.Fatalf("failed to init migrate with source %s: %v", src.String(), err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("failed to apply migrations: %v", err)
	}
}

// moduleRoot walks up from the working directory to the directory holding
// go.mod, so tests find db/migrations no matter which package runs them.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found in any parent directory")
		}
		dir = parent
	}
}
