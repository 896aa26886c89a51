//go:build integration

package repository_test

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"go_5_course_track/internal/repository"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var pgDB *gorm.DB

// TestMain は PostgreSQL コンテナを起動し、終了時に破棄する
func TestMain(m *testing.M) {
	testLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=course_track",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}
	databaseURL := fmt.Sprintf("postgres://user:secret@%s:%s/course_track?sslmode=disable", host, resource.GetPort("5432/tcp"))
	testLogger.Info("PostgreSQL container started", slog.String("container_id_short", resource.Container.ID[:12]))

	// NewDB のログは捨てる
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err = pool.Retry(func() error {
		var errRetry error
		pgDB, errRetry = repository.NewDB(databaseURL, quiet)
		return errRetry
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource after connection retry failed: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container after retries: %s", err)
	}

	if err = repository.AutoMigrate(pgDB); err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}
	testLogger.Info("PostgreSQL container resource purged.")
	os.Exit(code)
}

func TestRepositorySuite_Postgres(t *testing.T) {
	suite.Run(t, &RepositorySuite{
		db: pgDB,
		reset: func(db *gorm.DB) error {
			return db.Exec("TRUNCATE TABLE comments, progress_entries, enrollments, lectures, courses, users RESTART IDENTITY CASCADE").Error
		},
	})
}
