package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/storage"
)

// setupSQLite returns a migrated in-memory database private to the test.
func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := storage.Open(ctx, storage.Options{Driver: storage.DriverSQLite, DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(ctx, db))

	t.Cleanup(func() { db.Close() })
	return db
}

// setupPostgres starts a PostgreSQL container and returns a migrated database.
func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	var db *sqlx.DB
	dsn := storage.PostgresDSN(host, port.Int(), "postgres", "secret", "testdb")
	for i := 0; i < 10; i++ {
		db, err = storage.Open(ctx, storage.Options{Driver: storage.DriverPostgres, DSN: dsn, MaxOpenConns: 20, MaxIdleConns: 10})
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(ctx, db))

	t.Cleanup(func() { db.Close() })
	return db
}

// --- Helpers ---
func mustCreateUser(t *testing.T, db *sqlx.DB, identifier string) *models.User {
	t.Helper()
	user, err := NewUserRepository(db, TxFromContext).Create(context.Background(), identifier, "hash")
	require.NoError(t, err)
	return user
}

func mustCreateSkill(t *testing.T, db *sqlx.DB, idString string) *models.Skill {
	t.Helper()
	skill, err := NewSkillRepository(db, TxFromContext).Create(context.Background(), idString, "Skill "+idString, nil)
	require.NoError(t, err)
	return skill
}

func countRows(t *testing.T, db *sqlx.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, db.Rebind(query), args...))
	return n
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }
