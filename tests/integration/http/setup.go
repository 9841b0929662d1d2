//go:build integration

package http

import (
	"context"
	"database/sql"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JMURv/trust-bridge/internal/auth"
	"github.com/JMURv/trust-bridge/internal/cache/redis"
	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/ctrl"
	hdl "github.com/JMURv/trust-bridge/internal/hdl/http"
	"github.com/JMURv/trust-bridge/internal/repo/db"
	"github.com/JMURv/trust-bridge/internal/smtp"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const getTables = `
SELECT tablename
FROM pg_tables
WHERE schemaname = 'public' AND tablename <> 'schema_migrations';
`

const (
	adminKey    = "integration-admin-key"
	extensionID = "integrationextensionid"
)

var rootDir = filepath.Join("..", "..", "..")

func startContainer(t *testing.T, req testcontainers.ContainerRequest, port string) (string, string) {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(
		ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		},
	)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, c)

	host, err := c.Host(ctx)
	require.NoError(t, err)
	mapped, err := c.MappedPort(ctx, port)
	require.NoError(t, err)

	return host, mapped.Port()
}

func getRedis(t *testing.T) string {
	host, port := startContainer(
		t, testcontainers.ContainerRequest{
			Image:        "redis:alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		}, "6379/tcp",
	)

	zap.L().Info("Redis container is ready")
	return fmt.Sprintf("%s:%s", host, port)
}

func getPostgres(t *testing.T, conf config.DBConfig) (string, int) {
	host, port := startContainer(
		t, testcontainers.ContainerRequest{
			Image:        "postgres:17.4-alpine",
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			Env: map[string]string{
				"POSTGRES_DB":       conf.Database,
				"POSTGRES_USER":     conf.User,
				"POSTGRES_PASSWORD": conf.Password,
			},
		}, "5432/tcp",
	)

	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	require.NoError(t, err)

	zap.L().Info("Postgres container is ready")
	return host, p
}

func setupTestServer(t *testing.T) (*httptest.Server, func(t *testing.T)) {
	zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))

	t.Setenv("AUTH_ACCESS_SECRET", "integration-access")
	t.Setenv("AUTH_REFRESH_SECRET", "integration-refresh")
	t.Setenv("AUTH_ADMIN_KEY", adminKey)
	t.Setenv("EXTENSION_ALLOWED_IDS", extensionID)
	t.Setenv("EXTENSION_MAX_DEVICES", "2")
	t.Setenv(
		"MIGRATIONS_PATH", filepath.ToSlash(
			filepath.Join(rootDir, "internal", "repo", "db", "migration"),
		),
	)

	conf, err := config.Load()
	require.NoError(t, err)

	conf.Redis.Addr = getRedis(t)
	conf.DB.Host, conf.DB.Port = getPostgres(t, conf.DB)

	au := auth.New(conf)
	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	svc := ctrl.New(au, repo, cache, smtp.New(conf), conf)
	h := hdl.New(au, svc, conf)

	ts := httptest.NewServer(h)

	cleanupFunc := func(t *testing.T) {
		ts.Close()

		conn, err := sql.Open(
			"pgx", fmt.Sprintf(
				"postgres://%s:%s@%s:%d/%s?sslmode=disable",
				conf.DB.User,
				conf.DB.Password,
				conf.DB.Host,
				conf.DB.Port,
				conf.DB.Database,
			),
		)
		require.NoError(t, err)
		defer func() {
			_ = conn.Close()
		}()

		rows, err := conn.Query(getTables)
		require.NoError(t, err)

		var tables []string
		for rows.Next() {
			var name string
			require.NoError(t, rows.Scan(&name))
			tables = append(tables, name)
		}
		require.NoError(t, rows.Close())

		if len(tables) > 0 {
			_, err = conn.Exec(fmt.Sprintf("TRUNCATE TABLE %v RESTART IDENTITY CASCADE;", strings.Join(tables, ", ")))
			require.NoError(t, err)
		}

		_ = cache.Close()
		_ = repo.Close(context.Background())
		_ = os.Unsetenv("MIGRATIONS_PATH")
	}

	return ts, cleanupFunc
}
