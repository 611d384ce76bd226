package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"project-nexus-be/internal/bootstrap"
	"project-nexus-be/internal/config"
	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/model"
	"project-nexus-be/internal/repository/unitofwork"
	"project-nexus-be/internal/seeder"
	"project-nexus-be/internal/server"
	"project-nexus-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupApp boots the full stack against a throwaway sqlite file so the
// tests exercise the real routing, middleware and persistence layers.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("JWT_SECRET", "integration-test-secret")
	t.Setenv("LLM_PROVIDER", "disabled")
	t.Setenv("LOG_FILE_PATH", filepath.Join(dir, "test.log.csv"))
	t.Setenv("GO_ENV", "test")

	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(dir, "nexus_test.db"),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Purchase{},
		&model.Interaction{},
	))
	require.NoError(t, seeder.Seed(context.Background(), unitofwork.NewRepositoryFactory(db)))

	container := bootstrap.NewContainer(db, cfg)
	return server.New(cfg, container).GetApp()
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body interface{}) (*envelope, int) {
	t.Helper()
	return doJSON(t, app, "POST", path, token, body)
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*envelope, int) {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return &env, resp.StatusCode
}

func login(t *testing.T, app *fiber.App, username, password string) dto.AuthResponse {
	t.Helper()

	env, status := postJSON(t, app, "/api/auth/login", "", dto.LoginRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, 200, status)

	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	return auth
}

func TestAuthFlow(t *testing.T) {
	app := setupApp(t)

	t.Run("register new shopper", func(t *testing.T) {
		env, status := postJSON(t, app, "/api/auth/register", "", dto.RegisterRequest{
			Username: "maya",
			Email:    "maya@example.com",
			Password: "hunter22",
		})

		assert.Equal(t, 200, status)
		assert.True(t, env.Success)

		var user dto.UserResponse
		require.NoError(t, json.Unmarshal(env.Data, &user))
		assert.Equal(t, "maya", user.Username)
		assert.Equal(t, "user", user.Role)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		env, status := postJSON(t, app, "/api/auth/register", "", dto.RegisterRequest{
			Username: "maya",
			Email:    "other@example.com",
			Password: "hunter22",
		})

		assert.Equal(t, 400, status)
		assert.False(t, env.Success)
	})

	t.Run("login returns token and session", func(t *testing.T) {
		auth := login(t, app, "maya", "hunter22")

		assert.NotEmpty(t, auth.Token)
		assert.NotEmpty(t, auth.SessionId)
		assert.Equal(t, "maya", auth.User.Username)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, status := postJSON(t, app, "/api/auth/login", "", dto.LoginRequest{
			Username: "maya",
			Password: "not-it",
		})
		assert.Equal(t, 401, status)
	})

	t.Run("repeated failures lock the account", func(t *testing.T) {
		var status int
		for i := 0; i < 5; i++ {
			_, status = postJSON(t, app, "/api/auth/login", "", dto.LoginRequest{
				Username: "maya",
				Password: fmt.Sprintf("bad-%d", i),
			})
		}
		assert.Equal(t, 423, status)

		// A correct password clears the counter.
		auth := login(t, app, "maya", "hunter22")
		assert.NotEmpty(t, auth.Token)
	})

	t.Run("seeded admin can read logs", func(t *testing.T) {
		auth := login(t, app, "admin", "admin123")

		_, status := doJSON(t, app, "GET", "/api/admin/logs", auth.Token, nil)
		assert.Equal(t, 200, status)
	})

	t.Run("regular user cannot read logs", func(t *testing.T) {
		auth := login(t, app, "maya", "hunter22")

		_, status := doJSON(t, app, "GET", "/api/admin/logs", auth.Token, nil)
		assert.Equal(t, 403, status)
	})

	t.Run("context requires auth", func(t *testing.T) {
		_, status := doJSON(t, app, "GET", "/api/context/", "", nil)
		assert.Equal(t, 401, status)
	})
}
