package server_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"availability-watcher/core/loader"
	"availability-watcher/core/middleware/auth"
	"availability-watcher/core/middleware/rayid"
	"availability-watcher/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pingFeature struct {
	err error
}

func (pingFeature) Name() string    { return "ping" }
func (pingFeature) IsEnabled() bool { return true }
func (f pingFeature) Load(app fiber.Router) error {
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	return f.err
}

func newApp(t *testing.T, cfg server.Config) *fiber.App {
	t.Helper()
	mgr := loader.NewManager()
	mgr.Register(pingFeature{})
	app, err := server.New(cfg, zap.NewNop(), mgr)
	require.NoError(t, err)
	return app
}

func TestHealth(t *testing.T) {
	app := newApp(t, server.Config{ApiKey: "secret"})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(rayid.Header))

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestFeatureRoutesRequireKey(t *testing.T) {
	app := newApp(t, server.Config{ApiKey: "secret"})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(rayid.Header))

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(auth.Header, "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNewFeatureLoadError(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(pingFeature{err: errors.New("boom")})

	app, err := server.New(server.Config{}, zap.NewNop(), mgr)
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestServeInvalidAddress(t *testing.T) {
	app := newApp(t, server.Config{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := server.Serve(ctx, app, server.Config{Enabled: true, Port: "not-a-port"}, zap.NewNop())
	assert.Error(t, err)
}
