package rayid_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"availability-watcher/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalsKey).(string))
	})
	return app
}

func TestRayID_Generated(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	rid := resp.Header.Get(rayid.Header)
	_, parseErr := uuid.Parse(rid)
	assert.NoError(t, parseErr)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, rid, string(body))
}

func TestRayID_Unique(t *testing.T) {
	app := newApp()
	first, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	second, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.NotEqual(t, first.Header.Get(rayid.Header), second.Header.Get(rayid.Header))
}

func TestRayID_KeepsIncoming(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "caller-123")

	resp, err := newApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "caller-123", resp.Header.Get(rayid.Header))
}
