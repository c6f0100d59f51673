package server

import (
	"context"

	"availability-watcher/core/loader"
	"availability-watcher/core/logger"
	"availability-watcher/core/middleware/auth"
	"availability-watcher/core/middleware/rayid"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New builds the status app: ray id and request logging on every route, a
// public health check, then the API key check in front of the features.
func New(cfg Config, logg *zap.Logger, mgr *loader.Manager) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	// RayID first so that everything below is traceable
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(auth.New(auth.Config{ApiKey: cfg.ApiKey}))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}
	logg.Debug("Features loaded", zap.Strings("features", loaded))

	return app, nil
}

// Serve listens until ctx is cancelled, then shuts the app down.
func Serve(ctx context.Context, app *fiber.App, cfg Config, logg *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting status server", zap.String("port", cfg.Port))
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logg.Info("Shutting down status server")
		return app.Shutdown()
	}
}
