package http

import (
	"context"
	"log/slog"
	"net/http"

	"dispatch/api"
	_ "dispatch/internal/generated/docs"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Metrics is the observability surface the router mounts.
type Metrics interface {
	Middleware() echo.MiddlewareFunc
	Handler() http.Handler
}

// NewRouter assembles the echo instance: recovery, request logging, metrics,
// contract validation, the generated routes, /health, /metrics and /swagger/*.
// metrics may be nil.
func NewRouter(server *Server, metrics Metrics, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	if metrics != nil {
		e.Use(metrics.Middleware())
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Use(validator)
	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http_server")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(context.Background(), level, "Request handled",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.Any("error", v.Error),
			)
			return nil
		},
	})
}
