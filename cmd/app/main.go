package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dispatch/cmd"
	kafkain "dispatch/internal/adapters/in/kafka"
	"dispatch/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := cmd.NewContainerBuilder(os.Args[1:], logger).Build(ctx)
	if err != nil {
		logger.Error("Failed to build container", "error", err)
		os.Exit(1)
	}

	err = container.Invoke(func(
		configs cmd.Config,
		e *echo.Echo,
		consumer *kafkain.Consumer,
		jobManager *jobs.JobManager,
		closers *cmd.Closers,
	) error {
		defer func() {
			if err := closers.Close(); err != nil {
				logger.Error("Failed to release resources", "error", err)
			}
		}()
		return run(ctx, configs, e, consumer, jobManager, logger)
	})
	if err != nil {
		logger.Error("Service stopped", "error", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	configs cmd.Config,
	e *echo.Echo,
	consumer *kafkain.Consumer,
	jobManager *jobs.JobManager,
	logger *slog.Logger,
) error {
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e.Logger.SetLevel(log.WARN)

	errCh := make(chan error, 2)
	go func() {
		logger.Info("HTTP server listening", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("shutdown http server: %w", err))
	}

	return runErr
}
