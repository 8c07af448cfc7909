package cmd

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	kafkain "dispatch/internal/adapters/in/kafka"
	"dispatch/internal/adapters/out/redislock"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestContainerBuilder(t *testing.T) *ContainerBuilder {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("KAFKA_HOST", "")

	return NewContainerBuilder(nil, slog.New(slog.NewTextHandler(io.Discard, nil))).
		WithMigrator(func(string) error { return nil }).
		WithDBOpener(func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{DisableAutomaticPing: true})
		})
}

func TestContainerBuilder_ResolvesGraphWithoutOptionalInfrastructure(t *testing.T) {
	container, err := newTestContainerBuilder(t).Build(t.Context())
	require.NoError(t, err)

	err = container.Invoke(func(
		e *echo.Echo,
		consumer *kafkain.Consumer,
		jobManager *jobs.JobManager,
		locker ports.RunLocker,
		closers *Closers,
	) error {
		assert.NotNil(t, e)
		assert.Nil(t, consumer)
		assert.NotNil(t, jobManager)
		assert.IsType(t, &redislock.LocalLocker{}, locker)
		return closers.Close()
	})
	assert.NoError(t, err)
}

func TestContainerBuilder_MigrationFailureSurfacesOnInvoke(t *testing.T) {
	boom := errors.New("migrations are dirty")
	container, err := newTestContainerBuilder(t).
		WithMigrator(func(string) error { return boom }).
		Build(t.Context())
	require.NoError(t, err)

	err = container.Invoke(func(*echo.Echo) {})
	require.Error(t, err)
	assert.ErrorIs(t, dig.RootCause(err), boom)
}

func TestContainerBuilder_InvalidConfigSurfacesOnInvoke(t *testing.T) {
	builder := newTestContainerBuilder(t)
	t.Setenv("DB_HOST", "")

	container, err := builder.Build(t.Context())
	require.NoError(t, err)

	err = container.Invoke(func(Config) {})
	assert.Error(t, err)
}

func TestClosers_CloseRunsInReverseAndJoinsErrors(t *testing.T) {
	var order []int
	boom := errors.New("boom")

	var c Closers
	c.Add(func() error { order = append(order, 1); return nil })
	c.Add(func() error { order = append(order, 2); return boom })
	c.Add(func() error { order = append(order, 3); return nil })

	err := c.Close()

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{3, 2, 1}, order)
	assert.NoError(t, c.Close())
}
