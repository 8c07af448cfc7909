package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpin "dispatch/internal/adapters/in/http"
	kafkain "dispatch/internal/adapters/in/kafka"
	kafkaout "dispatch/internal/adapters/out/kafka"
	"dispatch/internal/adapters/out/metrics"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/redislock"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Closers collects the release functions of everything the container opened.
type Closers struct {
	fns []func() error
}

// Add registers fn to run on Close.
func (c *Closers) Add(fn func() error) {
	c.fns = append(c.fns, fn)
}

// Close runs the release functions in reverse order of registration.
func (c *Closers) Close() error {
	var err error
	for i := len(c.fns) - 1; i >= 0; i-- {
		err = errors.Join(err, c.fns[i]())
	}
	c.fns = nil
	return err
}

// ContainerBuilder is a dig container builder for the dispatch service.
type ContainerBuilder struct {
	args    []string
	logger  *slog.Logger
	migrate func(dsn string) error
	openDB  func(dsn string) (*gorm.DB, error)
}

// NewContainerBuilder returns a builder that reads configuration from args.
func NewContainerBuilder(args []string, logger *slog.Logger) *ContainerBuilder {
	return &ContainerBuilder{
		args:    args,
		logger:  logger,
		migrate: postgres.Migrate,
		openDB:  openGorm,
	}
}

// WithMigrator replaces the schema migration step.
func (b *ContainerBuilder) WithMigrator(fn func(dsn string) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithDBOpener replaces how the database handle is opened.
func (b *ContainerBuilder) WithDBOpener(fn func(dsn string) (*gorm.DB, error)) *ContainerBuilder {
	if fn != nil {
		b.openDB = fn
	}
	return b
}

// Build registers every provider. Nothing is constructed until Invoke.
func (b *ContainerBuilder) Build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := b.registerCore(ctx, container); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := b.registerInfrastructure(container); err != nil {
		return nil, fmt.Errorf("infrastructure: %w", err)
	}
	if err := registerApplication(container); err != nil {
		return nil, fmt.Errorf("application: %w", err)
	}
	return container, nil
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func (b *ContainerBuilder) registerCore(ctx context.Context, container *dig.Container) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *slog.Logger { return b.logger },
		func() (Config, error) { return LoadConfig(b.args) },
		func() *Closers { return &Closers{} },
	)
}

func (b *ContainerBuilder) registerInfrastructure(container *dig.Container) error {
	provideDB := func(cfg Config, closers *Closers) (*gorm.DB, error) {
		if err := b.migrate(cfg.DatabaseURL()); err != nil {
			return nil, err
		}
		db, err := b.openDB(cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		closers.Add(sqlDB.Close)
		return db, nil
	}

	provideRegistry := func() *prometheus.Registry {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return registry
	}

	return provideAll(container,
		provideDB,
		provideRunLocker,
		providePublisher,
		provideRegistry,
		metrics.NewCollector,
	)
}

func registerApplication(container *dig.Container) error {
	provideRoot := func(
		db *gorm.DB,
		locker ports.RunLocker,
		publisher ports.AssignmentPublisher,
		collector *metrics.Collector,
		logger *slog.Logger,
	) CompositionRoot {
		return NewCompositionRoot(db, locker, publisher, collector, logger)
	}

	provideConsumer := func(cfg Config, root CompositionRoot, logger *slog.Logger, closers *Closers) (*kafkain.Consumer, error) {
		consumer, err := kafkain.NewConsumer(
			cfg.KafkaBrokers(),
			cfg.KafkaConsumerGroup,
			cfg.KafkaOrderCreatedTopic,
			root.CreateCreateOrderCommandHandler(),
			logger,
		)
		if err != nil {
			return nil, fmt.Errorf("join consumer group: %w", err)
		}
		closers.Add(consumer.Close)
		return consumer, nil
	}

	provideJobManager := func(cfg Config, root CompositionRoot, logger *slog.Logger) *jobs.JobManager {
		return jobs.NewJobManager(root.CreateRunAssignmentCommandHandler(), cfg.AssignmentSchedule, cfg.AssignmentRunTimeout, logger)
	}

	provideRouter := func(root CompositionRoot, collector *metrics.Collector, logger *slog.Logger) (*echo.Echo, error) {
		return httpin.NewRouter(httpin.NewServer(root.CreateHTTPHandlers(), logger), collector, logger)
	}

	return provideAll(container,
		provideRoot,
		provideConsumer,
		provideJobManager,
		provideRouter,
	)
}

func openGorm(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

// provideRunLocker uses Redis when configured so that replicas share one run lock,
// otherwise an in-process lock.
func provideRunLocker(ctx context.Context, cfg Config, logger *slog.Logger, closers *Closers) (ports.RunLocker, error) {
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR is empty, assignment runs are serialized within this process only")
		return redislock.NewLocalLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	closers.Add(client.Close)
	return redislock.NewLocker(client, cfg.RunLockKey, cfg.RunLockTTL), nil
}

// providePublisher returns a nil *Publisher, which drops outcomes, when Kafka is not configured.
func providePublisher(cfg Config, logger *slog.Logger, closers *Closers) (ports.AssignmentPublisher, error) {
	brokers := cfg.KafkaBrokers()
	if len(brokers) == 0 || cfg.KafkaAssignmentOutcomesTopic == "" {
		logger.Warn("KAFKA_HOST is empty, assignment outcomes are not published")
		return (*kafkaout.Publisher)(nil), nil
	}

	producer, err := kafkaout.NewSyncProducer(brokers)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	closers.Add(producer.Close)
	return kafkaout.NewPublisher(producer, cfg.KafkaAssignmentOutcomesTopic, logger), nil
}
