package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"dispatch/internal/adapters/out/redislock"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	HTTPPort        string
	ShutdownTimeout time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RunLockKey    string
	RunLockTTL    time.Duration

	KafkaHost                    string
	KafkaConsumerGroup           string
	KafkaOrderCreatedTopic       string
	KafkaAssignmentOutcomesTopic string

	AssignmentSchedule   string
	AssignmentRunTimeout time.Duration
}

// LoadConfig reads settings from .env (if present), then the environment, then
// command-line flags; later sources win.
func LoadConfig(args []string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	var envErrs []error
	durationEnv := func(key string, def time.Duration) time.Duration {
		d, err := envDuration(key, def)
		envErrs = append(envErrs, err)
		return d
	}
	intEnv := func(key string, def int) int {
		n, err := envInt(key, def)
		envErrs = append(envErrs, err)
		return n
	}

	flags := pflag.NewFlagSet("dispatch", pflag.ContinueOnError)

	flags.StringVar(&cfg.HTTPPort, "http-port", env("HTTP_PORT", "8080"), "HTTP listen port")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", durationEnv("SHUTDOWN_TIMEOUT", 15*time.Second), "graceful shutdown limit")

	flags.StringVar(&cfg.DBHost, "db-host", env("DB_HOST", "localhost"), "postgres host")
	flags.StringVar(&cfg.DBPort, "db-port", env("DB_PORT", "5432"), "postgres port")
	flags.StringVar(&cfg.DBUser, "db-user", env("DB_USER", "postgres"), "postgres user")
	flags.StringVar(&cfg.DBPassword, "db-password", env("DB_PASSWORD", ""), "postgres password")
	flags.StringVar(&cfg.DBName, "db-name", env("DB_NAME", "dispatch"), "postgres database")
	flags.StringVar(&cfg.DBSslMode, "db-sslmode", env("DB_SSLMODE", "disable"), "postgres sslmode")

	flags.StringVar(&cfg.RedisAddr, "redis-addr", env("REDIS_ADDR", ""), "redis address for the run lock, empty for an in-process lock")
	flags.StringVar(&cfg.RedisPassword, "redis-password", env("REDIS_PASSWORD", ""), "redis password")
	flags.IntVar(&cfg.RedisDB, "redis-db", intEnv("REDIS_DB", 0), "redis database number")
	flags.StringVar(&cfg.RunLockKey, "run-lock-key", env("RUN_LOCK_KEY", redislock.DefaultKey), "redis key of the run lock")
	flags.DurationVar(&cfg.RunLockTTL, "run-lock-ttl", durationEnv("RUN_LOCK_TTL", 2*time.Minute), "run lock expiry")

	flags.StringVar(&cfg.KafkaHost, "kafka-host", env("KAFKA_HOST", ""), "comma separated kafka brokers, empty disables kafka")
	flags.StringVar(&cfg.KafkaConsumerGroup, "kafka-consumer-group", env("KAFKA_CONSUMER_GROUP", "dispatch"), "kafka consumer group")
	flags.StringVar(&cfg.KafkaOrderCreatedTopic, "kafka-order-created-topic", env("KAFKA_ORDER_CREATED_TOPIC", "orders.created"), "order intake topic")
	flags.StringVar(&cfg.KafkaAssignmentOutcomesTopic, "kafka-assignment-outcomes-topic",
		env("KAFKA_ASSIGNMENT_OUTCOMES_TOPIC", "assignments.outcomes"), "assignment outcome topic")

	flags.StringVar(&cfg.AssignmentSchedule, "assignment-schedule", env("ASSIGNMENT_SCHEDULE", jobs.DefaultAssignmentSchedule),
		"six-field cron schedule of assignment runs")
	flags.DurationVar(&cfg.AssignmentRunTimeout, "assignment-run-timeout", durationEnv("ASSIGNMENT_RUN_TIMEOUT", time.Minute),
		"limit of one scheduled assignment run")

	if err := errors.Join(envErrs...); err != nil {
		return Config{}, err
	}
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings the service cannot start without.
func (c Config) Validate() error {
	var errHTTPPort, errDBHost, errDBName, errTTL error
	if _, err := strconv.ParseUint(c.HTTPPort, 10, 16); err != nil {
		errHTTPPort = errs.NewValueIsInvalidErrorWithCause("http port", err)
	}
	if strings.TrimSpace(c.DBHost) == "" {
		errDBHost = errs.NewValueIsRequiredError("db host")
	}
	if strings.TrimSpace(c.DBName) == "" {
		errDBName = errs.NewValueIsRequiredError("db name")
	}
	if c.RunLockTTL <= 0 {
		errTTL = errs.NewValueIsOutOfRangeError("run lock ttl", c.RunLockTTL, "1ns", "∞")
	}
	return errors.Join(errHTTPPort, errDBHost, errDBName, errTTL)
}

// DatabaseURL returns the postgres:// URL accepted by both gorm and the migrator.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   net.JoinHostPort(c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	if c.DBSslMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DBSslMode}}.Encode()
	}
	return u.String()
}

// KafkaBrokers splits KafkaHost into broker addresses.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return d, nil
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return n, nil
}
