package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Session  SessionConfig  `yaml:"session"`
	Reminder ReminderConfig `yaml:"reminder"`
	Log      LogConfig      `yaml:"log"`
	Seed     bool           `yaml:"seed"`
}

type HTTPConfig struct {
	Address         string        `yaml:"address"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

// KafkaConfig with no brokers disables event publishing.
type KafkaConfig struct {
	Brokers      []string      `yaml:"brokers"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxRetries   int           `yaml:"max_retries"`
	RetryDelay   time.Duration `yaml:"retry_delay"`
}

type SessionConfig struct {
	Driver        string        `yaml:"driver"`
	RedisAddress  string        `yaml:"redis_address"`
	RedisPassword string        `yaml:"redis_password"` //nolint:gosec // config struct, not hardcoded cred
	RedisDB       int           `yaml:"redis_db"`
	TTL           time.Duration `yaml:"ttl"`
}

type ReminderConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	Window   time.Duration `yaml:"window"`
}

type LogConfig struct {
	Production bool `yaml:"production"`
}

// Load reads the file found by getConfigPath. A missing file is not an error:
// defaults and environment variables are enough to run.
func Load() (*Config, error) {
	return LoadFile(getConfigPath())
}

func LoadFile(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path) //nolint:gosec // config path from env/flag
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	setDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	possiblePaths := []string{
		"config/config.yaml",
		"/etc/eduportal/config.yaml",
		"./config.yaml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "config.yaml"
}

func setDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 10 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 10 * time.Second
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 15 * time.Second
	}

	if cfg.GRPC.Address == "" {
		cfg.GRPC.Address = ":9090"
	}

	if cfg.Kafka.WriteTimeout == 0 {
		cfg.Kafka.WriteTimeout = 5 * time.Second
	}
	if cfg.Kafka.MaxRetries == 0 {
		cfg.Kafka.MaxRetries = 3
	}
	if cfg.Kafka.RetryDelay == 0 {
		cfg.Kafka.RetryDelay = 100 * time.Millisecond
	}

	if cfg.Session.Driver == "" {
		cfg.Session.Driver = SessionDriverMemory
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 24 * time.Hour
	}

	if cfg.Reminder.Interval == 0 {
		cfg.Reminder.Interval = time.Minute
	}
	if cfg.Reminder.Window == 0 {
		cfg.Reminder.Window = 24 * time.Hour
	}
}

func overrideFromEnv(cfg *Config) {
	if val := os.Getenv("HTTP_ADDRESS"); val != "" {
		cfg.HTTP.Address = val
	}
	if val := os.Getenv("GRPC_ADDRESS"); val != "" {
		cfg.GRPC.Address = val
	}

	if val := os.Getenv("KAFKA_BROKERS"); val != "" {
		cfg.Kafka.Brokers = strings.Split(val, ",")
	}
	if val := os.Getenv("KAFKA_MAX_RETRIES"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Kafka.MaxRetries = n
		}
	}

	if val := os.Getenv("SESSION_DRIVER"); val != "" {
		cfg.Session.Driver = val
	}
	if val := os.Getenv("REDIS_ADDRESS"); val != "" {
		cfg.Session.RedisAddress = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		cfg.Session.RedisPassword = val
	}
	if val := os.Getenv("SESSION_TTL"); val != "" {
		if ttl, err := time.ParseDuration(val); err == nil {
			cfg.Session.TTL = ttl
		}
	}

	if val := os.Getenv("REMINDER_ENABLED"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			cfg.Reminder.Enabled = enabled
		}
	}
	if val := os.Getenv("REMINDER_INTERVAL"); val != "" {
		if interval, err := time.ParseDuration(val); err == nil {
			cfg.Reminder.Interval = interval
		}
	}

	if val := os.Getenv("SEED"); val != "" {
		if seed, err := strconv.ParseBool(val); err == nil {
			cfg.Seed = seed
		}
	}
	if val := os.Getenv("LOG_PRODUCTION"); val != "" {
		if production, err := strconv.ParseBool(val); err == nil {
			cfg.Log.Production = production
		}
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.Session.Driver {
	case SessionDriverMemory:
	case SessionDriverRedis:
		if cfg.Session.RedisAddress == "" {
			return fmt.Errorf("redis address must be set for the redis session driver")
		}
	default:
		return fmt.Errorf("unknown session driver %q", cfg.Session.Driver)
	}

	if cfg.Reminder.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("reminders need at least one Kafka broker")
	}

	if cfg.Reminder.Interval < 0 || cfg.Reminder.Window < 0 {
		return fmt.Errorf("reminder interval and window must be positive")
	}

	return nil
}
