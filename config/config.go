package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Seed     SeedConfig     `yaml:"seed"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Log      LogConfig      `yaml:"log"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type SeedConfig struct {
	Count          int    `yaml:"count"`
	ClearExisting  *bool  `yaml:"clear_existing"`
	IDOffset       int    `yaml:"id_offset"`
	ProgressEvery  int    `yaml:"progress_every"`
	RandomSeed     uint64 `yaml:"random_seed"`
	NonInteractive bool   `yaml:"non_interactive"`
}

// Clear reports whether existing flights are purged before loading.
// Unset means true.
func (s SeedConfig) Clear() bool {
	return s.ClearExisting == nil || *s.ClearExisting
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers   []string `yaml:"brokers"`
	SeedTopic string   `yaml:"seed_topic"`
}

type MetricsConfig struct {
	Namespace    string `yaml:"namespace"`
	TextfilePath string `yaml:"textfile_path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig reads the yaml file at path. A missing file is not an error:
// the seeder runs on defaults. Values from .env and the process
// environment override the file.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if cfg.Database.Driver != DriverSQLite && cfg.Database.Driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if cfg.Seed.Count < 0 {
		return nil, fmt.Errorf("seed count must not be negative, got %d", cfg.Seed.Count)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("FLIGHTSEED_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("FLIGHTSEED_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("FLIGHTSEED_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FLIGHTSEED_COUNT %q: %w", v, err)
		}
		c.Seed.Count = n
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Database.Driver == DriverPostgres {
		if c.Database.Host == "" {
			c.Database.Host = "localhost"
		}
		if c.Database.Port == 0 {
			c.Database.Port = 5432
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = "disable"
		}
	}
	if c.Seed.Count == 0 {
		c.Seed.Count = 10000
	}
	if c.Seed.IDOffset == 0 {
		c.Seed.IDOffset = 1000
	}
	if c.Seed.ProgressEvery <= 0 {
		c.Seed.ProgressEvery = 1000
	}
	if c.Kafka.SeedTopic == "" {
		c.Kafka.SeedTopic = "flights.seeded"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "flightseed"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
