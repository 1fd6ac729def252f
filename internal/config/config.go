package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "TASKBOARD"

type Config struct {
	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database"`
	SQLite     SQLiteConfig     `mapstructure:"sqlite" yaml:"sqlite"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	Repository RepositoryConfig `mapstructure:"repository" yaml:"repository"`
	Worker     WorkerConfig     `mapstructure:"worker" yaml:"worker"`
	Seed       SeedConfig       `mapstructure:"seed" yaml:"seed"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port" yaml:"port"`
	Host            string        `mapstructure:"host" yaml:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	RateLimit       int           `mapstructure:"rate_limit" yaml:"rate_limit"`
	CORSOrigins     []string      `mapstructure:"cors_origins" yaml:"cors_origins"`
}

type DatabaseConfig struct {
	URL            string        `mapstructure:"url" yaml:"url"`
	MaxConnections int32         `mapstructure:"max_connections" yaml:"max_connections"`
	MinConnections int32         `mapstructure:"min_connections" yaml:"min_connections"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type LoggingConfig struct {
	Development bool `mapstructure:"development" yaml:"development"`
}

type RepositoryConfig struct {
	Type string `mapstructure:"type" yaml:"type"` // inmemory, postgres or sqlite
}

type WorkerConfig struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled"`
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

type SeedConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

const (
	RepositoryInMemory = "inmemory"
	RepositoryPostgres = "postgres"
	RepositorySQLite   = "sqlite"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
	v.SetDefault("server.rate_limit", 100)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.min_connections", 2)
	v.SetDefault("database.idle_timeout", 5*time.Minute)

	v.SetDefault("sqlite.path", "taskboard.db")
	v.SetDefault("logging.development", false)
	v.SetDefault("repository.type", RepositoryInMemory)

	v.SetDefault("worker.enabled", true)
	v.SetDefault("worker.interval", 5*time.Minute)

	v.SetDefault("seed.file", "")
}

// Load reads the configuration from path, or from ./config.yml when path is
// empty. A missing default file is not an error. Values from a .env file and
// TASKBOARD_* environment variables override the file, for example
// TASKBOARD_SERVER_PORT or TASKBOARD_DATABASE_URL.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Repository.Type {
	case RepositoryInMemory, RepositorySQLite:
	case RepositoryPostgres:
		if c.Database.URL == "" {
			return errors.New("config: database.url is required for the postgres repository")
		}
	default:
		return fmt.Errorf("config: unknown repository type %q", c.Repository.Type)
	}

	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("config: server.rate_limit must be positive, got %d", c.Server.RateLimit)
	}
	if c.Worker.Enabled && c.Worker.Interval <= 0 {
		return fmt.Errorf("config: worker.interval must be positive, got %s", c.Worker.Interval)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
