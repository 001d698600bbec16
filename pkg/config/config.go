package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendFile     = "file"
	BackendInMemory = "memory"
	BackendRedis    = "redis"
)

type AppConfig struct {
	App       App             `mapstructure:"app"`
	Logging   Logging         `mapstructure:"logging"`
	Store     Store           `mapstructure:"store"`
	Redis     Redis           `mapstructure:"redis"`
	APIServer APIServerConfig `mapstructure:"api_server"`
	Telemetry Telemetry       `mapstructure:"telemetry"`
	Jobs      Jobs            `mapstructure:"jobs"`
}

type App struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File enables a rotated log file in addition to stdout when set.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type Store struct {
	Backend         string `mapstructure:"backend"`
	DataDir         string `mapstructure:"data_dir"`
	UsersDocument   string `mapstructure:"users_document"`
	CoursesDocument string `mapstructure:"courses_document"`
}

type Redis struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type APIServerConfig struct {
	Host string     `mapstructure:"host"`
	Port int        `mapstructure:"port"`
	Auth AuthConfig `mapstructure:"auth"`
	CORS CORSConfig `mapstructure:"cors"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Mode is "apikey", "basic" or "users".
	Mode       string      `mapstructure:"mode"`
	APIKeys    []string    `mapstructure:"api_keys"`
	BasicUsers []BasicUser `mapstructure:"basic_users"`
}

type BasicUser struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

type Telemetry struct {
	Enabled        bool          `mapstructure:"enabled"`
	OTLPEndpoint   string        `mapstructure:"otlp_endpoint"`
	Insecure       bool          `mapstructure:"insecure"`
	ExportInterval time.Duration `mapstructure:"export_interval"`
}

// Jobs configures the background maintenance jobs.
type Jobs struct {
	Enabled                  bool          `mapstructure:"enabled"`
	InitialDelay             time.Duration `mapstructure:"initial_delay"`
	RepairInterval           time.Duration `mapstructure:"repair_interval"`
	AuditInterval            time.Duration `mapstructure:"audit_interval"`
	PruneDanglingEnrollments bool          `mapstructure:"prune_dangling_enrollments"`
}

var (
	loaded   *AppConfig
	loadedMu sync.RWMutex
)

var ErrNotLoaded = errors.New("config has not been loaded")

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "coursenaut")
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.environment", "local")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.max_size_mb", 100)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age_days", 30)

	v.SetDefault("store.backend", BackendFile)
	v.SetDefault("store.data_dir", "data")
	v.SetDefault("store.users_document", "users.json")
	v.SetDefault("store.courses_document", "courses.json")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.key_prefix", "coursenaut:")

	v.SetDefault("api_server.host", "0.0.0.0")
	v.SetDefault("api_server.port", 8080)
	v.SetDefault("api_server.auth.mode", "apikey")
	v.SetDefault("api_server.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("api_server.cors.allowed_headers", []string{"Origin", "Content-Type", "X-API-Key", "Authorization"})

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.export_interval", "30s")

	v.SetDefault("jobs.enabled", true)
	v.SetDefault("jobs.initial_delay", "10s")
	v.SetDefault("jobs.repair_interval", "1h")
	v.SetDefault("jobs.audit_interval", "24h")
}

// LoadConfig reads config.yaml from path (a missing file is allowed), applies
// COURSENAUT_* environment overrides and stores the result for GetConfig.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("COURSENAUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("store.data_dir", "COURSENAUT_DATA_DIR")
	_ = v.BindEnv("redis.host", "REDIS_HOST")
	_ = v.BindEnv("redis.port", "REDIS_PORT")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loadedMu.Lock()
	loaded = &cfg
	loadedMu.Unlock()

	return &cfg, nil
}

// GetConfig returns the configuration stored by the last successful LoadConfig.
func GetConfig() (*AppConfig, error) {
	loadedMu.RLock()
	defer loadedMu.RUnlock()
	if loaded == nil {
		return nil, ErrNotLoaded
	}
	return loaded, nil
}

func (c *AppConfig) Validate() error {
	switch c.Store.Backend {
	case BackendFile:
		if c.Store.DataDir == "" {
			return fmt.Errorf("store.data_dir is required for the %q backend", BackendFile)
		}
	case BackendInMemory, BackendRedis:
	default:
		return fmt.Errorf("unsupported store backend %q", c.Store.Backend)
	}
	if c.Store.UsersDocument == "" || c.Store.CoursesDocument == "" {
		return errors.New("store.users_document and store.courses_document are required")
	}
	if c.Store.UsersDocument == c.Store.CoursesDocument {
		return errors.New("store.users_document and store.courses_document must differ")
	}
	switch c.APIServer.Auth.Mode {
	case "apikey", "basic", "users":
	default:
		return fmt.Errorf("unsupported api_server.auth.mode %q", c.APIServer.Auth.Mode)
	}
	return nil
}
