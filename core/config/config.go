package config

import (
	"fmt"
	"strings"
	"sync"

	"focusflow-api/core/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port     int    `mapstructure:"port"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// PlannerConfig carries the workday bounds and preference defaults. The
// planner itself never reads these from globals; core/server injects them.
type PlannerConfig struct {
	WorkdayStartHour       int `mapstructure:"workday_start_hour"`
	WorkdayEndHour         int `mapstructure:"workday_end_hour"`
	MinimumDurationMinutes int `mapstructure:"minimum_duration_minutes"`
	BufferTimeMinutes      int `mapstructure:"buffer_time_minutes"`
	CacheTTLSeconds        int `mapstructure:"cache_ttl_seconds"`
}

type SessionConfig struct {
	MaxAgeHours   int `mapstructure:"max_age_hours"`
	RetentionDays int `mapstructure:"retention_days"`
}

// StorageConfig configures the S3-compatible bucket used for session
// summary archival. Disabled when the bucket is empty.
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type CalendarConfig struct {
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Planner  PlannerConfig  `mapstructure:"planner"`
	Session  SessionConfig  `mapstructure:"session"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Calendar CalendarConfig `mapstructure:"calendar"`
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env (if present), binds environment variables and builds the
// config singleton. Call once at startup.
func Load() (*Config, error) {
	// .env is optional; env vars win either way.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	mu.Lock()
	instance = &cfg
	mu.Unlock()

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 7070)
	v.SetDefault("server.env", "development")
	v.SetDefault("server.log_level", "info")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "focusflow")
	v.SetDefault("database.sslmode", constants.DatabaseSSLMode)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt_secret", "")

	v.SetDefault("planner.workday_start_hour", constants.DefaultWorkdayStartHour)
	v.SetDefault("planner.workday_end_hour", constants.DefaultWorkdayEndHour)
	v.SetDefault("planner.minimum_duration_minutes", constants.DefaultMinimumDurationMin)
	v.SetDefault("planner.buffer_time_minutes", constants.DefaultBufferTimeMin)
	v.SetDefault("planner.cache_ttl_seconds", constants.SuggestionCacheTTLSeconds)

	v.SetDefault("session.max_age_hours", constants.SessionMaxAgeHours)
	v.SetDefault("session.retention_days", constants.SuggestionRetentionDays)

	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")

	v.SetDefault("calendar.fetch_timeout_seconds", 15)
}

// Get returns the loaded config. Panics if Load was never called; use
// GetSafe in paths that may run before startup finishes.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config: Get called before Load")
	}
	return instance
}

// GetSafe returns the loaded config, or an error instead of panicking.
func GetSafe() (*Config, error) {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return nil, fmt.Errorf("config not loaded")
	}
	return instance, nil
}
