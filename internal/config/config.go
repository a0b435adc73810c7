package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	DB        DatabaseConfig
	App       AppConfig
	Redis     RedisConfig
	Session   SessionConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

// DatabaseConfig holds configuration for the database
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

// AppConfig holds configuration for the web server and presentation defaults
type AppConfig struct {
	HTTPPort               string
	ShutdownTimeoutSeconds int
	DefaultPageSize        int
	MaxPageSize            int
}

// RedisConfig holds configuration for Redis
type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	MaxRetries  int
	PoolSize    int
	MinIdleConn int
}

// SessionConfig holds configuration for the session store
type SessionConfig struct {
	TTLSeconds int
	CookieName string
}

// MailConfig holds configuration for the outbound mail sender
type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

// RateLimitConfig holds configuration for request rate limiting
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstCapacity     int
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level            string
	Format           string
	OutputPath       string
	SlowQuerySeconds float64
	EnableSampling   bool
	ServiceName      string
	ServiceVersion   string
}

// Load reads configuration from file or environment variables.
func Load(path string) (*Config, error) {
	setDefaults()

	viper.AddConfigPath(path)
	viper.SetConfigName("app") // Look for app.env
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if we have env vars
	}

	var config Config

	config.DB.Host = viper.GetString("DB_HOST")
	config.DB.Port = viper.GetString("DB_PORT")
	config.DB.User = viper.GetString("DB_USER")
	config.DB.Password = viper.GetString("DB_PASSWORD")
	config.DB.Name = viper.GetString("DB_NAME")
	config.DB.SSLMode = viper.GetString("DB_SSLMODE")
	config.DB.MaxOpenConns = viper.GetInt("DB_MAX_OPEN_CONNS")
	config.DB.MaxIdleConns = viper.GetInt("DB_MAX_IDLE_CONNS")
	config.DB.ConnMaxLifetime = viper.GetInt("DB_CONN_MAX_LIFETIME_SECONDS")
	config.DB.ConnMaxIdleTime = viper.GetInt("DB_CONN_MAX_IDLE_TIME_SECONDS")

	config.App.HTTPPort = viper.GetString("HTTP_PORT")
	config.App.ShutdownTimeoutSeconds = viper.GetInt("SHUTDOWN_TIMEOUT_SECONDS")
	config.App.DefaultPageSize = viper.GetInt("DEFAULT_PAGE_SIZE")
	config.App.MaxPageSize = viper.GetInt("MAX_PAGE_SIZE")

	config.Redis.Host = viper.GetString("REDIS_HOST")
	config.Redis.Port = viper.GetString("REDIS_PORT")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.MaxRetries = viper.GetInt("REDIS_MAX_RETRIES")
	config.Redis.PoolSize = viper.GetInt("REDIS_POOL_SIZE")
	config.Redis.MinIdleConn = viper.GetInt("REDIS_MIN_IDLE_CONN")

	config.Session.TTLSeconds = viper.GetInt("SESSION_TTL_SECONDS")
	config.Session.CookieName = viper.GetString("SESSION_COOKIE_NAME")

	config.Mail.Host = viper.GetString("MAIL_HOST")
	config.Mail.Port = viper.GetString("MAIL_PORT")
	config.Mail.Username = viper.GetString("MAIL_USERNAME")
	config.Mail.Password = viper.GetString("MAIL_PASSWORD")
	config.Mail.From = viper.GetString("MAIL_FROM")
	config.Mail.Enabled = viper.GetBool("MAIL_ENABLED")

	config.RateLimit.Enabled = viper.GetBool("RATE_LIMIT_ENABLED")
	config.RateLimit.RequestsPerSecond = viper.GetFloat64("RATE_LIMIT_REQUESTS_PER_SECOND")
	config.RateLimit.BurstCapacity = viper.GetInt("RATE_LIMIT_BURST_CAPACITY")

	config.Logger.Level = viper.GetString("LOG_LEVEL")
	config.Logger.Format = viper.GetString("LOG_FORMAT")
	config.Logger.OutputPath = viper.GetString("LOG_OUTPUT_PATH")
	config.Logger.SlowQuerySeconds = viper.GetFloat64("LOG_SLOW_QUERY_SECONDS")
	config.Logger.EnableSampling = viper.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = viper.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = viper.GetString("SERVICE_VERSION")

	return &config, nil
}

// Validate checks that required settings are present and sane.
func (c *Config) Validate() error {
	if c.DB.Host == "" || c.DB.Name == "" {
		return fmt.Errorf("database host and name must be set")
	}
	if c.App.HTTPPort == "" {
		return fmt.Errorf("HTTP port must be set")
	}
	if c.App.DefaultPageSize <= 0 {
		return fmt.Errorf("default page size must be positive")
	}
	if c.App.MaxPageSize < c.App.DefaultPageSize {
		return fmt.Errorf("max page size must be at least the default page size")
	}
	if c.Session.TTLSeconds <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	if c.Mail.Enabled && c.Mail.From == "" {
		return fmt.Errorf("mail sender address must be set when mail is enabled")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "goodreads")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME_SECONDS", 300)
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME_SECONDS", 60)

	viper.SetDefault("HTTP_PORT", "8080")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	viper.SetDefault("DEFAULT_PAGE_SIZE", 10)
	viper.SetDefault("MAX_PAGE_SIZE", 100)

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_MAX_RETRIES", 3)
	viper.SetDefault("REDIS_POOL_SIZE", 10)
	viper.SetDefault("REDIS_MIN_IDLE_CONN", 2)

	viper.SetDefault("SESSION_TTL_SECONDS", 86400)
	viper.SetDefault("SESSION_COOKIE_NAME", "session_id")

	viper.SetDefault("MAIL_HOST", "localhost")
	viper.SetDefault("MAIL_PORT", "25")
	viper.SetDefault("MAIL_FROM", "noreply@goodreads.local")
	viper.SetDefault("MAIL_ENABLED", false)

	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_REQUESTS_PER_SECOND", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST_CAPACITY", 20)

	// Logger defaults
	env := viper.GetString("APP_ENV")
	if env == "production" {
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("LOG_FORMAT", "json")
		viper.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		viper.SetDefault("LOG_LEVEL", "debug")
		viper.SetDefault("LOG_FORMAT", "console")
		viper.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	viper.SetDefault("LOG_OUTPUT_PATH", "stdout")
	viper.SetDefault("LOG_SLOW_QUERY_SECONDS", 0.2)
	viper.SetDefault("SERVICE_NAME", "goodreads-web")
	viper.SetDefault("SERVICE_VERSION", "1.0.0")
}

// DSN returns the PostgreSQL Data Source Name
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}
