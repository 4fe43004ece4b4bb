package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override (HRMS_DATABASE_PASSWORD, ...)
const EnvPrefix = "HRMS"

// Config holds all application configuration
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Log        LogConfig
	HTTP       HTTPConfig
	Swagger    SwaggerConfig
	Storage    StorageConfig
	Printing   PrintingConfig
	Authz      AuthzConfig
	Attendance AttendanceConfig
	Company    CompanyConfig
	Telemetry  TelemetryConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name     string
	Env      string
	Port     string
	Timezone string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// RedisConfig holds Redis connection settings. Redis is optional; when
// disabled the token blacklist and settings cache fall back to memory.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig holds JWT settings
type JWTConfig struct {
	Secret                 string
	AccessTokenExpiration  time.Duration
	RefreshTokenExpiration time.Duration
	Issuer                 string
	RefreshSecret          string
	MaxRefreshCount        int
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout           time.Duration
	WriteTimeout          time.Duration
	IdleTimeout           time.Duration
	MaxHeaderBytes        int
	MaxBodySize           int64
	MaxUploadSize         int64
	RateLimitEnabled      bool
	RateLimitRequests     int
	RateLimitWindow       time.Duration
	AuthRateLimitEnabled  bool
	AuthRateLimitRequests int
	AuthRateLimitWindow   time.Duration
	CORSAllowOrigins      []string
	CORSAllowMethods      []string
	CORSAllowHeaders      []string
	TrustedProxies        []string
}

// SwaggerConfig holds Swagger documentation endpoint configuration
type SwaggerConfig struct {
	Enabled    bool
	AllowedIPs []string // empty = allow all
}

// StorageConfig holds S3-compatible object storage settings for challan files
type StorageConfig struct {
	Enabled           bool
	Endpoint          string
	Region            string
	Bucket            string
	AccessKey         string
	SecretKey         string
	UseSSL            bool
	UsePathStyle      bool
	PresignExpiration time.Duration
	// LocalBaseURL is where in-memory challans are served when S3 is disabled
	LocalBaseURL string
}

// PrintingConfig holds headless Chrome settings for PDF reports
type PrintingConfig struct {
	ChromePath     string
	Timeout        time.Duration
	MaxConcurrency int
}

// AuthzConfig holds casbin model and policy file paths
type AuthzConfig struct {
	ModelPath  string
	PolicyPath string
	Mode       string // enforce, shadow, disabled
}

// AttendanceConfig holds attendance rules
type AttendanceConfig struct {
	LateAfter string // HH:MM local time
}

// LateThreshold parses LateAfter into an offset from midnight
func (a AttendanceConfig) LateThreshold() (time.Duration, error) {
	t, err := time.Parse("15:04", a.LateAfter)
	if err != nil {
		return 0, fmt.Errorf("attendance.late_after must be HH:MM: %w", err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// CompanyConfig seeds the letterhead until an admin saves system settings
type CompanyConfig struct {
	Name          string
	Tagline       string
	Address       string
	Website       string
	Email         string
	HRName        string
	HRDesignation string
}

// TelemetryConfig holds OpenTelemetry configuration
type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string  // e.g. "localhost:4317"
	SamplingRatio     float64 // 0.0-1.0
	ServiceName       string
	Insecure          bool
	MetricsEnabled    bool
	MetricsInterval   time.Duration
	LogsEnabled       bool
	DBTraceEnabled    bool
	DBLogFullSQL      bool
	DBSlowQueryThresh time.Duration

	// Pyroscope continuous profiling
	ProfilingEnabled           bool
	ProfilingServerAddress     string
	ProfilingBasicAuthUser     string
	ProfilingBasicAuthPassword string
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with HRMS_ prefix (a .env file is loaded into the environment first)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name:     v.GetString("app.name"),
			Env:      v.GetString("app.env"),
			Port:     v.GetString("app.port"),
			Timezone: v.GetString("app.timezone"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret:                 v.GetString("jwt.secret"),
			AccessTokenExpiration:  v.GetDuration("jwt.access_token_expiration"),
			RefreshTokenExpiration: v.GetDuration("jwt.refresh_token_expiration"),
			Issuer:                 v.GetString("jwt.issuer"),
			RefreshSecret:          v.GetString("jwt.refresh_secret"),
			MaxRefreshCount:        v.GetInt("jwt.max_refresh_count"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:           v.GetDuration("http.read_timeout"),
			WriteTimeout:          v.GetDuration("http.write_timeout"),
			IdleTimeout:           v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:        v.GetInt("http.max_header_bytes"),
			MaxBodySize:           v.GetInt64("http.max_body_size"),
			MaxUploadSize:         v.GetInt64("http.max_upload_size"),
			RateLimitEnabled:      v.GetBool("http.rate_limit_enabled"),
			RateLimitRequests:     v.GetInt("http.rate_limit_requests"),
			RateLimitWindow:       v.GetDuration("http.rate_limit_window"),
			AuthRateLimitEnabled:  v.GetBool("http.auth_rate_limit_enabled"),
			AuthRateLimitRequests: v.GetInt("http.auth_rate_limit_requests"),
			AuthRateLimitWindow:   v.GetDuration("http.auth_rate_limit_window"),
			CORSAllowOrigins:      v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods:      v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders:      v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:        v.GetStringSlice("http.trusted_proxies"),
		},
		Swagger: SwaggerConfig{
			Enabled:    v.GetBool("swagger.enabled"),
			AllowedIPs: v.GetStringSlice("swagger.allowed_ips"),
		},
		Storage: StorageConfig{
			Enabled:           v.GetBool("storage.enabled"),
			Endpoint:          v.GetString("storage.endpoint"),
			Region:            v.GetString("storage.region"),
			Bucket:            v.GetString("storage.bucket"),
			AccessKey:         v.GetString("storage.access_key"),
			SecretKey:         v.GetString("storage.secret_key"),
			UseSSL:            v.GetBool("storage.use_ssl"),
			UsePathStyle:      v.GetBool("storage.use_path_style"),
			PresignExpiration: v.GetDuration("storage.presign_expiration"),
			LocalBaseURL:      v.GetString("storage.local_base_url"),
		},
		Printing: PrintingConfig{
			ChromePath:     v.GetString("printing.chrome_path"),
			Timeout:        v.GetDuration("printing.timeout"),
			MaxConcurrency: v.GetInt("printing.max_concurrency"),
		},
		Authz: AuthzConfig{
			ModelPath:  v.GetString("authz.model_path"),
			PolicyPath: v.GetString("authz.policy_path"),
			Mode:       v.GetString("authz.mode"),
		},
		Attendance: AttendanceConfig{
			LateAfter: v.GetString("attendance.late_after"),
		},
		Company: CompanyConfig{
			Name:          v.GetString("company.name"),
			Tagline:       v.GetString("company.tagline"),
			Address:       v.GetString("company.address"),
			Website:       v.GetString("company.website"),
			Email:         v.GetString("company.email"),
			HRName:        v.GetString("company.hr_name"),
			HRDesignation: v.GetString("company.hr_designation"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
			MetricsEnabled:    v.GetBool("telemetry.metrics_enabled"),
			MetricsInterval:   v.GetDuration("telemetry.metrics_interval"),
			LogsEnabled:       v.GetBool("telemetry.logs_enabled"),
			DBTraceEnabled:    v.GetBool("telemetry.db_trace_enabled"),
			DBLogFullSQL:      v.GetBool("telemetry.db_log_full_sql"),
			DBSlowQueryThresh: v.GetDuration("telemetry.db_slow_query_threshold"),

			ProfilingEnabled:           v.GetBool("telemetry.profiling_enabled"),
			ProfilingServerAddress:     v.GetString("telemetry.profiling_server_address"),
			ProfilingBasicAuthUser:     v.GetString("telemetry.profiling_basic_auth_user"),
			ProfilingBasicAuthPassword: v.GetString("telemetry.profiling_basic_auth_password"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "hrms"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.App.Timezone == "" {
		cfg.App.Timezone = "Asia/Kolkata"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "hrms"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.JWT.AccessTokenExpiration == 0 {
		cfg.JWT.AccessTokenExpiration = 15 * time.Minute
	}
	if cfg.JWT.RefreshTokenExpiration == 0 {
		cfg.JWT.RefreshTokenExpiration = 168 * time.Hour
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "hrms"
	}
	if cfg.JWT.MaxRefreshCount == 0 {
		cfg.JWT.MaxRefreshCount = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 60 * time.Second // PDF rendering
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 1 << 20
	}
	if cfg.HTTP.MaxUploadSize == 0 {
		cfg.HTTP.MaxUploadSize = 12 << 20 // a 10MB challan plus form overhead
	}
	if cfg.HTTP.RateLimitRequests == 0 {
		cfg.HTTP.RateLimitRequests = 100
	}
	if cfg.HTTP.RateLimitWindow == 0 {
		cfg.HTTP.RateLimitWindow = time.Minute
	}
	if cfg.HTTP.AuthRateLimitRequests == 0 {
		cfg.HTTP.AuthRateLimitRequests = 5
	}
	if cfg.HTTP.AuthRateLimitWindow == 0 {
		cfg.HTTP.AuthRateLimitWindow = time.Minute
	}
	// No wildcard fallback for CORS origins: an empty list allows no cross-origin calls.
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "ap-south-1"
	}
	if cfg.Storage.Bucket == "" {
		cfg.Storage.Bucket = "hrms-challans"
	}
	if cfg.Storage.PresignExpiration == 0 {
		cfg.Storage.PresignExpiration = 15 * time.Minute
	}
	if cfg.Storage.LocalBaseURL == "" {
		cfg.Storage.LocalBaseURL = "http://localhost:" + cfg.App.Port + "/storage"
	}
	if cfg.Printing.Timeout == 0 {
		cfg.Printing.Timeout = 30 * time.Second
	}
	if cfg.Printing.MaxConcurrency == 0 {
		cfg.Printing.MaxConcurrency = 2
	}
	if cfg.Authz.ModelPath == "" {
		cfg.Authz.ModelPath = "config/access/model.conf"
	}
	if cfg.Authz.PolicyPath == "" {
		cfg.Authz.PolicyPath = "config/access/policy.csv"
	}
	if cfg.Authz.Mode == "" {
		cfg.Authz.Mode = "enforce"
	}
	if cfg.Attendance.LateAfter == "" {
		cfg.Attendance.LateAfter = "09:30"
	}
	if cfg.Company.Name == "" {
		cfg.Company.Name = "Company"
	}
	if cfg.Company.HRDesignation == "" {
		cfg.Company.HRDesignation = "HR Manager"
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317"
	}
	if cfg.Telemetry.SamplingRatio == 0 {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "hrms"
	}
	if cfg.Telemetry.MetricsInterval == 0 {
		cfg.Telemetry.MetricsInterval = 60 * time.Second
	}
	if cfg.Telemetry.ProfilingServerAddress == "" {
		cfg.Telemetry.ProfilingServerAddress = "http://localhost:4040"
	}
	if cfg.Telemetry.DBSlowQueryThresh == 0 {
		cfg.Telemetry.DBSlowQueryThresh = 200 * time.Millisecond
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("app.timezone is invalid: %w", err)
	}
	if _, err := c.Attendance.LateThreshold(); err != nil {
		return err
	}
	switch c.Authz.Mode {
	case "enforce", "shadow", "disabled":
	default:
		return fmt.Errorf("authz.mode must be enforce, shadow or disabled, got %q", c.Authz.Mode)
	}
	if c.Storage.Enabled && (c.Storage.AccessKey == "" || c.Storage.SecretKey == "") {
		return fmt.Errorf("storage.access_key and storage.secret_key are required when storage is enabled")
	}

	if c.App.Env == "production" {
		if c.JWT.Secret == "" {
			return fmt.Errorf("jwt.secret is required in production")
		}
		if len(c.JWT.Secret) < 32 {
			return fmt.Errorf("jwt.secret must be at least 32 characters in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
		if c.Swagger.Enabled && len(c.Swagger.AllowedIPs) == 0 {
			return fmt.Errorf("swagger endpoint must be disabled or IP restricted in production")
		}
		if c.Authz.Mode == "disabled" {
			return fmt.Errorf("authz.mode cannot be 'disabled' in production")
		}
		if c.Telemetry.DBLogFullSQL {
			return fmt.Errorf("telemetry.db_log_full_sql must be false in production")
		}
	}

	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}

	return nil
}

// Location returns the configured time zone, falling back to UTC
func (a AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
