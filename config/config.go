package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const VERSION = "1.0"

// developmentJWTSecret is only accepted when ENVIRONMENT=development
const developmentJWTSecret = "sagestone-development-secret"

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Security     SecurityConfig
	Email        EmailConfig
	RateLimit    RateLimitConfig
	Tracing      TracingConfig
	AppURL       string
	MarketingURL string
	Environment  string
	LogLevel     string
	Version      string
}

type ServerConfig struct {
	Port            int
	Host            string
	CORSAllowOrigin string
}

// DatabaseConfig holds the connection string and pool settings.
// An empty URL is a valid configuration: the API starts, database routes answer 503
// and the health check reports the missing variable.
type DatabaseConfig struct {
	URL             string
	AdminEmail      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// IsConfigured reports whether a connection string was provided
func (d DatabaseConfig) IsConfigured() bool {
	return strings.TrimSpace(d.URL) != ""
}

type SecurityConfig struct {
	JWTSecret string
	JWTExpiry time.Duration
}

// EmailConfig selects the notification provider and carries every provider's credentials.
// Provider is one of "sendgrid", "mailgun", "ses", "smtp"; anything else means console.
type EmailConfig struct {
	Provider  string
	FromEmail string
	FromName  string

	SendGridAPIKey string

	MailgunAPIKey string
	MailgunDomain string
	MailgunRegion string

	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string

	SMTP SMTPConfig
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool
}

type RateLimitConfig struct {
	AuthPerMinute int
	// TrustProxyHeaders keys limits on X-Forwarded-For / X-Real-IP; only enable behind a proxy that sets them
	TrustProxyHeaders bool
}

type TracingConfig struct {
	Enabled             bool
	ServiceName         string
	SamplingProbability float64

	// Trace exporter configuration
	TraceExporter string // "jaeger", "zipkin", "stackdriver", "datadog", "xray", "none"

	JaegerEndpoint       string
	ZipkinEndpoint       string
	StackdriverProjectID string
	DatadogAgentAddress  string
	XRayRegion           string

	// Metrics exporter configuration
	MetricsExporter string // "prometheus", "stackdriver", "datadog", "none" or comma-separated list
	PrometheusPort  int
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("CORS_ALLOW_ORIGIN", "*")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "10m")

	v.SetDefault("JWT_EXPIRY", "168h")

	v.SetDefault("EMAIL_SERVICE", "")
	v.SetDefault("EMAIL_FROM", "noreply@sagestone.app")
	v.SetDefault("EMAIL_FROM_NAME", "Sagestone")
	v.SetDefault("MAILGUN_REGION", "US")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USE_TLS", true)

	v.SetDefault("APP_URL", "http://localhost:3000")
	v.SetDefault("MARKETING_URL", "http://localhost:3000")

	v.SetDefault("RATE_LIMIT_AUTH_PER_MINUTE", 10)
	v.SetDefault("TRUST_PROXY_HEADERS", false)

	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "sagestone-api")
	v.SetDefault("TRACING_SAMPLING_PROBABILITY", 0.1)
	v.SetDefault("TRACING_TRACE_EXPORTER", "none")
	v.SetDefault("TRACING_JAEGER_ENDPOINT", "http://localhost:14268/api/traces")
	v.SetDefault("TRACING_ZIPKIN_ENDPOINT", "http://localhost:9411/api/v2/spans")
	v.SetDefault("TRACING_STACKDRIVER_PROJECT_ID", "")
	v.SetDefault("TRACING_DATADOG_AGENT_ADDRESS", "localhost:8126")
	v.SetDefault("TRACING_XRAY_REGION", "us-west-2")
	v.SetDefault("TRACING_METRICS_EXPORTER", "none")
	v.SetDefault("TRACING_PROMETHEUS_PORT", 9464)

	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	environment := v.GetString("ENVIRONMENT")

	jwtSecret := v.GetString("JWT_SECRET")
	if jwtSecret == "" {
		if environment != "development" {
			return nil, fmt.Errorf("JWT_SECRET is required")
		}
		jwtSecret = developmentJWTSecret
	}

	jwtExpiry, err := time.ParseDuration(v.GetString("JWT_EXPIRY"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			Host:            v.GetString("SERVER_HOST"),
			CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGIN"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("DATABASE_URL"),
			AdminEmail:      v.GetString("ADMIN_EMAIL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Security: SecurityConfig{
			JWTSecret: jwtSecret,
			JWTExpiry: jwtExpiry,
		},
		Email: EmailConfig{
			Provider:           strings.ToLower(strings.TrimSpace(v.GetString("EMAIL_SERVICE"))),
			FromEmail:          v.GetString("EMAIL_FROM"),
			FromName:           v.GetString("EMAIL_FROM_NAME"),
			SendGridAPIKey:     v.GetString("SENDGRID_API_KEY"),
			MailgunAPIKey:      v.GetString("MAILGUN_API_KEY"),
			MailgunDomain:      v.GetString("MAILGUN_DOMAIN"),
			MailgunRegion:      v.GetString("MAILGUN_REGION"),
			AWSAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			AWSRegion:          v.GetString("AWS_REGION"),
			SMTP: SMTPConfig{
				Host:     v.GetString("SMTP_HOST"),
				Port:     v.GetInt("SMTP_PORT"),
				Username: v.GetString("SMTP_USERNAME"),
				Password: v.GetString("SMTP_PASSWORD"),
				UseTLS:   v.GetBool("SMTP_USE_TLS"),
			},
		},
		RateLimit: RateLimitConfig{
			AuthPerMinute:     v.GetInt("RATE_LIMIT_AUTH_PER_MINUTE"),
			TrustProxyHeaders: v.GetBool("TRUST_PROXY_HEADERS"),
		},
		Tracing: TracingConfig{
			Enabled:              v.GetBool("TRACING_ENABLED"),
			ServiceName:          v.GetString("TRACING_SERVICE_NAME"),
			SamplingProbability:  v.GetFloat64("TRACING_SAMPLING_PROBABILITY"),
			TraceExporter:        v.GetString("TRACING_TRACE_EXPORTER"),
			JaegerEndpoint:       v.GetString("TRACING_JAEGER_ENDPOINT"),
			ZipkinEndpoint:       v.GetString("TRACING_ZIPKIN_ENDPOINT"),
			StackdriverProjectID: v.GetString("TRACING_STACKDRIVER_PROJECT_ID"),
			DatadogAgentAddress:  v.GetString("TRACING_DATADOG_AGENT_ADDRESS"),
			XRayRegion:           v.GetString("TRACING_XRAY_REGION"),
			MetricsExporter:      v.GetString("TRACING_METRICS_EXPORTER"),
			PrometheusPort:       v.GetInt("TRACING_PROMETHEUS_PORT"),
		},
		AppURL:       strings.TrimRight(v.GetString("APP_URL"), "/"),
		MarketingURL: strings.TrimRight(v.GetString("MARKETING_URL"), "/"),
		Environment:  environment,
		LogLevel:     v.GetString("LOG_LEVEL"),
		Version:      v.GetString("VERSION"),
	}

	return config, nil
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
