package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Database configuration
	DBHost        string
	DBPort        int
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBAutoMigrate bool

	// SMS Alert gateway configuration
	SMSAlertBaseURL    string
	SMSAlertAPIKey     string
	SMSAlertSenderID   string
	SMSAlertTemplate   string
	SMSAlertTimeout    time.Duration
	SMSAlertSendPath   string
	SMSAlertVerifyPath string
	SMSAlertResendPath string

	// Session token configuration
	SessionSecret        string
	SessionTokenDuration time.Duration

	// Upload configuration
	UploadDir           string
	UploadURLPrefix     string
	UploadMaxBytes      int64
	UploadSweepSchedule string
	UploadSweepGrace    time.Duration

	// HTTP configuration
	ServerPort         int
	RateLimitRPS       float64
	RateLimitBurst     int
	CORSAllowedOrigins []string
}

const (
	DefaultSMSAlertBaseURL = "https://www.smsalert.co.in"
	DefaultSMSAlertPath    = "/api/mverify.json"
	DefaultSMSAlertTimeout = 15 * time.Second
	DefaultSMSTemplate     = "OTP to verify your registered mobile number for Myanimal is [otp] Powered by myanimal.in"
	DefaultUploadMaxBytes  = 10 << 20
)

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		DBHost:    "localhost",
		DBPort:    5432,
		DBSSLMode: "disable",

		SMSAlertBaseURL:    DefaultSMSAlertBaseURL,
		SMSAlertTemplate:   DefaultSMSTemplate,
		SMSAlertTimeout:    DefaultSMSAlertTimeout,
		SMSAlertSendPath:   DefaultSMSAlertPath,
		SMSAlertVerifyPath: DefaultSMSAlertPath,
		SMSAlertResendPath: DefaultSMSAlertPath,

		SessionTokenDuration: 24 * time.Hour,

		UploadDir:        "uploads",
		UploadURLPrefix:  "/uploads",
		UploadMaxBytes:   DefaultUploadMaxBytes,
		UploadSweepGrace: time.Hour,

		ServerPort:         9003,
		RateLimitRPS:       100,
		RateLimitBurst:     200,
		CORSAllowedOrigins: []string{"*"},
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env from project root
	_ = godotenv.Load()

	cfg := NewConfig()
	var err error

	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	if cfg.DBPort, err = getEnvInt("DB_PORT", cfg.DBPort); err != nil {
		return nil, err
	}
	cfg.DBUser = getEnv("DB_USER", "petcare")
	cfg.DBPassword = getEnv("DB_PASSWORD", "")
	cfg.DBName = getEnv("DB_NAME", "petcare")
	cfg.DBSSLMode = getEnv("DB_SSLMODE", cfg.DBSSLMode)
	if cfg.DBAutoMigrate, err = getEnvBool("DB_AUTO_MIGRATE", false); err != nil {
		return nil, err
	}

	cfg.SMSAlertBaseURL = strings.TrimRight(getEnv("SMS_ALERT_BASE_URL", cfg.SMSAlertBaseURL), "/")
	cfg.SMSAlertAPIKey = getEnv("SMS_ALERT_API_KEY", "")
	cfg.SMSAlertSenderID = getEnv("SENDER_ID", "")
	cfg.SMSAlertTemplate = getEnv("SMS_ALERT_TEMPLATE", cfg.SMSAlertTemplate)
	if cfg.SMSAlertTimeout, err = getEnvDuration("SMS_ALERT_TIMEOUT", cfg.SMSAlertTimeout); err != nil {
		return nil, err
	}
	cfg.SMSAlertSendPath = getEnv("SMS_ALERT_SEND_PATH", cfg.SMSAlertSendPath)
	cfg.SMSAlertVerifyPath = getEnv("SMS_ALERT_VERIFY_PATH", cfg.SMSAlertVerifyPath)
	cfg.SMSAlertResendPath = getEnv("SMS_ALERT_RESEND_PATH", cfg.SMSAlertResendPath)

	cfg.SessionSecret = getEnv("SECRET_KEY", "")
	if cfg.SessionTokenDuration, err = getEnvDuration("SESSION_TOKEN_DURATION", cfg.SessionTokenDuration); err != nil {
		return nil, err
	}

	cfg.UploadDir = getEnv("UPLOAD_DIR", cfg.UploadDir)
	cfg.UploadURLPrefix = "/" + strings.Trim(getEnv("UPLOAD_URL_PREFIX", cfg.UploadURLPrefix), "/")
	maxBytes, err := getEnvInt("UPLOAD_MAX_BYTES", int(cfg.UploadMaxBytes))
	if err != nil {
		return nil, err
	}
	cfg.UploadMaxBytes = int64(maxBytes)
	cfg.UploadSweepSchedule = getEnv("UPLOAD_SWEEP_SCHEDULE", "")
	if cfg.UploadSweepGrace, err = getEnvDuration("UPLOAD_SWEEP_GRACE", cfg.UploadSweepGrace); err != nil {
		return nil, err
	}

	if cfg.ServerPort, err = getEnvInt("PORT", cfg.ServerPort); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return nil, err
	}
	if origins := getEnv("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		cfg.CORSAllowedOrigins = splitList(origins)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that have no usable default
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive, got %d", c.UploadMaxBytes)
	}
	if c.SMSAlertTimeout <= 0 {
		return fmt.Errorf("SMS_ALERT_TIMEOUT must be positive, got %s", c.SMSAlertTimeout)
	}
	return nil
}

// DatabaseURL returns the connection URL used by the migration runner
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return intValue, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
