package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Redis (backing store for snapshots and the SMS rate limiter)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Snapshot persistence
	StorageKey       string
	AutosaveInterval time.Duration

	// Twilio (SMS provider; falls back to the mock sender when unset)
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioPhoneNumber  string
	SMSCountryPrefix   string // numeric dial prefix without the plus sign
	SMSRateLimitPerMin int

	// Google Cloud Storage (profile picture uploads)
	GCSBucket              string
	GCSCredentialsJSONPath string // optional; if empty, Application Default Credentials are used

	// CORS
	CORSAllowedOrigins string // comma-separated

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "ecobank-mobile"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		StorageKey:       getenv("STORAGE_KEY", "ecobank_app_data"),
		AutosaveInterval: getdur("AUTOSAVE_INTERVAL", 5*time.Second),

		TwilioAccountSID:   getenv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:    getenv("TWILIO_AUTH_TOKEN", ""),
		TwilioPhoneNumber:  getenv("TWILIO_PHONE_NUMBER", ""),
		SMSCountryPrefix:   getenv("SMS_COUNTRY_PREFIX", "234"),
		SMSRateLimitPerMin: getint("SMS_RATE_LIMIT_PER_MIN", 10),

		GCSBucket:              getenv("GCS_BUCKET", ""),
		GCSCredentialsJSONPath: getenv("GCS_CREDENTIALS_JSON", ""),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
