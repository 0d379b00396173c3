package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the services need at construction time. It is
// built once in main and injected; nothing reads credentials from ambient
// process state after startup.
type Config struct {
	ServerPort string

	// Per-adapter call budget and spacing toward live upstreams.
	SourceTimeout time.Duration
	SourceSpacing time.Duration

	YahooBaseURL string

	// Keyed quote API (GLOBAL_QUOTE shape). Empty key disables the source.
	QuoteAPIKey     string
	QuoteAPIBaseURL string

	MailAPIKey  string
	MailBaseURL string
	MailFrom    string
}

// FromEnv builds the configuration from environment variables with defaults.
func FromEnv() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		SourceTimeout:   getDurationSec("SOURCE_TIMEOUT_SEC", 10*time.Second),
		SourceSpacing:   getDurationMS("SOURCE_SPACING_MS", 750*time.Millisecond),
		YahooBaseURL:    getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com/v8/finance/chart"),
		QuoteAPIKey:     os.Getenv("QUOTE_API_KEY"),
		QuoteAPIBaseURL: getEnv("QUOTE_API_BASE_URL", "https://www.alphavantage.co/query"),
		MailAPIKey:      os.Getenv("RESEND_API_KEY"),
		MailBaseURL:     getEnv("MAIL_BASE_URL", "https://api.resend.com"),
		MailFrom:        getEnv("MAIL_FROM", "Rohstoff-Monitoring <reports@rohmon.dev>"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationSec(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return defaultValue
}

func getDurationMS(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return time.Duration(n) * time.Millisecond
		}
	}
	return defaultValue
}
