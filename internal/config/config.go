package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port             string
	RedisURL         string
	CacheDBPath      string
	EIAAPIKey        string
	EIABaseURL       string
	WorldBankBaseURL string
	ComtradeBaseURL  string
	IRENABaseURL     string
	ResendAPIKey     string
	ResendBaseURL    string
	ContactFrom      string
	ContactTo        string
	RequestTimeout   time.Duration
	TTLProfile       time.Duration
	TTLPrices        time.Duration
	TTLTrade         time.Duration
	TTLRenewable     time.Duration
	RateLimitPerMin  int
}

func Load() Config {
	return Config{
		Port:             getEnv("PORT", "8080"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		CacheDBPath:      getEnv("CACHE_DB_PATH", ""),
		EIAAPIKey:        getEnv("EIA_API_KEY", ""),
		EIABaseURL:       getEnv("EIA_BASE_URL", "https://api.eia.gov"),
		WorldBankBaseURL: getEnv("WORLDBANK_BASE_URL", "https://api.worldbank.org"),
		ComtradeBaseURL:  getEnv("COMTRADE_BASE_URL", "https://comtradeapi.un.org"),
		IRENABaseURL:     getEnv("IRENA_BASE_URL", "https://pxweb.irena.org"),
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		ResendBaseURL:    getEnv("RESEND_BASE_URL", "https://api.resend.com"),
		ContactFrom:      getEnv("CONTACT_FROM", "Syncsolved <noreply@syncsolved.com>"),
		ContactTo:        getEnv("CONTACT_TO", "hello@syncsolved.com"),
		RequestTimeout:   getEnvDuration("REQUEST_TIMEOUT", 12),
		TTLProfile:       getEnvDuration("CACHE_TTL_PROFILE", 86400),
		TTLPrices:        getEnvDuration("CACHE_TTL_PRICES", 21600),
		TTLTrade:         getEnvDuration("CACHE_TTL_TRADE", 604800),
		TTLRenewable:     getEnvDuration("CACHE_TTL_RENEWABLE", 604800),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MIN", 120),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// getEnvDuration reads a duration given in whole seconds.
func getEnvDuration(key string, defSeconds int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(defSeconds) * time.Second
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defSeconds) * time.Second
	}
	return time.Duration(i) * time.Second
}
