package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Session token configuration
	JWTSecret    string
	TokenTTLDays int
	// OTP configuration
	OTPTTLMinutes  int
	OTPMaxAttempts int
	// DevMode echoes generated OTP codes in issuance responses.
	// Must never be enabled where responses are untrusted.
	DevMode bool
	// SMS/WhatsApp Gateway Configuration
	SMSGatewayURL string
	SMSGatewayKey string
	SMSSenderID   string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitOTPThreshold    int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Session token configuration
		JWTSecret:    getEnv("JWT_SECRET", ""),
		TokenTTLDays: getEnvInt("TOKEN_TTL_DAYS", 30), // absolute expiry, no refresh
		// OTP configuration
		OTPTTLMinutes:  getEnvInt("OTP_TTL_MINUTES", 10),
		OTPMaxAttempts: getEnvInt("OTP_MAX_ATTEMPTS", 3),
		DevMode:        getEnvBool("DEV_MODE", false),
		// SMS Gateway
		SMSGatewayURL: strings.TrimRight(getEnv("SMS_GATEWAY_URL", ""), "/"),
		SMSGatewayKey: getEnv("SMS_GATEWAY_KEY", ""),
		SMSSenderID:   getEnv("SMS_SENDER_ID", "JOBPORTAL"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitOTPThreshold:    getEnvInt("RATE_LIMIT_OTP_THRESHOLD", 5),      // 5 OTP requests per window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
	}

	// Basic validation to avoid confusing failures later
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Session tokens cannot be issued or verified.")
	}
	if cfg.SMSGatewayURL == "" {
		log.Println("WARNING: SMS_GATEWAY_URL not configured. OTP delivery will report as failed.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}
	if cfg.DevMode {
		log.Println("WARNING: DEV_MODE is enabled. OTP codes are echoed in API responses.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
