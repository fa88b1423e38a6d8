package config

import (
	"os"
	"strconv"
	"time"

	"escala-equipe/internal/domain"
)

type Config struct {
	Port        string
	Environment string

	JWTSecret       string
	JWTAccessExpiry time.Duration

	CORSOrigins string

	// SeedMonth/SeedYear select the month the mock data generator fills.
	SeedMonth int
	SeedYear  int

	// StandardMonthlyHours is the default excess-hours threshold (8h x 22
	// workdays). Callers can override it per summary request.
	StandardMonthlyHours float64

	// BreakDeduction is subtracted from every working shift's span when
	// estimating hours. The catalog's BreakTime values stay display-only.
	BreakDeduction time.Duration

	// Population controls what switching to an unseeded month yields.
	Population domain.PopulationPolicy
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTAccessExpiry: getDurationEnv("JWT_ACCESS_EXPIRY", 12*time.Hour),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		SeedMonth: getIntEnv("SEED_MONTH", 12),
		SeedYear:  getIntEnv("SEED_YEAR", 2024),

		StandardMonthlyHours: getFloatEnv("STANDARD_MONTHLY_HOURS", 176),
		BreakDeduction:       getDurationEnv("BREAK_DEDUCTION", time.Hour),

		Population: domain.PopulationPolicy(getEnv("SCHEDULE_POPULATION", string(domain.PopulateNone))),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
