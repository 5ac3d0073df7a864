package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config application configuration
type Config struct {
	Env               string
	AppSecret         string
	DatabaseURL       string
	JWTExpiry         time.Duration
	Port              string
	SiteName          string
	SiteUrl           string
	TMDBToken         string
	TrendingThreshold float64
	RetentionDays     int
}

// Load reads configuration from the environment.
func Load() *Config {
	expiryHours, _ := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "72"))
	trendingThreshold, _ := strconv.ParseFloat(getEnv("TRENDING_THRESHOLD", "100"), 64)
	retentionDays, _ := strconv.Atoi(getEnv("RETENTION_DAYS", "90"))

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "cinego")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	appSecret := getEnv("APP_SECRET", getEnv("JWT_SECRET", "your-secret-key-change-in-production"))

	if getEnv("APP_ENV", "development") == "production" && appSecret == "your-secret-key-change-in-production" {
		fmt.Println("[WARN] production is running with the default secret; set APP_SECRET now")
	}

	return &Config{
		Env:               getEnv("APP_ENV", "development"),
		AppSecret:         appSecret,
		DatabaseURL:       dbURL,
		JWTExpiry:         time.Duration(expiryHours) * time.Hour,
		Port:              getEnv("PORT", "5005"),
		SiteName:          getEnv("SITE_NAME", "CineGo"),
		SiteUrl:           getEnv("SITE_URL", "http://localhost:5005"),
		TMDBToken:         getEnv("TMDB_TOKEN", ""),
		TrendingThreshold: trendingThreshold,
		RetentionDays:     retentionDays,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
