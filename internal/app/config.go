package app

import (
	"fmt"
	"time"

	"github.com/vendora/vendora-backend/internal/platform/envutil"
)

type Config struct {
	Port              string
	LogMode           string
	Environment       string
	JWTSecretKey      string
	AccessTokenTTL    time.Duration
	DashboardCacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:              envutil.Str("PORT", "8080"),
		LogMode:           envutil.Str("LOG_MODE", "dev"),
		Environment:       envutil.Str("ENVIRONMENT", "development"),
		JWTSecretKey:      envutil.Str("JWT_SECRET_KEY", ""),
		AccessTokenTTL:    envutil.Seconds("ACCESS_TOKEN_TTL", 7*24*time.Hour),
		DashboardCacheTTL: envutil.Seconds("DASHBOARD_CACHE_TTL", 60*time.Second),
	}
	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return cfg, nil
}
