package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ShopAPIURL        string
	ShopAPIToken      string
	PriceSourceURL    string
	RatesAPIURL       string
	ReferenceCurrency string
	TargetCurrency    string
	BackupDir         string
	DatabaseURL       string
	RedisURL          string
	MetricsPort       string
}

func Load() *Config {
	// Tries the project root first, then the current directory.
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()
	return &Config{
		ShopAPIURL:        getEnv("SHOP_API_URL", "https://api.squarespace.com/1.0/commerce"),
		ShopAPIToken:      os.Getenv("SHOP_API_TOKEN"),
		PriceSourceURL:    getEnv("PRICE_SOURCE_URL", "https://shop.tcgplayer.com"),
		RatesAPIURL:       getEnv("RATES_API_URL", "https://open.er-api.com/v6/latest"),
		ReferenceCurrency: getEnv("REFERENCE_CURRENCY", "USD"),
		TargetCurrency:    getEnv("TARGET_CURRENCY", "BRL"),
		BackupDir:         getEnv("BACKUP_DIR", "backups"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		MetricsPort:       getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
