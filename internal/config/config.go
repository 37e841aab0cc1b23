package config

import (
	"os"
	"strconv"
)

// Config holds every tunable the app reads from the environment.
// Each value has a sensible default so the server runs with an empty .env.
type Config struct {
	Port       string  // HTTP listen port (PORT, default "8080")
	DBPath     string  // SQLite file for the local store (DB_PATH, default "pos.db")
	TaxRate    float64 // fraction of the subtotal, e.g. 0.05 for 5% (TAX_RATE)
	Currency   string  // symbol shown on bills and charts (CURRENCY, default "₹")
	BillPrefix string  // prefix for generated bill ids (BILL_PREFIX, default "BILL")
	CORSOrigin string  // allowed frontend origin (CORS_ORIGIN)
}

// DefaultTaxRate is the 5% sales tax applied to every bill unless
// TAX_RATE overrides it.
const DefaultTaxRate = 0.05

func Load() Config {
	cfg := Config{
		Port:       getEnv("PORT", "8080"),
		DBPath:     getEnv("DB_PATH", "pos.db"),
		TaxRate:    DefaultTaxRate,
		Currency:   getEnv("CURRENCY", "₹"),
		BillPrefix: getEnv("BILL_PREFIX", "BILL"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}

	if raw := os.Getenv("TAX_RATE"); raw != "" {
		if rate, err := strconv.ParseFloat(raw, 64); err == nil && rate >= 0 {
			cfg.TaxRate = rate
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
