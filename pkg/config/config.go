package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreCSV      = "csv"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Port            string
	Store           string
	RosterCSV       string
	DatabaseURL     string
	SQLitePath      string
	DBMaxConns      int
	RulesFile       string
	LogLevel        string
	RosterCacheSize int
	MatchLimit      int
	MatchTextWeight float64
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		Store:           strings.ToLower(getEnv("STORE", StoreCSV)),
		RosterCSV:       getEnv("ROSTER_CSV", "directorio.csv"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SQLitePath:      getEnv("SQLITE_PATH", "directorio.sqlite"),
		DBMaxConns:      getEnvInt("DB_MAX_CONNS", 10),
		RulesFile:       os.Getenv("CELERA_RULES_FILE"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RosterCacheSize: getEnvInt("ROSTER_CACHE_SIZE", 8),
		MatchLimit:      getEnvInt("MATCH_LIMIT", 15),
		MatchTextWeight: getEnvFloat("MATCH_TEXT_WEIGHT", 0.70),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			return f
		}
	}
	return def
}
