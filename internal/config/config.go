package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Required variables are enforced by must()
// and missing values cause the program to exit with a fatal log message.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	LogLevel        string // zerolog level name
	DBUser          string // database username
	DBPass          string // database password (optional)
	DBHost          string // database host address
	DBPort          string // database port number
	DBName          string // database name
	SessionSecret   string // secret used to sign session cookies
	SessionTTLHours int    // session lifetime in hours
	BcryptCost      int    // bcrypt cost for password hashing
	AdminEmail      string // seeded admin account email
	AdminPassword   string // seeded admin account password
}

// Load reads configuration values from environment variables.
func Load() Config {
	return Config{
		Env:             must("APP_ENV"),
		Port:            must("APP_PORT"),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		DBUser:          must("DB_USER"),
		DBPass:          os.Getenv("DB_PASS"), // empty allowed
		DBHost:          must("DB_HOST"),
		DBPort:          must("DB_PORT"),
		DBName:          must("DB_NAME"),
		SessionSecret:   must("SESSION_SECRET"),
		SessionTTLHours: envInt("SESSION_TTL_HOURS", 24),
		BcryptCost:      envInt("BCRYPT_COST", 10),
		AdminEmail:      envStr("ADMIN_EMAIL", "admin@sportsground.com"),
		AdminPassword:   envStr("ADMIN_PASSWORD", "admin123"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
