package config

import "os"

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBName     string
	DBPassword string
	DBPath     string
	JWTSecret  string
	Port       string
}

// LoadConfig reads configuration from the environment. The sqlite driver is
// the default so the service runs without a .env file; postgres settings are
// only consulted when DB_DRIVER=postgres.
func LoadConfig() Config {
	return Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite3"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBName:     getEnv("DB_NAME", "loyalty_program"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBPath:     getEnv("DB_PATH", "loyalty_program.db"),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		Port:       getEnv("PORT", "3000"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
