package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string
	JWTKey  []byte
	JWTExp  time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string
	DBPoolSize int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LoginMaxAttempts    int
	LoginAttemptsWindow time.Duration
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:             getEnv("API_PORT", "8080"),
		JWTKey:              []byte(mustGetEnv("JWT_SECRET")),
		JWTExp:              time.Duration(getEnvAsInt("JWT_EXPIRATION_SECONDS", 3600)) * time.Second,
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              mustGetEnv("DB_USER"),
		DBPassword:          mustGetEnv("DB_PASSWORD"),
		DBName:              mustGetEnv("DB_NAME"),
		DBSslMode:           getEnv("DB_SSLMODE", "disable"),
		DBPoolSize:          getEnvAsInt("DB_POOL_SIZE", 25),
		RedisAddr:           getEnv("REDIS_ADDR", ""),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		LoginMaxAttempts:    getEnvAsInt("LOGIN_MAX_ATTEMPTS", 10),
		LoginAttemptsWindow: time.Duration(getEnvAsInt("LOGIN_ATTEMPTS_WINDOW_SECONDS", 900)) * time.Second,
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// mustGetEnv aborts startup when a required variable is absent. The signing
// key and database credentials have no safe defaults.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
