package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Redis      RedisConfig
	Server     ServerConfig
	Search     SearchConfig
	Ranking    RankingConfig
	Session    SessionConfig
	Logging    LoggingConfig
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, takes precedence
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// SearchConfig holds search-related configuration
type SearchConfig struct {
	DefaultLimit  int // page size when the caller sends none
	MaxLimit      int // hard page-size cap
	CandidateCap  int // max candidates pulled from the catalog per tier
	HistoryWindow int // transcript turns considered per request
}

// RankingConfig holds the scoring weights. The values are empirical constants
// carried from production tuning; override via RANK_* env vars.
type RankingConfig struct {
	CategoryMatch      float64
	LocationMatch      float64
	KeywordTitle       float64
	KeywordDescription float64
	KeywordLocation    float64
	CapacityFit        float64
	BoostDivisor       float64
	RatingMultiplier   float64
	ReviewWeight       float64
	ReviewCap          int
}

// SessionConfig selects the session memory store backend
type SessionConfig struct {
	Store      string // "memory" or "redis"
	TTLMinutes int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "vinvinio"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Search: SearchConfig{
			DefaultLimit:  getEnvAsInt("SEARCH_DEFAULT_LIMIT", 10),
			MaxLimit:      getEnvAsInt("SEARCH_MAX_LIMIT", 10),
			CandidateCap:  getEnvAsInt("SEARCH_CANDIDATE_CAP", 60),
			HistoryWindow: getEnvAsInt("SEARCH_HISTORY_WINDOW", 18),
		},
		Ranking: RankingConfig{
			CategoryMatch:      getEnvAsFloat("RANK_WEIGHT_CATEGORY", 5),
			LocationMatch:      getEnvAsFloat("RANK_WEIGHT_LOCATION", 4),
			KeywordTitle:       getEnvAsFloat("RANK_WEIGHT_KEYWORD_TITLE", 2),
			KeywordDescription: getEnvAsFloat("RANK_WEIGHT_KEYWORD_DESCRIPTION", 1),
			KeywordLocation:    getEnvAsFloat("RANK_WEIGHT_KEYWORD_LOCATION", 1),
			CapacityFit:        getEnvAsFloat("RANK_WEIGHT_CAPACITY", 1),
			BoostDivisor:       getEnvAsFloat("RANK_BOOST_DIVISOR", 5),
			RatingMultiplier:   getEnvAsFloat("RANK_RATING_MULTIPLIER", 3),
			ReviewWeight:       getEnvAsFloat("RANK_REVIEW_WEIGHT", 0.1),
			ReviewCap:          getEnvAsInt("RANK_REVIEW_CAP", 50),
		},
		Session: SessionConfig{
			Store:      getEnv("SESSION_STORE", "memory"),
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 120),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// GetPostgreSQLDSN returns the PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
