package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Recommend RecommendConfig
	Breaker   BreakerConfig
	CORS      CORSConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
	TTL       time.Duration
}

// RecommendConfig tunes the destination recommender.
type RecommendConfig struct {
	BudgetWeight    float64
	RatingWeight    float64
	TopK            int
	BudgetProximity float64
	RatingProximity float64
}

// BreakerConfig guards trip history reads.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

type CORSConfig struct {
	AllowOrigins []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	breakerMaxRequests := getEnvInt("BREAKER_MAX_REQUESTS", 1)
	breakerFailureThreshold := getEnvInt("BREAKER_FAILURE_THRESHOLD", 5)
	if breakerMaxRequests < 0 || breakerFailureThreshold < 0 {
		return nil, errors.New("breaker settings cannot be negative")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "TripLogger API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "5000"),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "triplogger"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
			TTL:       getEnvDuration("JWT_TTL", 24*time.Hour),
		},
		Recommend: RecommendConfig{
			BudgetWeight:    getEnvFloat("RECOMMEND_BUDGET_WEIGHT", 2.0),
			RatingWeight:    getEnvFloat("RECOMMEND_RATING_WEIGHT", 1.0),
			TopK:            getEnvInt("RECOMMEND_TOP_K", 3),
			BudgetProximity: getEnvFloat("RECOMMEND_BUDGET_PROXIMITY", 0.5),
			RatingProximity: getEnvFloat("RECOMMEND_RATING_PROXIMITY", 0.05),
		},
		Breaker: BreakerConfig{
			MaxRequests:      uint32(breakerMaxRequests),
			Interval:         getEnvDuration("BREAKER_INTERVAL", time.Minute),
			Timeout:          getEnvDuration("BREAKER_TIMEOUT", 30*time.Second),
			FailureThreshold: uint32(breakerFailureThreshold),
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.SecretKey == "" {
		return errors.New("missing jwt secret")
	}

	if c.Database.Password == "" {
		return errors.New("missing database password")
	}

	if c.Recommend.TopK <= 0 {
		return errors.New("recommend top k must be positive")
	}

	if c.Recommend.BudgetWeight < 0 || c.Recommend.RatingWeight < 0 {
		return errors.New("recommend weights cannot be negative")
	}

	if c.Breaker.Interval < 0 || c.Breaker.Timeout < 0 {
		return errors.New("breaker settings cannot be negative")
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}

	return val
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultVal
	}

	return val
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultVal
	}

	return val
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}
