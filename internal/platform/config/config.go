package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// DevSigningKey is used when JWT_SIGNING_KEY is unset outside production.
const DevSigningKey = "dev-secret-key-change-in-production"

// Server captures process level configuration.
type Server struct {
	Addr           string
	Environment    string
	RequestTimeout time.Duration
	Database       Database
	Redis          Redis
	Auth           Auth
}

type Database struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type Redis struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Auth struct {
	JWTSigningKey string
	JWTIssuer     string
	TokenTTL      time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:           envOr("AQUARIA_ADDR", ":8080"),
		Environment:    envOr("ENVIRONMENT", "development"),
		RequestTimeout: durationOr("REQUEST_TIMEOUT", 30*time.Second),
		Database: Database{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    intOr("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    intOr("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: durationOr("DATABASE_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: Redis{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     intOr("REDIS_POOL_SIZE", 10),
			DialTimeout:  durationOr("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  durationOr("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: durationOr("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Auth: Auth{
			JWTSigningKey: envOr("JWT_SIGNING_KEY", DevSigningKey),
			JWTIssuer:     envOr("JWT_ISSUER", "aquaria"),
			TokenTTL:      durationOr("TOKEN_TTL", 15*time.Minute),
		},
	}
}

func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

// Validate rejects settings that are only acceptable during development.
func (s Server) Validate() error {
	if s.IsProduction() && s.Auth.JWTSigningKey == DevSigningKey {
		return errors.New("JWT_SIGNING_KEY must be set in production")
	}
	if s.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}

func intOr(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}
