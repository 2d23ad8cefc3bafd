package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/harentsoaR/hospital-seed/internal/utils"
)

var (
	ErrMissingEnv = errors.New("missing required environment variable")
	ErrInvalidEnv = errors.New("invalid environment variable")
)

type Config struct {
	MongoURL   string
	DBName     string
	JWTSecret  string // optional, enables the demo admin token
	BcryptCost int
}

// Load reads .env (if any) into the process environment and builds the Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	return FromEnv()
}

// FromEnv builds the Config from the current process environment only.
func FromEnv() (*Config, error) {
	mongoURL, err := required("MONGO_URL")
	if err != nil {
		return nil, err
	}
	dbName, err := required("DB_NAME")
	if err != nil {
		return nil, err
	}

	cost := utils.DefaultPasswordCost
	if raw := strings.TrimSpace(os.Getenv("BCRYPT_COST")); raw != "" {
		cost, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("BCRYPT_COST: %w", err)
		}
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, fmt.Errorf("%w: BCRYPT_COST %d not in [%d, %d]", ErrInvalidEnv, cost, bcrypt.MinCost, bcrypt.MaxCost)
		}
	}

	return &Config{
		MongoURL:   mongoURL,
		DBName:     dbName,
		JWTSecret:  os.Getenv("JWT_SECRET"),
		BcryptCost: cost,
	}, nil
}

func required(key string) (string, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingEnv, key)
	}
	return v, nil
}

// RedactedMongoURL is MongoURL with any password masked, safe to log.
func (c *Config) RedactedMongoURL() string {
	u, err := url.Parse(c.MongoURL)
	if err != nil {
		return "<unparseable MONGO_URL>"
	}
	return u.Redacted()
}
