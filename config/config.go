// Package config loads process configuration from the environment. A .env
// file is honored when present, which keeps local runs out of shell exports.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	BcryptCost    int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cost, err := getEnvInt("BCRYPT_COST", 12)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:          getEnv("PORT", "8090"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "goaccounts"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		BcryptCost:    cost,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}
