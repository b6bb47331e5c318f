package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the server reads from the environment
type Config struct {
	Addr          string
	BaseURL       string // public base URL used in QR join links
	RoomsFile     string // default room/task catalog
	RedisAddr     string // empty disables the durable layer
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration // expiry policy for persisted sessions
	Debug         bool
}

// Load reads the optional .env file and the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using environment variables directly")
	}

	return &Config{
		Addr:          envStr("ADDR", ":8080"),
		BaseURL:       envStr("BASE_URL", "http://localhost:8080"),
		RoomsFile:     envStr("ROOMS_FILE", "data/rooms.json"),
		RedisAddr:     envStr("REDIS_ADDR", ""),
		RedisPassword: envStr("REDIS_PASSWORD", ""),
		RedisDB:       envInt("REDIS_DB", 0),
		SessionTTL:    time.Duration(envInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		Debug:         os.Getenv("DEBUG") != "",
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": v}).
			Warn("invalid integer in environment, using default")
		return fallback
	}
	return n
}
