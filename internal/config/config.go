package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	SlotsBaseURL string
	Timeout      time.Duration
	RateLimit    float64
	RateBurst    int

	ServerPort    string
	ResponseShape string
	DayGrid       []string
	Booked        string
	Timezone      string
}

const (
	ShapeWrapped = "wrapped"
	ShapeBare    = "bare"
)

var defaultDayGrid = "09:00,10:00,11:00,12:00,13:00,14:00,15:00,16:00"

func Load() *Config {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	shape := strings.ToLower(getEnv("SLOTS_RESPONSE_SHAPE", ShapeWrapped))
	if shape != ShapeBare {
		shape = ShapeWrapped
	}

	return &Config{
		SlotsBaseURL: strings.TrimRight(getEnv("SLOTS_BASE_URL", "http://localhost:8080"), "/"),
		Timeout:      getDuration("SLOTS_TIMEOUT", 10*time.Second),
		RateLimit:    getFloat("SLOTS_RATE_LIMIT", 10),
		RateBurst:    getInt("SLOTS_RATE_BURST", 5),

		ServerPort:    getEnv("SERVER_PORT", "8080"),
		ResponseShape: shape,
		DayGrid:       splitList(getEnv("SLOTS_DAY_GRID", defaultDayGrid)),
		Booked:        getEnv("SLOTS_BOOKED", ""),
		Timezone:      getEnv("APP_TIMEZONE", "America/Sao_Paulo"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getFloat(key string, def float64) float64 {
	f, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

func getInt(key string, def int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
