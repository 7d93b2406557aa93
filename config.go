package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration, loaded once at startup.
type Config struct {
	Token       string
	DBPath      string
	Location    *time.Location
	StartHour   int
	EndHour     int
	DeleteAfter time.Duration
	WaterHours  []int
}

func loadConfig() (*Config, error) {
	godotenv.Load()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN not set")
	}

	loc := time.Local
	if name := os.Getenv("REMINDER_TZ"); name != "" {
		l, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("REMINDER_TZ: %w", err)
		}
		loc = l
	}

	waterHours, err := parseHourList(envOr("WATER_HOURS", "7,9,11,13,15,17,19,21"))
	if err != nil {
		return nil, fmt.Errorf("WATER_HOURS: %w", err)
	}

	cfg := &Config{
		Token:       token,
		DBPath:      envOr("REMINDER_DB_PATH", "reminders.db"),
		Location:    loc,
		StartHour:   envInt("START_HOUR", 7),
		EndHour:     envInt("END_HOUR", 23),
		DeleteAfter: time.Duration(envInt("DELETE_AFTER_SECONDS", 300)) * time.Second,
		WaterHours:  waterHours,
	}

	if cfg.StartHour < 0 || cfg.EndHour > 24 || cfg.StartHour >= cfg.EndHour {
		return nil, fmt.Errorf("invalid active window %d-%d", cfg.StartHour, cfg.EndHour)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
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
		return fallback
	}
	return n
}

func parseHourList(s string) ([]int, error) {
	var hours []int
	for _, part := range strings.Split(s, ",") {
		h, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad hour %q", part)
		}
		if h < 0 || h > 23 {
			return nil, fmt.Errorf("hour %d out of range", h)
		}
		hours = append(hours, h)
	}
	return hours, nil
}
