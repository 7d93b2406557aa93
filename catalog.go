package main

import (
	"strconv"
	"strings"
)

// RecurringReminder is a compiled-in daily reminder. These are rebuilt from
// configuration on every start and never persisted.
type RecurringReminder struct {
	Hour    int
	Minute  int
	Message string
}

// buildCatalog returns the fixed daily reminders: a greeting at the start of
// the active window, three meals, a good-night in the last half-hour before
// the window closes, and a water reminder at each configured hour.
func buildCatalog(cfg *Config) []RecurringReminder {
	catalog := []RecurringReminder{
		{cfg.StartHour, 0, "☀️ Good morning! Wishing you a healthy day."},
		{8, 30, "🍳 Good morning! Time for a healthy breakfast."},
		{13, 0, "🍱 Lunch time! Don't skip meals."},
		{20, 0, "🍽️ Dinner time! Eat well, sleep well."},
		{cfg.EndHour - 1, 30, "🌙 Good night! Time to wind down and rest."},
	}
	for _, h := range cfg.WaterHours {
		catalog = append(catalog, RecurringReminder{h, 0, "💧 Time to drink water!"})
	}
	return catalog
}

// parseClock parses a 24-hour "HH:MM" value.
func parseClock(s string) (hour, minute int, err error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, ErrInvalidTimeFormat
	}
	hour, err = strconv.Atoi(hh)
	if err != nil {
		return 0, 0, ErrInvalidTimeFormat
	}
	minute, err = strconv.Atoi(mm)
	if err != nil {
		return 0, 0, ErrInvalidTimeFormat
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidTimeFormat
	}
	return hour, minute, nil
}
