package main

import (
	"errors"
	"testing"
	"time"
)

func testConfig() *Config {
	return &Config{
		DBPath:      "",
		Location:    time.UTC,
		StartHour:   7,
		EndHour:     23,
		DeleteAfter: 300 * time.Second,
		WaterHours:  []int{7, 9, 11, 13, 15, 17, 19, 21},
	}
}

func TestBuildCatalog(t *testing.T) {
	cfg := testConfig()
	catalog := buildCatalog(cfg)

	if len(catalog) != 5+len(cfg.WaterHours) {
		t.Fatalf("want %d reminders, got %d", 5+len(cfg.WaterHours), len(catalog))
	}

	at := func(hour, minute int) []string {
		var messages []string
		for _, r := range catalog {
			if r.Hour == hour && r.Minute == minute {
				messages = append(messages, r.Message)
			}
		}
		return messages
	}

	if got := at(cfg.StartHour, 0); len(got) != 2 {
		// Good morning plus the 07:00 water reminder.
		t.Errorf("want 2 reminders at %02d:00, got %v", cfg.StartHour, got)
	}
	if got := at(cfg.EndHour-1, 30); len(got) != 1 {
		t.Errorf("want good night at %02d:30, got %v", cfg.EndHour-1, got)
	}
	if got := at(8, 30); len(got) != 1 {
		t.Errorf("want breakfast at 08:30, got %v", got)
	}
	if got := at(13, 0); len(got) != 1 {
		t.Errorf("want lunch at 13:00, got %v", got)
	}
	if got := at(20, 0); len(got) != 1 {
		t.Errorf("want dinner at 20:00, got %v", got)
	}
	for _, h := range cfg.WaterHours {
		if got := at(h, 0); len(got) == 0 {
			t.Errorf("want a water reminder at %02d:00", h)
		}
	}
}

func TestParseClock(t *testing.T) {
	valid := []struct {
		in           string
		hour, minute int
	}{
		{"07:00", 7, 0},
		{"23:59", 23, 59},
		{"9:05", 9, 5},
		{"00:00", 0, 0},
	}
	for _, c := range valid {
		hour, minute, err := parseClock(c.in)
		if err != nil {
			t.Errorf("parseClock(%q): unexpected error %v", c.in, err)
			continue
		}
		if hour != c.hour || minute != c.minute {
			t.Errorf("parseClock(%q) = %d:%d, want %d:%d", c.in, hour, minute, c.hour, c.minute)
		}
	}

	invalid := []string{"25:00", "10:61", "24:00", "xx:10", "10:xx", "10", "", "-1:30", "10:-5"}
	for _, in := range invalid {
		if _, _, err := parseClock(in); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("parseClock(%q): want ErrInvalidTimeFormat, got %v", in, err)
		}
	}
}
