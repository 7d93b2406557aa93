package main

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := openDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("openDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRegisterChatIdempotent(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 3; i++ {
		if err := registerChat(db, 42); err != nil {
			t.Fatalf("registerChat: %v", err)
		}
	}

	chats, err := allChats(db)
	if err != nil {
		t.Fatalf("allChats: %v", err)
	}
	if len(chats) != 1 || chats[0] != 42 {
		t.Errorf("want exactly one chat 42, got %v", chats)
	}
}

func TestRegisterChatReadAfterWrite(t *testing.T) {
	db := openTestDB(t)

	ids := []int64{1, 2, 3}
	for _, id := range ids {
		if err := registerChat(db, id); err != nil {
			t.Fatalf("registerChat(%d): %v", id, err)
		}
	}

	chats, err := allChats(db)
	if err != nil {
		t.Fatalf("allChats: %v", err)
	}
	got := make(map[int64]bool)
	for _, id := range chats {
		got[id] = true
	}
	for _, id := range ids {
		if !got[id] {
			t.Errorf("chat %d registered but missing from allChats: %v", id, chats)
		}
	}
	if len(chats) != len(ids) {
		t.Errorf("want %d chats, got %v", len(ids), chats)
	}
}

func TestCustomReminderRoundTrip(t *testing.T) {
	db := openTestDB(t)

	want := []struct {
		hour, minute int
		message      string
	}{
		{9, 15, "stretch"},
		{12, 0, "walk"},
		{23, 0, "Take medicine"},
	}
	for _, w := range want {
		if _, err := addCustomReminder(db, w.hour, w.minute, w.message); err != nil {
			t.Fatalf("addCustomReminder(%02d:%02d): %v", w.hour, w.minute, err)
		}
	}

	got, err := pendingCustomReminders(db)
	if err != nil {
		t.Fatalf("pendingCustomReminders: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("want %d reminders, got %d", len(want), len(got))
	}
	for i, w := range want {
		r := got[i]
		if r.Hour != w.hour || r.Minute != w.minute || r.Message != w.message {
			t.Errorf("reminder %d: want %02d:%02d %q, got %02d:%02d %q",
				i, w.hour, w.minute, w.message, r.Hour, r.Minute, r.Message)
		}
		if r.ID == "" {
			t.Errorf("reminder %d: missing ID", i)
		}
	}
}

func TestAddCustomReminderRejectsOutOfRange(t *testing.T) {
	db := openTestDB(t)

	cases := []struct{ hour, minute int }{
		{25, 0},
		{10, 61},
		{-1, 30},
		{24, 0},
	}
	for _, c := range cases {
		_, err := addCustomReminder(db, c.hour, c.minute, "x")
		if !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("addCustomReminder(%d, %d): want ErrInvalidTimeFormat, got %v", c.hour, c.minute, err)
		}
	}

	got, err := pendingCustomReminders(db)
	if err != nil {
		t.Fatalf("pendingCustomReminders: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("rejected reminders must not reach the store, got %v", got)
	}
}

func TestMarkCustomReminderFiredPrunes(t *testing.T) {
	db := openTestDB(t)

	first, err := addCustomReminder(db, 8, 0, "first")
	if err != nil {
		t.Fatalf("addCustomReminder: %v", err)
	}
	if _, err := addCustomReminder(db, 9, 0, "second"); err != nil {
		t.Fatalf("addCustomReminder: %v", err)
	}

	if err := markCustomReminderFired(db, first.ID); err != nil {
		t.Fatalf("markCustomReminderFired: %v", err)
	}

	got, err := pendingCustomReminders(db)
	if err != nil {
		t.Fatalf("pendingCustomReminders: %v", err)
	}
	if len(got) != 1 || got[0].Message != "second" {
		t.Errorf("want only the unfired reminder, got %v", got)
	}
}

func TestStorageErrorSurfaces(t *testing.T) {
	db := openTestDB(t)
	db.Close()

	_, err := allChats(db)
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Errorf("want *StorageError from closed db, got %v", err)
	}

	if err := registerChat(db, 1); !errors.As(err, &serr) {
		t.Errorf("want *StorageError from closed db, got %v", err)
	}
}
