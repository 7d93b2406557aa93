package main

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type CustomReminder struct {
	ID        string
	Hour      int
	Minute    int
	Message   string
	CreatedAt time.Time
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, storageErr("open", err)
	}

	_, err = db.Exec(`
		BEGIN;

		CREATE TABLE IF NOT EXISTS chats (
		  id INTEGER PRIMARY KEY,
		  registered_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS custom_reminders (
		  id TEXT PRIMARY KEY,
		  hour INTEGER NOT NULL,
		  minute INTEGER NOT NULL,
		  message TEXT NOT NULL,
		  created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		  fired_at DATETIME
		);

		COMMIT;
	`)

	if err != nil {
		return nil, storageErr("init schema", err)
	}

	return db, nil
}

// registerChat adds a chat to the broadcast set. Registering the same chat
// again is a no-op.
func registerChat(db *sql.DB, chatID int64) error {
	_, err := db.Exec(`
		INSERT INTO chats (id) VALUES (?)
		ON CONFLICT DO NOTHING
	`, chatID)
	return storageErr("register chat", err)
}

func allChats(db *sql.DB) ([]int64, error) {
	rows, err := db.Query(`SELECT id FROM chats`)
	if err != nil {
		return nil, storageErr("list chats", err)
	}
	defer rows.Close()

	var chats []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, storageErr("list chats", err)
		}
		chats = append(chats, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list chats", err)
	}
	return chats, nil
}

// addCustomReminder validates and stores a one-time reminder. Nothing is
// written when the time is out of range.
func addCustomReminder(db *sql.DB, hour, minute int, message string) (*CustomReminder, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, ErrInvalidTimeFormat
	}

	r := &CustomReminder{
		ID:        uuid.NewString(),
		Hour:      hour,
		Minute:    minute,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	_, err := db.Exec(`
		INSERT INTO custom_reminders (id, hour, minute, message, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, r.ID, r.Hour, r.Minute, r.Message, r.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, storageErr("add custom reminder", err)
	}

	return r, nil
}

// pendingCustomReminders returns every stored reminder that has not fired
// yet, in insertion order.
func pendingCustomReminders(db *sql.DB) ([]CustomReminder, error) {
	rows, err := db.Query(`
		SELECT id, hour, minute, message, created_at
		FROM custom_reminders
		WHERE fired_at IS NULL
		ORDER BY rowid
	`)
	if err != nil {
		return nil, storageErr("load custom reminders", err)
	}
	defer rows.Close()

	var reminders []CustomReminder
	for rows.Next() {
		var r CustomReminder
		var createdAtStr string
		if err := rows.Scan(&r.ID, &r.Hour, &r.Minute, &r.Message, &createdAtStr); err != nil {
			return nil, storageErr("load custom reminders", err)
		}
		if createdAtStr != "" {
			r.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		}
		reminders = append(reminders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("load custom reminders", err)
	}

	return reminders, nil
}

// markCustomReminderFired stamps a reminder so it is not re-armed on the
// next startup. The row stays around for history.
func markCustomReminderFired(db *sql.DB, id string) error {
	_, err := db.Exec(`
		UPDATE custom_reminders
		SET fired_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, id)
	return storageErr("mark reminder fired", err)
}
