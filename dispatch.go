package main

import (
	"database/sql"
	"log"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Courier is the messaging transport the dispatcher fans out through.
type Courier interface {
	Send(chatID int64, text string) (int, error)
	Delete(chatID int64, messageID int) error
}

type telegramCourier struct {
	api *tgbotapi.BotAPI
}

func (c *telegramCourier) Send(chatID int64, text string) (int, error) {
	msg, err := c.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, &TransportError{Op: "send", Err: err}
	}
	return msg.MessageID, nil
}

func (c *telegramCourier) Delete(chatID int64, messageID int) error {
	if _, err := c.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return &TransportError{Op: "delete", Err: err}
	}
	return nil
}

// Dispatcher fans a reminder out to every registered chat and arranges for
// each sent message to be deleted after a fixed delay.
type Dispatcher struct {
	db          *sql.DB
	courier     Courier
	startHour   int
	endHour     int
	deleteAfter time.Duration
	now         func() time.Time
}

func NewDispatcher(db *sql.DB, courier Courier, cfg *Config) *Dispatcher {
	loc := cfg.Location
	return &Dispatcher{
		db:          db,
		courier:     courier,
		startHour:   cfg.StartHour,
		endHour:     cfg.EndHour,
		deleteAfter: cfg.DeleteAfter,
		now:         func() time.Time { return time.Now().In(loc) },
	}
}

// Dispatch sends text to every registered chat, provided the current local
// hour is inside the active window. Outside the window it is a silent no-op.
// It returns once every send has completed; deletions run on their own
// timers and their failures are logged and dropped.
func (d *Dispatcher) Dispatch(text string) {
	hour := d.now().Hour()
	if hour < d.startHour || hour >= d.endHour {
		log.Printf("dispatch: outside active window (hour=%d), skipping %q", hour, text)
		return
	}

	chats, err := allChats(d.db)
	if err != nil {
		log.Printf("dispatch: loading chats: %v", err)
		return
	}
	if len(chats) == 0 {
		log.Printf("dispatch: no registered chats, skipping %q", text)
		return
	}

	log.Printf("dispatch: sending %q to %d chats", text, len(chats))
	var wg sync.WaitGroup
	for _, chatID := range chats {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			d.deliver(chatID, text)
		}(chatID)
	}
	wg.Wait()
}

// deliver handles a single chat: one send failure never affects the other
// chats of the same fan-out.
func (d *Dispatcher) deliver(chatID int64, text string) {
	messageID, err := d.courier.Send(chatID, text)
	if err != nil {
		log.Printf("dispatch: send to chat %d failed: %v", chatID, err)
		return
	}

	time.AfterFunc(d.deleteAfter, func() {
		if err := d.courier.Delete(chatID, messageID); err != nil {
			log.Printf("dispatch: delete of message %d in chat %d failed: %v", messageID, chatID, err)
		}
	})
}
