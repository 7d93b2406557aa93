package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const remindUsage = "Wrong format, it should be: /remind HH:MM <message> (24-hour clock)"

func (bot *Bot) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	command := msg.Command()

	switch command {
	case "start":
		bot.handleStart(chatID)
	case "id":
		bot.reply(chatID, fmt.Sprintf("Your chat ID is: %d", chatID))
	case "remind":
		bot.handleRemind(chatID, strings.TrimSpace(msg.CommandArguments()))
	case "reminders":
		bot.handleListReminders(chatID)
	case "help":
		bot.reply(chatID, helpText())
	default:
		bot.reply(chatID, "Unknown command: /"+command)
	}
}

func (bot *Bot) handleStart(chatID int64) {
	if err := registerChat(bot.DB, chatID); err != nil {
		log.Printf("handleStart: %v", err)
		bot.reply(chatID, "Error: can't register this chat right now, please try again later.")
		return
	}
	bot.reply(chatID, fmt.Sprintf(
		"Hello! I'll send you health reminders through the day.\nYour chat ID is: %d", chatID))
}

func (bot *Bot) handleRemind(chatID int64, args string) {
	reminder, next, err := bot.addReminder(args)
	if err != nil {
		log.Printf("handleRemind: %v", err)
		bot.reply(chatID, getUserMessage(err))
		return
	}
	bot.reply(chatID, fmt.Sprintf(
		"Reminder %q set for %02d:%02d (%s).",
		reminder.Message, reminder.Hour, reminder.Minute, humanize.Time(next)))
}

func (bot *Bot) handleListReminders(chatID int64) {
	reminders, err := pendingCustomReminders(bot.DB)
	if err != nil {
		log.Printf("handleListReminders: %v", err)
		bot.reply(chatID, "Error: can't list reminders at this time")
		return
	}
	if len(reminders) == 0 {
		bot.reply(chatID, "You have no pending reminders. Use /remind HH:MM <message> to add one.")
		return
	}

	lines := make([]string, 0, len(reminders))
	for _, r := range reminders {
		lines = append(lines, fmt.Sprintf("%02d:%02d %s", r.Hour, r.Minute, r.Message))
	}
	bot.reply(chatID, "Pending reminders:\n"+strings.Join(lines, "\n"))
}

// addReminder validates and stores a one-time reminder, then arms its
// trigger. The returned error carries a user-safe message.
func (bot *Bot) addReminder(args string) (*CustomReminder, time.Time, error) {
	timeArg, message, _ := strings.Cut(args, " ")
	message = strings.TrimSpace(message)
	if timeArg == "" || message == "" {
		return nil, time.Time{}, NewUserError(ErrInvalidTimeFormat, remindUsage)
	}

	hour, minute, err := parseClock(timeArg)
	if err != nil {
		return nil, time.Time{}, NewUserError(err, remindUsage)
	}

	reminder, err := addCustomReminder(bot.DB, hour, minute, message)
	if err != nil {
		return nil, time.Time{}, NewUserError(err,
			"Error: can't save the reminder right now, please try again later.")
	}

	next, err := bot.armCustomReminder(reminder)
	if err != nil {
		return nil, time.Time{}, NewUserError(err,
			"Error: can't schedule the reminder right now, please try again later.")
	}

	return reminder, next, nil
}

// armCustomReminder registers the one-shot trigger for a stored reminder.
// The row is stamped after delivery so a restart does not re-fire it.
func (bot *Bot) armCustomReminder(r *CustomReminder) (time.Time, error) {
	id, message := r.ID, r.Message
	return bot.Scheduler.Once(r.Hour, r.Minute, func() {
		bot.Dispatcher.Dispatch(message)
		if err := markCustomReminderFired(bot.DB, id); err != nil {
			log.Printf("custom reminder %s: %v", id, err)
		}
	})
}

func helpText() string {
	return dedent(`
	I send health reminders through the day: water, meals, good morning and
	good night. Each message deletes itself a few minutes after sending.

	Commands:

	/remind HH:MM <message> - one-time reminder at the given time
	/reminders - list pending one-time reminders
	/id - show this chat's ID
	/help - show this help
	`)
}
