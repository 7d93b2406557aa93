package main

import (
	"database/sql"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	BotApi     *tgbotapi.BotAPI
	DB         *sql.DB
	Scheduler  *Scheduler
	Dispatcher *Dispatcher
}

func (bot *Bot) setCommands() {
	commands := []tgbotapi.BotCommand{
		{Command: "remind", Description: "Add a one-time reminder: /remind HH:MM <message>"},
		{Command: "reminders", Description: "List pending one-time reminders"},
		{Command: "id", Description: "Show this chat's ID"},
		{Command: "help", Description: "Show help information"},
	}
	if _, err := bot.BotApi.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		log.Printf("Failed to set bot commands: %v", err)
	}
}

func (bot *Bot) reply(chatID int64, text string) {
	message := tgbotapi.NewMessage(chatID, text)
	if _, err := bot.BotApi.Send(message); err != nil {
		log.Printf("reply: send to chat %d failed: %v", chatID, err)
	}
}
