package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	botApi, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	log.Printf("Authorized on account %s", botApi.Self.UserName)

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	scheduler := NewScheduler(cfg.Location)
	dispatcher := NewDispatcher(db, &telegramCourier{api: botApi}, cfg)

	bot := &Bot{
		BotApi:     botApi,
		DB:         db,
		Scheduler:  scheduler,
		Dispatcher: dispatcher,
	}
	bot.setCommands()

	// Register everything before starting: the process must not come up
	// half-scheduled.
	catalog := buildCatalog(cfg)
	for _, r := range catalog {
		if err := scheduler.Daily(r.Hour, r.Minute, func() { dispatcher.Dispatch(r.Message) }); err != nil {
			log.Fatalf("failed to schedule reminder at %02d:%02d: %v", r.Hour, r.Minute, err)
		}
	}

	pending, err := pendingCustomReminders(db)
	if err != nil {
		log.Fatalf("failed to load custom reminders: %v", err)
	}
	for _, r := range pending {
		if _, err := bot.armCustomReminder(&r); err != nil {
			log.Fatalf("failed to schedule custom reminder %s: %v", r.ID, err)
		}
	}

	log.Printf("Scheduled %d recurring and %d custom reminders", len(catalog), len(pending))
	scheduler.Start()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	updates := botApi.GetUpdatesChan(updateConfig)
	go func() {
		<-ctx.Done()
		botApi.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		bot.handleCommand(update.Message)
	}

	log.Println("shutting down")
	scheduler.Stop()
}
