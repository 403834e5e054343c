package main

import (
	"context"

	"go.uber.org/zap"

	"napominator/config"
	"napominator/dialog"
	"napominator/reminder"
	"napominator/store"
	"napominator/tgbot"
)

// getLogger creates the process-wide sugared logger.
func getLogger() (*zap.SugaredLogger, func() error) {
	logger, _ := zap.NewDevelopment(zap.Fields(zap.String("ns", "Napominator")))

	log := logger.Sugar()
	return log, logger.Sync
}

func main() {
	logger, syncLogs := getLogger()
	defer syncLogs()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalw("couldn't load configuration", "err", err)
	}

	ctx := context.Background()

	var recordStore store.Store
	if cfg.DatabaseURL != "" {
		recordStore, err = store.NewPg(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatalw("couldn't connect to Postgres", "err", err)
		}
		logger.Info("using the Postgres record store")
	} else {
		recordStore, err = store.NewSheets(ctx, []byte(cfg.GoogleCredentialsJSON), cfg.SpreadsheetID)
		if err != nil {
			logger.Fatalw("couldn't connect to Google Sheets", "err", err)
		}
		logger.Infow("using the Google Sheets record store", "url", cfg.SpreadsheetURL())
	}

	keeper := reminder.NewKeeper(recordStore, logger)
	dialogs := dialog.NewManager()

	b, err := tgbot.NewTBot(cfg.BotToken, keeper, dialogs, cfg.GroupChatID, cfg.SpreadsheetURL(), logger)
	if err != nil {
		logger.Fatalw("couldn't start the bot", "err", err)
	}

	b.Run()
}
