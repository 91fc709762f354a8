package main

import (
	"context"
	"log"
	"os"

	"github.com/dkravchenko/hiredesk/internal/client/cli"
	"github.com/dkravchenko/hiredesk/internal/client/config"
	"github.com/dkravchenko/hiredesk/internal/client/gateway"
	"github.com/dkravchenko/hiredesk/internal/client/notify"
	"github.com/dkravchenko/hiredesk/internal/client/session"
	"github.com/dkravchenko/hiredesk/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.NewZerologLogger(os.Stderr, cfg.LogLevel, cfg.LogPretty)
	notifier := notify.NewConsole(os.Stdout)

	store := session.NewStore(cfg.SessionFile, notifier, logger)
	gw := gateway.New(gateway.Options{
		BaseURL:        cfg.APIBaseURL,
		Tokens:         store,
		Notifier:       notifier,
		OnUnauthorized: store.Invalidate,
		Logger:         logger,
	})

	app := cli.NewApp(cfg, store, gw, gw, gw, notifier, logger)
	store.BindNavigator(app.Navigate)

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
