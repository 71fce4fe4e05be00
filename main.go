package main

import (
	"context"
	"os"
	"strings"

	"menu-telegram/bot"
	"menu-telegram/config"
	"menu-telegram/db"
	"menu-telegram/services"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

// initLogger parses the log level string and installs a formatted stdout
// backend. An invalid level is an error.
func initLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := initLogger(cfg.LogLevel); err != nil {
		log.Fatalf("logger: %v", err)
	}
	if cfg.Telegram.Token == "" {
		log.Fatal("TOKEN not set")
	}

	// Check for migrate subcommand
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrate(cfg)
		return
	}

	if err := db.Init(cfg.DB); err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	// Optional auto-migration (useful in production and for fresh DBs).
	// Set AUTO_MIGRATE=1 (or "true") to enable.
	if v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE")); v == "1" || strings.EqualFold(v, "true") {
		if err := applyMigrations(context.Background(), false); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	// Seed the catalog from the menu source file. A missing file is fatal:
	// without it there is nothing to serve.
	f, err := os.Open(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	catalog, err := services.ParseCatalog(f)
	f.Close()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	if err := services.LoadCatalog(context.Background(), catalog); err != nil {
		log.Fatalf("catalog: %v", err)
	}
	log.Infof("catalog loaded: %d categories", len(catalog.Categories))

	ledger := services.NewLedger(cfg.Ledger.Path, cfg.Ledger.PerItemPrices)

	b, err := bot.New(cfg, ledger)
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	log.Info("Bot started.")
	b.Start()
}

func runMigrate(cfg *config.Config) {
	if err := db.Init(cfg.DB); err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	if err := applyMigrations(context.Background(), true); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}
