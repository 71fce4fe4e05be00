package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB       DBConfig
	Telegram TelegramConfig
	Catalog  CatalogConfig
	Ledger   LedgerConfig
	LogLevel string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type TelegramConfig struct {
	Token   string
	OwnerID int64 // Telegram user allowed to pick the Owner role; 0 = anyone
}

type CatalogConfig struct {
	Path string // menu source file, read once at startup
}

type LedgerConfig struct {
	Path string
	// PerItemPrices switches the ledger's cumulative-total column to each
	// item's own unit price. Off by default: the legacy report prices every
	// row with the first item of the current order.
	PerItemPrices bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "menu")
	v.SetDefault("CATALOG_PATH", "menu.txt")
	v.SetDefault("LEDGER_PATH", "sales.txt")
	v.SetDefault("LEDGER_PER_ITEM_PRICES", false)
	v.SetDefault("LOG_LEVEL", "INFO")

	return &Config{
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Database: v.GetString("DB_NAME"),
		},
		Telegram: TelegramConfig{
			Token:   v.GetString("TOKEN"),
			OwnerID: v.GetInt64("OWNER_ID"),
		},
		Catalog: CatalogConfig{
			Path: v.GetString("CATALOG_PATH"),
		},
		Ledger: LedgerConfig{
			Path:          v.GetString("LEDGER_PATH"),
			PerItemPrices: v.GetBool("LEDGER_PER_ITEM_PRICES"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}, nil
}
