package config

import (
	"fmt"
	"log"
	"os"

	"personnel-bot/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from environment variables and the
// settings file.
func Load() (*model.Config, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	appID := os.Getenv("APP_ID")
	if appID == "" {
		log.Fatal("Error: APP_ID environment variable not set")
	}

	logWebhookURL := os.Getenv("LOG_WEBHOOK_URL")
	if logWebhookURL == "" {
		log.Println("Warning: LOG_WEBHOOK_URL not set, webhook logging will be disabled")
	}

	cfg, err := loadSettings(settingsPath())
	if err != nil {
		return nil, err
	}

	cfg.BotToken = token
	cfg.AppID = appID
	cfg.LogWebhookURL = logWebhookURL

	if credentials := os.Getenv("GOOGLE_CREDENTIALS"); credentials != "" {
		cfg.Sheets.CredentialsPath = credentials
	}
	if spreadsheetID := os.Getenv("SPREADSHEET_ID"); spreadsheetID != "" {
		cfg.Sheets.SpreadsheetID = spreadsheetID
	}

	if cfg.Sheets.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet_id is not configured")
	}

	return cfg, nil
}

func settingsPath() string {
	if path := os.Getenv("SETTINGS_PATH"); path != "" {
		return path
	}
	return "config/settings.yaml"
}

func loadSettings(path string) (*model.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("sheets.personnel_sheet", "Личный Состав")
	v.SetDefault("sheets.audit_sheet", "Общий Кадровый")
	v.SetDefault("sheets.blacklist_sheet", "Отправлено (НЕ РЕДАКТИРОВАТЬ)")
	v.SetDefault("sheets.moderators_sheet", "Пользователи")
	v.SetDefault("sheets.credentials_path", "credentials.json")
	v.SetDefault("registry_db_path", "data/registry.db")
	v.SetDefault("warehouse.cooldown_hours", 6)
	v.SetDefault("warehouse.positions_enabled", true)
	v.SetDefault("warehouse.ranks_enabled", false)
	v.SetDefault("leave.work_start", "09:00")
	v.SetDefault("leave.work_end", "22:00")
	v.SetDefault("leave.max_duration_minutes", 60)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			log.Printf("Warning: settings file not found at %s, using defaults", path)
		} else {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	cfg := &model.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return cfg, nil
}
