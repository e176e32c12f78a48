// Package config loads process configuration from environment
// variables with sensible defaults.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds everything the process needs to start.
type Config struct {
	AppPort        string `validate:"required"`
	DatabaseURL    string `validate:"required"`
	TelegramAPIURL string `validate:"required,url"`
	// Bot credentials may be empty in development; order notifications
	// will then fail at dispatch time and surface as 500s, which is the
	// documented behavior for a broken notification capability.
	TelegramBotToken string
	TelegramChatID   string
	// Optional. When empty, no order events are published.
	RabbitMQURL string
}

// Load reads configuration from the environment via Viper and validates
// the result.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("DATABASE_URL", "restoran.db")
	viper.SetDefault("TELEGRAM_API_URL", "https://api.telegram.org")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_CHAT_ID", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort:          viper.GetString("APP_PORT"),
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		TelegramAPIURL:   viper.GetString("TELEGRAM_API_URL"),
		TelegramBotToken: viper.GetString("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   viper.GetString("TELEGRAM_CHAT_ID"),
		RabbitMQURL:      viper.GetString("RABBITMQ_URL"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
