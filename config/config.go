package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	SiteURL           string `mapstructure:"SITE_URL"`

	// SMTP relay. All four must be present for the email channels to run.
	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`

	FromEmail      string `mapstructure:"FROM_EMAIL"`
	SiteOwnerEmail string `mapstructure:"SITE_OWNER_EMAIL"`
	ContactEmail   string `mapstructure:"CONTACT_EMAIL"`

	// Telegram ops alerts.
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `mapstructure:"TELEGRAM_CHAT_ID"`

	// Bitrix24 CRM inbound webhook.
	BitrixWebhookURL string `mapstructure:"BITRIX_WEBHOOK_URL"`

	// Chat assistant.
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	ChatHistoryTTLMin int    `mapstructure:"CHAT_HISTORY_TTL_MIN"`

	// Redis configuration (chat history store).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisChatDB   int    `mapstructure:"REDIS_CHAT_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SITE_URL", "bvetra.by")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("FROM_EMAIL", "no-reply@example.com")
	viper.SetDefault("SITE_OWNER_EMAIL", "")
	viper.SetDefault("CONTACT_EMAIL", "")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_CHAT_ID", 0)
	viper.SetDefault("BITRIX_WEBHOOK_URL", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("CHAT_HISTORY_TTL_MIN", 30)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CHAT_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SMTPConfigured reports whether the mail relay is fully configured.
// A partially configured relay disables both email channels rather than
// failing at send time with half a credential set.
func (c Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != 0 && c.SMTPUser != "" && c.SMTPPass != ""
}
