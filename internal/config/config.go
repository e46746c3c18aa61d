package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`
	AdminUserID      int64  `env:"ADMIN_USER"`

	// Storage
	ActsFilePath string `env:"ACTS_FILE_PATH" envDefault:"data/acts.jsonl"`
	DatabaseURL  string `env:"DATABASE_URL"`

	// Weekly summary push, empty cron disables it
	WeeklyReportCron string `env:"WEEKLY_REPORT_CRON" envDefault:"0 9 * * 1"`
	ReportTimezone   string `env:"REPORT_TIMEZONE" envDefault:"Local"`

	// Health and metrics listener, empty disables it
	HTTPAddr         string `env:"HTTP_ADDR" envDefault:":10000"`
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"actbot"`
}

func New() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

// Parse reads the config from the environment without exiting on error.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
