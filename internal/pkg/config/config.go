package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP       HTTPCfg       `yaml:"http"`
	DB         DBCfg         `yaml:"db"`
	Auth       AuthCfg       `yaml:"auth"`
	Summarizer SummarizerCfg `yaml:"summarizer"`
	Notify     NotifyCfg     `yaml:"notify"`
	Drafts     DraftsCfg     `yaml:"drafts"`
}

type HTTPCfg struct {
	Addr string `yaml:"addr" env:"HTTP_ADDR"`
}

type DBCfg struct {
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	Username string `yaml:"username" env:"DB_USER"`
	Password string `yaml:"-" env:"DB_PASSWORD"`
	Database string `yaml:"database" env:"DB_NAME"`
}

func (c DBCfg) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s", c.Username, c.Password, c.Host, c.Port, c.Database)
}

type AuthCfg struct {
	OperatorEmail    string        `yaml:"operator_email" env:"ADMIN_EMAIL"`
	OperatorPassword string        `yaml:"-" env:"ADMIN_PASS"`
	SessionTTL       time.Duration `yaml:"-" env:"ADMIN_SESSION_TTL"`
}

type SummarizerCfg struct {
	APIKey string `yaml:"-" env:"GEMINI_API_KEY"`
	Model  string `yaml:"model" env:"GEMINI_MODEL"`
}

type NotifyCfg struct {
	TelegramToken  string `yaml:"-" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

type DraftsCfg struct {
	TTL           time.Duration `yaml:"-" env:"DRAFT_TTL"`
	SweepInterval time.Duration `yaml:"-" env:"DRAFT_SWEEP_INTERVAL"`
}

func defaults() *Config {
	return &Config{
		HTTP: HTTPCfg{Addr: ":8080"},
		DB:   DBCfg{Host: "localhost", Port: 5432, Username: "postgres", Database: "pyronix"},
		Auth: AuthCfg{SessionTTL: 12 * time.Hour},
		Summarizer: SummarizerCfg{
			Model: "gemini-3-flash-preview",
		},
		Drafts: DraftsCfg{
			TTL:           2 * time.Hour,
			SweepInterval: 10 * time.Minute,
		},
	}
}

// Load reads the yaml config file, then overlays environment variables.
// A missing config file is not an error, env vars alone are enough.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Auth.OperatorEmail == "" || cfg.Auth.OperatorPassword == "" {
		return nil, fmt.Errorf("operator credentials are not configured")
	}

	return cfg, nil
}
