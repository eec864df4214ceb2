package envconfig

import "github.com/caarlos0/env/v11"

type telegramEnv struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`
	ChatID   int64  `env:"TELEGRAM_CHAT_ID"`
}

type telegram struct {
	raw telegramEnv
}

func NewTelegramConfig() (*telegram, error) {
	var raw telegramEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &telegram{raw: raw}, nil
}

func (cfg *telegram) BotToken() string { return cfg.raw.BotToken }
func (cfg *telegram) ChatID() int64    { return cfg.raw.ChatID }

// Enabled reports whether failure notifications should be sent.
func (cfg *telegram) Enabled() bool {
	return cfg.raw.BotToken != "" && cfg.raw.ChatID != 0
}
