// Package tgclient sends plain-text chat messages through the Telegram bot
// API.
package tgclient

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
)

type client struct {
	bot *bot.Bot
}

func NewClient(bot *bot.Bot) *client {
	return &client{bot: bot}
}

// SendMessage sends text without a parse mode; sync reports carry serials
// and error strings that Markdown would reject.
func (c *client) SendMessage(ctx context.Context, chatID int64, text string) error {
	const op = "tgclient.SendMessage"

	if _, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		return fmt.Errorf("%s: chat %d: %w", op, chatID, err)
	}

	return nil
}
