package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/config"
)

// SendMessage sends a markdown message, falling back to plain text if
// markdown parsing fails. Text over the Telegram limit is truncated.
func SendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string, markup models.ReplyMarkup) (*models.Message, error) {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      truncate(text, config.MaxTelegramMessageLen),
		ParseMode: models.ParseModeMarkdown,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	msg, err := b.SendMessage(ctx, params)
	if err != nil {
		slog.Warn("markdown send failed, falling back to plain text", "error", err)
		params.ParseMode = ""
		msg, err = b.SendMessage(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("send message: %w", err)
		}
	}
	return msg, nil
}

// EditMessage edits a message in place, falling back to plain text if
// markdown parsing fails.
func EditMessage(ctx context.Context, b *bot.Bot, chatID int64, messageID int, text string, markup models.ReplyMarkup) error {
	params := &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      truncate(text, config.MaxTelegramMessageLen),
		ParseMode: models.ParseModeMarkdown,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	_, err := b.EditMessageText(ctx, params)
	if err != nil {
		params.ParseMode = ""
		_, err = b.EditMessageText(ctx, params)
	}
	return err
}

// truncate caps text at max runes, marking the cut with an ellipsis.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}
