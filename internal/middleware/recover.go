package middleware

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Recover returns middleware that recovers from handler panics. The
// user still gets an answer: a generic failure notice goes to the chat
// the update came from.
func Recover() bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("panic recovered in handler",
						"panic", r,
						"stack", string(debug.Stack()),
					)
					chatID := updateChatID(update)
					if chatID == 0 {
						return
					}
					if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
						ChatID: chatID,
						Text:   "❌ Something went wrong. Please try again.",
					}); err != nil {
						slog.Error("send panic notice", "error", err, "chat_id", chatID)
					}
				}
			}()
			next(ctx, b, update)
		}
	}
}

// updateChatID resolves the chat an update belongs to, or 0 when the
// update carries no chat (e.g. an inline callback without a message).
func updateChatID(update *models.Update) int64 {
	if update == nil {
		return 0
	}
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message.Message != nil {
		return update.CallbackQuery.Message.Message.Chat.ID
	}
	return 0
}
