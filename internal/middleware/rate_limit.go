package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// RateLimit returns middleware enforcing a per-chat message limit per
// minute, counted in memory.
func RateLimit(perMinute int) bot.Middleware {
	var (
		mu      sync.Mutex
		windows = make(map[int64][]time.Time)
	)

	allow := func(chatID int64) bool {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		cutoff := now.Add(-time.Minute)

		recent := windows[chatID][:0]
		for _, t := range windows[chatID] {
			if t.After(cutoff) {
				recent = append(recent, t)
			}
		}
		if len(recent) >= perMinute {
			windows[chatID] = recent
			return false
		}
		windows[chatID] = append(recent, now)
		return true
	}

	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			// Only rate limit messages, not callbacks
			if update.Message == nil || perMinute <= 0 {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID
			if !allow(chatID) {
				slog.Debug("rate limited", "chat_id", chatID)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Too many requests. Please wait a moment.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
