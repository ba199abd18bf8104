package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/domain"
	"github.com/set-night/cryptominer/internal/service"
)

type ctxKey string

const accountKey ctxKey = "account"

// GetAccount extracts the acting account from context.
func GetAccount(ctx context.Context) *domain.Account {
	acc, ok := ctx.Value(accountKey).(*domain.Account)
	if !ok {
		return nil
	}
	return acc
}

// WithAccount returns a context carrying the acting account.
func WithAccount(ctx context.Context, acc *domain.Account) context.Context {
	return context.WithValue(ctx, accountKey, acc)
}

// AccountLoader returns middleware that loads (creating if absent) the
// acting user's account into the context. Referral payloads are handled
// separately by the /start handler.
func AccountLoader(accounts *service.AccountService) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var from *models.User
			if update.Message != nil {
				from = update.Message.From
			} else if update.CallbackQuery != nil {
				from = &update.CallbackQuery.From
			}

			if from == nil {
				next(ctx, b, update)
				return
			}

			acc, _, err := accounts.GetOrCreate(ctx, from.ID, from.FirstName, from.Username)
			if err != nil {
				slog.Error("load account", "error", err, "user_id", from.ID)
				next(ctx, b, update)
				return
			}

			next(WithAccount(ctx, acc), b, update)
		}
	}
}
