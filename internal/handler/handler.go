package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/config"
	"github.com/set-night/cryptominer/internal/service"
	tg "github.com/set-night/cryptominer/internal/telegram"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot         *bot.Bot
	cfg         *config.Config
	accounts    *service.AccountService
	mining      *service.MiningService
	botUsername string
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot         *bot.Bot
	Cfg         *config.Config
	Accounts    *service.AccountService
	Mining      *service.MiningService
	BotUsername string
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:         deps.Bot,
		cfg:         deps.Cfg,
		accounts:    deps.Accounts,
		mining:      deps.Mining,
		botUsername: deps.BotUsername,
	}
}

// callbackTarget resolves the chat and message a callback query points
// at, answering the query so the button stops spinning.
func callbackTarget(ctx context.Context, b *bot.Bot, update *models.Update) (chatID int64, messageID int, ok bool) {
	if update.CallbackQuery == nil {
		return 0, 0, false
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
	})
	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return 0, 0, false
	}
	return msg.Chat.ID, msg.ID, true
}

// editError replaces the message with a generic failure notice. All
// interaction failures surface to the user this way; details stay in
// the logs.
func editError(ctx context.Context, b *bot.Bot, chatID int64, messageID int, notice string, err error) {
	if err != nil {
		slog.Error("interaction failed", "error", err, "chat_id", chatID)
	}
	if editErr := tg.EditMessage(ctx, b, chatID, messageID, notice, nil); editErr != nil {
		slog.Error("send failure notice", "error", editErr, "chat_id", chatID)
	}
}
