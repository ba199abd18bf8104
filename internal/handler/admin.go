package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/domain"
	tg "github.com/set-night/cryptominer/internal/telegram"
)

// handleGrantBoost is the admin side of the boost flow: after a user
// pays for a tier, an admin applies the multiplier manually with
// /boost <user_id> <power>. Non-admins are ignored.
func (h *Handler) handleGrantBoost(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !h.cfg.IsAdmin(update.Message.From.ID) {
		return
	}
	chatID := update.Message.Chat.ID

	fields := strings.Fields(update.Message.Text)
	if len(fields) != 3 {
		h.replyBoostUsage(ctx, b, chatID)
		return
	}

	userID, errID := strconv.ParseInt(fields[1], 10, 64)
	power, errPower := strconv.ParseFloat(fields[2], 64)
	if errID != nil || errPower != nil {
		h.replyBoostUsage(ctx, b, chatID)
		return
	}

	if err := h.accounts.SetMiningPower(ctx, userID, power); err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			h.replyAdmin(ctx, b, chatID, fmt.Sprintf("❌ No account with user id %d.", userID))
		case errors.Is(err, domain.ErrInvalidAmount):
			h.replyAdmin(ctx, b, chatID, "❌ Power must be greater than zero.")
		default:
			slog.Error("grant boost", "error", err, "user_id", userID)
			h.replyAdmin(ctx, b, chatID, "❌ Database error. Please try again.")
		}
		return
	}

	slog.Info("mining power granted", "admin_id", update.Message.From.ID, "user_id", userID, "power", power)
	h.replyAdmin(ctx, b, chatID, fmt.Sprintf("✅ Mining power for %d set to %.1fx.", userID, power))
}

func (h *Handler) replyBoostUsage(ctx context.Context, b *bot.Bot, chatID int64) {
	h.replyAdmin(ctx, b, chatID, "Usage: /boost <user_id> <power>")
}

func (h *Handler) replyAdmin(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if _, err := tg.SendMessage(ctx, b, chatID, text, nil); err != nil {
		slog.Error("send admin reply", "error", err, "chat_id", chatID)
	}
}
