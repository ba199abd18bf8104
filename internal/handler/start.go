package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/domain"
	"github.com/set-night/cryptominer/internal/middleware"
	tg "github.com/set-night/cryptominer/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	// Onboarding must answer even when the store is down
	acc := middleware.GetAccount(ctx)
	if acc == nil {
		if _, err := tg.SendMessage(ctx, b, chatID, "❌ Database error. Please try again.", nil); err != nil {
			slog.Error("send onboarding failure notice", "error", err, "chat_id", chatID)
		}
		return
	}

	// Referral deep link: /start <referrer user id>. Best effort only;
	// a bad or duplicate code must never block onboarding.
	parts := strings.SplitN(update.Message.Text, " ", 2)
	if len(parts) > 1 && parts[1] != "" {
		registered, err := h.accounts.RegisterReferralCode(ctx, parts[1], acc.UserID)
		if err != nil {
			slog.Warn("register referral", "error", err, "user_id", acc.UserID, "code", parts[1])
		} else if registered {
			slog.Info("referral registered", "referred_id", acc.UserID, "code", parts[1])
		}
	}

	text := fmt.Sprintf(
		"🏆 *Welcome to CryptoMiner Pro Bot!* 🏆\n\n"+
			"💎 _Advanced Cloud Mining Platform_\n"+
			"⚡ _High-Performance Mining Rigs_\n"+
			"📺 _Ad Network Integration_\n\n"+
			"%s\n"+
			"🎁 *Referral Program:*\n"+
			"Invite friends and earn a bonus for every new miner!\n"+
			"Your referral link:\n`https://t.me/%s?start=%d`\n\n"+
			"💰 *Earn from Ads:* Watch ads to boost your mining earnings!\n\n"+
			"Click *Start Mining* to begin your journey!",
		h.renderAccountStats(acc),
		h.botUsername,
		acc.UserID,
	)

	if _, err := tg.SendMessage(ctx, b, chatID, text, h.menuKeyboard()); err != nil {
		slog.Error("send welcome", "error", err, "chat_id", chatID)
	}
}

func (h *Handler) renderAccountStats(acc *domain.Account) string {
	return fmt.Sprintf(
		"📊 *Your Stats:*\n"+
			"├ Balance: %s\n"+
			"├ Total Earned: %s\n"+
			"├ Mining Power: %.1fx\n"+
			"└ Referrals: %d users\n",
		tg.FormatBalance(acc.Balance),
		tg.FormatBalance(acc.LifetimeEarned),
		acc.MiningPower,
		acc.ReferralCount,
	)
}
