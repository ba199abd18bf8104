package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/middleware"
	tg "github.com/set-night/cryptominer/internal/telegram"
)

func (h *Handler) menuKeyboard() *models.InlineKeyboardMarkup {
	return tg.InlineKeyboard(
		tg.ButtonRow(tg.InlineButton("⛏️ Start Mining", "start_mining")),
		tg.ButtonRow(tg.InlineButton("📺 Watch Ads", "watch_ads")),
		tg.ButtonRow(
			tg.InlineButton("💰 Balance", "balance"),
			tg.InlineButton("👥 Referrals", "referrals"),
		),
		tg.ButtonRow(
			tg.InlineButton("💳 Withdraw", "withdraw"),
			tg.InlineButton("📊 Statistics", "stats"),
		),
		tg.ButtonRow(tg.InlineButton("🛠️ Boost Power", "boost")),
	)
}

func (h *Handler) handleMainMenu(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}

	acc := middleware.GetAccount(ctx)
	if acc == nil {
		editError(ctx, b, chatID, messageID, "❌ User not found. Please use /start again.", nil)
		return
	}

	text := fmt.Sprintf(
		"🏆 *CryptoMiner Pro Dashboard* 🏆\n\n"+
			"💎 _Advanced Cloud Mining Platform_\n"+
			"⚡ _High-Performance Mining Rigs_\n\n"+
			"%s\n"+
			"💰 *Earn from both mining and ads!*\n\n"+
			"Choose an option below:",
		h.renderAccountStats(acc),
	)

	if err := tg.EditMessage(ctx, b, chatID, messageID, text, h.menuKeyboard()); err != nil {
		editError(ctx, b, chatID, messageID, "❌ Error loading menu.", err)
	}
}
