package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/middleware"
	tg "github.com/set-night/cryptominer/internal/telegram"
)

func (h *Handler) handleReferrals(ctx context.Context, b *bot.Bot, update *models.Update) {
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
		"👥 *Referral Program*\n\n"+
			"🎁 *Earn $%.2f for every invited miner!*\n\n"+
			"📊 *Your Referral Stats:*\n"+
			"├ Total Referrals: %d\n"+
			"└ Referral Earnings: %s\n\n"+
			"🔗 *Your Personal Referral Link:*\n"+
			"`https://t.me/%s?start=%d`\n\n"+
			"📣 *Share this message:*\n"+
			"💎 Join CryptoMiner Pro — Advanced Cloud Mining Platform!\n"+
			"⚡ High-performance mining with professional equipment!\n"+
			"🎁 Use my link to get bonus starting rewards!",
		h.cfg.ReferralBonus,
		acc.ReferralCount,
		tg.FormatBalance(acc.ReferralBonusTotal),
		h.botUsername,
		acc.UserID,
	)

	keyboard := tg.InlineKeyboard(
		tg.ButtonRow(tg.InlineButton("⛏️ Start Mining", "start_mining")),
		tg.ButtonRow(tg.InlineButton("💰 Balance", "balance")),
		tg.ButtonRow(tg.InlineButton("📊 Main Menu", "main_menu")),
	)

	if err := tg.EditMessage(ctx, b, chatID, messageID, text, keyboard); err != nil {
		editError(ctx, b, chatID, messageID, "❌ Error loading referrals.", err)
	}
}
