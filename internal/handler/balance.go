package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/middleware"
	tg "github.com/set-night/cryptominer/internal/telegram"
)

func (h *Handler) handleBalance(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}

	acc := middleware.GetAccount(ctx)
	if acc == nil {
		editError(ctx, b, chatID, messageID, "❌ User not found. Please use /start again.", nil)
		return
	}

	perSession := h.cfg.MiningBaseRate * acc.MiningPower
	text := fmt.Sprintf(
		"💰 *Your Balance & Statistics*\n\n"+
			"💵 *Available Balance:* %s\n"+
			"🏦 *Total Earned:* %s\n"+
			"⚡ *Mining Power:* %.1fx\n"+
			"👥 *Referral Bonus:* %s\n\n"+
			"📈 *Earning Potential:*\n"+
			"├ Base Mining: $%.2f/session\n"+
			"├ With Current Power: $%.2f/session\n"+
			"└ Plus ad rewards every session\n\n"+
			"💎 Boost your mining power to earn more!",
		tg.FormatBalance(acc.Balance),
		tg.FormatBalance(acc.LifetimeEarned),
		acc.MiningPower,
		tg.FormatBalance(acc.ReferralBonusTotal),
		h.cfg.MiningBaseRate,
		perSession,
	)

	keyboard := tg.InlineKeyboard(
		tg.ButtonRow(tg.InlineButton("⛏️ Start Mining", "start_mining")),
		tg.ButtonRow(tg.InlineButton("📺 Watch Ads", "watch_ads")),
		tg.ButtonRow(
			tg.InlineButton("💳 Withdraw", "withdraw"),
			tg.InlineButton("🛠️ Boost Power", "boost"),
		),
		tg.ButtonRow(tg.InlineButton("📊 Main Menu", "main_menu")),
	)

	if err := tg.EditMessage(ctx, b, chatID, messageID, text, keyboard); err != nil {
		editError(ctx, b, chatID, messageID, "❌ Error loading balance.", err)
	}
}
