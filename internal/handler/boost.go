package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/config"
	"github.com/set-night/cryptominer/internal/middleware"
	tg "github.com/set-night/cryptominer/internal/telegram"
)

func (h *Handler) handleBoost(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}

	acc := middleware.GetAccount(ctx)
	if acc == nil {
		editError(ctx, b, chatID, messageID, "❌ User not found. Please use /start again.", nil)
		return
	}

	var tiers strings.Builder
	for i, tier := range config.PowerBoostTiers {
		branch := "├"
		if i == len(config.PowerBoostTiers)-1 {
			branch = "└"
		}
		fmt.Fprintf(&tiers, "%s %.0fx Power — $%.2f (Permanent)\n", branch, tier.Power, tier.Price)
	}

	text := fmt.Sprintf(
		"🛠️ *Boost Your Mining Power*\n\n"+
			"⚡ *Current Mining Power:* %.1fx\n\n"+
			"💎 *Available Boosts:*\n%s\n"+
			"💰 *Earning Comparison:*\n"+
			"├ Current: $%.2f/session + ads\n"+
			"└ Boosted: up to $%.2f/session + ads\n\n"+
			"📺 *Ad earnings remain the same!*\n\n"+
			"Contact admin to upgrade your mining power!",
		acc.MiningPower,
		tiers.String(),
		h.cfg.MiningBaseRate*acc.MiningPower,
		h.cfg.MiningBaseRate*config.PowerBoostTiers[len(config.PowerBoostTiers)-1].Power,
	)

	keyboard := tg.InlineKeyboard(
		tg.ButtonRow(tg.InlineButton("⛏️ Start Mining", "start_mining")),
		tg.ButtonRow(tg.InlineButton("💳 Withdraw", "withdraw")),
		tg.ButtonRow(tg.InlineButton("📊 Main Menu", "main_menu")),
	)

	if err := tg.EditMessage(ctx, b, chatID, messageID, text, keyboard); err != nil {
		editError(ctx, b, chatID, messageID, "❌ Error loading boost info.", err)
	}
}
