package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/middleware"
	"github.com/set-night/cryptominer/internal/service"
	tg "github.com/set-night/cryptominer/internal/telegram"
)

func (h *Handler) handleStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}

	acc := middleware.GetAccount(ctx)
	if acc == nil {
		editError(ctx, b, chatID, messageID, "❌ User not found. Please use /start again.", nil)
		return
	}

	network := service.GenerateNetworkStats()
	ads := service.GenerateAdStats()

	text := fmt.Sprintf(
		"📊 *Live Mining & Ad Statistics*\n\n"+
			"🎯 *Network Performance:*\n"+
			"├ Global CPM: %.2f\n"+
			"├ Network Hashrate: %d MH/s\n"+
			"├ Efficiency Rating: %.2f\n"+
			"└ Server Time: %s UTC\n\n"+
			"📺 *Ad Network:*\n"+
			"├ Ad CPM: $%.2f\n"+
			"├ Fill Rate: %d%%\n"+
			"├ Viewability: %d%%\n"+
			"└ Quality Score: %d/10\n\n"+
			"💎 *Your Performance:*\n"+
			"├ Mining Power: %.1fx\n"+
			"├ Total Earned: %s\n"+
			"└ Uptime: 99.9%%",
		network.CPM,
		network.Hashrate,
		network.Efficiency,
		network.Timestamp,
		ads.CPM,
		ads.FillRate,
		ads.Viewability,
		ads.QualityScore,
		acc.MiningPower,
		tg.FormatBalance(acc.LifetimeEarned),
	)

	keyboard := tg.InlineKeyboard(
		tg.ButtonRow(tg.InlineButton("⛏️ Start Mining", "start_mining")),
		tg.ButtonRow(tg.InlineButton("💰 Balance", "balance")),
		tg.ButtonRow(tg.InlineButton("📊 Main Menu", "main_menu")),
	)

	if err := tg.EditMessage(ctx, b, chatID, messageID, text, keyboard); err != nil {
		editError(ctx, b, chatID, messageID, "❌ Error loading statistics.", err)
	}
}
