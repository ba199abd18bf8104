package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/domain"
	"github.com/set-night/cryptominer/internal/middleware"
	"github.com/set-night/cryptominer/internal/service"
	tg "github.com/set-night/cryptominer/internal/telegram"
)

func (h *Handler) handleStartMining(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}

	acc := middleware.GetAccount(ctx)
	if acc == nil {
		editError(ctx, b, chatID, messageID, "❌ User not found. Please use /start again.", nil)
		return
	}

	startText := "🚀 *Starting Advanced Mining Session...*\n\n" +
		"🏭 _Initializing Mining Rigs..._\n" +
		"⚡ _Connecting to Global Network..._\n" +
		"🔧 _Optimizing Performance..._\n" +
		"📺 _Loading Advertisements..._"
	if err := tg.EditMessage(ctx, b, chatID, messageID, startText, nil); err != nil {
		editError(ctx, b, chatID, messageID, "❌ Mining error. Please try again.", err)
		return
	}

	settlement, err := h.mining.Mine(ctx, acc.UserID, func(p domain.Progress) {
		stats := service.GenerateNetworkStats()
		progressText := fmt.Sprintf(
			"🎯 *Mining Session Active*\n\n"+
				"%s\n\n"+
				"📊 *Live Statistics:*\n"+
				"├ CPM: %.2f (Professional Grade)\n"+
				"├ Hashrate: %d MH/s\n"+
				"├ Efficiency: %.2f\n"+
				"└ Time: %s UTC\n\n"+
				"📺 Ad %d/%d (%s): +%s\n"+
				"💰 *Session Earnings:* %s",
			tg.MiningFrame(p.Step, p.TotalSteps),
			stats.CPM,
			stats.Hashrate,
			stats.Efficiency,
			stats.Timestamp,
			p.Step, p.TotalSteps, p.Category,
			tg.FormatBalance(p.Earned),
			tg.FormatBalance(p.SessionTotal),
		)
		tg.EditMessage(ctx, b, chatID, messageID, progressText, nil)
	})
	if err != nil {
		h.editSessionError(ctx, b, chatID, messageID, err)
		return
	}

	completionText := fmt.Sprintf(
		"✅ *Mining Session Complete!*\n\n"+
			"💰 *Total Earnings:* %s\n"+
			"├ Mining: %s\n"+
			"└ Ads: %s\n\n"+
			"📈 *New Balance:* %s\n"+
			"⚡ *Mining Power:* %.1fx\n\n"+
			"🎯 *Session Performance:*\n"+
			"├ Ads Watched: %d\n"+
			"└ Efficiency: Excellent\n\n"+
			"Click below to continue!",
		tg.FormatBalance(settlement.Total),
		tg.FormatBalance(settlement.Mining),
		tg.FormatBalance(settlement.Ads),
		tg.FormatBalance(settlement.NewBalance),
		acc.MiningPower,
		len(settlement.Steps),
	)

	keyboard := tg.InlineKeyboard(
		tg.ButtonRow(tg.InlineButton("⛏️ Mine Again", "start_mining")),
		tg.ButtonRow(tg.InlineButton("📺 Watch Ads", "watch_ads")),
		tg.ButtonRow(tg.InlineButton("📊 Dashboard", "balance")),
	)

	if err := tg.EditMessage(ctx, b, chatID, messageID, completionText, keyboard); err != nil {
		editError(ctx, b, chatID, messageID, "❌ Mining error. Please try again.", err)
	}
}

func (h *Handler) editSessionError(ctx context.Context, b *bot.Bot, chatID int64, messageID int, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionInProgress):
		editError(ctx, b, chatID, messageID,
			"⛏️ You are already mining! Please wait for the current session to complete.", nil)
	case errors.Is(err, domain.ErrCooldown):
		editError(ctx, b, chatID, messageID,
			"⏳ Your rigs are cooling down. Please try again in a moment.", nil)
	case errors.Is(err, domain.ErrAccountNotFound):
		editError(ctx, b, chatID, messageID,
			"❌ User not found. Please use /start again.", nil)
	default:
		editError(ctx, b, chatID, messageID, "❌ Mining error. Please try again.", err)
	}
}
