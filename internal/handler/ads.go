package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/domain"
	"github.com/set-night/cryptominer/internal/middleware"
	"github.com/set-night/cryptominer/internal/service"
	tg "github.com/set-night/cryptominer/internal/telegram"
)

func (h *Handler) handleWatchAds(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}

	acc := middleware.GetAccount(ctx)
	if acc == nil {
		editError(ctx, b, chatID, messageID, "❌ User not found. Please use /start again.", nil)
		return
	}

	loadingText := "📺 *Ad Network Platform*\n\n" +
		"💰 *Earn extra by watching ads!*\n" +
		"🎯 *High-paying advertisements*\n" +
		"⚡ *Instant earnings*\n\n" +
		"Loading advertisement..."
	if err := tg.EditMessage(ctx, b, chatID, messageID, loadingText, nil); err != nil {
		editError(ctx, b, chatID, messageID, "❌ Error watching ads. Please try again.", err)
		return
	}

	settlement, err := h.mining.WatchAds(ctx, acc.UserID, func(p domain.Progress) {
		stats := service.GenerateAdStats()
		completeText := fmt.Sprintf(
			"✅ *Ad Completed! (%d/%d)*\n\n"+
				"🎉 You earned: %s\n"+
				"💰 Total this session: %s\n"+
				"📺 Ad Type: %s\n\n"+
				"📊 *Network Stats:*\n"+
				"├ CPM: $%.2f\n"+
				"├ Viewability: %d%%\n"+
				"└ Quality Score: %d/10\n\n"+
				"Next ad loading...",
			p.Step, p.TotalSteps,
			tg.FormatBalance(p.Earned),
			tg.FormatBalance(p.SessionTotal),
			titleCase(string(p.Category)),
			stats.CPM,
			stats.Viewability,
			stats.QualityScore,
		)
		tg.EditMessage(ctx, b, chatID, messageID, completeText, nil)
	})
	if err != nil {
		h.editSessionError(ctx, b, chatID, messageID, err)
		return
	}

	sessionText := fmt.Sprintf(
		"🎊 *Ad Session Complete!*\n\n"+
			"💰 *Total Earnings:* %s\n"+
			"📈 *New Balance:* %s\n"+
			"🎯 *Ads Watched:* %d\n\n"+
			"💎 *Ad Network Performance:*\n"+
			"├ Ads Completed: %d/%d\n"+
			"└ Success Rate: 100%%\n\n"+
			"Watch more ads or start mining!",
		tg.FormatBalance(settlement.Total),
		tg.FormatBalance(settlement.NewBalance),
		len(settlement.Steps),
		len(settlement.Steps), len(settlement.Steps),
	)

	keyboard := tg.InlineKeyboard(
		tg.ButtonRow(tg.InlineButton("📺 Watch More Ads", "watch_ads")),
		tg.ButtonRow(tg.InlineButton("⛏️ Start Mining", "start_mining")),
		tg.ButtonRow(tg.InlineButton("📊 Dashboard", "balance")),
	)

	if err := tg.EditMessage(ctx, b, chatID, messageID, sessionText, keyboard); err != nil {
		editError(ctx, b, chatID, messageID, "❌ Error watching ads. Please try again.", err)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
