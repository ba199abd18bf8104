package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/config"
	"github.com/set-night/cryptominer/internal/middleware"
	tg "github.com/set-night/cryptominer/internal/telegram"
)

func (h *Handler) handleWithdraw(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}

	acc := middleware.GetAccount(ctx)
	if acc == nil {
		editError(ctx, b, chatID, messageID, "❌ User not found. Please use /start again.", nil)
		return
	}

	report, err := h.accounts.WithdrawReport(ctx, acc.UserID)
	if err != nil {
		editError(ctx, b, chatID, messageID, "❌ Error loading withdrawal.", err)
		return
	}

	var text string
	if !report.Eligible {
		text = fmt.Sprintf(
			"💳 *Withdrawal*\n\n"+
				"❌ *Minimum withdrawal: %s*\n\n"+
				"💰 Your current balance: %s\n\n"+
				"💎 You need %s more to withdraw.\n\n"+
				"🚀 Keep mining and watching ads to reach the minimum amount!",
			tg.FormatBalance(report.Minimum),
			tg.FormatBalance(report.Balance),
			tg.FormatBalance(report.Shortfall),
		)
	} else {
		text = fmt.Sprintf(
			"💳 *Withdrawal Request*\n\n"+
				"💰 *Available Balance:* %s\n"+
				"✅ *Eligible for withdrawal!*\n\n"+
				"🧾 *Request Reference:* `%s`\n"+
				"📝 *Payment Method:* Binance UID\n"+
				"💎 *Accepted Currencies:* %s\n\n"+
				"To withdraw, please contact admin with your:\n"+
				"1. Request reference\n"+
				"2. Binance UID\n"+
				"3. Preferred currency and amount\n\n"+
				"Admin will process your payment manually.",
			tg.FormatBalance(report.Balance),
			report.Reference,
			config.PaymentCurrencies,
		)
	}

	keyboard := tg.InlineKeyboard(
		tg.ButtonRow(tg.InlineButton("⛏️ Continue Mining", "start_mining")),
		tg.ButtonRow(tg.InlineButton("💰 Balance", "balance")),
		tg.ButtonRow(tg.InlineButton("📊 Main Menu", "main_menu")),
	)

	if err := tg.EditMessage(ctx, b, chatID, messageID, text, keyboard); err != nil {
		editError(ctx, b, chatID, messageID, "❌ Error loading withdrawal.", err)
	}
}
