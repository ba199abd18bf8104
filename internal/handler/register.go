package handler

import (
	"github.com/go-telegram/bot"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/boost", bot.MatchTypePrefix, h.handleGrantBoost)

	// Dashboard callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "start_mining", bot.MatchTypeExact, h.handleStartMining)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "watch_ads", bot.MatchTypeExact, h.handleWatchAds)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "balance", bot.MatchTypeExact, h.handleBalance)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "referrals", bot.MatchTypeExact, h.handleReferrals)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "withdraw", bot.MatchTypeExact, h.handleWithdraw)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "stats", bot.MatchTypeExact, h.handleStats)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "boost", bot.MatchTypeExact, h.handleBoost)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "main_menu", bot.MatchTypeExact, h.handleMainMenu)
}
