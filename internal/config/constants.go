package config

const (
	// Default reward when an ad category is unknown (USD)
	FallbackAdReward = 0.002

	// Withdrawal currencies accepted by the manual payout flow
	PaymentCurrencies = "BTTC, BONK, PEPE"

	// Telegram limits
	MaxTelegramMessageLen = 4096
)

// PowerBoostTier is a purchasable mining power upgrade, handled
// manually by an admin.
type PowerBoostTier struct {
	Power float64
	Price float64
}

// PowerBoostTiers available for purchase.
var PowerBoostTiers = []PowerBoostTier{
	{Power: 2, Price: 5.0},
	{Power: 5, Price: 20.0},
	{Power: 10, Price: 35.0},
}
