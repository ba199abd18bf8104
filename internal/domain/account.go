package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the per-user record holding balance and mining statistics.
// UserID is the external Telegram identifier; ID is the internal key.
type Account struct {
	ID                 int64
	UserID             int64
	FirstName          string
	Username           string
	Balance            decimal.Decimal
	LifetimeEarned     decimal.Decimal
	MiningPower        float64
	ReferralCount      int64
	ReferralBonusTotal decimal.Decimal
	IsMining           bool
	LastMiningAt       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
