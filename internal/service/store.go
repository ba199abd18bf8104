package service

import (
	"context"
	"time"

	"github.com/set-night/cryptominer/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountStore is the persistence boundary shared by the Postgres and
// in-memory backends. Implementations must make Credit a single atomic
// update and StartSession an atomic test-and-set on the mining flag
// that enforces the cooldown and returns the account as of acquisition,
// so callers never work from a stale read.
type AccountStore interface {
	Get(ctx context.Context, userID int64) (*domain.Account, error)
	GetOrCreate(ctx context.Context, userID int64, firstName, username string) (*domain.Account, bool, error)
	Credit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
	StartSession(ctx context.Context, userID int64, cooldown time.Duration) (*domain.Account, error)
	EndSession(ctx context.Context, userID int64) error
	SetMiningPower(ctx context.Context, userID int64, power float64) error
	RegisterReferral(ctx context.Context, referrerID, referredID int64, bonus decimal.Decimal) (bool, error)
}
