package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/set-night/cryptominer/internal/config"
	"github.com/set-night/cryptominer/internal/domain"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	store AccountStore
	cfg   *config.Config
}

func NewAccountService(store AccountStore, cfg *config.Config) *AccountService {
	return &AccountService{store: store, cfg: cfg}
}

func (s *AccountService) GetOrCreate(ctx context.Context, userID int64, firstName, username string) (*domain.Account, bool, error) {
	acc, created, err := s.store.GetOrCreate(ctx, userID, firstName, username)
	if err != nil {
		return nil, false, fmt.Errorf("get or create account: %w", err)
	}
	return acc, created, nil
}

func (s *AccountService) Get(ctx context.Context, userID int64) (*domain.Account, error) {
	return s.store.Get(ctx, userID)
}

// Credit adds a non-negative amount to balance and lifetime_earned.
func (s *AccountService) Credit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return s.store.Credit(ctx, userID, amount)
}

// SetMiningPower applies an admin-granted power multiplier. The
// multiplier must be positive; 1.0 restores the base rate.
func (s *AccountService) SetMiningPower(ctx context.Context, userID int64, power float64) error {
	if power <= 0 {
		return domain.ErrInvalidAmount
	}
	return s.store.SetMiningPower(ctx, userID, power)
}

// RegisterReferral credits the one-time bonus to the referrer. Returns
// false without effect on self-referral, unknown referrer, or an already
// referred account.
func (s *AccountService) RegisterReferral(ctx context.Context, referrerID, referredID int64) (bool, error) {
	if referrerID == referredID {
		return false, nil
	}
	bonus := decimal.NewFromFloat(s.cfg.ReferralBonus)
	return s.store.RegisterReferral(ctx, referrerID, referredID, bonus)
}

// RegisterReferralCode parses a referral deep-link payload (the
// referrer's numeric user id) and registers the referral. Malformed
// codes are ignored: onboarding must never fail on a bad link.
func (s *AccountService) RegisterReferralCode(ctx context.Context, code string, referredID int64) (bool, error) {
	referrerID, err := strconv.ParseInt(code, 10, 64)
	if err != nil {
		return false, nil
	}
	return s.RegisterReferral(ctx, referrerID, referredID)
}

// WithdrawReport checks eligibility against the configured minimum. The
// bot never debits balance; eligible requests carry a reference for the
// manual payout flow.
func (s *AccountService) WithdrawReport(ctx context.Context, userID int64) (*domain.WithdrawReport, error) {
	acc, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	minimum := decimal.NewFromFloat(s.cfg.MinWithdrawal)
	report := &domain.WithdrawReport{
		Balance: acc.Balance,
		Minimum: minimum,
	}
	if acc.Balance.GreaterThanOrEqual(minimum) {
		report.Eligible = true
		report.Reference = uuid.New().String()
	} else {
		report.Shortfall = minimum.Sub(acc.Balance)
	}
	return report, nil
}
