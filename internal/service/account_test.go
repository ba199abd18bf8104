package service_test

import (
	"context"
	"testing"

	"github.com/set-night/cryptominer/internal/config"
	"github.com/set-night/cryptominer/internal/domain"
	"github.com/set-night/cryptominer/internal/repository"
	"github.com/set-night/cryptominer/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		MiningSteps:    3,
		MiningBaseRate: 0.1,
		ReferralBonus:  0.5,
		MinWithdrawal:  1.0,
	}
}

func TestCreditAccumulates(t *testing.T) {
	ctx := context.Background()
	accounts := service.NewAccountService(repository.NewMemory(), testConfig())

	_, _, err := accounts.GetOrCreate(ctx, 100, "Alice", "alice")
	require.NoError(t, err)

	amounts := []float64{0.1, 0.002, 0.5, 0}
	sum := decimal.Zero
	for _, a := range amounts {
		amount := decimal.NewFromFloat(a)
		sum = sum.Add(amount)
		_, err := accounts.Credit(ctx, 100, amount)
		require.NoError(t, err)
	}

	acc, err := accounts.Get(ctx, 100)
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(sum), "balance = %s, want %s", acc.Balance, sum)
	assert.True(t, acc.LifetimeEarned.Equal(sum))
}

func TestCreditNegativeRejected(t *testing.T) {
	ctx := context.Background()
	accounts := service.NewAccountService(repository.NewMemory(), testConfig())

	_, _, err := accounts.GetOrCreate(ctx, 100, "Alice", "alice")
	require.NoError(t, err)

	_, err = accounts.Credit(ctx, 100, decimal.NewFromFloat(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	acc, err := accounts.Get(ctx, 100)
	require.NoError(t, err)
	assert.True(t, acc.Balance.IsZero())
}

func TestSetMiningPower(t *testing.T) {
	ctx := context.Background()
	accounts := service.NewAccountService(repository.NewMemory(), testConfig())

	_, _, err := accounts.GetOrCreate(ctx, 100, "Alice", "alice")
	require.NoError(t, err)

	require.NoError(t, accounts.SetMiningPower(ctx, 100, 2.0))

	acc, err := accounts.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 2.0, acc.MiningPower)

	assert.ErrorIs(t, accounts.SetMiningPower(ctx, 100, 0), domain.ErrInvalidAmount)
	assert.ErrorIs(t, accounts.SetMiningPower(ctx, 100, -1), domain.ErrInvalidAmount)
	assert.ErrorIs(t, accounts.SetMiningPower(ctx, 999, 2.0), domain.ErrAccountNotFound)

	// Rejected calls leave the multiplier untouched
	acc, err = accounts.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 2.0, acc.MiningPower)
}

func TestRegisterReferralBonusOnce(t *testing.T) {
	ctx := context.Background()
	accounts := service.NewAccountService(repository.NewMemory(), testConfig())

	_, _, err := accounts.GetOrCreate(ctx, 1, "Referrer", "ref")
	require.NoError(t, err)
	_, _, err = accounts.GetOrCreate(ctx, 2, "Referred", "red")
	require.NoError(t, err)

	ok, err := accounts.RegisterReferral(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	referrer, err := accounts.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), referrer.ReferralCount)
	assert.True(t, referrer.Balance.Equal(decimal.NewFromFloat(0.5)))

	// Repeat onboarding with the same code pays nothing
	ok, err = accounts.RegisterReferral(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	referrer, err = accounts.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, referrer.Balance.Equal(decimal.NewFromFloat(0.5)))
}

func TestRegisterReferralSelf(t *testing.T) {
	ctx := context.Background()
	accounts := service.NewAccountService(repository.NewMemory(), testConfig())

	_, _, err := accounts.GetOrCreate(ctx, 1, "Loner", "loner")
	require.NoError(t, err)

	ok, err := accounts.RegisterReferral(ctx, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	acc, err := accounts.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, acc.Balance.IsZero())
	assert.Equal(t, int64(0), acc.ReferralCount)
}

func TestRegisterReferralCode(t *testing.T) {
	ctx := context.Background()
	accounts := service.NewAccountService(repository.NewMemory(), testConfig())

	_, _, err := accounts.GetOrCreate(ctx, 1, "Referrer", "ref")
	require.NoError(t, err)
	_, _, err = accounts.GetOrCreate(ctx, 2, "Referred", "red")
	require.NoError(t, err)

	// Malformed codes are silently ignored
	ok, err := accounts.RegisterReferralCode(ctx, "not-a-number", 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = accounts.RegisterReferralCode(ctx, "1", 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWithdrawReport(t *testing.T) {
	ctx := context.Background()
	accounts := service.NewAccountService(repository.NewMemory(), testConfig())

	_, _, err := accounts.GetOrCreate(ctx, 100, "Alice", "alice")
	require.NoError(t, err)
	_, err = accounts.Credit(ctx, 100, decimal.NewFromFloat(0.75))
	require.NoError(t, err)

	report, err := accounts.WithdrawReport(ctx, 100)
	require.NoError(t, err)
	assert.False(t, report.Eligible)
	assert.True(t, report.Shortfall.Equal(decimal.NewFromFloat(0.25)), "shortfall = %s", report.Shortfall)
	assert.Empty(t, report.Reference)

	_, err = accounts.Credit(ctx, 100, decimal.NewFromFloat(1.25))
	require.NoError(t, err)

	report, err = accounts.WithdrawReport(ctx, 100)
	require.NoError(t, err)
	assert.True(t, report.Eligible)
	assert.True(t, report.Balance.Equal(decimal.NewFromFloat(2.0)))
	assert.NotEmpty(t, report.Reference)

	_, err = accounts.WithdrawReport(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
