package repository

import (
	"context"
	"sync"
	"time"

	"github.com/set-night/cryptominer/internal/domain"
	"github.com/shopspring/decimal"
)

// Memory is a mutex-guarded account store used when no DATABASE_URL is
// configured, and by tests. It mirrors the Postgres store's semantics,
// including the atomic conditional session-start.
type Memory struct {
	mu        sync.RWMutex
	nextID    int64
	accounts  map[int64]*domain.Account  // keyed by external user id
	referrals map[int64]*domain.Referral // keyed by referred user id
}

func NewMemory() *Memory {
	return &Memory{
		accounts:  make(map[int64]*domain.Account),
		referrals: make(map[int64]*domain.Referral),
	}
}

func (m *Memory) Get(_ context.Context, userID int64) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	acc, ok := m.accounts[userID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *acc
	return &cp, nil
}

func (m *Memory) GetOrCreate(_ context.Context, userID int64, firstName, username string) (*domain.Account, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if acc, ok := m.accounts[userID]; ok {
		cp := *acc
		return &cp, false, nil
	}

	m.nextID++
	now := time.Now()
	acc := &domain.Account{
		ID:                 m.nextID,
		UserID:             userID,
		FirstName:          firstName,
		Username:           username,
		Balance:            decimal.Zero,
		LifetimeEarned:     decimal.Zero,
		MiningPower:        1.0,
		ReferralBonusTotal: decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	m.accounts[userID] = acc
	cp := *acc
	return &cp, true, nil
}

func (m *Memory) Credit(_ context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[userID]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	acc.Balance = acc.Balance.Add(amount)
	acc.LifetimeEarned = acc.LifetimeEarned.Add(amount)
	acc.UpdatedAt = time.Now()
	return acc.Balance, nil
}

// StartSession acquires the mining flag under the write lock, enforcing
// the cooldown in the same critical section. Returns the account as of
// flag acquisition.
func (m *Memory) StartSession(_ context.Context, userID int64, cooldown time.Duration) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[userID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if acc.IsMining {
		return nil, domain.ErrSessionInProgress
	}
	if cooldown > 0 && acc.LastMiningAt != nil && time.Since(*acc.LastMiningAt) < cooldown {
		return nil, domain.ErrCooldown
	}
	now := time.Now()
	acc.IsMining = true
	acc.LastMiningAt = &now
	acc.UpdatedAt = now
	cp := *acc
	return &cp, nil
}

func (m *Memory) EndSession(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[userID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.IsMining = false
	acc.UpdatedAt = time.Now()
	return nil
}

// SetMiningPower applies an admin-granted power boost.
func (m *Memory) SetMiningPower(_ context.Context, userID int64, power float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[userID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.MiningPower = power
	acc.UpdatedAt = time.Now()
	return nil
}

func (m *Memory) RegisterReferral(_ context.Context, referrerID, referredID int64, bonus decimal.Decimal) (bool, error) {
	if referrerID == referredID {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	referrer, ok := m.accounts[referrerID]
	if !ok {
		return false, nil
	}
	if _, ok := m.referrals[referredID]; ok {
		return false, nil
	}

	m.nextID++
	m.referrals[referredID] = &domain.Referral{
		ID:         m.nextID,
		ReferrerID: referrerID,
		ReferredID: referredID,
		CreatedAt:  time.Now(),
	}

	referrer.ReferralCount++
	referrer.ReferralBonusTotal = referrer.ReferralBonusTotal.Add(bonus)
	referrer.Balance = referrer.Balance.Add(bonus)
	referrer.LifetimeEarned = referrer.LifetimeEarned.Add(bonus)
	referrer.UpdatedAt = time.Now()
	return true, nil
}
