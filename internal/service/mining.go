package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/set-night/cryptominer/internal/config"
	"github.com/set-night/cryptominer/internal/domain"
	"github.com/shopspring/decimal"
)

// RewardRange is a uniform draw interval for one ad category, in USD.
type RewardRange struct {
	Min float64
	Max float64
}

// MiningParams is the full configuration surface of the session
// simulator. The original implementations diverged only in these values.
type MiningParams struct {
	Steps     int
	StepDelay time.Duration
	AdDelay   time.Duration
	Cooldown  time.Duration
	BaseRate  float64
	Rewards   map[domain.AdCategory]RewardRange
}

// DefaultRewards are the per-category uniform draw ranges.
func DefaultRewards() map[domain.AdCategory]RewardRange {
	return map[domain.AdCategory]RewardRange{
		domain.AdBanner:       {Min: 0.001, Max: 0.005},
		domain.AdVideo:        {Min: 0.005, Max: 0.015},
		domain.AdInterstitial: {Min: 0.003, Max: 0.008},
	}
}

func ParamsFromConfig(cfg *config.Config) MiningParams {
	return MiningParams{
		Steps:     cfg.MiningSteps,
		StepDelay: cfg.StepDelay,
		AdDelay:   cfg.AdDelay,
		Cooldown:  cfg.MiningCooldown,
		BaseRate:  cfg.MiningBaseRate,
		Rewards:   DefaultRewards(),
	}
}

// ProgressFunc receives one notification per completed session step.
type ProgressFunc func(p domain.Progress)

// MiningService runs mining and ad-watching sessions: a fixed number of
// paced steps each drawing a random reward, settled as a single credit.
type MiningService struct {
	store  AccountStore
	params MiningParams
}

func NewMiningService(store AccountStore, params MiningParams) *MiningService {
	return &MiningService{store: store, params: params}
}

// Mine runs a full mining session: video ads on every step plus the
// flat base_rate * mining_power reward at settlement.
func (s *MiningService) Mine(ctx context.Context, userID int64, onProgress ProgressFunc) (*domain.Settlement, error) {
	return s.run(ctx, userID, onProgress, func() domain.AdCategory {
		return domain.AdVideo
	}, true)
}

// WatchAds runs an ad-only session: a random category per step and no
// mining portion.
func (s *MiningService) WatchAds(ctx context.Context, userID int64, onProgress ProgressFunc) (*domain.Settlement, error) {
	categories := []domain.AdCategory{domain.AdBanner, domain.AdVideo, domain.AdInterstitial}
	return s.run(ctx, userID, onProgress, func() domain.AdCategory {
		return categories[rand.IntN(len(categories))]
	}, false)
}

func (s *MiningService) run(ctx context.Context, userID int64, onProgress ProgressFunc, pickCategory func() domain.AdCategory, withMining bool) (*domain.Settlement, error) {
	// Flag acquisition doubles as the account read: the store enforces
	// the cooldown atomically and returns the row it flipped, so the
	// mining power used at settlement is the one sampled at acquisition.
	acc, err := s.store.StartSession(ctx, userID, s.params.Cooldown)
	if err != nil {
		return nil, err
	}
	// The flag must clear on every exit path, including cancellation,
	// or the account stays wedged in the mining state.
	defer func() {
		if err := s.store.EndSession(context.WithoutCancel(ctx), userID); err != nil {
			slog.Error("clear mining flag", "error", err, "user_id", userID)
		}
	}()

	adsTotal := decimal.Zero
	steps := make([]domain.StepResult, 0, s.params.Steps)

	for i := 1; i <= s.params.Steps; i++ {
		if err := pause(ctx, s.params.AdDelay); err != nil {
			return nil, fmt.Errorf("session cancelled: %w", err)
		}

		category := pickCategory()
		earned := s.drawReward(category)
		adsTotal = adsTotal.Add(earned)
		steps = append(steps, domain.StepResult{Category: category, Earned: earned})

		if onProgress != nil {
			onProgress(domain.Progress{
				Step:         i,
				TotalSteps:   s.params.Steps,
				Category:     category,
				Earned:       earned,
				SessionTotal: adsTotal,
			})
		}

		if err := pause(ctx, s.params.StepDelay); err != nil {
			return nil, fmt.Errorf("session cancelled: %w", err)
		}
	}

	mining := decimal.Zero
	if withMining {
		// One duration unit per session
		mining = decimal.NewFromFloat(s.params.BaseRate * acc.MiningPower).Round(6)
	}
	total := adsTotal.Add(mining)

	newBalance, err := s.store.Credit(ctx, userID, total)
	if err != nil {
		return nil, fmt.Errorf("settle session: %w", err)
	}

	return &domain.Settlement{
		Mining:     mining,
		Ads:        adsTotal,
		Total:      total,
		NewBalance: newBalance,
		Steps:      steps,
	}, nil
}

func (s *MiningService) drawReward(category domain.AdCategory) decimal.Decimal {
	r, ok := s.params.Rewards[category]
	if !ok {
		return decimal.NewFromFloat(config.FallbackAdReward)
	}
	v := r.Min + rand.Float64()*(r.Max-r.Min)
	return decimal.NewFromFloat(v).Round(6)
}

// pause sleeps for d unless the context is cancelled first.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
