package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Core
	BotToken string `env:"BOT_TOKEN,required"`

	// Database. When empty the bot runs on the in-memory store
	// (state is lost on restart).
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMinConns  int32  `env:"DB_MIN_CONNS" envDefault:"5"`

	// Admin contacts for manual payouts and power boosts
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// Mining session pacing
	MiningSteps    int           `env:"MINING_STEPS" envDefault:"3"`
	StepDelay      time.Duration `env:"MINING_STEP_DELAY" envDefault:"5s"`
	AdDelay        time.Duration `env:"MINING_AD_DELAY" envDefault:"5s"`
	MiningCooldown time.Duration `env:"MINING_COOLDOWN" envDefault:"0s"`

	// Economy
	MiningBaseRate float64 `env:"MINING_BASE_RATE" envDefault:"0.1"`
	ReferralBonus  float64 `env:"REFERRAL_BONUS" envDefault:"0.5"`
	MinWithdrawal  float64 `env:"MIN_WITHDRAWAL" envDefault:"1.0"`

	// Rate limit (messages per chat per minute)
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"6"`
}

func Load() (*Config, error) {
	// Best effort: local development keeps secrets in .env
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
