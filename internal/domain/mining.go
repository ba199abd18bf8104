package domain

import "github.com/shopspring/decimal"

// AdCategory is the kind of simulated advertisement shown during a step.
type AdCategory string

const (
	AdBanner       AdCategory = "banner"
	AdVideo        AdCategory = "video"
	AdInterstitial AdCategory = "interstitial"
)

// StepResult is one completed step of a mining or ad session.
type StepResult struct {
	Category AdCategory
	Earned   decimal.Decimal
}

// Progress is emitted after each session step for live rendering.
type Progress struct {
	Step         int
	TotalSteps   int
	Category     AdCategory
	Earned       decimal.Decimal
	SessionTotal decimal.Decimal
}

// Settlement is the outcome of a completed session. Mining is the flat
// base_rate * mining_power portion, Ads the sum of per-step draws.
type Settlement struct {
	Mining     decimal.Decimal
	Ads        decimal.Decimal
	Total      decimal.Decimal
	NewBalance decimal.Decimal
	Steps      []StepResult
}
