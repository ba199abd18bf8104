package telegram

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBalance renders a dollar balance: six decimals at a dollar and
// above, eight below to keep tiny rewards visible.
func FormatBalance(balance decimal.Decimal) string {
	if balance.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return "$" + balance.StringFixed(6)
	}
	return "$" + balance.StringFixed(8)
}

const miningBarWidth = 10

// MiningFrame renders the animated mining progress bar for a step.
func MiningFrame(step, totalSteps int) string {
	filled := miningBarWidth
	if totalSteps > 0 {
		filled = step * miningBarWidth / totalSteps
	}
	if filled > miningBarWidth {
		filled = miningBarWidth
	}
	return fmt.Sprintf("⛏️ Mining... %s%s",
		strings.Repeat("█", filled),
		strings.Repeat("░", miningBarWidth-filled),
	)
}
