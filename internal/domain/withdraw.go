package domain

import "github.com/shopspring/decimal"

// WithdrawReport is a read-only eligibility check. The bot never debits
// balance; eligible requests are processed manually by an admin using
// the Reference.
type WithdrawReport struct {
	Eligible  bool
	Balance   decimal.Decimal
	Minimum   decimal.Decimal
	Shortfall decimal.Decimal
	Reference string
}
