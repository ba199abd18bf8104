package domain

import "time"

// Referral records that ReferredID onboarded through ReferrerID's link.
// At most one row exists per referred account; rows are never updated
// or deleted.
type Referral struct {
	ID         int64
	ReferrerID int64
	ReferredID int64
	CreatedAt  time.Time
}
