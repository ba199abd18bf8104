package domain

import "errors"

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrSessionInProgress = errors.New("mining session already in progress")
	ErrCooldown          = errors.New("mining cooldown not elapsed")
	ErrInvalidAmount     = errors.New("invalid amount")
)
