package types

import (
	"cosmossdk.io/math"
)

// Usage tracks an account's sponsored spend within a window bucket.
type Usage struct {
	Account     string   `json:"account"`
	WindowStart int64    `json:"window_start"`
	Spent       math.Int `json:"spent"`
}

// Validate checks a usage record for internal consistency
func (u Usage) Validate() error {
	if u.Account == "" {
		return ErrInvalidAmount.Wrap("usage account cannot be empty")
	}
	if u.Spent.IsNil() || u.Spent.IsNegative() {
		return ErrInvalidAmount.Wrap("usage spent cannot be negative")
	}
	return nil
}

// WindowBucket aligns a timestamp to its bucket start.
func WindowBucket(now int64, windowSeconds uint64) int64 {
	w := int64(windowSeconds)
	return now - now%w
}
