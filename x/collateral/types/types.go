package types

import (
	"cosmossdk.io/math"
)

// Balance is a single owner's ledger entry.
type Balance struct {
	Owner  string   `json:"owner"`
	Amount math.Int `json:"amount"`
}

// Validate checks a balance record for internal consistency
func (b Balance) Validate() error {
	if b.Owner == "" {
		return ErrInvalidAmount.Wrap("balance owner cannot be empty")
	}
	if b.Amount.IsNil() || b.Amount.IsNegative() {
		return ErrInvalidAmount.Wrap("balance amount cannot be negative")
	}
	return nil
}
