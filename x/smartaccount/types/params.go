package types

import (
	"fmt"
)

// Default parameter values
const (
	// DefaultDelegationDuration is 24 hours in seconds.
	DefaultDelegationDuration = uint64(86400)
	// DefaultRecoveryWindow is 72 hours in seconds.
	DefaultRecoveryWindow = uint64(259200)
)

// Params defines the parameters for the smartaccount module
type Params struct {
	// DelegationDuration is the lifetime of a delegation grant in seconds
	DelegationDuration uint64 `json:"delegation_duration"`
	// RecoveryWindow is the confirmation deadline for recovery proposals
	// in seconds
	RecoveryWindow uint64 `json:"recovery_window"`
}

// DefaultParams returns the default smartaccount parameters
func DefaultParams() Params {
	return Params{
		DelegationDuration: DefaultDelegationDuration,
		RecoveryWindow:     DefaultRecoveryWindow,
	}
}

// Validate performs basic validation of smartaccount parameters
func (p Params) Validate() error {
	if p.DelegationDuration == 0 {
		return fmt.Errorf("delegation duration cannot be zero")
	}
	if p.RecoveryWindow == 0 {
		return fmt.Errorf("recovery window cannot be zero")
	}
	return nil
}
