package types

import (
	"fmt"
)

// Default parameter values
const (
	DefaultRouterFeeBps = uint64(30)

	// MaxRouterFeeBps caps the routing fee at 5%.
	MaxRouterFeeBps = uint64(500)
)

// Params defines the parameters for the router module
type Params struct {
	// RouterFeeBps is the fee taken from swap input, in basis points
	RouterFeeBps uint64 `json:"router_fee_bps"`
}

// DefaultParams returns the default router parameters
func DefaultParams() Params {
	return Params{
		RouterFeeBps: DefaultRouterFeeBps,
	}
}

// Validate performs basic validation of router parameters
func (p Params) Validate() error {
	if p.RouterFeeBps > MaxRouterFeeBps {
		return fmt.Errorf("router fee %d bps exceeds maximum %d", p.RouterFeeBps, MaxRouterFeeBps)
	}
	return nil
}
