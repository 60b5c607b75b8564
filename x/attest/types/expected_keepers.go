package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SynthKeeper exposes the engine totals the cross-check reads.
type SynthKeeper interface {
	GetTotalLockedCollateral(ctx context.Context) math.Int
}

// BankKeeper defines the expected bank keeper interface
type BankKeeper interface {
	GetSupply(ctx context.Context, denom string) sdk.Coin
}
