package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Aggregator abstracts the external swap venue. Implementations consume the
// input coins held by the router module account and credit the proceeds back
// to the same account; the router measures realized output by balance delta,
// never by anything the venue reports. The instruction blob is opaque to the
// router and passed through untouched.
type Aggregator interface {
	Swap(ctx context.Context, input sdk.Coin, outputDenom string, instruction []byte) error
}
