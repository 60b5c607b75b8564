package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	"github.com/synthia-chain/synthia/x/synth/types"
)

// GetPosition returns the owner's open position, if any.
func (k Keeper) GetPosition(ctx context.Context, owner string) (types.Position, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetPositionKey(owner))
	if bz == nil {
		return types.Position{}, false
	}
	var position types.Position
	if err := json.Unmarshal(bz, &position); err != nil {
		return types.Position{}, false
	}
	return position, true
}

// SetPosition stores a position; a zero-debt position is deleted instead.
func (k Keeper) SetPosition(ctx context.Context, position types.Position) {
	store := k.getStore(ctx)
	if position.MintedAmount.IsZero() {
		store.Delete(types.GetPositionKey(position.Owner))
		return
	}
	bz, err := json.Marshal(position)
	if err != nil {
		panic(fmt.Errorf("marshal position: %w", err))
	}
	store.Set(types.GetPositionKey(position.Owner), bz)
}

// IteratePositions walks every open position until cb returns true.
func (k Keeper) IteratePositions(ctx context.Context, cb func(types.Position) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PositionKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var position types.Position
		if err := json.Unmarshal(iterator.Value(), &position); err != nil {
			continue
		}
		if cb(position) {
			break
		}
	}
}

// GetTotalLockedCollateral returns the aggregate collateral consumed by open
// positions.
func (k Keeper) GetTotalLockedCollateral(ctx context.Context) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.TotalLockedKey)
	if bz == nil {
		return math.ZeroInt()
	}
	var total math.Int
	if err := total.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return total
}

func (k Keeper) setTotalLockedCollateral(ctx context.Context, total math.Int) {
	if total.IsNegative() {
		panic(fmt.Sprintf("locked collateral went negative: %s", total))
	}
	store := k.getStore(ctx)
	bz, err := total.Marshal()
	if err != nil {
		panic(fmt.Errorf("marshal locked collateral: %w", err))
	}
	store.Set(types.TotalLockedKey, bz)
}
