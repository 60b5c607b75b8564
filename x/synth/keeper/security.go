package keeper

import (
	"context"
	"fmt"

	"github.com/synthia-chain/synthia/x/synth/types"
)

// WithReentrancyGuard executes fn while holding a store-backed lock keyed by
// owner and operation.
func (k Keeper) WithReentrancyGuard(ctx context.Context, owner, operation string, fn func() error) error {
	lockKey := fmt.Sprintf("%s:%s", owner, operation)

	if err := k.acquireReentrancyLock(ctx, lockKey); err != nil {
		return err
	}
	defer k.releaseReentrancyLock(ctx, lockKey)

	return fn()
}

func (k Keeper) acquireReentrancyLock(ctx context.Context, lockKey string) error {
	store := k.getStore(ctx)
	key := types.ReentrancyLockKey(lockKey)

	if store.Has(key) {
		return types.ErrReentrancy.Wrapf("operation %s is already locked", lockKey)
	}

	store.Set(key, []byte{0x01})
	return nil
}

func (k Keeper) releaseReentrancyLock(ctx context.Context, lockKey string) {
	store := k.getStore(ctx)
	store.Delete(types.ReentrancyLockKey(lockKey))
}
