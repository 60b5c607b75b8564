package keeper

import (
	"context"
	"fmt"

	"github.com/synthia-chain/synthia/x/router/types"
)

func (k Keeper) withReentrancyGuard(ctx context.Context, owner, operation string, fn func() error) error {
	lockKey := fmt.Sprintf("%s:%s", owner, operation)

	store := k.getStore(ctx)
	key := types.ReentrancyLockKey(lockKey)
	if store.Has(key) {
		return types.ErrReentrancy.Wrapf("operation %s is already locked", lockKey)
	}
	store.Set(key, []byte{0x01})
	defer store.Delete(key)

	return fn()
}
