package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/synthia-chain/synthia/testutil/keeper"
	"github.com/synthia-chain/synthia/x/smartaccount/types"
)

var (
	owner    = sdk.AccAddress([]byte("smartaccount_owner_1"))
	delegate = sdk.AccAddress([]byte("smartaccount_deleg_1"))
	stranger = sdk.AccAddress([]byte("smartaccount_nobody_"))

	guardian1 = sdk.AccAddress([]byte("guardian_number_0001"))
	guardian2 = sdk.AccAddress([]byte("guardian_number_0002"))
	guardian3 = sdk.AccAddress([]byte("guardian_number_0003"))

	newOwner = sdk.AccAddress([]byte("recovered_owner_0001"))
)

func guardians() []string {
	return []string{guardian1.String(), guardian2.String(), guardian3.String()}
}

func setupAccount(t *testing.T) *keepertest.TestEnv {
	env := keepertest.NewTestEnv(t)
	require.NoError(t, env.SmartAccount.RegisterAccount(env.Ctx, owner.String(), guardians()))
	return env
}

func TestRegisterAccountValidation(t *testing.T) {
	env := keepertest.NewTestEnv(t)

	// Exactly three distinct guardians, none of them the owner.
	err := env.SmartAccount.RegisterAccount(env.Ctx, owner.String(), []string{guardian1.String()})
	require.ErrorIs(t, err, types.ErrInvalidGuardians)

	err = env.SmartAccount.RegisterAccount(env.Ctx, owner.String(),
		[]string{guardian1.String(), guardian1.String(), guardian2.String()})
	require.ErrorIs(t, err, types.ErrInvalidGuardians)

	err = env.SmartAccount.RegisterAccount(env.Ctx, owner.String(),
		[]string{owner.String(), guardian1.String(), guardian2.String()})
	require.ErrorIs(t, err, types.ErrInvalidGuardians)

	require.NoError(t, env.SmartAccount.RegisterAccount(env.Ctx, owner.String(), guardians()))
	err = env.SmartAccount.RegisterAccount(env.Ctx, owner.String(), guardians())
	require.ErrorIs(t, err, types.ErrAccountExists)
}

func TestDelegationLifecycle(t *testing.T) {
	env := setupAccount(t)

	expiry, err := env.SmartAccount.GrantDelegate(env.Ctx, owner.String(), delegate.String())
	require.NoError(t, err)
	require.Equal(t, env.Ctx.BlockTime().Unix()+int64(types.DefaultDelegationDuration), expiry)

	account, found := env.SmartAccount.GetAccount(env.Ctx, owner.String())
	require.True(t, found)
	require.True(t, account.IsAuthorized(delegate.String(), env.Ctx.BlockTime().Unix()))
	require.False(t, account.IsAuthorized(stranger.String(), env.Ctx.BlockTime().Unix()))

	// Past its expiry the grant actively denies.
	env.AdvanceTime(time.Duration(types.DefaultDelegationDuration+1) * time.Second)
	account, _ = env.SmartAccount.GetAccount(env.Ctx, owner.String())
	require.False(t, account.IsAuthorized(delegate.String(), env.Ctx.BlockTime().Unix()))

	// A fresh grant refreshes the expiry in place.
	_, err = env.SmartAccount.GrantDelegate(env.Ctx, owner.String(), delegate.String())
	require.NoError(t, err)
	account, _ = env.SmartAccount.GetAccount(env.Ctx, owner.String())
	require.Len(t, account.Delegations, 1)
	require.True(t, account.IsAuthorized(delegate.String(), env.Ctx.BlockTime().Unix()))

	require.NoError(t, env.SmartAccount.RevokeDelegate(env.Ctx, owner.String(), delegate.String()))
	account, _ = env.SmartAccount.GetAccount(env.Ctx, owner.String())
	require.Empty(t, account.Delegations)

	err = env.SmartAccount.RevokeDelegate(env.Ctx, owner.String(), delegate.String())
	require.ErrorIs(t, err, types.ErrDelegateNotFound)
}

func TestRecoveryTwoOfThree(t *testing.T) {
	env := setupAccount(t)

	proposal, err := env.SmartAccount.ProposeRecovery(env.Ctx, owner.String(), guardian1.String(), newOwner.String())
	require.NoError(t, err)
	require.Len(t, proposal.Confirmations, 1) // proposer counts

	// A non-guardian cannot confirm, and a guardian cannot double-confirm.
	_, _, err = env.SmartAccount.ConfirmRecovery(env.Ctx, owner.String(), stranger.String())
	require.ErrorIs(t, err, types.ErrNotGuardian)
	_, _, err = env.SmartAccount.ConfirmRecovery(env.Ctx, owner.String(), guardian1.String())
	require.ErrorIs(t, err, types.ErrDuplicateConfirmation)

	// The second distinct guardian executes the change.
	executed, effectiveOwner, err := env.SmartAccount.ConfirmRecovery(env.Ctx, owner.String(), guardian2.String())
	require.NoError(t, err)
	require.True(t, executed)
	require.Equal(t, newOwner.String(), effectiveOwner)

	_, found := env.SmartAccount.GetAccount(env.Ctx, owner.String())
	require.False(t, found)

	recovered, found := env.SmartAccount.GetAccount(env.Ctx, newOwner.String())
	require.True(t, found)
	require.Equal(t, newOwner.String(), recovered.Owner)
	require.Empty(t, recovered.Delegations)
	require.Nil(t, recovered.Recovery)
}

func TestRecoveryExpires(t *testing.T) {
	env := setupAccount(t)

	_, err := env.SmartAccount.ProposeRecovery(env.Ctx, owner.String(), guardian1.String(), newOwner.String())
	require.NoError(t, err)

	env.AdvanceTime(time.Duration(types.DefaultRecoveryWindow+1) * time.Second)

	_, _, err = env.SmartAccount.ConfirmRecovery(env.Ctx, owner.String(), guardian2.String())
	require.ErrorIs(t, err, types.ErrRecoveryExpired)

	// The expired proposal is cleared, so a new one can open.
	_, err = env.SmartAccount.ProposeRecovery(env.Ctx, owner.String(), guardian3.String(), newOwner.String())
	require.NoError(t, err)
}

func TestCancelRecovery(t *testing.T) {
	env := setupAccount(t)

	_, err := env.SmartAccount.ProposeRecovery(env.Ctx, owner.String(), guardian1.String(), newOwner.String())
	require.NoError(t, err)

	require.NoError(t, env.SmartAccount.CancelRecovery(env.Ctx, owner.String()))

	err = env.SmartAccount.CancelRecovery(env.Ctx, owner.String())
	require.ErrorIs(t, err, types.ErrNoActiveRecovery)
}

func TestExecuteBatchIsolatesFailures(t *testing.T) {
	env := setupAccount(t)

	env.FundAccount(t, owner, sdk.NewCoins(sdk.NewCoin("usyn", math.NewInt(150))))

	target1 := sdk.AccAddress([]byte("batch_target_one_001"))
	target2 := sdk.AccAddress([]byte("batch_target_two_002"))

	calls := []types.BatchCall{
		{Target: target1.String(), Amount: sdk.NewCoins(sdk.NewCoin("usyn", math.NewInt(100)))},
		// Overdraws the remaining 50: this call fails alone.
		{Target: target2.String(), Amount: sdk.NewCoins(sdk.NewCoin("usyn", math.NewInt(100)))},
		{Target: target2.String(), Amount: sdk.NewCoins(sdk.NewCoin("usyn", math.NewInt(50)))},
	}

	results, err := env.SmartAccount.ExecuteBatch(env.Ctx, owner.String(), owner.String(), calls)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, results)

	// The failed transfer left no partial state.
	got1 := env.BankKeeper.GetBalance(env.Ctx, target1, "usyn")
	require.Equal(t, math.NewInt(100), got1.Amount)
	got2 := env.BankKeeper.GetBalance(env.Ctx, target2, "usyn")
	require.Equal(t, math.NewInt(50), got2.Amount)
}

func TestExecuteBatchAuthorization(t *testing.T) {
	env := setupAccount(t)

	calls := []types.BatchCall{{Target: stranger.String(), Amount: sdk.NewCoins()}}

	_, err := env.SmartAccount.ExecuteBatch(env.Ctx, stranger.String(), owner.String(), calls)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// An active delegate may drive the account.
	_, err = env.SmartAccount.GrantDelegate(env.Ctx, owner.String(), delegate.String())
	require.NoError(t, err)
	results, err := env.SmartAccount.ExecuteBatch(env.Ctx, delegate.String(), owner.String(), calls)
	require.NoError(t, err)
	require.Equal(t, []bool{true}, results)
}
