package keeper

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/smartaccount/types"
)

// ProposeRecovery opens a recovery proposal for the account; the proposing
// guardian counts as the first confirmation. An expired leftover proposal is
// displaced, an unexpired one blocks.
func (k Keeper) ProposeRecovery(ctx context.Context, owner, guardian, newOwner string) (types.RecoveryProposal, error) {
	account, found := k.GetAccount(ctx, owner)
	if !found {
		return types.RecoveryProposal{}, types.ErrAccountNotFound.Wrapf("owner %s", owner)
	}
	if !account.IsGuardian(guardian) {
		return types.RecoveryProposal{}, types.ErrNotGuardian.Wrapf("sender %s", guardian)
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	if account.Recovery != nil && now < account.Recovery.Deadline {
		return types.RecoveryProposal{}, types.ErrRecoveryActive.Wrapf("proposal %s", account.Recovery.Id)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.RecoveryProposal{}, err
	}

	proposal := types.RecoveryProposal{
		Id:            uuid.NewString(),
		ProposedOwner: newOwner,
		Confirmations: []string{guardian},
		Deadline:      now + int64(params.RecoveryWindow),
	}
	account.Recovery = &proposal
	k.SetAccount(ctx, account)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRecoveryProposed,
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyGuardian, guardian),
			sdk.NewAttribute(types.AttributeKeyNewOwner, newOwner),
			sdk.NewAttribute(types.AttributeKeyProposalId, proposal.Id),
			sdk.NewAttribute(types.AttributeKeyDeadline, fmt.Sprintf("%d", proposal.Deadline)),
		),
	)
	return proposal, nil
}

// ConfirmRecovery records a guardian confirmation. Reaching the threshold
// executes the ownership change: the account is re-keyed under the new owner,
// delegations are wiped and the proposal cleared. Returns whether the change
// executed and the owner in effect afterwards.
func (k Keeper) ConfirmRecovery(ctx context.Context, owner, guardian string) (bool, string, error) {
	account, found := k.GetAccount(ctx, owner)
	if !found {
		return false, "", types.ErrAccountNotFound.Wrapf("owner %s", owner)
	}
	if !account.IsGuardian(guardian) {
		return false, "", types.ErrNotGuardian.Wrapf("sender %s", guardian)
	}
	if account.Recovery == nil {
		return false, "", types.ErrNoActiveRecovery
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	if now >= account.Recovery.Deadline {
		account.Recovery = nil
		k.SetAccount(ctx, account)
		return false, "", types.ErrRecoveryExpired
	}
	if account.Recovery.HasConfirmed(guardian) {
		return false, "", types.ErrDuplicateConfirmation.Wrapf("guardian %s", guardian)
	}

	account.Recovery.Confirmations = append(account.Recovery.Confirmations, guardian)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRecoveryConfirmed,
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyGuardian, guardian),
			sdk.NewAttribute(types.AttributeKeyProposalId, account.Recovery.Id),
		),
	)

	if len(account.Recovery.Confirmations) < types.RecoveryThreshold {
		k.SetAccount(ctx, account)
		return false, owner, nil
	}

	newOwner := account.Recovery.ProposedOwner
	proposalId := account.Recovery.Id

	// Re-key the account under the new owner. Delegations granted by the
	// displaced owner do not survive.
	store := k.getStore(ctx)
	store.Delete(types.GetAccountKey(owner))

	account.Owner = newOwner
	account.Delegations = []types.DelegationGrant{}
	account.Recovery = nil
	k.SetAccount(ctx, account)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRecoveryExecuted,
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyNewOwner, newOwner),
			sdk.NewAttribute(types.AttributeKeyProposalId, proposalId),
		),
	)
	k.Logger(ctx).Info("account recovered", "previous_owner", owner, "new_owner", newOwner)

	return true, newOwner, nil
}

// CancelRecovery clears a pending proposal. Owner override, usable at any
// point before execution.
func (k Keeper) CancelRecovery(ctx context.Context, owner string) error {
	account, found := k.GetAccount(ctx, owner)
	if !found {
		return types.ErrAccountNotFound.Wrapf("owner %s", owner)
	}
	if account.Recovery == nil {
		return types.ErrNoActiveRecovery
	}

	proposalId := account.Recovery.Id
	account.Recovery = nil
	k.SetAccount(ctx, account)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRecoveryCancelled,
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyProposalId, proposalId),
		),
	)
	return nil
}
