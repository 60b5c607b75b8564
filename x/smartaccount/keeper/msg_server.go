package keeper

import (
	"context"
	"fmt"

	"github.com/synthia-chain/synthia/x/smartaccount/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the smartaccount MsgServer
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// RegisterAccount handles account creation.
func (ms msgServer) RegisterAccount(goCtx context.Context, msg *types.MsgRegisterAccount) (*types.MsgRegisterAccountResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.Keeper.RegisterAccount(goCtx, msg.Owner, msg.Guardians); err != nil {
		return nil, fmt.Errorf("RegisterAccount: %w", err)
	}

	return &types.MsgRegisterAccountResponse{}, nil
}

// SwapAndMint handles the composed inbound flow.
func (ms msgServer) SwapAndMint(goCtx context.Context, msg *types.MsgSwapAndMint) (*types.MsgSwapAndMintResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	collateralOut, minted, err := ms.Keeper.SwapAndMint(
		goCtx, msg.Sender, msg.AccountOwner,
		msg.InputDenom, msg.AmountIn, msg.MinCollateralOut, msg.RequestedSynthOut,
		msg.SwapInstruction,
	)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapAndMintResponse{
		CollateralOut: collateralOut,
		Minted:        minted,
	}, nil
}

// RedeemAndSwap handles the composed outbound flow.
func (ms msgServer) RedeemAndSwap(goCtx context.Context, msg *types.MsgRedeemAndSwap) (*types.MsgRedeemAndSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	assetOut, err := ms.Keeper.RedeemAndSwap(
		goCtx, msg.Sender, msg.AccountOwner,
		msg.BurnAmount, msg.OutputDenom, msg.MinOut,
		msg.SwapInstruction,
	)
	if err != nil {
		return nil, err
	}

	return &types.MsgRedeemAndSwapResponse{AssetOut: assetOut}, nil
}

// ExecuteBatch handles non-atomic batches.
func (ms msgServer) ExecuteBatch(goCtx context.Context, msg *types.MsgExecuteBatch) (*types.MsgExecuteBatchResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	results, err := ms.Keeper.ExecuteBatch(goCtx, msg.Sender, msg.AccountOwner, msg.Calls)
	if err != nil {
		return nil, fmt.Errorf("ExecuteBatch: %w", err)
	}

	return &types.MsgExecuteBatchResponse{Results: results}, nil
}

// GrantDelegate handles delegation grants. Owner signature required.
func (ms msgServer) GrantDelegate(goCtx context.Context, msg *types.MsgGrantDelegate) (*types.MsgGrantDelegateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	expiry, err := ms.Keeper.GrantDelegate(goCtx, msg.Owner, msg.Delegate)
	if err != nil {
		return nil, fmt.Errorf("GrantDelegate: %w", err)
	}

	return &types.MsgGrantDelegateResponse{Expiry: expiry}, nil
}

// RevokeDelegate handles delegation revocations. Owner signature required.
func (ms msgServer) RevokeDelegate(goCtx context.Context, msg *types.MsgRevokeDelegate) (*types.MsgRevokeDelegateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.Keeper.RevokeDelegate(goCtx, msg.Owner, msg.Delegate); err != nil {
		return nil, fmt.Errorf("RevokeDelegate: %w", err)
	}

	return &types.MsgRevokeDelegateResponse{}, nil
}

// ProposeRecovery handles recovery proposals. Guardian signature required.
func (ms msgServer) ProposeRecovery(goCtx context.Context, msg *types.MsgProposeRecovery) (*types.MsgProposeRecoveryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	proposal, err := ms.Keeper.ProposeRecovery(goCtx, msg.AccountOwner, msg.Guardian, msg.NewOwner)
	if err != nil {
		return nil, fmt.Errorf("ProposeRecovery: %w", err)
	}

	return &types.MsgProposeRecoveryResponse{
		ProposalId: proposal.Id,
		Deadline:   proposal.Deadline,
	}, nil
}

// ConfirmRecovery handles recovery confirmations. Guardian signature required.
func (ms msgServer) ConfirmRecovery(goCtx context.Context, msg *types.MsgConfirmRecovery) (*types.MsgConfirmRecoveryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	executed, newOwner, err := ms.Keeper.ConfirmRecovery(goCtx, msg.AccountOwner, msg.Guardian)
	if err != nil {
		return nil, fmt.Errorf("ConfirmRecovery: %w", err)
	}

	resp := &types.MsgConfirmRecoveryResponse{Executed: executed}
	if executed {
		resp.NewOwner = newOwner
	}
	return resp, nil
}

// CancelRecovery handles owner cancellation of a pending recovery.
func (ms msgServer) CancelRecovery(goCtx context.Context, msg *types.MsgCancelRecovery) (*types.MsgCancelRecoveryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.Keeper.CancelRecovery(goCtx, msg.Owner); err != nil {
		return nil, fmt.Errorf("CancelRecovery: %w", err)
	}

	return &types.MsgCancelRecoveryResponse{}, nil
}
