package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/synthia-chain/synthia/x/shared/keeper"

	"github.com/synthia-chain/synthia/x/collateral/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the collateral MsgServer
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Deposit pulls collateral from the signer's bank balance into the ledger.
func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, err
	}

	params, err := ms.GetParams(goCtx)
	if err != nil {
		return nil, err
	}

	err = ms.WithReentrancyGuard(goCtx, msg.Depositor, "deposit", func() error {
		// Check the circuit breaker before touching the bank so a paused
		// ledger never takes custody of the depositor's coins.
		if ms.IsPaused(goCtx) {
			return types.ErrLedgerPaused
		}
		coins := sdk.NewCoins(sdk.NewCoin(params.Denom, msg.Amount))
		if err := ms.bankKeeper.SendCoinsFromAccountToModule(goCtx, depositor, types.ModuleName, coins); err != nil {
			return fmt.Errorf("Deposit: bank send: %w", err)
		}
		return ms.Keeper.Deposit(goCtx, types.ModuleName, msg.Depositor, msg.Amount)
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgDepositResponse{
		NewBalance: ms.GetUserCollateral(goCtx, msg.Depositor),
	}, nil
}

// Withdraw pays free ledger collateral back to the signer.
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, err
	}

	err = ms.WithReentrancyGuard(goCtx, msg.Owner, "withdraw", func() error {
		return ms.Keeper.Withdraw(goCtx, types.ModuleName, msg.Owner, owner, msg.Amount)
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgWithdrawResponse{
		NewBalance: ms.GetUserCollateral(goCtx, msg.Owner),
	}, nil
}

// EmergencyWithdraw returns the signer's full recorded balance while paused.
func (ms msgServer) EmergencyWithdraw(goCtx context.Context, msg *types.MsgEmergencyWithdraw) (*types.MsgEmergencyWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, err
	}

	amount, err := ms.Keeper.EmergencyWithdraw(goCtx, owner)
	if err != nil {
		return nil, fmt.Errorf("EmergencyWithdraw: %w", err)
	}

	return &types.MsgEmergencyWithdrawResponse{Amount: amount}, nil
}

// PauseLedger handles governance pause requests.
func (ms msgServer) PauseLedger(goCtx context.Context, msg *types.MsgPauseLedger) (*types.MsgPauseLedgerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.PauseLedger(goCtx); err != nil {
		return nil, fmt.Errorf("PauseLedger: %w", err)
	}

	return &types.MsgPauseLedgerResponse{}, nil
}

// ResumeLedger handles governance resume requests.
func (ms msgServer) ResumeLedger(goCtx context.Context, msg *types.MsgResumeLedger) (*types.MsgResumeLedgerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.ResumeLedger(goCtx); err != nil {
		return nil, fmt.Errorf("ResumeLedger: %w", err)
	}

	return &types.MsgResumeLedgerResponse{}, nil
}

// UpdateParams handles governance parameter updates.
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.SetParams(goCtx, msg.Params); err != nil {
		return nil, fmt.Errorf("UpdateParams: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(goCtx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
		),
	)

	return &types.MsgUpdateParamsResponse{}, nil
}
