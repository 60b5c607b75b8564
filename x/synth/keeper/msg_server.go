package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/synthia-chain/synthia/x/shared/keeper"
	"github.com/synthia-chain/synthia/x/synth/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the synth MsgServer
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Mint handles user mint requests.
func (ms msgServer) Mint(goCtx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, err
	}

	params, err := ms.GetParams(goCtx)
	if err != nil {
		return nil, err
	}

	var consumed math.Int
	err = ms.WithReentrancyGuard(goCtx, msg.Owner, "mint", func() error {
		var mintErr error
		consumed, mintErr = ms.Keeper.Mint(goCtx, owner, msg.Amount)
		return mintErr
	})
	if err != nil {
		return nil, fmt.Errorf("Mint: %w", err)
	}

	fee := types.FeePortion(msg.Amount, params.MintFeeBps)
	return &types.MsgMintResponse{
		Minted:             msg.Amount.Sub(fee),
		Fee:                fee,
		CollateralConsumed: consumed,
	}, nil
}

// Redeem handles user redeem requests.
func (ms msgServer) Redeem(goCtx context.Context, msg *types.MsgRedeem) (*types.MsgRedeemResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, err
	}

	var returned math.Int
	err = ms.WithReentrancyGuard(goCtx, msg.Owner, "redeem", func() error {
		var redeemErr error
		returned, redeemErr = ms.Keeper.Redeem(goCtx, owner, msg.Amount)
		return redeemErr
	})
	if err != nil {
		return nil, fmt.Errorf("Redeem: %w", err)
	}

	return &types.MsgRedeemResponse{
		CollateralReturned: returned,
	}, nil
}

// PauseEngine handles governance pause requests.
func (ms msgServer) PauseEngine(goCtx context.Context, msg *types.MsgPauseEngine) (*types.MsgPauseEngineResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.PauseEngine(goCtx); err != nil {
		return nil, fmt.Errorf("PauseEngine: %w", err)
	}

	return &types.MsgPauseEngineResponse{}, nil
}

// ResumeEngine handles governance resume requests.
func (ms msgServer) ResumeEngine(goCtx context.Context, msg *types.MsgResumeEngine) (*types.MsgResumeEngineResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.ResumeEngine(goCtx); err != nil {
		return nil, fmt.Errorf("ResumeEngine: %w", err)
	}

	return &types.MsgResumeEngineResponse{}, nil
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
