package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/synthia-chain/synthia/x/shared/keeper"
	"github.com/synthia-chain/synthia/x/oracle/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the oracle MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// PushPrice handles operator price submissions
func (ms msgServer) PushPrice(goCtx context.Context, msg *types.MsgPushPrice) (*types.MsgPushPriceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("PushPrice: validate: %w", err)
	}

	operator, err := sdk.AccAddressFromBech32(msg.Operator)
	if err != nil {
		return nil, fmt.Errorf("PushPrice: invalid operator address: %w", err)
	}

	updateCount, err := ms.Keeper.PushPrice(goCtx, operator, msg.Price)
	if err != nil {
		return nil, fmt.Errorf("PushPrice: %w", err)
	}

	return &types.MsgPushPriceResponse{UpdateCount: updateCount}, nil
}

// UpdateParams handles governance parameter updates
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateParams: validate: %w", err)
	}

	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.SetParams(goCtx, msg.Params); err != nil {
		return nil, fmt.Errorf("UpdateParams: %w", err)
	}

	sdk.UnwrapSDKContext(goCtx).EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeOracleParamsUpdated),
	)

	return &types.MsgUpdateParamsResponse{}, nil
}

// PauseOracle handles governance pause requests
func (ms msgServer) PauseOracle(goCtx context.Context, msg *types.MsgPauseOracle) (*types.MsgPauseOracleResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("PauseOracle: validate: %w", err)
	}

	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.PauseOracle(goCtx); err != nil {
		return nil, fmt.Errorf("PauseOracle: %w", err)
	}

	return &types.MsgPauseOracleResponse{}, nil
}

// ResumeOracle handles governance resume requests
func (ms msgServer) ResumeOracle(goCtx context.Context, msg *types.MsgResumeOracle) (*types.MsgResumeOracleResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ResumeOracle: validate: %w", err)
	}

	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.ResumeOracle(goCtx); err != nil {
		return nil, fmt.Errorf("ResumeOracle: %w", err)
	}

	return &types.MsgResumeOracleResponse{}, nil
}
