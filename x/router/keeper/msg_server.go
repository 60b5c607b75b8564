package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/router/types"
	sharedkeeper "github.com/synthia-chain/synthia/x/shared/keeper"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the router MsgServer
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// AddAllowedDenom handles governance allow-list additions.
func (ms msgServer) AddAllowedDenom(goCtx context.Context, msg *types.MsgAddAllowedDenom) (*types.MsgAddAllowedDenomResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.AllowDenom(goCtx, msg.Denom); err != nil {
		return nil, fmt.Errorf("AddAllowedDenom: %w", err)
	}

	return &types.MsgAddAllowedDenomResponse{}, nil
}

// RemoveAllowedDenom handles governance allow-list removals.
func (ms msgServer) RemoveAllowedDenom(goCtx context.Context, msg *types.MsgRemoveAllowedDenom) (*types.MsgRemoveAllowedDenomResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.RemoveDenom(goCtx, msg.Denom); err != nil {
		return nil, fmt.Errorf("RemoveAllowedDenom: %w", err)
	}

	return &types.MsgRemoveAllowedDenomResponse{}, nil
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
