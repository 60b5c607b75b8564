package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/synthia-chain/synthia/x/shared/keeper"

	"github.com/synthia-chain/synthia/x/sponsor/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the sponsor MsgServer
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// FundReserve tops up the sponsorship reserve from the signer's balance.
func (ms msgServer) FundReserve(goCtx context.Context, msg *types.MsgFundReserve) (*types.MsgFundReserveResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	funder, err := sdk.AccAddressFromBech32(msg.Funder)
	if err != nil {
		return nil, err
	}

	reserve, err := ms.Keeper.FundReserve(goCtx, funder, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("FundReserve: %w", err)
	}

	return &types.MsgFundReserveResponse{NewReserve: reserve}, nil
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
