package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/synthia-chain/synthia/x/shared/keeper"

	"github.com/synthia-chain/synthia/x/attest/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the attest MsgServer
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// SubmitAttestation handles solvency proof submissions.
func (ms msgServer) SubmitAttestation(goCtx context.Context, msg *types.MsgSubmitAttestation) (*types.MsgSubmitAttestationResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	record, err := ms.Keeper.SubmitAttestation(
		goCtx, msg.Prover, msg.Proof,
		msg.ClaimedCollateral, msg.ClaimedSupply, msg.ClaimedTimestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("SubmitAttestation: %w", err)
	}

	return &types.MsgSubmitAttestationResponse{
		Index:    record.Index,
		Accepted: record.Accepted,
		Verified: record.Verified,
	}, nil
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
