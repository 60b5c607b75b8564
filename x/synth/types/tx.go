package types

import (
	"context"
)

// MsgServer is the server API for the synth Msg service
type MsgServer interface {
	Mint(context.Context, *MsgMint) (*MsgMintResponse, error)
	Redeem(context.Context, *MsgRedeem) (*MsgRedeemResponse, error)
	PauseEngine(context.Context, *MsgPauseEngine) (*MsgPauseEngineResponse, error)
	ResumeEngine(context.Context, *MsgResumeEngine) (*MsgResumeEngineResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

var _Msg_serviceDesc = struct{}{}
