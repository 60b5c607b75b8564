package types

import (
	"context"
)

// MsgServer defines the message server interface
type MsgServer interface {
	PushPrice(context.Context, *MsgPushPrice) (*MsgPushPriceResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	PauseOracle(context.Context, *MsgPauseOracle) (*MsgPauseOracleResponse, error)
	ResumeOracle(context.Context, *MsgResumeOracle) (*MsgResumeOracleResponse, error)
}

// Placeholder for protobuf service descriptor
var _Msg_serviceDesc = struct{}{}
