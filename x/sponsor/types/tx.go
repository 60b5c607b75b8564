package types

import (
	"context"
)

// MsgServer is the server API for the sponsor Msg service.
type MsgServer interface {
	FundReserve(context.Context, *MsgFundReserve) (*MsgFundReserveResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

var _Msg_serviceDesc = struct{}{}
