package types

import (
	"context"
)

// MsgServer is the server API for the attest Msg service.
type MsgServer interface {
	SubmitAttestation(context.Context, *MsgSubmitAttestation) (*MsgSubmitAttestationResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

var _Msg_serviceDesc = struct{}{}
