package types

import (
	"context"
)

// MsgServer is the server API for the smartaccount Msg service
type MsgServer interface {
	RegisterAccount(context.Context, *MsgRegisterAccount) (*MsgRegisterAccountResponse, error)
	SwapAndMint(context.Context, *MsgSwapAndMint) (*MsgSwapAndMintResponse, error)
	RedeemAndSwap(context.Context, *MsgRedeemAndSwap) (*MsgRedeemAndSwapResponse, error)
	ExecuteBatch(context.Context, *MsgExecuteBatch) (*MsgExecuteBatchResponse, error)
	GrantDelegate(context.Context, *MsgGrantDelegate) (*MsgGrantDelegateResponse, error)
	RevokeDelegate(context.Context, *MsgRevokeDelegate) (*MsgRevokeDelegateResponse, error)
	ProposeRecovery(context.Context, *MsgProposeRecovery) (*MsgProposeRecoveryResponse, error)
	ConfirmRecovery(context.Context, *MsgConfirmRecovery) (*MsgConfirmRecoveryResponse, error)
	CancelRecovery(context.Context, *MsgCancelRecovery) (*MsgCancelRecoveryResponse, error)
}

var _Msg_serviceDesc = struct{}{}
