package types

import (
	"context"
)

// MsgServer is the server API for the collateral Msg service
type MsgServer interface {
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	EmergencyWithdraw(context.Context, *MsgEmergencyWithdraw) (*MsgEmergencyWithdrawResponse, error)
	PauseLedger(context.Context, *MsgPauseLedger) (*MsgPauseLedgerResponse, error)
	ResumeLedger(context.Context, *MsgResumeLedger) (*MsgResumeLedgerResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

var _Msg_serviceDesc = struct{}{}
