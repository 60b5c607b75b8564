package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	TypeMsgDeposit           = "deposit_collateral"
	TypeMsgWithdraw          = "withdraw_collateral"
	TypeMsgEmergencyWithdraw = "emergency_withdraw_collateral"
	TypeMsgPauseLedger       = "pause_collateral"
	TypeMsgResumeLedger      = "resume_collateral"
	TypeMsgUpdateParams      = "update_collateral_params"
)

var (
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgEmergencyWithdraw{}
	_ sdk.Msg = &MsgPauseLedger{}
	_ sdk.Msg = &MsgResumeLedger{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgDeposit moves collateral from the depositor's bank balance into the
// ledger under their own name.
type MsgDeposit struct {
	Depositor string   `json:"depositor"`
	Amount    math.Int `json:"amount"`
}

func NewMsgDeposit(depositor string, amount math.Int) *MsgDeposit {
	return &MsgDeposit{Depositor: depositor, Amount: amount}
}

func (msg *MsgDeposit) Route() string { return RouterKey }
func (msg *MsgDeposit) Type() string  { return TypeMsgDeposit }

func (msg *MsgDeposit) GetSigners() []sdk.AccAddress {
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{depositor}
}

func (msg *MsgDeposit) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid depositor address (%s)", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("deposit amount must be positive")
	}
	return nil
}

type MsgDepositResponse struct {
	NewBalance math.Int `json:"new_balance"`
}

// MsgWithdraw moves free collateral from the ledger back to the owner's
// bank balance.
type MsgWithdraw struct {
	Owner  string   `json:"owner"`
	Amount math.Int `json:"amount"`
}

func NewMsgWithdraw(owner string, amount math.Int) *MsgWithdraw {
	return &MsgWithdraw{Owner: owner, Amount: amount}
}

func (msg *MsgWithdraw) Route() string { return RouterKey }
func (msg *MsgWithdraw) Type() string  { return TypeMsgWithdraw }

func (msg *MsgWithdraw) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

func (msg *MsgWithdraw) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address (%s)", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("withdraw amount must be positive")
	}
	return nil
}

type MsgWithdrawResponse struct {
	NewBalance math.Int `json:"new_balance"`
}

// MsgEmergencyWithdraw returns an owner's entire free ledger balance while
// the ledger is paused. It is the only withdrawal path available under pause.
type MsgEmergencyWithdraw struct {
	Owner string `json:"owner"`
}

func NewMsgEmergencyWithdraw(owner string) *MsgEmergencyWithdraw {
	return &MsgEmergencyWithdraw{Owner: owner}
}

func (msg *MsgEmergencyWithdraw) Route() string { return RouterKey }
func (msg *MsgEmergencyWithdraw) Type() string  { return TypeMsgEmergencyWithdraw }

func (msg *MsgEmergencyWithdraw) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

func (msg *MsgEmergencyWithdraw) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgEmergencyWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address (%s)", err)
	}
	return nil
}

type MsgEmergencyWithdrawResponse struct {
	Amount math.Int `json:"amount"`
}

// MsgPauseLedger halts all deposits and normal withdrawals.
type MsgPauseLedger struct {
	Authority string `json:"authority"`
}

func NewMsgPauseLedger(authority string) *MsgPauseLedger {
	return &MsgPauseLedger{Authority: authority}
}

func (msg *MsgPauseLedger) Route() string { return RouterKey }
func (msg *MsgPauseLedger) Type() string  { return TypeMsgPauseLedger }

func (msg *MsgPauseLedger) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgPauseLedger) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgPauseLedger) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address (%s)", err)
	}
	return nil
}

type MsgPauseLedgerResponse struct{}

// MsgResumeLedger lifts a pause.
type MsgResumeLedger struct {
	Authority string `json:"authority"`
}

func NewMsgResumeLedger(authority string) *MsgResumeLedger {
	return &MsgResumeLedger{Authority: authority}
}

func (msg *MsgResumeLedger) Route() string { return RouterKey }
func (msg *MsgResumeLedger) Type() string  { return TypeMsgResumeLedger }

func (msg *MsgResumeLedger) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgResumeLedger) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgResumeLedger) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address (%s)", err)
	}
	return nil
}

type MsgResumeLedgerResponse struct{}

// MsgUpdateParams replaces the module parameters.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Authority: authority, Params: params}
}

func (msg *MsgUpdateParams) Route() string { return RouterKey }
func (msg *MsgUpdateParams) Type() string  { return TypeMsgUpdateParams }

func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgUpdateParams) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address (%s)", err)
	}
	return msg.Params.Validate()
}

type MsgUpdateParamsResponse struct{}

func (msg *MsgDeposit) Reset()                      { *msg = MsgDeposit{} }
func (msg *MsgDeposit) String() string              { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgDeposit) ProtoMessage()               {}
func (msg *MsgWithdraw) Reset()                     { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) String() string             { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdraw) ProtoMessage()              {}
func (msg *MsgEmergencyWithdraw) Reset()            { *msg = MsgEmergencyWithdraw{} }
func (msg *MsgEmergencyWithdraw) String() string    { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgEmergencyWithdraw) ProtoMessage()     {}
func (msg *MsgPauseLedger) Reset()                  { *msg = MsgPauseLedger{} }
func (msg *MsgPauseLedger) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgPauseLedger) ProtoMessage()           {}
func (msg *MsgResumeLedger) Reset()                 { *msg = MsgResumeLedger{} }
func (msg *MsgResumeLedger) String() string         { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgResumeLedger) ProtoMessage()          {}
func (msg *MsgUpdateParams) Reset()                 { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string         { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateParams) ProtoMessage()          {}
