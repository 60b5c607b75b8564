package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	TypeMsgFundReserve  = "fund_sponsor_reserve"
	TypeMsgUpdateParams = "update_sponsor_params"
)

var (
	_ sdk.Msg = &MsgFundReserve{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgFundReserve tops up the native sponsorship reserve. Anyone may fund.
type MsgFundReserve struct {
	Funder string   `json:"funder"`
	Amount math.Int `json:"amount"`
}

func NewMsgFundReserve(funder string, amount math.Int) *MsgFundReserve {
	return &MsgFundReserve{Funder: funder, Amount: amount}
}

func (msg *MsgFundReserve) Route() string { return RouterKey }
func (msg *MsgFundReserve) Type() string  { return TypeMsgFundReserve }

func (msg *MsgFundReserve) GetSigners() []sdk.AccAddress {
	funder, err := sdk.AccAddressFromBech32(msg.Funder)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{funder}
}

func (msg *MsgFundReserve) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgFundReserve) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Funder); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid funder address (%s)", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("funding amount must be positive")
	}
	return nil
}

type MsgFundReserveResponse struct {
	NewReserve math.Int `json:"new_reserve"`
}

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

func (msg *MsgFundReserve) Reset()          { *msg = MsgFundReserve{} }
func (msg *MsgFundReserve) String() string  { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgFundReserve) ProtoMessage()   {}
func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateParams) ProtoMessage()  {}
