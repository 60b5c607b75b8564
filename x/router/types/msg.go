package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	TypeMsgAddAllowedDenom    = "add_allowed_denom"
	TypeMsgRemoveAllowedDenom = "remove_allowed_denom"
	TypeMsgUpdateParams       = "update_router_params"
)

var (
	_ sdk.Msg = &MsgAddAllowedDenom{}
	_ sdk.Msg = &MsgRemoveAllowedDenom{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgAddAllowedDenom adds a denom to the swap allow-list.
type MsgAddAllowedDenom struct {
	Authority string `json:"authority"`
	Denom     string `json:"denom"`
}

func NewMsgAddAllowedDenom(authority, denom string) *MsgAddAllowedDenom {
	return &MsgAddAllowedDenom{Authority: authority, Denom: denom}
}

func (msg *MsgAddAllowedDenom) Route() string { return RouterKey }
func (msg *MsgAddAllowedDenom) Type() string  { return TypeMsgAddAllowedDenom }

func (msg *MsgAddAllowedDenom) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgAddAllowedDenom) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgAddAllowedDenom) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address (%s)", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	return nil
}

type MsgAddAllowedDenomResponse struct{}

// MsgRemoveAllowedDenom removes a denom from the swap allow-list.
type MsgRemoveAllowedDenom struct {
	Authority string `json:"authority"`
	Denom     string `json:"denom"`
}

func NewMsgRemoveAllowedDenom(authority, denom string) *MsgRemoveAllowedDenom {
	return &MsgRemoveAllowedDenom{Authority: authority, Denom: denom}
}

func (msg *MsgRemoveAllowedDenom) Route() string { return RouterKey }
func (msg *MsgRemoveAllowedDenom) Type() string  { return TypeMsgRemoveAllowedDenom }

func (msg *MsgRemoveAllowedDenom) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgRemoveAllowedDenom) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgRemoveAllowedDenom) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address (%s)", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	return nil
}

type MsgRemoveAllowedDenomResponse struct{}

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

func (msg *MsgAddAllowedDenom) Reset()            { *msg = MsgAddAllowedDenom{} }
func (msg *MsgAddAllowedDenom) String() string    { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAddAllowedDenom) ProtoMessage()     {}
func (msg *MsgRemoveAllowedDenom) Reset()         { *msg = MsgRemoveAllowedDenom{} }
func (msg *MsgRemoveAllowedDenom) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRemoveAllowedDenom) ProtoMessage()  {}
func (msg *MsgUpdateParams) Reset()               { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string       { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateParams) ProtoMessage()        {}
