package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	TypeMsgMint         = "mint_synthetic"
	TypeMsgRedeem       = "redeem_synthetic"
	TypeMsgPauseEngine  = "pause_synth"
	TypeMsgResumeEngine = "resume_synth"
	TypeMsgUpdateParams = "update_synth_params"
)

var (
	_ sdk.Msg = &MsgMint{}
	_ sdk.Msg = &MsgRedeem{}
	_ sdk.Msg = &MsgPauseEngine{}
	_ sdk.Msg = &MsgResumeEngine{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgMint mints Amount synthetic units (18 decimals) against the signer's
// free ledger collateral.
type MsgMint struct {
	Owner  string   `json:"owner"`
	Amount math.Int `json:"amount"`
}

func NewMsgMint(owner string, amount math.Int) *MsgMint {
	return &MsgMint{Owner: owner, Amount: amount}
}

func (msg *MsgMint) Route() string { return RouterKey }
func (msg *MsgMint) Type() string  { return TypeMsgMint }

func (msg *MsgMint) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

func (msg *MsgMint) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgMint) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address (%s)", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("mint amount must be positive")
	}
	return nil
}

type MsgMintResponse struct {
	Minted             math.Int `json:"minted"`
	Fee                math.Int `json:"fee"`
	CollateralConsumed math.Int `json:"collateral_consumed"`
}

// MsgRedeem burns Amount synthetic units and credits the net collateral back
// to the signer's ledger balance.
type MsgRedeem struct {
	Owner  string   `json:"owner"`
	Amount math.Int `json:"amount"`
}

func NewMsgRedeem(owner string, amount math.Int) *MsgRedeem {
	return &MsgRedeem{Owner: owner, Amount: amount}
}

func (msg *MsgRedeem) Route() string { return RouterKey }
func (msg *MsgRedeem) Type() string  { return TypeMsgRedeem }

func (msg *MsgRedeem) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

func (msg *MsgRedeem) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgRedeem) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address (%s)", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("redeem amount must be positive")
	}
	return nil
}

type MsgRedeemResponse struct {
	CollateralReturned math.Int `json:"collateral_returned"`
}

// MsgPauseEngine halts mint and redeem.
type MsgPauseEngine struct {
	Authority string `json:"authority"`
}

func NewMsgPauseEngine(authority string) *MsgPauseEngine {
	return &MsgPauseEngine{Authority: authority}
}

func (msg *MsgPauseEngine) Route() string { return RouterKey }
func (msg *MsgPauseEngine) Type() string  { return TypeMsgPauseEngine }

func (msg *MsgPauseEngine) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgPauseEngine) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgPauseEngine) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address (%s)", err)
	}
	return nil
}

type MsgPauseEngineResponse struct{}

// MsgResumeEngine lifts a pause.
type MsgResumeEngine struct {
	Authority string `json:"authority"`
}

func NewMsgResumeEngine(authority string) *MsgResumeEngine {
	return &MsgResumeEngine{Authority: authority}
}

func (msg *MsgResumeEngine) Route() string { return RouterKey }
func (msg *MsgResumeEngine) Type() string  { return TypeMsgResumeEngine }

func (msg *MsgResumeEngine) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgResumeEngine) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgResumeEngine) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address (%s)", err)
	}
	return nil
}

type MsgResumeEngineResponse struct{}

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

func (msg *MsgMint) Reset()                 { *msg = MsgMint{} }
func (msg *MsgMint) String() string         { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgMint) ProtoMessage()          {}
func (msg *MsgRedeem) Reset()               { *msg = MsgRedeem{} }
func (msg *MsgRedeem) String() string       { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRedeem) ProtoMessage()        {}
func (msg *MsgPauseEngine) Reset()          { *msg = MsgPauseEngine{} }
func (msg *MsgPauseEngine) String() string  { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgPauseEngine) ProtoMessage()   {}
func (msg *MsgResumeEngine) Reset()         { *msg = MsgResumeEngine{} }
func (msg *MsgResumeEngine) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgResumeEngine) ProtoMessage()  {}
func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateParams) ProtoMessage()  {}
