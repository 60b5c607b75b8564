package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	TypeMsgSubmitAttestation = "submit_attestation"
	TypeMsgUpdateParams      = "update_attest_params"
)

var (
	_ sdk.Msg = &MsgSubmitAttestation{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSubmitAttestation submits a solvency proof over claimed reserve totals.
type MsgSubmitAttestation struct {
	Prover            string   `json:"prover"`
	Proof             []byte   `json:"proof"`
	ClaimedCollateral math.Int `json:"claimed_collateral"`
	ClaimedSupply     math.Int `json:"claimed_supply"`
	ClaimedTimestamp  int64    `json:"claimed_timestamp"`
}

func NewMsgSubmitAttestation(prover string, proof []byte, collateral, supply math.Int, timestamp int64) *MsgSubmitAttestation {
	return &MsgSubmitAttestation{
		Prover:            prover,
		Proof:             proof,
		ClaimedCollateral: collateral,
		ClaimedSupply:     supply,
		ClaimedTimestamp:  timestamp,
	}
}

func (msg *MsgSubmitAttestation) Route() string { return RouterKey }
func (msg *MsgSubmitAttestation) Type() string  { return TypeMsgSubmitAttestation }

func (msg *MsgSubmitAttestation) GetSigners() []sdk.AccAddress {
	prover, err := sdk.AccAddressFromBech32(msg.Prover)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{prover}
}

func (msg *MsgSubmitAttestation) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgSubmitAttestation) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Prover); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid prover address (%s)", err)
	}
	if msg.ClaimedCollateral.IsNil() || msg.ClaimedCollateral.IsNegative() {
		return ErrInvalidClaim.Wrap("claimed collateral cannot be negative")
	}
	if msg.ClaimedSupply.IsNil() || msg.ClaimedSupply.IsNegative() {
		return ErrInvalidClaim.Wrap("claimed supply cannot be negative")
	}
	if msg.ClaimedTimestamp <= 0 {
		return ErrInvalidClaim.Wrap("claimed timestamp must be positive")
	}
	return nil
}

type MsgSubmitAttestationResponse struct {
	Index    uint64 `json:"index"`
	Accepted bool   `json:"accepted"`
	Verified bool   `json:"verified"`
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

func (msg *MsgSubmitAttestation) Reset()         { *msg = MsgSubmitAttestation{} }
func (msg *MsgSubmitAttestation) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSubmitAttestation) ProtoMessage()  {}
func (msg *MsgUpdateParams) Reset()              { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string      { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateParams) ProtoMessage()       {}
