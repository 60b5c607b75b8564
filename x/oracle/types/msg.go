package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgPushPrice    = "push_price"
	TypeMsgUpdateParams = "update_params"
	TypeMsgPauseOracle  = "pause_oracle"
	TypeMsgResumeOracle = "resume_oracle"
)

var (
	_ sdk.Msg = &MsgPushPrice{}
	_ sdk.Msg = &MsgUpdateParams{}
	_ sdk.Msg = &MsgPauseOracle{}
	_ sdk.Msg = &MsgResumeOracle{}
)

// MsgPushPrice submits a new reference price. Operator only.
type MsgPushPrice struct {
	Operator string   `json:"operator"`
	Price    math.Int `json:"price"`
}

// MsgPushPriceResponse is the response for MsgPushPrice.
type MsgPushPriceResponse struct {
	UpdateCount uint64 `json:"update_count"`
}

// NewMsgPushPrice creates a new MsgPushPrice instance
func NewMsgPushPrice(operator string, price math.Int) *MsgPushPrice {
	return &MsgPushPrice{
		Operator: operator,
		Price:    price,
	}
}

// Route implements sdk.Msg
func (msg *MsgPushPrice) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgPushPrice) Type() string { return TypeMsgPushPrice }

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgPushPrice) GetSigners() []sdk.AccAddress {
	operator, _ := sdk.AccAddressFromBech32(msg.Operator)
	return []sdk.AccAddress{operator}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgPushPrice) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgPushPrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Operator); err != nil {
		return ErrNotOperator.Wrapf("invalid operator address: %s", err)
	}
	if msg.Price.IsNil() || !msg.Price.IsPositive() {
		return ErrInvalidPrice.Wrap("price must be positive")
	}
	return nil
}

// MsgUpdateParams updates the oracle parameters. Governance only.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateParamsResponse is the response for MsgUpdateParams.
type MsgUpdateParamsResponse struct{}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Authority: authority, Params: params}
}

// Route implements sdk.Msg
func (msg *MsgUpdateParams) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUpdateParams) Type() string { return TypeMsgUpdateParams }

// GetSigners implements sdk.Msg
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateParams) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	return msg.Params.Validate()
}

// MsgPauseOracle halts price updates. Governance only.
type MsgPauseOracle struct {
	Authority string `json:"authority"`
}

// MsgPauseOracleResponse is the response for MsgPauseOracle.
type MsgPauseOracleResponse struct{}

// Route implements sdk.Msg
func (msg *MsgPauseOracle) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgPauseOracle) Type() string { return TypeMsgPauseOracle }

// GetSigners implements sdk.Msg
func (msg *MsgPauseOracle) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgPauseOracle) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgPauseOracle) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	return nil
}

// MsgResumeOracle resumes price updates. Governance only.
type MsgResumeOracle struct {
	Authority string `json:"authority"`
}

// MsgResumeOracleResponse is the response for MsgResumeOracle.
type MsgResumeOracleResponse struct{}

// Route implements sdk.Msg
func (msg *MsgResumeOracle) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgResumeOracle) Type() string { return TypeMsgResumeOracle }

// GetSigners implements sdk.Msg
func (msg *MsgResumeOracle) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgResumeOracle) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgResumeOracle) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	return nil
}

func (msg *MsgPushPrice) Reset()         { *msg = MsgPushPrice{} }
func (msg *MsgPushPrice) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgPushPrice) ProtoMessage()      {}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgUpdateParams) ProtoMessage()      {}

func (msg *MsgPauseOracle) Reset()         { *msg = MsgPauseOracle{} }
func (msg *MsgPauseOracle) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgPauseOracle) ProtoMessage()      {}

func (msg *MsgResumeOracle) Reset()         { *msg = MsgResumeOracle{} }
func (msg *MsgResumeOracle) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgResumeOracle) ProtoMessage()      {}
