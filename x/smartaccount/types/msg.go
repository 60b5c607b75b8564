package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	TypeMsgRegisterAccount = "register_account"
	TypeMsgSwapAndMint     = "swap_and_mint"
	TypeMsgRedeemAndSwap   = "redeem_and_swap"
	TypeMsgExecuteBatch    = "execute_batch"
	TypeMsgGrantDelegate   = "grant_delegate"
	TypeMsgRevokeDelegate  = "revoke_delegate"
	TypeMsgProposeRecovery = "propose_recovery"
	TypeMsgConfirmRecovery = "confirm_recovery"
	TypeMsgCancelRecovery  = "cancel_recovery"
)

var (
	_ sdk.Msg = &MsgRegisterAccount{}
	_ sdk.Msg = &MsgSwapAndMint{}
	_ sdk.Msg = &MsgRedeemAndSwap{}
	_ sdk.Msg = &MsgExecuteBatch{}
	_ sdk.Msg = &MsgGrantDelegate{}
	_ sdk.Msg = &MsgRevokeDelegate{}
	_ sdk.Msg = &MsgProposeRecovery{}
	_ sdk.Msg = &MsgConfirmRecovery{}
	_ sdk.Msg = &MsgCancelRecovery{}
)

// MsgRegisterAccount creates an orchestration account with exactly three
// distinct guardians.
type MsgRegisterAccount struct {
	Owner     string   `json:"owner"`
	Guardians []string `json:"guardians"`
}

func NewMsgRegisterAccount(owner string, guardians []string) *MsgRegisterAccount {
	return &MsgRegisterAccount{Owner: owner, Guardians: guardians}
}

func (msg *MsgRegisterAccount) Route() string { return RouterKey }
func (msg *MsgRegisterAccount) Type() string  { return TypeMsgRegisterAccount }

func (msg *MsgRegisterAccount) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

func (msg *MsgRegisterAccount) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgRegisterAccount) ValidateBasic() error {
	account := Account{Owner: msg.Owner, Guardians: msg.Guardians}
	return account.Validate()
}

type MsgRegisterAccountResponse struct{}

// MsgSwapAndMint swaps an input asset into collateral, deposits it, and mints
// as much of the requested synthetic amount as the resulting ledger balance
// supports.
type MsgSwapAndMint struct {
	Sender            string   `json:"sender"`
	AccountOwner      string   `json:"account_owner"`
	InputDenom        string   `json:"input_denom"`
	AmountIn          math.Int `json:"amount_in"`
	MinCollateralOut  math.Int `json:"min_collateral_out"`
	RequestedSynthOut math.Int `json:"requested_synth_out"`
	SwapInstruction   []byte   `json:"swap_instruction,omitempty"`
}

func (msg *MsgSwapAndMint) Route() string { return RouterKey }
func (msg *MsgSwapAndMint) Type() string  { return TypeMsgSwapAndMint }

func (msg *MsgSwapAndMint) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

func (msg *MsgSwapAndMint) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgSwapAndMint) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.AccountOwner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid account owner address (%s)", err)
	}
	if err := sdk.ValidateDenom(msg.InputDenom); err != nil {
		return ErrInvalidAmount.Wrapf("invalid input denom: %v", err)
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return ErrInvalidAmount.Wrap("amount in must be positive")
	}
	if msg.MinCollateralOut.IsNil() || msg.MinCollateralOut.IsNegative() {
		return ErrInvalidAmount.Wrap("min collateral out cannot be negative")
	}
	if msg.RequestedSynthOut.IsNil() || !msg.RequestedSynthOut.IsPositive() {
		return ErrInvalidAmount.Wrap("requested synth out must be positive")
	}
	return nil
}

type MsgSwapAndMintResponse struct {
	CollateralOut math.Int `json:"collateral_out"`
	Minted        math.Int `json:"minted"`
}

// MsgRedeemAndSwap burns synthetic units, withdraws the redeemed collateral
// and swaps it into the requested output asset.
type MsgRedeemAndSwap struct {
	Sender          string   `json:"sender"`
	AccountOwner    string   `json:"account_owner"`
	BurnAmount      math.Int `json:"burn_amount"`
	OutputDenom     string   `json:"output_denom"`
	MinOut          math.Int `json:"min_out"`
	SwapInstruction []byte   `json:"swap_instruction,omitempty"`
}

func (msg *MsgRedeemAndSwap) Route() string { return RouterKey }
func (msg *MsgRedeemAndSwap) Type() string  { return TypeMsgRedeemAndSwap }

func (msg *MsgRedeemAndSwap) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

func (msg *MsgRedeemAndSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgRedeemAndSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.AccountOwner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid account owner address (%s)", err)
	}
	if err := sdk.ValidateDenom(msg.OutputDenom); err != nil {
		return ErrInvalidAmount.Wrapf("invalid output denom: %v", err)
	}
	if msg.BurnAmount.IsNil() || !msg.BurnAmount.IsPositive() {
		return ErrInvalidAmount.Wrap("burn amount must be positive")
	}
	if msg.MinOut.IsNil() || msg.MinOut.IsNegative() {
		return ErrInvalidAmount.Wrap("min out cannot be negative")
	}
	return nil
}

type MsgRedeemAndSwapResponse struct {
	AssetOut math.Int `json:"asset_out"`
}

// BatchCall is one element of a non-atomic batch: a coin transfer to Target
// with an optional payload for a registered call handler.
type BatchCall struct {
	Target  string    `json:"target"`
	Amount  sdk.Coins `json:"amount"`
	Payload []byte    `json:"payload,omitempty"`
}

// Validate checks the call's structure; execution errors are reported in the
// batch result, not here.
func (c BatchCall) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Target); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid call target (%s)", err)
	}
	if !c.Amount.IsValid() {
		return ErrInvalidAmount.Wrap("invalid call amount")
	}
	return nil
}

// MsgExecuteBatch runs a sequence of calls non-atomically: each call is
// isolated, a failing call flips only its own result flag.
type MsgExecuteBatch struct {
	Sender       string      `json:"sender"`
	AccountOwner string      `json:"account_owner"`
	Calls        []BatchCall `json:"calls"`
}

func (msg *MsgExecuteBatch) Route() string { return RouterKey }
func (msg *MsgExecuteBatch) Type() string  { return TypeMsgExecuteBatch }

func (msg *MsgExecuteBatch) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

func (msg *MsgExecuteBatch) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgExecuteBatch) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.AccountOwner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid account owner address (%s)", err)
	}
	if len(msg.Calls) == 0 {
		return ErrEmptyBatch
	}
	for i, call := range msg.Calls {
		if err := call.Validate(); err != nil {
			return fmt.Errorf("call %d: %w", i, err)
		}
	}
	return nil
}

type MsgExecuteBatchResponse struct {
	Results []bool `json:"results"`
}

// MsgGrantDelegate grants a delegate key for the configured duration.
type MsgGrantDelegate struct {
	Owner    string `json:"owner"`
	Delegate string `json:"delegate"`
}

func (msg *MsgGrantDelegate) Route() string { return RouterKey }
func (msg *MsgGrantDelegate) Type() string  { return TypeMsgGrantDelegate }

func (msg *MsgGrantDelegate) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

func (msg *MsgGrantDelegate) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgGrantDelegate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Delegate); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid delegate address (%s)", err)
	}
	if msg.Owner == msg.Delegate {
		return ErrInvalidDelegate.Wrap("owner cannot delegate to themselves")
	}
	return nil
}

type MsgGrantDelegateResponse struct {
	Expiry int64 `json:"expiry"`
}

// MsgRevokeDelegate removes a delegation grant.
type MsgRevokeDelegate struct {
	Owner    string `json:"owner"`
	Delegate string `json:"delegate"`
}

func (msg *MsgRevokeDelegate) Route() string { return RouterKey }
func (msg *MsgRevokeDelegate) Type() string  { return TypeMsgRevokeDelegate }

func (msg *MsgRevokeDelegate) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

func (msg *MsgRevokeDelegate) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgRevokeDelegate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Delegate); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid delegate address (%s)", err)
	}
	return nil
}

type MsgRevokeDelegateResponse struct{}

// MsgProposeRecovery opens a guardian-initiated ownership change.
type MsgProposeRecovery struct {
	Guardian     string `json:"guardian"`
	AccountOwner string `json:"account_owner"`
	NewOwner     string `json:"new_owner"`
}

func (msg *MsgProposeRecovery) Route() string { return RouterKey }
func (msg *MsgProposeRecovery) Type() string  { return TypeMsgProposeRecovery }

func (msg *MsgProposeRecovery) GetSigners() []sdk.AccAddress {
	guardian, err := sdk.AccAddressFromBech32(msg.Guardian)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{guardian}
}

func (msg *MsgProposeRecovery) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgProposeRecovery) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Guardian); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid guardian address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.AccountOwner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid account owner address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewOwner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid new owner address (%s)", err)
	}
	if msg.NewOwner == msg.AccountOwner {
		return ErrInvalidGuardians.Wrap("proposed owner matches current owner")
	}
	return nil
}

type MsgProposeRecoveryResponse struct {
	ProposalId string `json:"proposal_id"`
	Deadline   int64  `json:"deadline"`
}

// MsgConfirmRecovery adds a guardian confirmation; the second distinct
// confirmation executes the ownership change.
type MsgConfirmRecovery struct {
	Guardian     string `json:"guardian"`
	AccountOwner string `json:"account_owner"`
}

func (msg *MsgConfirmRecovery) Route() string { return RouterKey }
func (msg *MsgConfirmRecovery) Type() string  { return TypeMsgConfirmRecovery }

func (msg *MsgConfirmRecovery) GetSigners() []sdk.AccAddress {
	guardian, err := sdk.AccAddressFromBech32(msg.Guardian)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{guardian}
}

func (msg *MsgConfirmRecovery) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgConfirmRecovery) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Guardian); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid guardian address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.AccountOwner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid account owner address (%s)", err)
	}
	return nil
}

type MsgConfirmRecoveryResponse struct {
	Executed bool   `json:"executed"`
	NewOwner string `json:"new_owner,omitempty"`
}

// MsgCancelRecovery lets the current owner clear a pending proposal.
type MsgCancelRecovery struct {
	Owner string `json:"owner"`
}

func (msg *MsgCancelRecovery) Route() string { return RouterKey }
func (msg *MsgCancelRecovery) Type() string  { return TypeMsgCancelRecovery }

func (msg *MsgCancelRecovery) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

func (msg *MsgCancelRecovery) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

func (msg *MsgCancelRecovery) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address (%s)", err)
	}
	return nil
}

type MsgCancelRecoveryResponse struct{}

func (msg *MsgRegisterAccount) Reset()          { *msg = MsgRegisterAccount{} }
func (msg *MsgRegisterAccount) String() string  { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRegisterAccount) ProtoMessage()   {}
func (msg *MsgSwapAndMint) Reset()              { *msg = MsgSwapAndMint{} }
func (msg *MsgSwapAndMint) String() string      { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSwapAndMint) ProtoMessage()       {}
func (msg *MsgRedeemAndSwap) Reset()            { *msg = MsgRedeemAndSwap{} }
func (msg *MsgRedeemAndSwap) String() string    { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRedeemAndSwap) ProtoMessage()     {}
func (msg *MsgExecuteBatch) Reset()             { *msg = MsgExecuteBatch{} }
func (msg *MsgExecuteBatch) String() string     { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgExecuteBatch) ProtoMessage()      {}
func (msg *MsgGrantDelegate) Reset()            { *msg = MsgGrantDelegate{} }
func (msg *MsgGrantDelegate) String() string    { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgGrantDelegate) ProtoMessage()     {}
func (msg *MsgRevokeDelegate) Reset()           { *msg = MsgRevokeDelegate{} }
func (msg *MsgRevokeDelegate) String() string   { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRevokeDelegate) ProtoMessage()    {}
func (msg *MsgProposeRecovery) Reset()          { *msg = MsgProposeRecovery{} }
func (msg *MsgProposeRecovery) String() string  { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgProposeRecovery) ProtoMessage()   {}
func (msg *MsgConfirmRecovery) Reset()          { *msg = MsgConfirmRecovery{} }
func (msg *MsgConfirmRecovery) String() string  { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgConfirmRecovery) ProtoMessage()   {}
func (msg *MsgCancelRecovery) Reset()           { *msg = MsgCancelRecovery{} }
func (msg *MsgCancelRecovery) String() string   { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCancelRecovery) ProtoMessage()    {}
