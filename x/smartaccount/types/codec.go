package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the smartaccount module messages
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterAccount{}, "synthia/smartaccount/MsgRegisterAccount", nil)
	cdc.RegisterConcrete(&MsgSwapAndMint{}, "synthia/smartaccount/MsgSwapAndMint", nil)
	cdc.RegisterConcrete(&MsgRedeemAndSwap{}, "synthia/smartaccount/MsgRedeemAndSwap", nil)
	cdc.RegisterConcrete(&MsgExecuteBatch{}, "synthia/smartaccount/MsgExecuteBatch", nil)
	cdc.RegisterConcrete(&MsgGrantDelegate{}, "synthia/smartaccount/MsgGrantDelegate", nil)
	cdc.RegisterConcrete(&MsgRevokeDelegate{}, "synthia/smartaccount/MsgRevokeDelegate", nil)
	cdc.RegisterConcrete(&MsgProposeRecovery{}, "synthia/smartaccount/MsgProposeRecovery", nil)
	cdc.RegisterConcrete(&MsgConfirmRecovery{}, "synthia/smartaccount/MsgConfirmRecovery", nil)
	cdc.RegisterConcrete(&MsgCancelRecovery{}, "synthia/smartaccount/MsgCancelRecovery", nil)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
