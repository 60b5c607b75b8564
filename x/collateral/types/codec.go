package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the collateral module messages
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgDeposit{}, "synthia/collateral/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "synthia/collateral/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgEmergencyWithdraw{}, "synthia/collateral/MsgEmergencyWithdraw", nil)
	cdc.RegisterConcrete(&MsgPauseLedger{}, "synthia/collateral/MsgPauseLedger", nil)
	cdc.RegisterConcrete(&MsgResumeLedger{}, "synthia/collateral/MsgResumeLedger", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "synthia/collateral/MsgUpdateParams", nil)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
