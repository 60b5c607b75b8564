package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the sponsor module messages
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgFundReserve{}, "synthia/sponsor/MsgFundReserve", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "synthia/sponsor/MsgUpdateParams", nil)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
