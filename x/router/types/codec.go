package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the router module messages
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgAddAllowedDenom{}, "synthia/router/MsgAddAllowedDenom", nil)
	cdc.RegisterConcrete(&MsgRemoveAllowedDenom{}, "synthia/router/MsgRemoveAllowedDenom", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "synthia/router/MsgUpdateParams", nil)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
