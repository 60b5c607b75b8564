package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the attest module messages
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSubmitAttestation{}, "synthia/attest/MsgSubmitAttestation", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "synthia/attest/MsgUpdateParams", nil)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
