package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the synth module messages
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgMint{}, "synthia/synth/MsgMint", nil)
	cdc.RegisterConcrete(&MsgRedeem{}, "synthia/synth/MsgRedeem", nil)
	cdc.RegisterConcrete(&MsgPauseEngine{}, "synthia/synth/MsgPauseEngine", nil)
	cdc.RegisterConcrete(&MsgResumeEngine{}, "synthia/synth/MsgResumeEngine", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "synthia/synth/MsgUpdateParams", nil)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
