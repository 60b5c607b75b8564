package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the necessary x/oracle interfaces and
// concrete types on the provided LegacyAmino codec. These types are used for
// Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgPushPrice{}, "synthia/oracle/MsgPushPrice", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "synthia/oracle/MsgUpdateParams", nil)
	cdc.RegisterConcrete(&MsgPauseOracle{}, "synthia/oracle/MsgPauseOracle", nil)
	cdc.RegisterConcrete(&MsgResumeOracle{}, "synthia/oracle/MsgResumeOracle", nil)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
