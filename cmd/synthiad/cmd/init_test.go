package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	tmtypes "github.com/cometbft/cometbft/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/synthia-chain/synthia/app"
)

func setFlag(tb testing.TB, flagSet *pflag.FlagSet, name, value string) {
	tb.Helper()
	require.NoError(tb, flagSet.Set(name, value))
}

// TestInitCmd tests the basic initialization command
func TestInitCmd(t *testing.T) {
	tests := []struct {
		name      string
		moniker   string
		chainID   string
		overwrite bool
		wantErr   bool
	}{
		{
			name:      "valid init with chain ID",
			moniker:   "test-node",
			chainID:   "synthia-testnet-1",
			overwrite: false,
			wantErr:   false,
		},
		{
			name:      "valid init without chain ID (auto-generate)",
			moniker:   "test-node-2",
			chainID:   "",
			overwrite: false,
			wantErr:   false,
		},
		{
			name:      "valid init with overwrite",
			moniker:   "test-node-3",
			chainID:   "synthia-testnet-2",
			overwrite: true,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary home directory
			homeDir := t.TempDir()

			// Initialize SDK config
			initSDKConfig()

			// Create the command
			cmd := InitCmd(homeDir)
			require.NotNil(t, cmd)

			// Set up command flags
			cmd.SetArgs([]string{tt.moniker})
			setFlag(t, cmd.Flags(), flags.FlagChainID, tt.chainID)
			setFlag(t, cmd.Flags(), flags.FlagHome, homeDir)
			setFlag(t, cmd.Flags(), flagOverwrite, "false")
			if tt.overwrite {
				setFlag(t, cmd.Flags(), flagOverwrite, "true")
			}

			// Create output buffer
			outBuf := new(bytes.Buffer)
			cmd.SetOut(outBuf)
			cmd.SetErr(outBuf)

			// Set up client context
			clientCtx := client.Context{}.
				WithCodec(app.MakeEncodingConfig().Codec).
				WithHomeDir(homeDir)

			// Execute command
			err := executeCommandWithContext(t, cmd, &clientCtx)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			// Verify genesis file was created
			genFile := filepath.Join(homeDir, "config", "genesis.json")
			require.FileExists(t, genFile, "genesis file should be created")

			// Read and validate genesis file
			genDoc, err := tmtypes.GenesisDocFromFile(genFile)
			require.NoError(t, err)
			require.NotNil(t, genDoc)

			// Validate chain ID
			if tt.chainID != "" {
				require.Equal(t, tt.chainID, genDoc.ChainID)
			} else {
				// Auto-generated chain ID should start with "test-chain-"
				require.Contains(t, genDoc.ChainID, "test-chain-")
			}

			// Validate consensus params
			require.NotNil(t, genDoc.ConsensusParams)
			require.Equal(t, int64(2097152), genDoc.ConsensusParams.Block.MaxBytes)
			require.Equal(t, int64(100000000), genDoc.ConsensusParams.Block.MaxGas)

			// The app state should carry the protocol modules
			var appState map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(genDoc.AppState, &appState))
			for _, name := range []string{"oracle", "collateral", "synth", "router", "smartaccount", "sponsor", "attest"} {
				require.Contains(t, appState, name)
			}

			// Verify config directory structure
			configDir := filepath.Join(homeDir, "config")
			require.DirExists(t, configDir)

			dataDir := filepath.Join(homeDir, "data")
			require.DirExists(t, dataDir)

			// Verify node_key.json was created
			nodeKeyFile := filepath.Join(configDir, "node_key.json")
			require.FileExists(t, nodeKeyFile)

			// Verify priv_validator_key.json was created
			privValKeyFile := filepath.Join(configDir, "priv_validator_key.json")
			require.FileExists(t, privValKeyFile)
		})
	}
}

// TestInitCmdGenesisExists tests that init fails when genesis already exists without overwrite
func TestInitCmdGenesisExists(t *testing.T) {
	homeDir := t.TempDir()
	initSDKConfig()

	runInit := func(moniker string, overwrite bool) error {
		cmd := InitCmd(homeDir)
		cmd.SetArgs([]string{moniker})
		setFlag(t, cmd.Flags(), flags.FlagChainID, "synthia-testnet-1")
		setFlag(t, cmd.Flags(), flags.FlagHome, homeDir)
		if overwrite {
			setFlag(t, cmd.Flags(), flagOverwrite, "true")
		}

		outBuf := new(bytes.Buffer)
		cmd.SetOut(outBuf)
		cmd.SetErr(outBuf)

		clientCtx := client.Context{}.
			WithCodec(app.MakeEncodingConfig().Codec).
			WithHomeDir(homeDir)

		return executeCommandWithContext(t, cmd, &clientCtx)
	}

	require.NoError(t, runInit("first-node", false))
	err := runInit("second-node", false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "genesis.json file already exists")
	require.NoError(t, runInit("third-node", true))
}

func executeCommandWithContext(t testing.TB, cmd *cobra.Command, clientCtx *client.Context) error {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(clientCtx.HomeDir, "config"), 0o755); err != nil {
		return err
	}

	// Initialize encoding config to get all required fields
	encodingConfig := app.MakeEncodingConfig()

	// Ensure client context has all required fields
	*clientCtx = clientCtx.
		WithCodec(encodingConfig.Codec).
		WithInterfaceRegistry(encodingConfig.InterfaceRegistry).
		WithTxConfig(encodingConfig.TxConfig).
		WithLegacyAmino(encodingConfig.Amino).
		WithHomeDir(clientCtx.HomeDir)

	// Set a background context on the command if it doesn't have one
	if cmd.Context() == nil {
		cmd.SetContext(context.Background())
	}

	// Set client context in command
	_ = client.SetCmdClientContextHandler(*clientCtx, cmd)

	return cmd.Execute()
}
