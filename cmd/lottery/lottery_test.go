package lottery

import (
	"bytes"
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/fs"

	"github.com/smartcontractkit/lottery"
	"github.com/smartcontractkit/lottery/internal/testutils/evmsim"
	"github.com/smartcontractkit/lottery/sdk/evm"
)

// testCLI drives the command tree against a simulated chain.
type testCLI struct {
	t          *testing.T
	sim        evmsim.SimulatedChain
	dir        *fs.Dir
	deployment string
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()

	sim := evmsim.NewSimulatedChain(t, 2)
	dir := fs.NewDir(t, "lottery-cli")

	for i, signer := range sim.Signers {
		key := hex.EncodeToString(crypto.FromECDSA(signer.PrivateKey))
		fs.Apply(t, dir, fs.WithFile(envName(i), "RPC_URL=http://127.0.0.1:8545\nPRIVATE_KEY="+key+"\nLOG_LEVEL=error\n"))
	}
	fs.Apply(t, dir, fs.WithFile("readonly.env", "RPC_URL=http://127.0.0.1:8545\n"))

	return &testCLI{t: t, sim: sim, dir: dir, deployment: dir.Join("deployment.json")}
}

func envName(i int) string {
	return []string{"manager.env", "player.env"}[i]
}

func (c *testCLI) run(env string, args ...string) (string, error) {
	c.t.Helper()

	cmd := newRootCmd(func(ctx context.Context, rpcURL string) (evm.ContractDeployBackend, error) {
		return c.sim.Client, nil
	})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env", c.dir.Join(env), "--deployment", c.deployment}, args...))

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestCLI_Flow(t *testing.T) {
	t.Parallel()

	cli := newTestCLI(t)
	manager := cli.sim.Signers[0].Address(t)
	player := cli.sim.Signers[1].Address(t)

	out, err := cli.run("manager.env", "deploy")
	require.NoError(t, err)
	assert.Contains(t, out, "Contract deployed to 0x")

	d, err := lottery.LoadDeployment(cli.deployment)
	require.NoError(t, err)
	assert.Equal(t, manager, d.Manager)
	assert.Equal(t, uint64(evmsim.SimulatedChainID), d.ChainID)

	out, err = cli.run("readonly.env", "players")
	require.NoError(t, err)
	assert.Equal(t, "No players\n", out)

	out, err = cli.run("player.env", "enter", "--value", "0.2")
	require.NoError(t, err)
	assert.Contains(t, out, player.Hex()+" entered with 0.2 ether")

	out, err = cli.run("readonly.env", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Manager "+manager.Hex())
	assert.Contains(t, out, "Pot 0.2 ether")
	assert.Contains(t, out, "0: "+player.Hex())

	_, err = cli.run("player.env", "pick-winner")
	require.ErrorContains(t, err, "Only manager can do")

	out, err = cli.run("manager.env", "pick-winner")
	require.NoError(t, err)
	assert.Contains(t, out, "Winner "+player.Hex()+" received 0.2 ether")

	out, err = cli.run("readonly.env", "players")
	require.NoError(t, err)
	assert.Equal(t, "No players\n", out)
}

func TestCLI_Errors(t *testing.T) {
	t.Parallel()

	cli := newTestCLI(t)

	tests := []struct {
		name    string
		env     string
		args    []string
		wantErr string
	}{
		{
			name:    "enter without value",
			env:     "player.env",
			args:    []string{"enter"},
			wantErr: "--value is required",
		},
		{
			name:    "enter with malformed value",
			env:     "player.env",
			args:    []string{"enter", "--value", "lots"},
			wantErr: "invalid ether amount",
		},
		{
			name:    "status without deployment",
			env:     "readonly.env",
			args:    []string{"status"},
			wantErr: "failed to open deployment file",
		},
		{
			name:    "deploy without signer",
			env:     "readonly.env",
			args:    []string{"deploy", "--out", cli.dir.Join("unused.json")},
			wantErr: "invalid config: one of PRIVATE_KEY, MNEMONIC or USE_LEDGER must be set",
		},
		{
			name:    "unknown log level flag",
			env:     "readonly.env",
			args:    []string{"--log-level", "verbose", "players"},
			wantErr: "Field validation for 'LogLevel' failed on the 'oneof' tag",
		},
		{
			name:    "missing artifact",
			env:     "manager.env",
			args:    []string{"deploy", "--artifact", cli.dir.Join("missing.json")},
			wantErr: "missing.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cli.run(tt.env, tt.args...)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), "got %q", err.Error())
		})
	}
}
