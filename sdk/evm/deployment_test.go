package evm_test

import (
	"context"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/smartcontractkit/lottery/internal/testutils/chaintest"
	"github.com/smartcontractkit/lottery/internal/testutils/evmsim"
	"github.com/smartcontractkit/lottery/pkg/artifact"
	"github.com/smartcontractkit/lottery/sdk"
	"github.com/smartcontractkit/lottery/sdk/evm"
	"github.com/smartcontractkit/lottery/types"
)

// playersOnlyABI declares getPlayers returning the addresses alone.
const playersOnlyABI = `[
	{"inputs":[],"name":"manager","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"enterLottery","outputs":[],"stateMutability":"payable","type":"function"},
	{"inputs":[],"name":"getPlayers","outputs":[{"name":"","type":"address[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"pickWinner","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

// selfListingBin deploys a contract that answers every call with abi.encode([address(this)]).
const selfListingBin = "6013600c60003960136000f3" + "602060005260016020523060405260606000f3"

// unregisteredChainClient reports a chain id with no registered chain selector.
type unregisteredChainClient struct {
	*evmsim.AutoCommitClient
}

func (c *unregisteredChainClient) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(987654321987), nil
}

func TestDeployer_Deploy(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	auth := sim.Signers[0].NewTransactOpts(t)

	a, err := artifact.Lottery()
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	ctx := sdk.WithLogger(context.Background(), zap.New(core).Sugar())

	got, err := evm.NewDeployer(sim.Client, auth, 0).Deploy(ctx, a)
	require.NoError(t, err)

	assert.NotEqual(t, common.Address{}, got.Address)
	assert.Equal(t, auth.From, got.Deployer)
	assert.Equal(t, chaintest.Chain1EVMID, got.ChainID)
	assert.Equal(t, chaintest.Chain1Selector, got.ChainSelector)
	assert.Equal(t, got.Transaction.Hash(), got.Hash)
	require.NotNil(t, got.Receipt)
	assert.Equal(t, got.Address, got.Receipt.ContractAddress)

	manager, err := evm.NewInspector(sim.Client).GetManager(ctx, got.Address)
	require.NoError(t, err)
	assert.Equal(t, auth.From, manager)

	assert.Equal(t, 1, logs.FilterMessage("Attempting to deploy from account").Len())
	assert.Equal(t, 1, logs.FilterMessage("Contract deployed").Len())
}

func TestDeployer_Deploy_PlayersOnlyContract(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)

	bin, err := hex.DecodeString(selfListingBin)
	require.NoError(t, err)
	a, err := artifact.New("PlayersOnly", playersOnlyABI, bin)
	require.NoError(t, err)

	got, err := evm.NewDeployer(sim.Client, sim.Signers[0].NewTransactOpts(t), 0).Deploy(context.Background(), a)
	require.NoError(t, err)

	players, err := evm.NewInspector(sim.Client).GetPlayers(context.Background(), got.Address)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, got.Address, players[0].Address)
	assert.Zero(t, players[0].Balance.Sign())
}

func TestDeployer_Deploy_UnregisteredChain(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	client := &unregisteredChainClient{AutoCommitClient: sim.Client}

	a, err := artifact.Lottery()
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	ctx := sdk.WithLogger(context.Background(), zap.New(core).Sugar())

	got, err := evm.NewDeployer(client, sim.Signers[0].NewTransactOpts(t), 0).Deploy(ctx, a)
	require.NoError(t, err)

	assert.Equal(t, uint64(987654321987), got.ChainID)
	assert.Equal(t, types.ChainSelector(0), got.ChainSelector)
	assert.NotEqual(t, common.Address{}, got.Address)
	assert.Equal(t, 1, logs.FilterMessage("No chain selector registered for chain").Len())
}

func TestDeployer_Deploy_InvalidArtifact(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)

	a := &artifact.Artifact{Name: "Empty", Bytecode: []byte{0x60, 0x80}}

	_, err := evm.NewDeployer(sim.Client, sim.Signers[0].NewTransactOpts(t), 0).Deploy(context.Background(), a)

	var missing *artifact.MissingMethodError
	require.ErrorAs(t, err, &missing)
}

func TestLotteryContractDeployment(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)

	a, err := artifact.Lottery()
	require.NoError(t, err)

	addr, tx, err := evm.LotteryContractDeployment(sim.Signers[0].NewTransactOpts(t), sim.Client, a)(context.Background())
	require.NoError(t, err)
	require.NotNil(t, tx)

	receipt, err := evm.Confirm(context.Background(), sim.Client, tx, 0)
	require.NoError(t, err)
	assert.Equal(t, addr, receipt.ContractAddress)
}
