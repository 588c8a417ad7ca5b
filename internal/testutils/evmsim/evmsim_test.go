package evmsim

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/lottery/internal/testutils/chaintest"
)

func TestNewSimulatedChainFromMnemonic(t *testing.T) {
	t.Parallel()

	sim := NewSimulatedChainFromMnemonic(t, chaintest.TestMnemonic, 2)
	require.Len(t, sim.Signers, 2)

	assert.Equal(t, common.HexToAddress(chaintest.TestMnemonicAccount0), sim.Signers[0].Address(t))

	for _, s := range sim.Signers {
		bal, err := sim.Client.BalanceAt(context.Background(), s.Address(t), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, DefaultBalance.Cmp(bal))
	}
}

func TestSimulatedChain_DeployLottery(t *testing.T) {
	t.Parallel()

	sim := NewSimulatedChain(t, 1)

	addr, contract, tx := sim.DeployLottery(t, sim.Signers[0])
	require.NotNil(t, contract)
	require.NotNil(t, tx)
	assert.NotEqual(t, common.Address{}, addr)

	// The auto committing client mines the deployment in its own block.
	block, err := sim.Client.BlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), block)
}
