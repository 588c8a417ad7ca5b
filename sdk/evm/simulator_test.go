package evm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/lottery/internal/testutils/evmsim"
	sdkerrors "github.com/smartcontractkit/lottery/sdk/errors"
	"github.com/smartcontractkit/lottery/sdk/evm"
	"github.com/smartcontractkit/lottery/types"
)

func TestSimulator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sim := evmsim.NewSimulatedChain(t, 2)
	manager := sim.Signers[0].Address(t)
	player := sim.Signers[1].Address(t)
	addr, _, _ := sim.DeployLottery(t, sim.Signers[0])

	simulator, err := evm.NewSimulator(sim.Client)
	require.NoError(t, err)

	// Nothing is sent, so the lottery stays empty throughout.
	require.NoError(t, simulator.SimulateEnter(ctx, player, addr, types.MustParseEther("0.2")))

	err = simulator.SimulateEnter(ctx, player, addr, types.MustParseEther("0.001"))
	require.ErrorIs(t, err, sdkerrors.ErrEntryTooSmall)

	err = simulator.SimulatePickWinner(ctx, manager, addr)
	require.ErrorIs(t, err, sdkerrors.ErrNoPlayers)

	_, err = evm.NewExecutor(sim.Client, sim.Signers[1].NewTransactOpts(t), 0).
		EnterLottery(ctx, addr, types.MustParseEther("0.2"))
	require.NoError(t, err)

	require.NoError(t, simulator.SimulatePickWinner(ctx, manager, addr))

	err = simulator.SimulatePickWinner(ctx, player, addr)
	require.ErrorIs(t, err, sdkerrors.ErrNotManager)

	var execErr *evm.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, evm.RevertReasonNotManager, execErr.DecodedRevertReason)
	assert.Nil(t, execErr.Transaction)

	players, err := simulator.GetPlayers(ctx, addr)
	require.NoError(t, err)
	assert.Len(t, players, 1)
}
