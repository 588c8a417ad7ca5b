package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/lottery/sdk"
	"github.com/smartcontractkit/lottery/sdk/evm/bindings"
	"github.com/smartcontractkit/lottery/types"
)

var _ sdk.Inspector = (*Inspector)(nil)

// Inspector is an Inspector implementation for EVM chains, giving access to the state of a
// lottery contract
type Inspector struct {
	client ContractDeployBackend
}

// NewInspector creates a new Inspector for evm chains.
func NewInspector(client ContractDeployBackend) *Inspector {
	return &Inspector{client: client}
}

// GetManager returns the account that deployed the lottery.
func (e *Inspector) GetManager(ctx context.Context, lottery common.Address) (common.Address, error) {
	lotteryObj, err := e.bind(lottery)
	if err != nil {
		return common.Address{}, err
	}

	return lotteryObj.Manager(&bind.CallOpts{Context: ctx})
}

// GetPlayers returns the players of the lottery in entry order, with their account balances.
func (e *Inspector) GetPlayers(ctx context.Context, lottery common.Address) ([]types.Player, error) {
	return e.playersAt(ctx, lottery, nil)
}

// playersAt reads the players and their balances at block, nil being the latest block. Only the
// addresses are decoded from getPlayers, contracts returning more outputs are read the same way.
func (e *Inspector) playersAt(ctx context.Context, lottery common.Address, block *big.Int) ([]types.Player, error) {
	lotteryObj, err := e.bind(lottery)
	if err != nil {
		return nil, err
	}

	addrs, err := lotteryObj.GetPlayers(&bind.CallOpts{Context: ctx, BlockNumber: block})
	if err != nil {
		return nil, err
	}

	players := make([]types.Player, 0, len(addrs))
	for _, addr := range addrs {
		balance, err := e.client.BalanceAt(ctx, addr, block)
		if err != nil {
			return nil, fmt.Errorf("failed to get balance of player %s: %w", addr.Hex(), err)
		}
		players = append(players, types.Player{Address: addr, Balance: balance})
	}

	return players, nil
}

// GetPot returns the lottery contract balance, which is paid out in full to the winner.
func (e *Inspector) GetPot(ctx context.Context, lottery common.Address) (*big.Int, error) {
	if err := requireAddress(lottery); err != nil {
		return nil, err
	}

	return e.client.BalanceAt(ctx, lottery, nil)
}

// GetBalance returns the latest balance of any account.
func (e *Inspector) GetBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	return e.client.BalanceAt(ctx, account, nil)
}

func (e *Inspector) bind(lottery common.Address) (*bindings.Lottery, error) {
	if err := requireAddress(lottery); err != nil {
		return nil, err
	}

	return bindings.NewLottery(lottery, e.client)
}
