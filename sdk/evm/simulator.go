package evm

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	sdkerrors "github.com/smartcontractkit/lottery/sdk/errors"
	"github.com/smartcontractkit/lottery/sdk/evm/bindings"
)

// Simulator dry-runs lottery calls against the latest block without sending a transaction.
type Simulator struct {
	*Inspector
	abi abi.ABI
}

func NewSimulator(client ContractDeployBackend) (*Simulator, error) {
	parsed, err := abi.JSON(strings.NewReader(bindings.LotteryABI))
	if err != nil {
		return nil, err
	}

	return &Simulator{Inspector: NewInspector(client), abi: parsed}, nil
}

// SimulateEnter checks that from could enter the lottery with value.
func (s *Simulator) SimulateEnter(ctx context.Context, from, lottery common.Address, value *big.Int) error {
	if value == nil || value.Cmp(MinimumEntry) <= 0 {
		return sdkerrors.NewEntryTooSmallError(value, MinimumEntry)
	}

	return s.call(ctx, from, lottery, value, "enterLottery")
}

// SimulatePickWinner checks that from could draw a winner.
func (s *Simulator) SimulatePickWinner(ctx context.Context, from, lottery common.Address) error {
	players, err := s.GetPlayers(ctx, lottery)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		return sdkerrors.NewNoPlayersError(lottery)
	}

	return s.call(ctx, from, lottery, nil, "pickWinner")
}

func (s *Simulator) call(
	ctx context.Context, from, lottery common.Address, value *big.Int, method string,
) error {
	if err := requireAddress(lottery); err != nil {
		return err
	}

	data, err := s.abi.Pack(method)
	if err != nil {
		return err
	}

	msg := ethereum.CallMsg{
		From:  from,
		To:    &lottery,
		Value: value,
		Data:  data,
	}

	if _, err = s.client.CallContract(ctx, msg, nil); err != nil {
		return BuildExecutionError(err, nil)
	}

	return nil
}
