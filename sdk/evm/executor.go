package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/lottery/sdk"
	sdkerrors "github.com/smartcontractkit/lottery/sdk/errors"
	"github.com/smartcontractkit/lottery/types"
)

var _ sdk.Executor = (*Executor)(nil)

// Executor is an Executor implementation for EVM chains, sending entries and draws to a
// lottery contract from the account of auth
type Executor struct {
	*Inspector
	auth           *bind.TransactOpts
	confirmTimeout time.Duration
}

// NewExecutor creates a new Executor for EVM chains. A zero confirmTimeout uses
// DefaultConfirmTimeout.
func NewExecutor(client ContractDeployBackend, auth *bind.TransactOpts, confirmTimeout time.Duration) *Executor {
	return &Executor{
		Inspector:      NewInspector(client),
		auth:           auth,
		confirmTimeout: confirmTimeout,
	}
}

// EnterLottery pays value into the lottery and registers the sender as a player.
func (e *Executor) EnterLottery(
	ctx context.Context, lottery common.Address, value *big.Int,
) (types.TransactionResult, error) {
	if value == nil || value.Cmp(MinimumEntry) <= 0 {
		return types.TransactionResult{}, sdkerrors.NewEntryTooSmallError(value, MinimumEntry)
	}

	lotteryObj, err := e.bind(lottery)
	if err != nil {
		return types.TransactionResult{}, err
	}

	opts := e.transactOpts(ctx)
	opts.Value = value

	tx, err := lotteryObj.EnterLottery(opts)
	if err != nil {
		return types.TransactionResult{}, BuildExecutionError(err, nil)
	}

	receipt, err := e.confirm(ctx, tx)
	if err != nil {
		return types.TransactionResult{}, err
	}

	sdk.LoggerFrom(ctx).Infow("Entered lottery",
		"lottery", lottery.Hex(), "player", e.auth.From.Hex(), "value", value.String(), "tx", tx.Hash().Hex())

	return types.TransactionResult{Hash: tx.Hash(), Transaction: tx, Receipt: receipt}, nil
}

// PickWinner draws a winner. Only the manager may draw, and the lottery must have players.
//
// The contract does not report the winner, it is derived from the player balances before
// and after the draw block.
func (e *Executor) PickWinner(ctx context.Context, lottery common.Address) (types.DrawResult, error) {
	lotteryObj, err := e.bind(lottery)
	if err != nil {
		return types.DrawResult{}, err
	}

	players, err := e.GetPlayers(ctx, lottery)
	if err != nil {
		return types.DrawResult{}, err
	}
	if len(players) == 0 {
		return types.DrawResult{}, sdkerrors.NewNoPlayersError(lottery)
	}

	tx, err := lotteryObj.PickWinner(e.transactOpts(ctx))
	if err != nil {
		return types.DrawResult{}, BuildExecutionError(err, nil)
	}

	receipt, err := e.confirm(ctx, tx)
	if err != nil {
		return types.DrawResult{}, err
	}

	// Entries may have been mined between the check above and the draw, the entrants are the
	// players at the parent of the draw block.
	parent := new(big.Int).Sub(receipt.BlockNumber, big.NewInt(1))
	players, err = e.playersAt(ctx, lottery, parent)
	if err != nil {
		return types.DrawResult{}, fmt.Errorf("failed to read players before draw: %w", err)
	}

	entrants := make([]common.Address, 0, len(players))
	for _, p := range players {
		entrants = append(entrants, p.Address)
	}

	winner, prize, err := e.findWinner(ctx, lottery, entrants, receipt)
	if err != nil {
		return types.DrawResult{}, err
	}

	sdk.LoggerFrom(ctx).Infow("Winner picked",
		"lottery", lottery.Hex(), "winner", winner.Hex(), "prize", prize.String(), "tx", tx.Hash().Hex())

	return types.DrawResult{
		TransactionResult: types.TransactionResult{Hash: tx.Hash(), Transaction: tx, Receipt: receipt},
		Winner:            winner,
		Prize:             prize,
		Players:           entrants,
	}, nil
}

// findWinner compares the balances of the entrants at the parent of the draw block and at the
// draw block. The sender's gas fee is added back so a manager who wins is still recognised.
func (e *Executor) findWinner(
	ctx context.Context, lottery common.Address, entrants []common.Address, receipt *gethtypes.Receipt,
) (common.Address, *big.Int, error) {
	parent := new(big.Int).Sub(receipt.BlockNumber, big.NewInt(1))

	prize, err := e.client.BalanceAt(ctx, lottery, parent)
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("failed to read pot before draw: %w", err)
	}

	var (
		winner    common.Address
		bestDelta *big.Int
		seen      = make(map[common.Address]struct{}, len(entrants))
	)
	for _, addr := range entrants {
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}

		before, err := e.client.BalanceAt(ctx, addr, parent)
		if err != nil {
			return common.Address{}, nil, err
		}
		after, err := e.client.BalanceAt(ctx, addr, receipt.BlockNumber)
		if err != nil {
			return common.Address{}, nil, err
		}

		delta := new(big.Int).Sub(after, before)
		if addr == e.auth.From {
			delta.Add(delta, gasFee(receipt))
		}

		if delta.Cmp(prize) == 0 {
			return addr, prize, nil
		}
		if bestDelta == nil || delta.Cmp(bestDelta) > 0 {
			winner, bestDelta = addr, delta
		}
	}

	if bestDelta == nil || bestDelta.Sign() <= 0 {
		return common.Address{}, nil, sdkerrors.NewWinnerNotFoundError(receipt.TxHash)
	}

	return winner, prize, nil
}

func (e *Executor) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *e.auth
	opts.Context = ctx

	return &opts
}

// confirm waits for tx and turns a failed receipt into an ExecutionError carrying the revert
// reason, recovered by replaying the transaction against the parent block.
func (e *Executor) confirm(ctx context.Context, tx *gethtypes.Transaction) (*gethtypes.Receipt, error) {
	receipt, err := Confirm(ctx, e.client, tx, e.confirmTimeout)
	if err == nil {
		return receipt, nil
	}
	if !errors.Is(err, ErrTransactionReverted) {
		return nil, fmt.Errorf("failed to confirm transaction %s: %w", tx.Hash().Hex(), err)
	}

	callErr := e.replay(ctx, tx, receipt)
	if callErr == nil {
		return nil, BuildExecutionError(ErrTransactionReverted, tx)
	}

	execErr := BuildExecutionError(callErr, tx)
	execErr.OriginalError = fmt.Errorf("%w: %w", ErrTransactionReverted, callErr)

	return nil, execErr
}

func (e *Executor) replay(ctx context.Context, tx *gethtypes.Transaction, receipt *gethtypes.Receipt) error {
	msg := ethereum.CallMsg{
		From:  e.auth.From,
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}

	var block *big.Int
	if receipt != nil && receipt.BlockNumber != nil {
		block = new(big.Int).Sub(receipt.BlockNumber, big.NewInt(1))
	}

	_, err := e.client.CallContract(ctx, msg, block)

	return err
}
