package sdkerrors

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrNotManager is returned when an account other than the manager tries to draw a winner.
	ErrNotManager = errors.New("only the manager can pick a winner")

	// ErrEntryTooSmall is returned when the entry value does not exceed the minimum stake.
	ErrEntryTooSmall = errors.New("entry value too small")

	// ErrNoPlayers is returned when a draw is requested on a lottery nobody has entered.
	ErrNoPlayers = errors.New("lottery has no players")
)

type InvalidChainIDError struct {
	ReceivedChainID uint64
}

func (e *InvalidChainIDError) Error() string {
	return fmt.Sprintf("invalid chain ID: %v", e.ReceivedChainID)
}

func NewInvalidChainIDError(receivedChainID uint64) *InvalidChainIDError {
	return &InvalidChainIDError{ReceivedChainID: receivedChainID}
}

// EntryTooSmallError is returned when an entry does not pay more than the minimum stake.
type EntryTooSmallError struct {
	Value   *big.Int
	Minimum *big.Int
}

func (e *EntryTooSmallError) Error() string {
	return fmt.Sprintf("entry value too small: %s wei, must be greater than %s wei", e.Value, e.Minimum)
}

func (e *EntryTooSmallError) Unwrap() error {
	return ErrEntryTooSmall
}

func NewEntryTooSmallError(value, minimum *big.Int) *EntryTooSmallError {
	return &EntryTooSmallError{Value: value, Minimum: minimum}
}

// NoPlayersError is returned when drawing on an empty lottery, which the contract rejects by
// exhausting the transaction gas.
type NoPlayersError struct {
	Lottery common.Address
}

func (e *NoPlayersError) Error() string {
	return fmt.Sprintf("lottery %s has no players", e.Lottery.Hex())
}

func (e *NoPlayersError) Unwrap() error {
	return ErrNoPlayers
}

func NewNoPlayersError(lottery common.Address) *NoPlayersError {
	return &NoPlayersError{Lottery: lottery}
}

// WinnerNotFoundError is returned when no player balance reflects the payout of a draw.
type WinnerNotFoundError struct {
	TxHash common.Hash
}

func (e *WinnerNotFoundError) Error() string {
	return fmt.Sprintf("no player received the prize in transaction %s", e.TxHash.Hex())
}

func NewWinnerNotFoundError(txHash common.Hash) *WinnerNotFoundError {
	return &WinnerNotFoundError{TxHash: txHash}
}

// ZeroAddressError is returned when a lottery address is missing.
type ZeroAddressError struct{}

func (e *ZeroAddressError) Error() string {
	return "lottery address must not be the zero address"
}
