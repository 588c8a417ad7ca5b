package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// Player is an account that has entered the lottery, along with its current account balance.
type Player struct {
	Address common.Address `json:"address"`
	Balance *big.Int       `json:"balance"`
}

// Status is a snapshot of a deployed lottery.
type Status struct {
	Address common.Address `json:"address"`
	Manager common.Address `json:"manager"`
	Players []Player       `json:"players"`
	// Pot is the contract balance, which is paid out in full to the winner.
	Pot *big.Int `json:"pot"`
}

// Addresses returns the player addresses in entry order.
func (s Status) Addresses() []common.Address {
	addrs := make([]common.Address, 0, len(s.Players))
	for _, p := range s.Players {
		addrs = append(addrs, p.Address)
	}

	return addrs
}

// TransactionResult is a transaction that has been mined.
type TransactionResult struct {
	Hash        common.Hash            `json:"hash"`
	Transaction *gethtypes.Transaction `json:"-"`
	Receipt     *gethtypes.Receipt     `json:"-"`
}

// DrawResult is the outcome of a winner draw.
type DrawResult struct {
	TransactionResult

	Winner common.Address `json:"winner"`
	Prize  *big.Int       `json:"prize"`
	// Players are the entrants at the time of the draw, in entry order.
	Players []common.Address `json:"players"`
}

// DeployResult is a mined contract creation.
type DeployResult struct {
	TransactionResult

	Address       common.Address `json:"address"`
	Deployer      common.Address `json:"deployer"`
	ChainID       uint64         `json:"chainId"`
	ChainSelector ChainSelector  `json:"chainSelector"`
}
