package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/lottery/types"
)

// Inspector is an interface for reading the on chain state of a lottery contract.
type Inspector interface {
	GetManager(ctx context.Context, lottery common.Address) (common.Address, error)
	// GetPlayers returns the entrants in the order they entered.
	GetPlayers(ctx context.Context, lottery common.Address) ([]types.Player, error)
	// GetPot returns the contract balance.
	GetPot(ctx context.Context, lottery common.Address) (*big.Int, error)
}
