package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/lottery/types"
)

// Executor is an interface for sending state changing calls to a lottery contract.
//
// Implementations return only after the transaction has been mined.
type Executor interface {
	Inspector

	EnterLottery(ctx context.Context, lottery common.Address, value *big.Int) (types.TransactionResult, error)
	PickWinner(ctx context.Context, lottery common.Address) (types.DrawResult, error)
}
