package evm

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	sdkerrors "github.com/smartcontractkit/lottery/sdk/errors"
)

const (
	// SimulatedEVMChainID is the chain ID used for simulated chains.
	SimulatedEVMChainID = 1337

	// DefaultConfirmTimeout is used when no confirmation timeout is configured.
	DefaultConfirmTimeout = 2 * time.Minute
)

// MinimumEntry is the stake an entry must exceed, 0.01 ether. The contract revert message
// mentions 0.1 ether but the compiled check is against 0.01 ether.
var MinimumEntry = big.NewInt(1e16)

// ContractDeployBackend is the client surface needed to deploy, inspect and drive a lottery.
// Both *ethclient.Client and the simulated backend client satisfy it.
type ContractDeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend

	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Confirm waits for tx to be mined, for at most timeout. A mined transaction with a failed
// status returns the receipt together with ErrTransactionReverted.
func Confirm(
	ctx context.Context, b bind.DeployBackend, tx *gethtypes.Transaction, timeout time.Duration,
) (*gethtypes.Receipt, error) {
	if timeout <= 0 {
		timeout = DefaultConfirmTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	receipt, err := bind.WaitMined(ctx, b, tx)
	if err != nil {
		return nil, err
	}

	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return receipt, ErrTransactionReverted
	}

	return receipt, nil
}

// gasFee returns the amount of wei the sender paid for gas in the receipt's transaction.
func gasFee(receipt *gethtypes.Receipt) *big.Int {
	if receipt == nil || receipt.EffectiveGasPrice == nil {
		return new(big.Int)
	}

	return new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), receipt.EffectiveGasPrice)
}

func requireAddress(addr common.Address) error {
	if addr == (common.Address{}) {
		return &sdkerrors.ZeroAddressError{}
	}

	return nil
}
