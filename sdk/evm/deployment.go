package evm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/lottery/pkg/artifact"
	"github.com/smartcontractkit/lottery/pkg/contract"
	"github.com/smartcontractkit/lottery/sdk"
	sdkerrors "github.com/smartcontractkit/lottery/sdk/errors"
	"github.com/smartcontractkit/lottery/types"
)

// ErrNoCodeDeployed is returned when a creation transaction was mined but left no code at the
// contract address.
var ErrNoCodeDeployed = errors.New("no contract code at deployed address")

var _ sdk.Deployer = (*Deployer)(nil)

// LotteryContractDeployment returns a DeployFunc that deploys the contract held in a.
func LotteryContractDeployment(
	auth *bind.TransactOpts, backend bind.ContractBackend, a *artifact.Artifact,
) contract.DeployFunc[common.Address, *gethtypes.Transaction] {
	return func(ctx context.Context) (common.Address, *gethtypes.Transaction, error) {
		opts := *auth
		opts.Context = ctx

		addr, tx, _, err := bind.DeployContract(&opts, a.ABI, a.Bytecode, backend)

		return addr, tx, err
	}
}

// Deployer deploys lottery contracts from a single account.
type Deployer struct {
	client         ContractDeployBackend
	auth           *bind.TransactOpts
	confirmTimeout time.Duration
}

// NewDeployer creates a new Deployer for EVM chains. A zero confirmTimeout uses
// DefaultConfirmTimeout.
func NewDeployer(client ContractDeployBackend, auth *bind.TransactOpts, confirmTimeout time.Duration) *Deployer {
	return &Deployer{client: client, auth: auth, confirmTimeout: confirmTimeout}
}

// Deploy sends the creation transaction for a and waits for it to be mined.
func (d *Deployer) Deploy(ctx context.Context, a *artifact.Artifact) (types.DeployResult, error) {
	if err := a.Validate(); err != nil {
		return types.DeployResult{}, err
	}

	chainID, err := d.client.ChainID(ctx)
	if err != nil {
		return types.DeployResult{}, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if !chainID.IsUint64() {
		return types.DeployResult{}, sdkerrors.NewInvalidChainIDError(0)
	}

	lggr := sdk.LoggerFrom(ctx)

	// Chains missing from the selector registry are recorded with a zero selector.
	selector, err := types.ChainSelectorFromEVMChainID(chainID.Uint64())
	if err != nil {
		if !errors.Is(err, types.ErrChainIDNotFound) {
			return types.DeployResult{}, err
		}
		lggr.Warnw("No chain selector registered for chain", "chainID", chainID.String())
	}

	lggr.Infow("Attempting to deploy from account", "account", d.auth.From.Hex(), "chainID", chainID.String())

	addr, tx, err := contract.Deploy(ctx, LotteryContractDeployment(d.auth, d.client, a))
	if err != nil {
		return types.DeployResult{}, BuildExecutionError(err, nil)
	}

	receipt, err := Confirm(ctx, d.client, tx, d.confirmTimeout)
	if err != nil {
		if errors.Is(err, ErrTransactionReverted) {
			return types.DeployResult{}, BuildExecutionError(err, tx)
		}

		return types.DeployResult{}, fmt.Errorf("failed to confirm deployment %s: %w", tx.Hash().Hex(), err)
	}

	if receipt.ContractAddress != (common.Address{}) {
		addr = receipt.ContractAddress
	}

	code, err := d.client.CodeAt(ctx, addr, nil)
	if err != nil {
		return types.DeployResult{}, fmt.Errorf("failed to read code at %s: %w", addr.Hex(), err)
	}
	if len(code) == 0 {
		return types.DeployResult{}, fmt.Errorf("%w: %s", ErrNoCodeDeployed, addr.Hex())
	}

	lggr.Infow("Contract deployed", "address", addr.Hex(), "tx", tx.Hash().Hex(), "block", receipt.BlockNumber.String())

	return types.DeployResult{
		TransactionResult: types.TransactionResult{Hash: tx.Hash(), Transaction: tx, Receipt: receipt},
		Address:           addr,
		Deployer:          d.auth.From,
		ChainID:           chainID.Uint64(),
		ChainSelector:     selector,
	}, nil
}
