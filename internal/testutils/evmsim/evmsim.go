// package evmsim implements a simulated EVM chain for testing purposes.
package evmsim

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/lottery/sdk/evm/bindings"
)

const (
	// DefaultBlockGasLimit is the gas limit of each block in the simulated chain
	DefaultBlockGasLimit = uint64(8000000)

	// DefaultGasLimit is the default gas limit for each transaction in the simulated chain
	DefaultGasLimit = uint64(1000000)

	// SimulatedChainID is the chain ID used for the simulated chain. EVM Simulated chains always use 1337
	//
	// https://pkg.go.dev/github.com/ethereum/go-ethereum/ethclient/simulated#NewBackend
	SimulatedChainID = 1337

	defaultDerivationPath = "m/44'/60'/0'/0/%d"
)

// DefaultBalance is the default balance for each account in the simulated chain, 100 ether
var DefaultBalance = new(big.Int).Mul(big.NewInt(100), big.NewInt(params.Ether))

// SimulatedChain represents a simulated chain with a backend and a list of signers.
type SimulatedChain struct {
	Backend *simulated.Backend
	// Client mines a block after every transaction it sends.
	Client  *AutoCommitClient
	Signers []*Signer
}

// AutoCommitClient wraps the simulated client so each sent transaction is mined immediately.
type AutoCommitClient struct {
	simulated.Client

	backend *simulated.Backend
}

// SendTransaction sends tx and commits a block containing it.
func (c *AutoCommitClient) SendTransaction(ctx context.Context, tx *gethTypes.Transaction) error {
	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.backend.Commit()

	return nil
}

// Signer represents a signer with a private key.
type Signer struct {
	PrivateKey *ecdsa.PrivateKey
}

// NewTransactOpts creates a new transact options with the signer's private key and sets default
// values.
func (s *Signer) NewTransactOpts(t *testing.T) *bind.TransactOpts {
	t.Helper()

	auth, err := bind.NewKeyedTransactorWithChainID(s.PrivateKey, big.NewInt(SimulatedChainID))
	require.NoError(t, err)

	// Set default values
	auth.GasLimit = DefaultGasLimit

	return auth
}

// Address extracts the address from the signer's private key.
func (s *Signer) Address(t *testing.T) common.Address {
	t.Helper()

	publicKeyECDSA, ok := s.PrivateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		t.Fatal("error casting public key from crypto to ecdsa")
	}

	return crypto.PubkeyToAddress(*publicKeyECDSA)
}

// NewSimulatedChain creates a new simulated chain with the given number of signers.
func NewSimulatedChain(t *testing.T, numSigners uint64) SimulatedChain {
	t.Helper()

	signers := make([]*Signer, 0, numSigners)
	for range numSigners {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		signers = append(signers, &Signer{PrivateKey: key})
	}

	return newSimulatedChain(t, signers)
}

// NewSimulatedChainFromMnemonic creates a new simulated chain funding the first numSigners
// accounts derived from mnemonic.
func NewSimulatedChainFromMnemonic(t *testing.T, mnemonic string, numSigners uint64) SimulatedChain {
	t.Helper()

	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	require.NoError(t, err)

	signers := make([]*Signer, 0, numSigners)
	for i := range numSigners {
		path, err := accounts.ParseDerivationPath(fmt.Sprintf(defaultDerivationPath, i))
		require.NoError(t, err)

		account, err := wallet.Derive(path, false)
		require.NoError(t, err)

		key, err := wallet.PrivateKey(account)
		require.NoError(t, err)

		signers = append(signers, &Signer{PrivateKey: key})
	}

	return newSimulatedChain(t, signers)
}

func newSimulatedChain(t *testing.T, signers []*Signer) SimulatedChain {
	t.Helper()

	genesisAlloc := gethTypes.GenesisAlloc{}
	for _, s := range signers {
		genesisAlloc[s.Address(t)] = gethTypes.Account{
			Balance: new(big.Int).Set(DefaultBalance),
		}
	}

	sim := simulated.NewBackend(genesisAlloc,
		simulated.WithBlockGasLimit(DefaultBlockGasLimit),
	)
	t.Cleanup(func() {
		_ = sim.Close()
	})

	return SimulatedChain{
		Backend: sim,
		Client:  &AutoCommitClient{Client: sim.Client(), backend: sim},
		Signers: signers,
	}
}

// DeployLottery deploys a Lottery contract managed by the signer
func (s *SimulatedChain) DeployLottery(
	t *testing.T, signer *Signer,
) (common.Address, *bindings.Lottery, *gethTypes.Transaction) {
	t.Helper()

	addr, tx, contract, err := bindings.DeployLottery(signer.NewTransactOpts(t), s.Client)
	require.NoError(t, err)

	receipt, err := bind.WaitMined(context.Background(), s.Client, tx)
	require.NoError(t, err)
	require.Equal(t, gethTypes.ReceiptStatusSuccessful, receipt.Status)

	return addr, contract, tx
}
