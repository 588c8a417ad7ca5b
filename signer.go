package lottery

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/usbwallet"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
)

// Signer is an interface for the different strategies of authorizing lottery transactions.
type Signer interface {
	GetAddress() (common.Address, error)
	// TransactOpts returns transaction options sending from the signer's account on chainID.
	TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error)
}

var _ Signer = &PrivateKeySigner{}

// PrivateKeySigner signs transactions using a private key.
type PrivateKeySigner struct {
	pk *ecdsa.PrivateKey
}

// NewPrivateKeySigner creates a new PrivateKeySigner.
func NewPrivateKeySigner(pk *ecdsa.PrivateKey) *PrivateKeySigner {
	return &PrivateKeySigner{pk: pk}
}

// NewPrivateKeySignerFromHex creates a new PrivateKeySigner from a hex encoded key, with or
// without the 0x prefix.
func NewPrivateKeySignerFromHex(key string) (*PrivateKeySigner, error) {
	pk, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(key), "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return NewPrivateKeySigner(pk), nil
}

// GetAddress returns the address of the signer.
func (s *PrivateKeySigner) GetAddress() (common.Address, error) {
	return crypto.PubkeyToAddress(s.pk.PublicKey), nil
}

func (s *PrivateKeySigner) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(s.pk, chainID)
	if err != nil {
		return nil, err
	}
	auth.Context = ctx

	return auth, nil
}

var _ Signer = &MnemonicSigner{}

// MnemonicSigner signs transactions with an account derived from a BIP-39 mnemonic.
type MnemonicSigner struct {
	*PrivateKeySigner

	path accounts.DerivationPath
}

// NewMnemonicSigner derives the account at derivationPath, e.g. m/44'/60'/0'/0/0, from mnemonic.
func NewMnemonicSigner(mnemonic string, derivationPath string) (*MnemonicSigner, error) {
	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet from mnemonic: %w", err)
	}

	path, err := accounts.ParseDerivationPath(derivationPath)
	if err != nil {
		return nil, fmt.Errorf("invalid derivation path %q: %w", derivationPath, err)
	}

	account, err := wallet.Derive(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to derive account: %w", err)
	}

	pk, err := wallet.PrivateKey(account)
	if err != nil {
		return nil, fmt.Errorf("failed to get private key: %w", err)
	}

	return &MnemonicSigner{PrivateKeySigner: NewPrivateKeySigner(pk), path: path}, nil
}

// DerivationPath returns the path the signing account was derived at.
func (s *MnemonicSigner) DerivationPath() accounts.DerivationPath {
	return s.path
}

var _ Signer = &LedgerSigner{}

// LedgerSigner signs transactions using a Ledger. The device stays open once used, call Close
// when done.
type LedgerSigner struct {
	derivationPath []uint32

	wallet  accounts.Wallet
	account accounts.Account
}

// NewLedgerSigner creates a new LedgerSigner.
func NewLedgerSigner(derivationPath []uint32) *LedgerSigner {
	return &LedgerSigner{derivationPath: derivationPath}
}

func (s *LedgerSigner) GetAddress() (common.Address, error) {
	if err := s.open(); err != nil {
		return common.Address{}, err
	}

	return s.account.Address, nil
}

// TransactOpts returns transaction options that forward every transaction to the ledger for
// confirmation.
func (s *LedgerSigner) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	from := s.account.Address

	return &bind.TransactOpts{
		From:    from,
		Context: ctx,
		Signer: func(address common.Address, tx *gethtypes.Transaction) (*gethtypes.Transaction, error) {
			if address != from {
				return nil, NewSignerAddressMismatchError(from, address)
			}

			return s.wallet.SignTx(s.account, tx, chainID)
		},
	}, nil
}

// Close releases the ledger device.
func (s *LedgerSigner) Close() error {
	if s.wallet == nil {
		return nil
	}

	err := s.wallet.Close()
	s.wallet = nil

	return err
}

// open loads the wallet and account from the ledger, if not already open.
func (s *LedgerSigner) open() error {
	if s.wallet != nil {
		return nil
	}

	// Load ledger
	ledgerhub, err := usbwallet.NewLedgerHub()
	if err != nil {
		return fmt.Errorf("failed to open ledger hub: %w", err)
	}

	// Get the first wallet
	wallets := ledgerhub.Wallets()
	if len(wallets) == 0 {
		return ErrNoLedgerWallets
	}
	wallet := wallets[0]

	// Open the ledger
	if err = wallet.Open(""); err != nil {
		return fmt.Errorf("failed to open wallet: %w", err)
	}

	// Load account
	account, err := wallet.Derive(s.derivationPath, true)
	if err != nil {
		wallet.Close()
		return fmt.Errorf("is your ledger ethereum app open? Failed to derive account: %w derivation path %v", err, s.derivationPath)
	}

	s.wallet, s.account = wallet, account

	return nil
}
