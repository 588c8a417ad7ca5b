package lottery

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/lottery/types"
)

var (
	// ErrMissingAddress is returned when a deployment record has no contract address.
	ErrMissingAddress = errors.New("deployment address is required")

	// ErrNoLedgerWallets is returned when no ledger device is connected.
	ErrNoLedgerWallets = errors.New("no ledger wallets found")
)

// UnsupportedVersionError is returned when a deployment record has an unknown version.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported deployment version: %s", e.Version)
}

func NewUnsupportedVersionError(version string) *UnsupportedVersionError {
	return &UnsupportedVersionError{Version: version}
}

// ChainIDMismatchError is returned when a chain selector does not resolve to the expected chain id.
type ChainIDMismatchError struct {
	ChainSelector types.ChainSelector
	Want          uint64
	Got           uint64
}

func (e *ChainIDMismatchError) Error() string {
	return fmt.Sprintf("chain selector %d resolves to chain id %d, expected %d", e.ChainSelector, e.Got, e.Want)
}

func NewChainIDMismatchError(sel types.ChainSelector, want, got uint64) *ChainIDMismatchError {
	return &ChainIDMismatchError{ChainSelector: sel, Want: want, Got: got}
}

// SignerAddressMismatchError is returned when a transaction is requested for an account the
// signer does not control.
type SignerAddressMismatchError struct {
	Signer    common.Address
	Requested common.Address
}

func (e *SignerAddressMismatchError) Error() string {
	return fmt.Sprintf("signer %s cannot sign for %s", e.Signer.Hex(), e.Requested.Hex())
}

func NewSignerAddressMismatchError(signer, requested common.Address) *SignerAddressMismatchError {
	return &SignerAddressMismatchError{Signer: signer, Requested: requested}
}
