package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"
	"slices"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// ChainSelector is a unique identifier for a chain.
//
// These values are defined in the chain-selectors dependency.
// https://github.com/smartcontractkit/chain-selectors
type ChainSelector uint64

var (
	// ErrChainFamilyNotFound is returned when the chain family is not found for a selector
	ErrChainFamilyNotFound = errors.New("chain family not found")

	// ErrUnsupportedChainFamily is returned when the chain family is not supported by the lottery tooling
	ErrUnsupportedChainFamily = errors.New("unsupported chain family")

	// ErrChainIDNotFound is returned when no selector is registered for an EVM chain id
	ErrChainIDNotFound = errors.New("chain selector not found")
)

// supportedFamilies is a list of chain families the lottery contract can be deployed to.
var supportedFamilies = []string{
	chainsel.FamilyEVM,
}

// GetChainSelectorFamily returns the family of the chain selector.
func GetChainSelectorFamily(sel ChainSelector) (string, error) {
	family, err := chainsel.GetSelectorFamily(uint64(sel))
	if err != nil {
		return "", fmt.Errorf("%w for selector %d", ErrChainFamilyNotFound, sel)
	}

	if !slices.Contains(supportedFamilies, family) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedChainFamily, family)
	}

	return family, nil
}

// ChainSelectorFromEVMChainID looks up the selector registered for an EVM chain id.
func ChainSelectorFromEVMChainID(chainID uint64) (ChainSelector, error) {
	sel, err := chainsel.SelectorFromChainId(chainID)
	if err != nil {
		return 0, fmt.Errorf("%w for chain id %d", ErrChainIDNotFound, chainID)
	}

	return ChainSelector(sel), nil
}

// EVMChainID returns the EVM chain id of the selector.
func (s ChainSelector) EVMChainID() (uint64, error) {
	if _, err := GetChainSelectorFamily(s); err != nil {
		return 0, err
	}

	return chainsel.ChainIdFromSelector(uint64(s))
}
