package types

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of decimal places between wei and ether.
const EtherDecimals = 18

var weiPerEther = decimal.New(1, EtherDecimals)

// ErrInvalidAmount is returned when an ether amount cannot be converted to wei.
var ErrInvalidAmount = errors.New("invalid ether amount")

// ParseEther converts a decimal ether amount such as "0.2" to wei.
func ParseEther(amount string) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidAmount, amount, err)
	}

	if d.IsNegative() {
		return nil, fmt.Errorf("%w %q: must not be negative", ErrInvalidAmount, amount)
	}

	wei := d.Mul(weiPerEther)
	if !wei.Equal(wei.Truncate(0)) {
		return nil, fmt.Errorf("%w %q: more than %d decimals", ErrInvalidAmount, amount, EtherDecimals)
	}

	return wei.BigInt(), nil
}

// MustParseEther is like ParseEther but panics on invalid input. Intended for constants and tests.
func MustParseEther(amount string) *big.Int {
	wei, err := ParseEther(amount)
	if err != nil {
		panic(err)
	}

	return wei
}

// FormatEther renders a wei amount in ether without trailing zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	return decimal.NewFromBigInt(wei, -EtherDecimals).String()
}
