package evm

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/smartcontractkit/lottery/sdk/errors"
)

func Test_GasFee(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		receipt *gethtypes.Receipt
		want    *big.Int
	}{
		{
			name:    "nil receipt",
			receipt: nil,
			want:    big.NewInt(0),
		},
		{
			name:    "missing gas price",
			receipt: &gethtypes.Receipt{GasUsed: 21000},
			want:    big.NewInt(0),
		},
		{
			name:    "gas used times price",
			receipt: &gethtypes.Receipt{GasUsed: 21000, EffectiveGasPrice: big.NewInt(2)},
			want:    big.NewInt(42000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, 0, tt.want.Cmp(gasFee(tt.receipt)))
		})
	}
}

func Test_RequireAddress(t *testing.T) {
	t.Parallel()

	require.NoError(t, requireAddress(common.HexToAddress("0x1")))

	var zeroErr *sdkerrors.ZeroAddressError
	require.ErrorAs(t, requireAddress(common.Address{}), &zeroErr)
}
