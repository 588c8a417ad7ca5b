package types

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEther(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    *big.Int
		wantErr string
	}{
		{
			name: "success: whole ether",
			give: "2",
			want: new(big.Int).Mul(big.NewInt(2), big.NewInt(1e18)),
		},
		{
			name: "success: fraction",
			give: "0.2",
			want: big.NewInt(2e17),
		},
		{
			name: "success: one wei",
			give: "0.000000000000000001",
			want: big.NewInt(1),
		},
		{
			name:    "failure: too many decimals",
			give:    "0.0000000000000000001",
			wantErr: `invalid ether amount "0.0000000000000000001": more than 18 decimals`,
		},
		{
			name:    "failure: negative",
			give:    "-1",
			wantErr: `invalid ether amount "-1": must not be negative`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseEther(tt.give)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 0, tt.want.Cmp(got), "want %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseEther_NotANumber(t *testing.T) {
	t.Parallel()

	_, err := ParseEther("lots")
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestFormatEther(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.2", FormatEther(big.NewInt(2e17)))
	assert.Equal(t, "4", FormatEther(MustParseEther("4")))
	assert.Equal(t, "0", FormatEther(nil))
}
