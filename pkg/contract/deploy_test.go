package contract

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fakeAddr = "0x1234567890abcdef"
	fakeTx   = `{"data":"0x00001"}`
)

func fakeContractDeployment() DeployFunc[string, json.RawMessage] {
	return func(context.Context) (string, json.RawMessage, error) {
		return fakeAddr, json.RawMessage(fakeTx), nil
	}
}

func Test_Deploy(t *testing.T) {
	t.Parallel()

	addr, tx, err := Deploy(context.Background(), fakeContractDeployment())
	require.NoError(t, err)

	assert.Equal(t, fakeAddr, addr)
	assert.JSONEq(t, fakeTx, string(tx))
}

func Test_Deploy_Error(t *testing.T) {
	t.Parallel()

	failing := DeployFunc[string, json.RawMessage](func(context.Context) (string, json.RawMessage, error) {
		return "", nil, errors.New("insufficient funds")
	})

	_, _, err := Deploy(context.Background(), failing)
	require.EqualError(t, err, "insufficient funds")
}
