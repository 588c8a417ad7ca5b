package evm

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"

	sdkerrors "github.com/smartcontractkit/lottery/sdk/errors"
)

// Revert reasons emitted by the lottery contract.
const (
	RevertReasonNotManager    = "Only manager can do"
	RevertReasonEntryTooSmall = "The player needs to stake at least 0.1 ether"
)

var (
	// ErrTransactionReverted is returned when a transaction was mined with a failed status.
	ErrTransactionReverted = errors.New("transaction reverted")

	// hexPattern matches "0x" followed by one or more hex characters
	hexPattern = regexp.MustCompile(`0x[0-9a-fA-F]+`)
)

const executionRevertedPrefix = "execution reverted:"

// knownReasons maps contract revert reasons to the sentinel errors callers match on.
var knownReasons = map[string]error{
	RevertReasonNotManager:    sdkerrors.ErrNotManager,
	RevertReasonEntryTooSmall: sdkerrors.ErrEntryTooSmall,
}

// ExecutionError represents a remote call rejected by the chain, either while estimating and
// sending the transaction or after it was mined with a failed status.
type ExecutionError struct {
	// Transaction is the rejected transaction, nil if it was never sent
	Transaction *gethtypes.Transaction
	// RawRevertReason is the ABI encoded revert data returned by the contract, if any
	RawRevertReason []byte
	// DecodedRevertReason is the human-readable revert reason (e.g. "Only manager can do")
	DecodedRevertReason string
	// OriginalError is the original error from the contract binding or client
	OriginalError error
}

func (e *ExecutionError) Error() string {
	if e.DecodedRevertReason != "" {
		return fmt.Sprintf("execution failed: %v (revert reason: %s)", e.OriginalError, e.DecodedRevertReason)
	}
	if len(e.RawRevertReason) > 0 {
		return fmt.Sprintf("execution failed: %v (raw revert data: %s)", e.OriginalError, common.Bytes2Hex(e.RawRevertReason))
	}

	return fmt.Sprintf("execution failed: %v", e.OriginalError)
}

// Unwrap exposes the original error and, for revert reasons the contract is known to emit, the
// matching sentinel from the sdk errors package.
func (e *ExecutionError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel, ok := knownReasons[e.DecodedRevertReason]; ok {
		errs = append(errs, sentinel)
	}
	if e.OriginalError != nil {
		errs = append(errs, e.OriginalError)
	}

	return errs
}

// BuildExecutionError creates an ExecutionError from a rejected call. It returns nil when err is nil.
func BuildExecutionError(err error, tx *gethtypes.Transaction) *ExecutionError {
	if err == nil {
		return nil
	}

	raw, decoded := extractRevertReason(err)

	return &ExecutionError{
		Transaction:         tx,
		RawRevertReason:     raw,
		DecodedRevertReason: decoded,
		OriginalError:       err,
	}
}

// extractRevertReason pulls the revert data and reason out of a client error. Errors coming
// straight from the RPC layer carry the data, errors wrapped by the binding only keep the
// message.
func extractRevertReason(err error) ([]byte, string) {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if s, ok := dataErr.ErrorData().(string); ok {
			if data, decErr := hexutil.Decode(s); decErr == nil {
				if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
					return data, reason
				}

				return data, ""
			}
		}
	}

	errStr := err.Error()

	for _, match := range hexPattern.FindAllString(errStr, -1) {
		data := common.FromHex(match)
		if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
			return data, reason
		}
	}

	if idx := strings.LastIndex(errStr, executionRevertedPrefix); idx != -1 {
		return nil, strings.TrimSpace(errStr[idx+len(executionRevertedPrefix):])
	}

	return nil, ""
}
