package contract

import "context"

// DeployFunc defines a function type that deploys a contract, returning the address of the
// deployed contract and the transaction that created it.
//
// The address and transaction types are defined by the type parameters A and T so chain sdks can
// return their native representations. Implementations only submit the creation transaction,
// waiting for it to be mined is left to the caller.
type DeployFunc[A any, T any] func(ctx context.Context) (A, T, error)

// Deploy deploys a contract by calling the provided function.
func Deploy[A any, T any](ctx context.Context, deployFunc DeployFunc[A, T]) (A, T, error) {
	return deployFunc(ctx)
}
