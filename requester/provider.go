// Package requester is the engine's only boundary to the chain. It wraps a
// caller-owned RPC transport behind a single-capability Provider, describes
// contract calls as plain values with an explicit execution step, and
// exposes the thin Safe state reads (nonce, owners, threshold, modules,
// approved hashes) the builder and validator depend on. Provider failures
// are recoverable errors, never panics; retry policy belongs to the caller.
package requester

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// Provider is the single capability the engine requires from an RPC
// transport: issue a JSON-RPC request and return its hex-encoded result.
type Provider interface {
	Request(ctx context.Context, method string, params ...any) (string, error)
}

// RPCProvider adapts a go-ethereum rpc.Client to the Provider interface.
type RPCProvider struct {
	client *rpc.Client
}

func NewRPCProvider(client *rpc.Client) *RPCProvider {
	return &RPCProvider{client: client}
}

func (p *RPCProvider) Request(ctx context.Context, method string, params ...any) (string, error) {
	var result string
	if err := p.client.CallContext(ctx, &result, method, params...); err != nil {
		return "", fmt.Errorf("%s request failed: %w", method, err)
	}
	return result, nil
}

// ContractCall describes an eth_call without executing it. Callers hold the
// description, inspect or log it, and run it explicitly via Execute.
type ContractCall struct {
	To   common.Address
	Data hexutil.Bytes
}

// Execute performs the described call against the latest block and returns
// the raw return data.
func (c ContractCall) Execute(ctx context.Context, provider Provider) ([]byte, error) {
	result, err := provider.Request(ctx, "eth_call", map[string]any{
		"to":   c.To.Hex(),
		"data": c.Data.String(),
	}, "latest")
	if err != nil {
		return nil, err
	}
	if result == "" || result == "0x" {
		return nil, nil
	}
	data, err := hexutil.Decode(result)
	if err != nil {
		return nil, fmt.Errorf("malformed eth_call result %q: %w", result, err)
	}
	return data, nil
}
