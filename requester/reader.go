package requester

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"

	"github.com/volga-sh/picosafe/contracts"
)

// modulePageSize bounds a single getModulesPaginated read.
const modulePageSize = 100

const chainIDCacheTTL = time.Minute

// ChainReader issues the Safe state reads the engine needs. It owns no
// connection; every method is a thin, stateless wrapper over the provider,
// except the chain ID which is cached briefly since it never changes for a
// live connection.
type ChainReader struct {
	provider Provider
	logger   zerolog.Logger
	chainIDs *expirable.LRU[string, *big.Int]
}

func NewChainReader(provider Provider, logger zerolog.Logger) *ChainReader {
	return &ChainReader{
		provider: provider,
		logger:   logger.With().Str("component", "chain-reader").Logger(),
		chainIDs: expirable.NewLRU[string, *big.Int](1, nil, chainIDCacheTTL),
	}
}

// ChainID returns the provider's chain ID, cached for a short period.
func (r *ChainReader) ChainID(ctx context.Context) (*big.Int, error) {
	if cached, ok := r.chainIDs.Get("chainId"); ok {
		return cached, nil
	}
	result, err := r.provider.Request(ctx, "eth_chainId")
	if err != nil {
		return nil, err
	}
	chainID, err := hexutil.DecodeBig(result)
	if err != nil {
		return nil, fmt.Errorf("malformed chain id %q: %w", result, err)
	}
	r.chainIDs.Add("chainId", chainID)
	return chainID, nil
}

// Nonce reads the Safe's current transaction nonce.
func (r *ChainReader) Nonce(ctx context.Context, safe common.Address) (*big.Int, error) {
	result, err := r.callSafe(ctx, safe, "nonce")
	if err != nil {
		return nil, err
	}
	var nonce *big.Int
	if err := contracts.SafeABI.UnpackIntoInterface(&nonce, "nonce", result); err != nil {
		return nil, fmt.Errorf("failed to decode nonce: %w", err)
	}
	return nonce, nil
}

// Threshold reads the number of confirmations the Safe requires.
func (r *ChainReader) Threshold(ctx context.Context, safe common.Address) (*big.Int, error) {
	result, err := r.callSafe(ctx, safe, "getThreshold")
	if err != nil {
		return nil, err
	}
	var threshold *big.Int
	if err := contracts.SafeABI.UnpackIntoInterface(&threshold, "getThreshold", result); err != nil {
		return nil, fmt.Errorf("failed to decode threshold: %w", err)
	}
	return threshold, nil
}

// Owners reads the Safe's current owner list in on-chain order.
func (r *ChainReader) Owners(ctx context.Context, safe common.Address) ([]common.Address, error) {
	result, err := r.callSafe(ctx, safe, "getOwners")
	if err != nil {
		return nil, err
	}
	var owners []common.Address
	if err := contracts.SafeABI.UnpackIntoInterface(&owners, "getOwners", result); err != nil {
		return nil, fmt.Errorf("failed to decode owners: %w", err)
	}
	return owners, nil
}

// IsOwner reports whether addr is a current owner of the Safe.
func (r *ChainReader) IsOwner(ctx context.Context, safe, addr common.Address) (bool, error) {
	result, err := r.callSafe(ctx, safe, "isOwner", addr)
	if err != nil {
		return false, err
	}
	var isOwner bool
	if err := contracts.SafeABI.UnpackIntoInterface(&isOwner, "isOwner", result); err != nil {
		return false, fmt.Errorf("failed to decode isOwner: %w", err)
	}
	return isOwner, nil
}

// Modules walks the Safe's module linked list page by page, starting at
// the sentinel, until the list reports no further page.
func (r *ChainReader) Modules(ctx context.Context, safe common.Address) ([]common.Address, error) {
	var modules []common.Address
	start := contracts.Sentinel

	for {
		result, err := r.callSafe(ctx, safe, "getModulesPaginated", start, big.NewInt(modulePageSize))
		if err != nil {
			return nil, err
		}
		page := struct {
			Array []common.Address
			Next  common.Address
		}{}
		if err := contracts.SafeABI.UnpackIntoInterface(&page, "getModulesPaginated", result); err != nil {
			return nil, fmt.Errorf("failed to decode module page: %w", err)
		}

		modules = append(modules, page.Array...)
		if page.Next == contracts.Sentinel || page.Next == (common.Address{}) || len(page.Array) == 0 {
			return modules, nil
		}
		start = page.Next
	}
}

// ApprovedHash reads the approvedHashes[owner][hash] slot. Any non-zero
// value means the owner approved the hash.
func (r *ChainReader) ApprovedHash(
	ctx context.Context,
	safe common.Address,
	owner common.Address,
	hash common.Hash,
) (*big.Int, error) {
	result, err := r.callSafe(ctx, safe, "approvedHashes", owner, hash)
	if err != nil {
		return nil, err
	}
	var approved *big.Int
	if err := contracts.SafeABI.UnpackIntoInterface(&approved, "approvedHashes", result); err != nil {
		return nil, fmt.Errorf("failed to decode approvedHashes: %w", err)
	}
	return approved, nil
}

func (r *ChainReader) callSafe(
	ctx context.Context,
	safe common.Address,
	method string,
	args ...any,
) ([]byte, error) {
	calldata, err := contracts.SafeABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}
	call := ContractCall{To: safe, Data: calldata}
	result, err := call.Execute(ctx, r.provider)
	if err != nil {
		r.logger.Debug().Err(err).Str("method", method).Str("safe", safe.Hex()).
			Msg("safe read failed")
		return nil, err
	}
	return result, nil
}
