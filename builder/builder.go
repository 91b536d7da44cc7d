// Package builder normalizes arbitrary call lists into canonical Safe
// transactions. A single call passes through verbatim; multiple calls are
// packed into one MultiSend batch executed via delegatecall so every
// sub-call runs in the Safe's own context.
package builder

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/volga-sh/picosafe/contracts"
	"github.com/volga-sh/picosafe/encoding"
	"github.com/volga-sh/picosafe/models"
	"github.com/volga-sh/picosafe/models/errors"
	"github.com/volga-sh/picosafe/requester"
)

// BuildOptions overrides the defaulted fields of a built transaction.
// Gas-refund fields default to zero since refund policy is caller-specific
// and never inferred; nonce and chain ID are read from the chain when
// absent.
type BuildOptions struct {
	SafeTxGas      *big.Int
	BaseGas        *big.Int
	GasPrice       *big.Int
	GasToken       common.Address
	RefundReceiver common.Address
	Nonce          *big.Int
	ChainID        *big.Int

	// DelegateCall requests delegatecall for a single-call transaction.
	// Batches ignore it: MultiSend only works via delegatecall.
	DelegateCall bool
}

type Builder struct {
	reader *requester.ChainReader
	logger zerolog.Logger
}

func New(reader *requester.ChainReader, logger zerolog.Logger) *Builder {
	return &Builder{
		reader: reader,
		logger: logger.With().Str("component", "tx-builder").Logger(),
	}
}

// Build normalizes calls into the canonical transaction the Safe at safe
// will sign and execute.
func (b *Builder) Build(
	ctx context.Context,
	safe common.Address,
	calls []models.MetaTransaction,
	opts BuildOptions,
) (*models.SafeTransaction, error) {
	if len(calls) == 0 {
		return nil, errors.ErrNoTransactions
	}

	tx := &models.SafeTransaction{
		Safe:           safe,
		SafeTxGas:      bigOrZero(opts.SafeTxGas),
		BaseGas:        bigOrZero(opts.BaseGas),
		GasPrice:       bigOrZero(opts.GasPrice),
		GasToken:       opts.GasToken,
		RefundReceiver: opts.RefundReceiver,
	}

	if len(calls) == 1 {
		call := calls[0]
		tx.To = call.To
		tx.Value = bigOrZero(call.Value)
		tx.Data = call.Data
		tx.Operation = models.Call
		if opts.DelegateCall {
			tx.Operation = models.DelegateCall
		}
	} else {
		data, err := encoding.EncodeMultiSendCall(calls)
		if err != nil {
			return nil, err
		}
		tx.To = contracts.MultiSendCallOnly
		tx.Value = new(big.Int)
		tx.Data = data
		tx.Operation = models.DelegateCall
	}

	var err error
	tx.Nonce = opts.Nonce
	if tx.Nonce == nil {
		if tx.Nonce, err = b.reader.Nonce(ctx, safe); err != nil {
			return nil, fmt.Errorf("failed to fetch safe nonce: %w", err)
		}
	}
	tx.ChainID = opts.ChainID
	if tx.ChainID == nil {
		if tx.ChainID, err = b.reader.ChainID(ctx); err != nil {
			return nil, fmt.Errorf("failed to fetch chain id: %w", err)
		}
	}

	b.logger.Debug().
		Str("safe", safe.Hex()).
		Int("calls", len(calls)).
		Str("operation", tx.Operation.String()).
		Str("nonce", tx.Nonce.String()).
		Msg("built safe transaction")

	return tx, nil
}

// EncodeExecTransaction builds the execTransaction calldata for submitting
// tx with the packed signature bytes.
func EncodeExecTransaction(tx *models.SafeTransaction, signatures []byte) ([]byte, error) {
	calldata, err := contracts.SafeABI.Pack(
		"execTransaction",
		tx.To,
		bigOrZero(tx.Value),
		tx.Data,
		uint8(tx.Operation),
		bigOrZero(tx.SafeTxGas),
		bigOrZero(tx.BaseGas),
		bigOrZero(tx.GasPrice),
		tx.GasToken,
		tx.RefundReceiver,
		signatures,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack execTransaction call: %w", err)
	}
	return calldata, nil
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
