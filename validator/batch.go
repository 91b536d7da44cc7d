package validator

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/volga-sh/picosafe/models"
	"github.com/volga-sh/picosafe/models/errors"
)

// BatchResult aggregates per-signature results against the Safe's current
// owner set and threshold.
type BatchResult struct {
	// Valid is true when the distinct valid owner count reaches the
	// threshold.
	Valid bool
	// ValidSigners lists the distinct owners (or the Safe itself) whose
	// signatures validated, in input order.
	ValidSigners []common.Address
	Threshold    *big.Int
	// Results holds one entry per input signature, in input order.
	Results []Result
}

// ValidateBatch checks all signatures concurrently and counts the distinct
// valid owners toward the Safe's threshold. Duplicate signatures from the
// same owner never increase the count, and one signature's provider
// failure never aborts the others. The returned error is non-nil only when
// the owner set or threshold cannot be read, or when a signature carries
// an unsupported discriminator.
func (v *Validator) ValidateBatch(
	ctx context.Context,
	safe common.Address,
	hash common.Hash,
	preimage []byte,
	sigs []models.SafeSignature,
) (*BatchResult, error) {
	if len(sigs) == 0 {
		return nil, errors.ErrNoSignatures
	}

	// Reject unsupported discriminators before issuing any network call.
	for _, sig := range sigs {
		if sig.Kind == models.SignatureECDSA {
			switch sig.V() {
			case 27, 28, 31, 32:
			default:
				return nil, &errors.UnknownSignatureTypeError{V: sig.V()}
			}
		}
	}

	owners, err := v.reader.Owners(ctx, safe)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owners: %w", err)
	}
	threshold, err := v.reader.Threshold(ctx, safe)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch threshold: %w", err)
	}

	ownerSet := make(map[common.Address]struct{}, len(owners))
	for _, owner := range owners {
		ownerSet[owner] = struct{}{}
	}

	results := make([]Result, len(sigs))
	g, gctx := errgroup.WithContext(ctx)
	for i, sig := range sigs {
		g.Go(func() error {
			result, err := v.ValidateSignature(gctx, safe, hash, preimage, sig)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counted := make(map[common.Address]struct{}, len(sigs))
	var validSigners []common.Address
	for i, result := range results {
		if !result.Valid {
			if result.Err != nil {
				v.logger.Debug().Err(result.Err).
					Str("signer", sigs[i].Signer.Hex()).
					Str("kind", sigs[i].Kind.String()).
					Msg("signature validation failed")
			}
			continue
		}
		// Only current owners count toward the threshold; the Safe
		// itself counts for self-approved hashes.
		_, isOwner := ownerSet[result.Signer]
		if !isOwner && result.Signer != safe {
			continue
		}
		if _, seen := counted[result.Signer]; seen {
			continue
		}
		counted[result.Signer] = struct{}{}
		validSigners = append(validSigners, result.Signer)
	}

	return &BatchResult{
		Valid:        uint64(len(validSigners)) >= threshold.Uint64(),
		ValidSigners: validSigners,
		Threshold:    threshold,
		Results:      results,
	}, nil
}
