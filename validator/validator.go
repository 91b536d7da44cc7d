// Package validator verifies Safe signatures ahead of submission. Each
// signature is checked the same way the Safe contract checks it: direct
// EIP-712 recovery, eth_sign-style recovery over the personal-message
// wrapped hash, an approvedHashes storage read, or an EIP-1271 call to the
// signer contract. Business failures (wrong signer, unapproved hash,
// reverting contract, provider errors) are reported on the result, never
// returned as errors, so batch validation always produces a complete
// per-signature result set. Only malformed input fails fast.
package validator

import (
	"bytes"
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"

	"github.com/volga-sh/picosafe/contracts"
	"github.com/volga-sh/picosafe/models"
	"github.com/volga-sh/picosafe/models/errors"
	"github.com/volga-sh/picosafe/requester"
)

// personalMessagePrefix is the EIP-191 prefix for a 32-byte payload. The
// struct hash is treated as raw bytes, not as a string, before prefixing.
const personalMessagePrefix = "\x19Ethereum Signed Message:\n32"

// Result is the outcome of validating a single signature. Err carries
// provider or contract failures; it is informational and never prevents
// the rest of a batch from being validated.
type Result struct {
	Valid  bool
	Signer common.Address
	Err    error
}

type Validator struct {
	provider requester.Provider
	reader   *requester.ChainReader
	logger   zerolog.Logger
}

func New(provider requester.Provider, logger zerolog.Logger) *Validator {
	return &Validator{
		provider: provider,
		reader:   requester.NewChainReader(provider, logger),
		logger:   logger.With().Str("component", "signature-validator").Logger(),
	}
}

// ValidateSignature checks one signature against the transaction hash and
// its EIP-712 pre-image. The returned error is non-nil only for
// unsupported input (an unknown discriminator byte); every other failure
// mode is reported on the Result.
func (v *Validator) ValidateSignature(
	ctx context.Context,
	safe common.Address,
	hash common.Hash,
	preimage []byte,
	sig models.SafeSignature,
) (Result, error) {
	switch sig.Kind {
	case models.SignatureContract:
		return v.validateContract(ctx, hash, preimage, sig), nil

	case models.SignatureApprovedHash:
		return v.validateApprovedHash(ctx, safe, hash, sig), nil

	case models.SignatureECDSA:
		switch vByte := sig.V(); vByte {
		case 27, 28:
			return validateRecovery(hash, sig, vByte-27), nil
		case 31, 32:
			personal := crypto.Keccak256Hash(
				[]byte(personalMessagePrefix),
				hash.Bytes(),
			)
			return validateRecovery(personal, sig, vByte-31), nil
		default:
			return Result{}, &errors.UnknownSignatureTypeError{V: vByte}
		}

	default:
		return Result{}, &errors.UnknownSignatureTypeError{V: byte(sig.Kind)}
	}
}

// validateRecovery recovers the signing address and compares it to the
// declared signer. Recovery failures are business failures, not fatal.
func validateRecovery(hash common.Hash, sig models.SafeSignature, recoveryID byte) Result {
	recoverable := make([]byte, 65)
	copy(recoverable, sig.Data[:64])
	recoverable[64] = recoveryID

	pubKey, err := crypto.SigToPub(hash.Bytes(), recoverable)
	if err != nil {
		return Result{Err: err}
	}
	recovered := crypto.PubkeyToAddress(*pubKey)
	if recovered != sig.Signer {
		return Result{}
	}
	return Result{Valid: true, Signer: recovered}
}

// validateApprovedHash checks the Safe's approvedHashes mapping; any
// non-zero value means the owner pre-approved the hash on chain.
func (v *Validator) validateApprovedHash(
	ctx context.Context,
	safe common.Address,
	hash common.Hash,
	sig models.SafeSignature,
) Result {
	approved, err := v.reader.ApprovedHash(ctx, safe, sig.Signer, hash)
	if err != nil {
		return Result{Err: err}
	}
	if approved.Sign() == 0 {
		return Result{}
	}
	return Result{Valid: true, Signer: sig.Signer}
}

// validateContract verifies an EIP-1271 signature by calling the signer
// contract, first with the 32-byte hash (current variant), then with the
// raw pre-image (legacy variant). An EOA called this way returns no data,
// which reads as a wrong magic value and yields a plain invalid result;
// the on-chain Safe relies on the same leniency.
func (v *Validator) validateContract(
	ctx context.Context,
	hash common.Hash,
	preimage []byte,
	sig models.SafeSignature,
) Result {
	calldata, err := contracts.ERC1271ABI.Pack("isValidSignature", hash, sig.Data)
	if err != nil {
		return Result{Err: err}
	}
	result, err := requester.ContractCall{To: sig.Signer, Data: calldata}.Execute(ctx, v.provider)
	if err != nil {
		return Result{Err: err}
	}
	if magicMatches(result, contracts.ERC1271Magic) {
		return Result{Valid: true, Signer: sig.Signer}
	}

	if len(preimage) == 0 {
		return Result{}
	}
	calldata, err = contracts.ERC1271LegacyABI.Pack("isValidSignature", preimage, sig.Data)
	if err != nil {
		return Result{Err: err}
	}
	result, err = requester.ContractCall{To: sig.Signer, Data: calldata}.Execute(ctx, v.provider)
	if err != nil {
		return Result{Err: err}
	}
	if magicMatches(result, contracts.ERC1271LegacyMagic) {
		return Result{Valid: true, Signer: sig.Signer}
	}
	return Result{}
}

func magicMatches(returnData []byte, magic [4]byte) bool {
	return len(returnData) >= 4 && bytes.Equal(returnData[:4], magic[:])
}
