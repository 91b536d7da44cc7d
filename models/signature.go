package models

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/volga-sh/picosafe/models/errors"
)

// SignatureKind discriminates the three ways an owner can approve a Safe
// transaction. The kind is explicit rather than inferred from the presence
// of payload bytes, so every consumer can switch over it exhaustively.
type SignatureKind uint8

const (
	// SignatureECDSA is a 65-byte r||s||v signature. v 27/28 means the
	// EIP-712 hash was signed directly, v 31/32 means the eth_sign variant
	// (hash re-wrapped as a personal message) was used.
	SignatureECDSA SignatureKind = iota
	// SignatureApprovedHash marks an owner that pre-approved the
	// transaction hash on chain. It has no byte payload.
	SignatureApprovedHash
	// SignatureContract is an EIP-1271 contract signature with a
	// variable-length payload verified by the signer contract itself.
	SignatureContract
)

func (k SignatureKind) String() string {
	switch k {
	case SignatureECDSA:
		return "ecdsa"
	case SignatureApprovedHash:
		return "approved-hash"
	case SignatureContract:
		return "contract"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// SafeSignature is one signer's approval of a Safe transaction.
type SafeSignature struct {
	Signer common.Address
	Kind   SignatureKind
	// Data is the raw 65 bytes for ECDSA signatures, the verifier payload
	// for contract signatures and empty for approved hashes.
	Data []byte
}

// NewECDSASignature wraps a 65-byte r||s||v signature.
func NewECDSASignature(signer common.Address, data []byte) (SafeSignature, error) {
	if len(data) != 65 {
		return SafeSignature{}, &errors.InvalidLengthError{
			What: "ecdsa signature",
			Want: 65,
			Got:  len(data),
		}
	}
	return SafeSignature{Signer: signer, Kind: SignatureECDSA, Data: data}, nil
}

// NewApprovedHashSignature marks the given owner as having approved the
// transaction hash on chain.
func NewApprovedHashSignature(signer common.Address) SafeSignature {
	return SafeSignature{Signer: signer, Kind: SignatureApprovedHash}
}

// NewContractSignature wraps an EIP-1271 payload for a contract signer.
// The payload may be empty; whether it verifies is up to the contract.
func NewContractSignature(signer common.Address, data []byte) SafeSignature {
	return SafeSignature{Signer: signer, Kind: SignatureContract, Data: data}
}

// V returns the recovery byte of an ECDSA signature.
func (s SafeSignature) V() byte {
	if s.Kind != SignatureECDSA || len(s.Data) != 65 {
		return 0
	}
	return s.Data[64]
}

// Dynamic reports whether the signature occupies the dynamic region of the
// packed on-chain signature bytes.
func (s SafeSignature) Dynamic() bool {
	return s.Kind == SignatureContract
}
