package encoding

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"

	"github.com/volga-sh/picosafe/models"
	"github.com/volga-sh/picosafe/models/errors"
)

// signature static-part marker bytes, mirroring the Safe's own splitting of
// the v byte inside checkNSignatures.
const (
	contractMarker     = 0x00
	approvedHashMarker = 0x01
)

// EncodeSignatures packs signatures into the bytes format execTransaction
// expects. One 65-byte static slot is emitted per signature, sorted by
// ascending signer address:
//
//   - ECDSA: the raw r||s||v bytes.
//   - Approved hash: pad32(signer) || pad32(0) || 0x01.
//   - Contract: pad32(signer) || pad32(offset) || 0x00, where offset points
//     past all static slots into the dynamic region.
//
// The dynamic region follows the static slots and holds each contract
// signature's payload as pad32(len) || payload, in the same sorted order.
func EncodeSignatures(sigs []models.SafeSignature) ([]byte, error) {
	if len(sigs) == 0 {
		return nil, errors.ErrNoSignatures
	}

	sorted := make([]models.SafeSignature, len(sigs))
	copy(sorted, sigs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Signer.Bytes(), sorted[j].Signer.Bytes()) < 0
	})

	staticLen := len(sorted) * 65
	static := make([]byte, 0, staticLen)
	var dynamic []byte

	for _, sig := range sorted {
		switch sig.Kind {
		case models.SignatureECDSA:
			if len(sig.Data) != 65 {
				return nil, &errors.InvalidLengthError{
					What: "ecdsa signature",
					Want: 65,
					Got:  len(sig.Data),
				}
			}
			static = append(static, sig.Data...)

		case models.SignatureApprovedHash:
			static = append(static, AddressWord(sig.Signer)...)
			static = append(static, make([]byte, WordSize)...)
			static = append(static, approvedHashMarker)

		case models.SignatureContract:
			offset, err := Uint256Word(big.NewInt(int64(staticLen + len(dynamic))))
			if err != nil {
				return nil, err
			}
			static = append(static, AddressWord(sig.Signer)...)
			static = append(static, offset...)
			static = append(static, contractMarker)

			length, err := Uint256Word(bigLen(sig.Data))
			if err != nil {
				return nil, err
			}
			dynamic = append(dynamic, length...)
			dynamic = append(dynamic, sig.Data...)

		default:
			return nil, fmt.Errorf("cannot encode signature kind %s", sig.Kind)
		}
	}

	return append(static, dynamic...), nil
}
