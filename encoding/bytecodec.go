// Package encoding implements the packed byte formats of the Safe protocol:
// 32-byte slot padding, selector-prefixed calldata, the MultiSend batch
// blob and the on-chain signature bytes layout. Everything here is pure;
// any deviation from the contract's own decoding rejects or, worse,
// misroutes a transaction, so the layouts are hand-built rather than
// produced by a generic ABI encoder wherever the contract side is not
// standard ABI.
package encoding

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/volga-sh/picosafe/models/errors"
)

// WordSize is the width of a single ABI slot.
const WordSize = 32

// SelectorSize is the width of a function selector.
const SelectorSize = 4

// LeftPad returns value left-padded with zeros to size bytes. Values wider
// than size are a length error, never truncated.
func LeftPad(value []byte, size int) ([]byte, error) {
	if len(value) > size {
		return nil, &errors.OverflowError{What: "padded value", Max: size}
	}
	padded := make([]byte, size)
	copy(padded[size-len(value):], value)
	return padded, nil
}

// LeftPad32 pads value into a single 32-byte slot.
func LeftPad32(value []byte) ([]byte, error) {
	return LeftPad(value, WordSize)
}

// AddressWord encodes an address right-aligned in a 32-byte slot.
func AddressWord(addr common.Address) []byte {
	word := make([]byte, WordSize)
	copy(word[WordSize-common.AddressLength:], addr.Bytes())
	return word
}

// Uint256Word encodes v as a big-endian 32-byte slot. A nil value encodes
// as zero; values wider than 256 bits are an overflow error.
func Uint256Word(v *big.Int) ([]byte, error) {
	word := make([]byte, WordSize)
	if v == nil {
		return word, nil
	}
	if v.Sign() < 0 || v.BitLen() > 256 {
		return nil, &errors.OverflowError{What: "uint256 value", Max: WordSize}
	}
	v.FillBytes(word)
	return word, nil
}

// EncodeWithSelector concatenates a 4-byte selector with its arguments,
// each padded into its own 32-byte slot.
func EncodeWithSelector(selector []byte, args ...[]byte) ([]byte, error) {
	if len(selector) != SelectorSize {
		return nil, &errors.InvalidLengthError{
			What: "selector",
			Want: SelectorSize,
			Got:  len(selector),
		}
	}
	out := make([]byte, 0, SelectorSize+len(args)*WordSize)
	out = append(out, selector...)
	for _, arg := range args {
		slot, err := LeftPad32(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, slot...)
	}
	return out, nil
}
