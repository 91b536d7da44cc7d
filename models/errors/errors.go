// Package errors defines the error taxonomy of the protocol engine.
//
// Encoding and lookup errors are returned (and should be treated as fatal)
// at construction time, before any network call. Validation failures are
// never modeled as errors; they are carried as values on validation results
// so batch validation can continue past individual failures.
package errors

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrNoTransactions is returned when a batch build or MultiSend
	// encoding is attempted with zero calls.
	ErrNoTransactions = errors.New("no transactions provided")

	// ErrNoSignatures is returned when signature encoding is attempted
	// with an empty signature set.
	ErrNoSignatures = errors.New("no signatures provided")
)

// InvalidLengthError reports a byte value that does not fit the width the
// wire format requires.
type InvalidLengthError struct {
	What string
	Want int
	Got  int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid %s length: expected %d bytes, got %d", e.What, e.Want, e.Got)
}

// OverflowError reports a value too wide for its fixed-size slot.
type OverflowError struct {
	What string
	Max  int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s exceeds %d bytes", e.What, e.Max)
}

// UnknownSignatureTypeError reports a signature discriminator byte outside
// the supported set {0, 1, 27, 28, 31, 32}. It is fatal: an unsupported
// scheme must never be silently treated as an invalid-but-benign signature.
type UnknownSignatureTypeError struct {
	V byte
}

func (e *UnknownSignatureTypeError) Error() string {
	return fmt.Sprintf("unknown signature type: v=%d", e.V)
}

// NotFoundError reports an entry missing from one of the Safe's on-chain
// linked lists (owners or modules).
type NotFoundError struct {
	Kind    string
	Address common.Address
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Address)
}

func NewOwnerNotFound(owner common.Address) *NotFoundError {
	return &NotFoundError{Kind: "owner", Address: owner}
}

func NewModuleNotFound(module common.Address) *NotFoundError {
	return &NotFoundError{Kind: "module", Address: module}
}
