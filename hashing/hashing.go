// Package hashing implements the EIP-712 hashing scheme of the Safe
// contracts: the SafeTx transaction schema, the SafeMessage schema and the
// two-field domain {chainId, verifyingContract}. The hashes are built by
// hand so they match the on-chain keccak computation bit for bit; a typed
// data export is provided for wallets that sign through eth_signTypedData.
package hashing

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/volga-sh/picosafe/encoding"
	"github.com/volga-sh/picosafe/models"
)

var (
	// domainTypeHash = keccak256("EIP712Domain(uint256 chainId,address verifyingContract)")
	domainTypeHash = crypto.Keccak256Hash(
		[]byte("EIP712Domain(uint256 chainId,address verifyingContract)"),
	)

	// safeTxTypeHash covers the ten ordered SafeTx fields.
	safeTxTypeHash = crypto.Keccak256Hash([]byte(
		"SafeTx(address to,uint256 value,bytes data,uint8 operation," +
			"uint256 safeTxGas,uint256 baseGas,uint256 gasPrice," +
			"address gasToken,address refundReceiver,uint256 nonce)",
	))

	safeMessageTypeHash = crypto.Keccak256Hash([]byte("SafeMessage(bytes message)"))
)

// DomainSeparator hashes the signing domain. Different chain IDs or Safe
// addresses always yield different separators.
func DomainSeparator(chainID *big.Int, safe common.Address) (common.Hash, error) {
	chainWord, err := encoding.Uint256Word(chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid chain id: %w", err)
	}
	return crypto.Keccak256Hash(
		domainTypeHash.Bytes(),
		chainWord,
		encoding.AddressWord(safe),
	), nil
}

// SafeTransactionStructHash hashes the SafeTx struct without the domain.
// The field order mirrors the on-chain SAFE_TX_TYPEHASH encoding; data is
// hashed into its slot per the EIP-712 rules for dynamic types.
func SafeTransactionStructHash(tx *models.SafeTransaction) (common.Hash, error) {
	words := []struct {
		name  string
		value *big.Int
	}{
		{"value", tx.Value},
		{"operation", big.NewInt(int64(tx.Operation))},
		{"safeTxGas", tx.SafeTxGas},
		{"baseGas", tx.BaseGas},
		{"gasPrice", tx.GasPrice},
		{"nonce", tx.Nonce},
	}
	encoded := make(map[string][]byte, len(words))
	for _, w := range words {
		word, err := encoding.Uint256Word(w.value)
		if err != nil {
			return common.Hash{}, fmt.Errorf("invalid %s: %w", w.name, err)
		}
		encoded[w.name] = word
	}

	fields := make([]byte, 0, 11*encoding.WordSize)
	fields = append(fields, safeTxTypeHash.Bytes()...)
	fields = append(fields, encoding.AddressWord(tx.To)...)
	fields = append(fields, encoded["value"]...)
	fields = append(fields, crypto.Keccak256(tx.Data)...)
	fields = append(fields, encoded["operation"]...)
	fields = append(fields, encoded["safeTxGas"]...)
	fields = append(fields, encoded["baseGas"]...)
	fields = append(fields, encoded["gasPrice"]...)
	fields = append(fields, encoding.AddressWord(tx.GasToken)...)
	fields = append(fields, encoding.AddressWord(tx.RefundReceiver)...)
	fields = append(fields, encoded["nonce"]...)

	return crypto.Keccak256Hash(fields), nil
}

// SafeTransactionPreimage returns the 66-byte EIP-712 signing pre-image
// 0x19 || 0x01 || domainSeparator || structHash. Legacy contract signature
// schemes sign this pre-image rather than its hash.
func SafeTransactionPreimage(tx *models.SafeTransaction) ([]byte, error) {
	domain, err := DomainSeparator(tx.ChainID, tx.Safe)
	if err != nil {
		return nil, err
	}
	structHash, err := SafeTransactionStructHash(tx)
	if err != nil {
		return nil, err
	}
	return eip712Preimage(domain, structHash), nil
}

// SafeTransactionHash returns the hash owners sign to authorize tx.
func SafeTransactionHash(tx *models.SafeTransaction) (common.Hash, error) {
	preimage, err := SafeTransactionPreimage(tx)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(preimage), nil
}

// SafeMessagePreimage returns the signing pre-image for an off-chain
// SafeMessage scoped to the given Safe and chain.
func SafeMessagePreimage(chainID *big.Int, safe common.Address, message []byte) ([]byte, error) {
	domain, err := DomainSeparator(chainID, safe)
	if err != nil {
		return nil, err
	}
	structHash := crypto.Keccak256Hash(
		safeMessageTypeHash.Bytes(),
		crypto.Keccak256(message),
	)
	return eip712Preimage(domain, structHash), nil
}

// SafeMessageHash returns the hash owners sign to approve an off-chain
// message.
func SafeMessageHash(chainID *big.Int, safe common.Address, message []byte) (common.Hash, error) {
	preimage, err := SafeMessagePreimage(chainID, safe, message)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(preimage), nil
}

func eip712Preimage(domain, structHash common.Hash) []byte {
	preimage := make([]byte, 0, 2+2*common.HashLength)
	preimage = append(preimage, 0x19, 0x01)
	preimage = append(preimage, domain.Bytes()...)
	preimage = append(preimage, structHash.Bytes()...)
	return preimage
}

// TypedData exports tx as EIP-712 typed data for wallets that sign through
// eth_signTypedData. Hashing the result with geth's typed data hasher
// yields the same bytes as SafeTransactionHash.
func TypedData(tx *models.SafeTransaction) apitypes.TypedData {
	var data hexutil.Bytes = tx.Data
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"SafeTx": []apitypes.Type{
				{Name: "to", Type: "address"},
				{Name: "value", Type: "uint256"},
				{Name: "data", Type: "bytes"},
				{Name: "operation", Type: "uint8"},
				{Name: "safeTxGas", Type: "uint256"},
				{Name: "baseGas", Type: "uint256"},
				{Name: "gasPrice", Type: "uint256"},
				{Name: "gasToken", Type: "address"},
				{Name: "refundReceiver", Type: "address"},
				{Name: "nonce", Type: "uint256"},
			},
		},
		Domain: apitypes.TypedDataDomain{
			ChainId:           (*math.HexOrDecimal256)(tx.ChainID),
			VerifyingContract: tx.Safe.Hex(),
		},
		PrimaryType: "SafeTx",
		Message: apitypes.TypedDataMessage{
			"to":             tx.To.Hex(),
			"value":          bigOrZero(tx.Value).String(),
			"data":           data,
			"operation":      fmt.Sprintf("%d", tx.Operation),
			"safeTxGas":      bigOrZero(tx.SafeTxGas).String(),
			"baseGas":        bigOrZero(tx.BaseGas).String(),
			"gasPrice":       bigOrZero(tx.GasPrice).String(),
			"gasToken":       tx.GasToken.Hex(),
			"refundReceiver": tx.RefundReceiver.Hex(),
			"nonce":          bigOrZero(tx.Nonce).String(),
		},
	}
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
