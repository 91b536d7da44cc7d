package models

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volga-sh/picosafe/models/errors"
)

func TestSignatureConstructors(t *testing.T) {
	signer := common.HexToAddress("0x0000000000000000000000000000000000000011")

	t.Run("ecdsa requires 65 bytes", func(t *testing.T) {
		sig, err := NewECDSASignature(signer, make([]byte, 65))
		require.NoError(t, err)
		assert.Equal(t, SignatureECDSA, sig.Kind)
		assert.Equal(t, signer, sig.Signer)

		_, err = NewECDSASignature(signer, make([]byte, 64))
		require.Error(t, err)
		var length *errors.InvalidLengthError
		require.ErrorAs(t, err, &length)
		assert.Equal(t, 65, length.Want)
	})

	t.Run("approved hash carries no payload", func(t *testing.T) {
		sig := NewApprovedHashSignature(signer)
		assert.Equal(t, SignatureApprovedHash, sig.Kind)
		assert.Empty(t, sig.Data)
		assert.False(t, sig.Dynamic())
	})

	t.Run("contract payload may be empty", func(t *testing.T) {
		sig := NewContractSignature(signer, nil)
		assert.Equal(t, SignatureContract, sig.Kind)
		assert.True(t, sig.Dynamic())
	})
}

func TestSignatureV(t *testing.T) {
	signer := common.HexToAddress("0x0000000000000000000000000000000000000011")

	data := make([]byte, 65)
	data[64] = 28
	sig, err := NewECDSASignature(signer, data)
	require.NoError(t, err)
	assert.Equal(t, byte(28), sig.V())

	// non-ecdsa kinds have no discriminator
	assert.Equal(t, byte(0), NewApprovedHashSignature(signer).V())
	assert.Equal(t, byte(0), NewContractSignature(signer, data).V())
}

func TestSignatureKindString(t *testing.T) {
	assert.Equal(t, "ecdsa", SignatureECDSA.String())
	assert.Equal(t, "approved-hash", SignatureApprovedHash.String())
	assert.Equal(t, "contract", SignatureContract.String())
	assert.Equal(t, "unknown(9)", SignatureKind(9).String())
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "call", Call.String())
	assert.Equal(t, "delegatecall", DelegateCall.String())
}

func TestSafeTransactionJSON(t *testing.T) {
	tx := &SafeTransaction{
		Safe:           common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		ChainID:        big.NewInt(1),
		To:             common.HexToAddress("0x00000000000000000000000000000000000000bb"),
		Value:          big.NewInt(1000),
		Data:           []byte{0xde, 0xad},
		Operation:      DelegateCall,
		SafeTxGas:      big.NewInt(50000),
		BaseGas:        big.NewInt(21000),
		GasPrice:       big.NewInt(2),
		GasToken:       common.HexToAddress("0x00000000000000000000000000000000000000cc"),
		RefundReceiver: common.HexToAddress("0x00000000000000000000000000000000000000dd"),
		Nonce:          big.NewInt(7),
	}

	t.Run("round trip", func(t *testing.T) {
		encoded, err := json.Marshal(tx)
		require.NoError(t, err)

		var decoded SafeTransaction
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.Equal(t, tx.Safe, decoded.Safe)
		assert.Zero(t, tx.ChainID.Cmp(decoded.ChainID))
		assert.Equal(t, tx.To, decoded.To)
		assert.Zero(t, tx.Value.Cmp(decoded.Value))
		assert.Equal(t, tx.Data, []byte(decoded.Data))
		assert.Equal(t, tx.Operation, decoded.Operation)
		assert.Zero(t, tx.Nonce.Cmp(decoded.Nonce))
	})

	t.Run("uses the transaction service field names", func(t *testing.T) {
		encoded, err := json.Marshal(tx)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(encoded, &fields))
		for _, key := range []string{
			"safe", "chainId", "to", "value", "data", "operation",
			"safeTxGas", "baseGas", "gasPrice", "gasToken", "refundReceiver", "nonce",
		} {
			assert.Contains(t, fields, key)
		}
		assert.Equal(t, float64(1), fields["operation"])
	})
}

func TestSafeDeploymentConfigValidate(t *testing.T) {
	owner := common.HexToAddress("0x0000000000000000000000000000000000000011")
	other := common.HexToAddress("0x0000000000000000000000000000000000000022")

	t.Run("valid", func(t *testing.T) {
		cfg := SafeDeploymentConfig{Owners: []common.Address{owner, other}, Threshold: 2}
		require.NoError(t, cfg.Validate())
	})

	for name, cfg := range map[string]SafeDeploymentConfig{
		"no owners":          {Threshold: 1},
		"zero threshold":     {Owners: []common.Address{owner}, Threshold: 0},
		"threshold too high": {Owners: []common.Address{owner}, Threshold: 2},
		"zero owner":         {Owners: []common.Address{{}}, Threshold: 1},
		"duplicate owner":    {Owners: []common.Address{owner, owner}, Threshold: 1},
	} {
		t.Run(name, func(t *testing.T) {
			require.Error(t, cfg.Validate())
		})
	}
}
