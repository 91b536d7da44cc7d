package validator

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volga-sh/picosafe/contracts"
	"github.com/volga-sh/picosafe/models"
	"github.com/volga-sh/picosafe/models/errors"
)

// safeChain stubs the Safe reads and EIP-1271 calls ValidateBatch issues.
type safeChain struct {
	safe      common.Address
	owners    []common.Address
	threshold int64
	// approvals marks owners whose approvedHashes slot is non-zero.
	approvals map[common.Address]bool
	// magic1271 maps contract signers to the magic they return.
	magic1271 map[common.Address][4]byte
	// broken contracts fail every eth_call issued to them.
	broken map[common.Address]bool
}

func (c *safeChain) provider(t *testing.T) providerFunc {
	t.Helper()
	return func(_ context.Context, method string, params ...any) (string, error) {
		require.Equal(t, "eth_call", method)
		call := params[0].(map[string]any)
		to := common.HexToAddress(call["to"].(string))
		data, err := hexutil.Decode(call["data"].(string))
		require.NoError(t, err)

		if c.broken[to] {
			return "", fmt.Errorf("execution reverted")
		}
		if to != c.safe {
			magic, ok := c.magic1271[to]
			if !ok {
				return "0x", nil
			}
			out, err := contracts.ERC1271ABI.Methods["isValidSignature"].Outputs.Pack(magic)
			require.NoError(t, err)
			return hexutil.Encode(out), nil
		}

		switch string(data[:4]) {
		case string(contracts.SafeABI.Methods["getOwners"].ID):
			out, err := contracts.SafeABI.Methods["getOwners"].Outputs.Pack(c.owners)
			require.NoError(t, err)
			return hexutil.Encode(out), nil

		case string(contracts.SafeABI.Methods["getThreshold"].ID):
			out, err := contracts.SafeABI.Methods["getThreshold"].Outputs.Pack(big.NewInt(c.threshold))
			require.NoError(t, err)
			return hexutil.Encode(out), nil

		case string(contracts.SafeABI.Methods["approvedHashes"].ID):
			args, err := contracts.SafeABI.Methods["approvedHashes"].Inputs.Unpack(data[4:])
			require.NoError(t, err)
			slot := big.NewInt(0)
			if c.approvals[args[0].(common.Address)] {
				slot = big.NewInt(1)
			}
			out, err := contracts.SafeABI.Methods["approvedHashes"].Outputs.Pack(slot)
			require.NoError(t, err)
			return hexutil.Encode(out), nil

		default:
			return "", fmt.Errorf("unexpected safe call %x", data[:4])
		}
	}
}

func TestValidateBatch(t *testing.T) {
	ctx := context.Background()
	safe := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	hash := crypto.Keccak256Hash([]byte("transaction"))

	keyA, ownerA := newKey(t)
	keyB, ownerB := newKey(t)
	keyX, outsider := newKey(t)

	signA := func(t *testing.T) models.SafeSignature {
		t.Helper()
		sig, err := models.NewECDSASignature(ownerA, signHash(t, keyA, hash, 27))
		require.NoError(t, err)
		return sig
	}
	signB := func(t *testing.T) models.SafeSignature {
		t.Helper()
		sig, err := models.NewECDSASignature(ownerB, signHash(t, keyB, hash, 27))
		require.NoError(t, err)
		return sig
	}

	t.Run("empty batch fails", func(t *testing.T) {
		chain := &safeChain{safe: safe, owners: []common.Address{ownerA}, threshold: 1}
		v := New(chain.provider(t), zerolog.Nop())
		_, err := v.ValidateBatch(ctx, safe, hash, nil, nil)
		require.ErrorIs(t, err, errors.ErrNoSignatures)
	})

	t.Run("threshold met by distinct owners", func(t *testing.T) {
		chain := &safeChain{safe: safe, owners: []common.Address{ownerA, ownerB}, threshold: 2}
		v := New(chain.provider(t), zerolog.Nop())

		batch, err := v.ValidateBatch(ctx, safe, hash, nil,
			[]models.SafeSignature{signA(t), signB(t)})
		require.NoError(t, err)
		assert.True(t, batch.Valid)
		assert.ElementsMatch(t, []common.Address{ownerA, ownerB}, batch.ValidSigners)
		assert.Zero(t, big.NewInt(2).Cmp(batch.Threshold))
		require.Len(t, batch.Results, 2)
		assert.True(t, batch.Results[0].Valid)
		assert.True(t, batch.Results[1].Valid)
	})

	t.Run("duplicate owner counts once", func(t *testing.T) {
		chain := &safeChain{safe: safe, owners: []common.Address{ownerA, ownerB}, threshold: 2}
		v := New(chain.provider(t), zerolog.Nop())

		batch, err := v.ValidateBatch(ctx, safe, hash, nil,
			[]models.SafeSignature{signA(t), signA(t)})
		require.NoError(t, err)
		assert.False(t, batch.Valid)
		assert.Equal(t, []common.Address{ownerA}, batch.ValidSigners)
	})

	t.Run("non-owner signature never counts", func(t *testing.T) {
		chain := &safeChain{safe: safe, owners: []common.Address{ownerA, ownerB}, threshold: 2}
		v := New(chain.provider(t), zerolog.Nop())

		outsiderSig, err := models.NewECDSASignature(outsider, signHash(t, keyX, hash, 27))
		require.NoError(t, err)

		batch, err := v.ValidateBatch(ctx, safe, hash, nil,
			[]models.SafeSignature{signA(t), outsiderSig})
		require.NoError(t, err)
		assert.False(t, batch.Valid)
		assert.Equal(t, []common.Address{ownerA}, batch.ValidSigners)
		// the signature itself is cryptographically valid
		assert.True(t, batch.Results[1].Valid)
	})

	t.Run("mixed kinds reach the threshold together", func(t *testing.T) {
		contract := common.HexToAddress("0x0000000000000000000000000000000000000c01")
		chain := &safeChain{
			safe:      safe,
			owners:    []common.Address{ownerA, ownerB, contract},
			threshold: 3,
			approvals: map[common.Address]bool{ownerB: true},
			magic1271: map[common.Address][4]byte{contract: contracts.ERC1271Magic},
		}
		v := New(chain.provider(t), zerolog.Nop())

		batch, err := v.ValidateBatch(ctx, safe, hash, nil, []models.SafeSignature{
			signA(t),
			models.NewApprovedHashSignature(ownerB),
			models.NewContractSignature(contract, []byte{0x01}),
		})
		require.NoError(t, err)
		assert.True(t, batch.Valid)
		assert.Len(t, batch.ValidSigners, 3)
	})

	t.Run("safe itself counts for approved hashes", func(t *testing.T) {
		chain := &safeChain{
			safe:      safe,
			owners:    []common.Address{ownerA},
			threshold: 1,
			approvals: map[common.Address]bool{safe: true},
		}
		v := New(chain.provider(t), zerolog.Nop())

		batch, err := v.ValidateBatch(ctx, safe, hash, nil,
			[]models.SafeSignature{models.NewApprovedHashSignature(safe)})
		require.NoError(t, err)
		assert.True(t, batch.Valid)
		assert.Equal(t, []common.Address{safe}, batch.ValidSigners)
	})

	t.Run("one failing contract never aborts the rest", func(t *testing.T) {
		contract := common.HexToAddress("0x0000000000000000000000000000000000000c01")
		chain := &safeChain{
			safe:      safe,
			owners:    []common.Address{ownerA, contract},
			threshold: 1,
			broken:    map[common.Address]bool{contract: true},
		}
		v := New(chain.provider(t), zerolog.Nop())

		batch, err := v.ValidateBatch(ctx, safe, hash, nil, []models.SafeSignature{
			models.NewContractSignature(contract, []byte{0x01}),
			signA(t),
		})
		require.NoError(t, err)
		assert.True(t, batch.Valid)
		require.Len(t, batch.Results, 2)
		assert.False(t, batch.Results[0].Valid)
		assert.Error(t, batch.Results[0].Err)
		assert.True(t, batch.Results[1].Valid)
	})

	t.Run("unknown discriminator fails before any read", func(t *testing.T) {
		v := New(deadProvider(t), zerolog.Nop())

		data := signHash(t, keyA, hash, 27)
		data[64] = 29
		sig, err := models.NewECDSASignature(ownerA, data)
		require.NoError(t, err)

		_, err = v.ValidateBatch(ctx, safe, hash, nil, []models.SafeSignature{sig})
		require.Error(t, err)
		var unknown *errors.UnknownSignatureTypeError
		assert.ErrorAs(t, err, &unknown)
	})

	t.Run("owner read failure is fatal", func(t *testing.T) {
		provider := providerFunc(func(context.Context, string, ...any) (string, error) {
			return "", fmt.Errorf("connection refused")
		})
		v := New(provider, zerolog.Nop())
		_, err := v.ValidateBatch(ctx, safe, hash, nil, []models.SafeSignature{signA(t)})
		require.Error(t, err)
	})
}
