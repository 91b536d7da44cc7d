package encoding

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volga-sh/picosafe/models/errors"
)

func TestLeftPad32(t *testing.T) {
	t.Run("pads short values", func(t *testing.T) {
		padded, err := LeftPad32([]byte{0x01, 0x02})
		require.NoError(t, err)
		require.Len(t, padded, 32)
		assert.Equal(t, []byte{0x01, 0x02}, padded[30:])
		assert.Equal(t, make([]byte, 30), padded[:30])
	})

	t.Run("keeps full-width values", func(t *testing.T) {
		value := make([]byte, 32)
		value[0] = 0xff
		padded, err := LeftPad32(value)
		require.NoError(t, err)
		assert.Equal(t, value, padded)
	})

	t.Run("rejects oversized values", func(t *testing.T) {
		_, err := LeftPad32(make([]byte, 33))
		require.Error(t, err)
		var overflow *errors.OverflowError
		assert.ErrorAs(t, err, &overflow)
	})
}

func TestUint256Word(t *testing.T) {
	t.Run("nil encodes as zero", func(t *testing.T) {
		word, err := Uint256Word(nil)
		require.NoError(t, err)
		assert.Equal(t, make([]byte, 32), word)
	})

	t.Run("big-endian layout", func(t *testing.T) {
		word, err := Uint256Word(big.NewInt(0x0102))
		require.NoError(t, err)
		assert.Equal(t, byte(0x01), word[30])
		assert.Equal(t, byte(0x02), word[31])
	})

	t.Run("rejects values wider than 256 bits", func(t *testing.T) {
		tooWide := new(big.Int).Lsh(big.NewInt(1), 256)
		_, err := Uint256Word(tooWide)
		require.Error(t, err)
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := Uint256Word(big.NewInt(-1))
		require.Error(t, err)
	})
}

func TestEncodeWithSelector(t *testing.T) {
	selector := []byte{0xe1, 0x9a, 0x9d, 0xd9}
	addr := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	t.Run("selector plus one slot per argument", func(t *testing.T) {
		out, err := EncodeWithSelector(selector, addr.Bytes())
		require.NoError(t, err)
		require.Len(t, out, 4+32)
		assert.Equal(t, selector, out[:4])
		assert.Equal(t, AddressWord(addr), out[4:])
	})

	t.Run("no arguments yields bare selector", func(t *testing.T) {
		out, err := EncodeWithSelector(selector)
		require.NoError(t, err)
		assert.Equal(t, selector, out)
	})

	t.Run("rejects short selector", func(t *testing.T) {
		_, err := EncodeWithSelector([]byte{0x01, 0x02})
		require.Error(t, err)
		var length *errors.InvalidLengthError
		require.ErrorAs(t, err, &length)
		assert.Equal(t, 4, length.Want)
		assert.Equal(t, 2, length.Got)
	})

	t.Run("rejects oversized argument", func(t *testing.T) {
		_, err := EncodeWithSelector(selector, make([]byte, 33))
		require.Error(t, err)
	})
}
