package encoding

import (
	"fmt"
	"math/big"

	"github.com/volga-sh/picosafe/contracts"
	"github.com/volga-sh/picosafe/models"
	"github.com/volga-sh/picosafe/models/errors"
)

// EncodeMultiSend packs the given calls into the MultiSend wire blob. Each
// record is laid out as
//
//	operation (1 byte) | to (20 bytes) | value (uint256) | len(data) (uint256) | data
//
// with no padding between records and no length prefix on the outer array.
// The MultiSendCallOnly contract rejects delegate sub-calls, so every
// record carries operation 0.
func EncodeMultiSend(txs []models.MetaTransaction) ([]byte, error) {
	if len(txs) == 0 {
		return nil, errors.ErrNoTransactions
	}

	var packed []byte
	for i, tx := range txs {
		value, err := Uint256Word(tx.Value)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		length, err := Uint256Word(bigLen(tx.Data))
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}

		packed = append(packed, byte(models.Call))
		packed = append(packed, tx.To.Bytes()...)
		packed = append(packed, value...)
		packed = append(packed, length...)
		packed = append(packed, tx.Data...)
	}
	return packed, nil
}

// EncodeMultiSendCall wraps the packed blob into multiSend(bytes) calldata
// for delegatecall execution through the MultiSendCallOnly contract.
func EncodeMultiSendCall(txs []models.MetaTransaction) ([]byte, error) {
	packed, err := EncodeMultiSend(txs)
	if err != nil {
		return nil, err
	}
	calldata, err := contracts.MultiSendABI.Pack("multiSend", packed)
	if err != nil {
		return nil, fmt.Errorf("failed to pack multiSend call: %w", err)
	}
	return calldata, nil
}

func bigLen(b []byte) *big.Int {
	return big.NewInt(int64(len(b)))
}
