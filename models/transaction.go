package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goccy/go-json"
)

// Operation is the call type a Safe executes for a transaction.
type Operation uint8

const (
	Call         Operation = 0
	DelegateCall Operation = 1
)

func (o Operation) String() string {
	if o == DelegateCall {
		return "delegatecall"
	}
	return "call"
}

// MetaTransaction is a single call a Safe should perform. It carries no
// execution context of its own; the builder decides whether it is executed
// directly or wrapped into a MultiSend batch.
type MetaTransaction struct {
	To    common.Address
	Value *big.Int
	Data  []byte
}

// SafeTransaction is the full canonical transaction a Safe signs and
// executes. All ten EIP-712 fields are present, together with the Safe
// address and chain ID that scope the signing domain.
type SafeTransaction struct {
	Safe    common.Address
	ChainID *big.Int

	To             common.Address
	Value          *big.Int
	Data           []byte
	Operation      Operation
	SafeTxGas      *big.Int
	BaseGas        *big.Int
	GasPrice       *big.Int
	GasToken       common.Address
	RefundReceiver common.Address
	Nonce          *big.Int
}

// safeTransactionJSON mirrors the field names used by the Safe transaction
// service so serialized transactions interoperate with existing tooling.
type safeTransactionJSON struct {
	Safe           common.Address `json:"safe"`
	ChainID        *hexutil.Big   `json:"chainId"`
	To             common.Address `json:"to"`
	Value          *hexutil.Big   `json:"value"`
	Data           hexutil.Bytes  `json:"data"`
	Operation      uint8          `json:"operation"`
	SafeTxGas      *hexutil.Big   `json:"safeTxGas"`
	BaseGas        *hexutil.Big   `json:"baseGas"`
	GasPrice       *hexutil.Big   `json:"gasPrice"`
	GasToken       common.Address `json:"gasToken"`
	RefundReceiver common.Address `json:"refundReceiver"`
	Nonce          *hexutil.Big   `json:"nonce"`
}

func (tx *SafeTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(&safeTransactionJSON{
		Safe:           tx.Safe,
		ChainID:        (*hexutil.Big)(tx.ChainID),
		To:             tx.To,
		Value:          (*hexutil.Big)(tx.Value),
		Data:           tx.Data,
		Operation:      uint8(tx.Operation),
		SafeTxGas:      (*hexutil.Big)(tx.SafeTxGas),
		BaseGas:        (*hexutil.Big)(tx.BaseGas),
		GasPrice:       (*hexutil.Big)(tx.GasPrice),
		GasToken:       tx.GasToken,
		RefundReceiver: tx.RefundReceiver,
		Nonce:          (*hexutil.Big)(tx.Nonce),
	})
}

func (tx *SafeTransaction) UnmarshalJSON(data []byte) error {
	var raw safeTransactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	tx.Safe = raw.Safe
	tx.ChainID = (*big.Int)(raw.ChainID)
	tx.To = raw.To
	tx.Value = (*big.Int)(raw.Value)
	tx.Data = raw.Data
	tx.Operation = Operation(raw.Operation)
	tx.SafeTxGas = (*big.Int)(raw.SafeTxGas)
	tx.BaseGas = (*big.Int)(raw.BaseGas)
	tx.GasPrice = (*big.Int)(raw.GasPrice)
	tx.GasToken = raw.GasToken
	tx.RefundReceiver = raw.RefundReceiver
	tx.Nonce = (*big.Int)(raw.Nonce)
	return nil
}
