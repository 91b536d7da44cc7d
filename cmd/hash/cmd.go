package hash

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/volga-sh/picosafe/hashing"
	"github.com/volga-sh/picosafe/models"
)

var (
	safe      string
	chainID   uint64
	to        string
	value     string
	data      string
	operation uint8
	nonce     uint64
)

var Cmd = &cobra.Command{
	Use:   "hash",
	Short: "Computes the EIP-712 signing hash of a Safe transaction",
	RunE: func(*cobra.Command, []string) error {
		if !common.IsHexAddress(safe) {
			return fmt.Errorf("invalid safe address: %s", safe)
		}
		if !common.IsHexAddress(to) {
			return fmt.Errorf("invalid target address: %s", to)
		}

		tx := &models.SafeTransaction{
			Safe:      common.HexToAddress(safe),
			ChainID:   new(big.Int).SetUint64(chainID),
			To:        common.HexToAddress(to),
			Operation: models.Operation(operation),
			Nonce:     new(big.Int).SetUint64(nonce),
		}
		if value != "" {
			amount, ok := new(big.Int).SetString(value, 0)
			if !ok {
				return fmt.Errorf("invalid value: %s", value)
			}
			tx.Value = amount
		}
		if data != "" {
			payload, err := hexutil.Decode(data)
			if err != nil {
				return fmt.Errorf("invalid data: %w", err)
			}
			tx.Data = payload
		}

		txHash, err := hashing.SafeTransactionHash(tx)
		if err != nil {
			return err
		}
		fmt.Println(txHash.Hex())
		return nil
	},
}

func init() {
	Cmd.Flags().StringVar(&safe, "safe", "", "safe address")
	Cmd.Flags().Uint64Var(&chainID, "chain-id", 1, "chain id")
	Cmd.Flags().StringVar(&to, "to", "", "target address")
	Cmd.Flags().StringVar(&value, "value", "", "value in wei, decimal or 0x hex")
	Cmd.Flags().StringVar(&data, "data", "", "0x-prefixed calldata")
	Cmd.Flags().Uint8Var(&operation, "operation", 0, "0 for call, 1 for delegatecall")
	Cmd.Flags().Uint64Var(&nonce, "nonce", 0, "safe transaction nonce")

	_ = Cmd.MarkFlagRequired("safe")
	_ = Cmd.MarkFlagRequired("to")
}
