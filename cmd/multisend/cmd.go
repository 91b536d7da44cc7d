package multisend

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/volga-sh/picosafe/encoding"
	"github.com/volga-sh/picosafe/models"
)

var calls []string

var Cmd = &cobra.Command{
	Use:   "multisend",
	Short: "Packs calls into a MultiSend batch blob",
	Long: "Packs calls into the multiSend(bytes) calldata executed through " +
		"the MultiSendCallOnly contract. Each call is given as to:value:data " +
		"with value in wei and data as 0x-prefixed hex; value and data may " +
		"be empty.",
	RunE: func(*cobra.Command, []string) error {
		var txs []models.MetaTransaction
		for _, call := range calls {
			tx, err := parseCall(call)
			if err != nil {
				return err
			}
			txs = append(txs, tx)
		}

		calldata, err := encoding.EncodeMultiSendCall(txs)
		if err != nil {
			return err
		}
		fmt.Println(hexutil.Encode(calldata))
		return nil
	},
}

func parseCall(call string) (models.MetaTransaction, error) {
	parts := strings.SplitN(call, ":", 3)
	if !common.IsHexAddress(parts[0]) {
		return models.MetaTransaction{}, fmt.Errorf("invalid call target: %s", parts[0])
	}
	tx := models.MetaTransaction{To: common.HexToAddress(parts[0])}

	if len(parts) > 1 && parts[1] != "" {
		value, ok := new(big.Int).SetString(parts[1], 0)
		if !ok {
			return models.MetaTransaction{}, fmt.Errorf("invalid call value: %s", parts[1])
		}
		tx.Value = value
	}
	if len(parts) > 2 && parts[2] != "" {
		data, err := hexutil.Decode(parts[2])
		if err != nil {
			return models.MetaTransaction{}, fmt.Errorf("invalid call data: %w", err)
		}
		tx.Data = data
	}
	return tx, nil
}

func init() {
	Cmd.Flags().StringArrayVar(&calls, "call", nil, "call as to:value:data, repeatable")
}
