package predict

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/volga-sh/picosafe/deploy"
	"github.com/volga-sh/picosafe/models"
)

var (
	owners    []string
	threshold uint64
	saltNonce string
	singleton string
	factory   string
)

var Cmd = &cobra.Command{
	Use:   "predict",
	Short: "Predicts the deterministic address of a Safe deployment",
	RunE: func(*cobra.Command, []string) error {
		cfg := models.SafeDeploymentConfig{Threshold: threshold}
		for _, owner := range owners {
			if !common.IsHexAddress(owner) {
				return fmt.Errorf("invalid owner address: %s", owner)
			}
			cfg.Owners = append(cfg.Owners, common.HexToAddress(owner))
		}
		if saltNonce != "" {
			nonce, ok := new(big.Int).SetString(saltNonce, 0)
			if !ok {
				return fmt.Errorf("invalid salt nonce: %s", saltNonce)
			}
			cfg.SaltNonce = nonce
		}
		if singleton != "" {
			cfg.Singleton = common.HexToAddress(singleton)
		}
		if factory != "" {
			cfg.Factory = common.HexToAddress(factory)
		}

		addr, err := deploy.PredictAddress(cfg)
		if err != nil {
			return err
		}
		fmt.Println(addr.Hex())
		return nil
	},
}

func init() {
	Cmd.Flags().StringSliceVar(&owners, "owner", nil, "owner address, repeatable")
	Cmd.Flags().Uint64Var(&threshold, "threshold", 1, "confirmation threshold")
	Cmd.Flags().StringVar(&saltNonce, "salt-nonce", "", "CREATE2 salt nonce, decimal or 0x hex")
	Cmd.Flags().StringVar(&singleton, "singleton", "", "singleton address override")
	Cmd.Flags().StringVar(&factory, "factory", "", "proxy factory address override")
}
