package models

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// SafeDeploymentConfig holds the parameters for deploying a new Safe proxy.
// Owners keep their insertion order; the setup call encodes them verbatim so
// the on-chain owner list layout stays stable.
type SafeDeploymentConfig struct {
	Owners    []common.Address
	Threshold uint64

	// Optional delegate call executed by setup() after initialization.
	To   common.Address
	Data []byte

	FallbackHandler common.Address
	PaymentToken    common.Address
	Payment         *big.Int
	PaymentReceiver common.Address

	SaltNonce *big.Int
	Singleton common.Address
	Factory   common.Address
}

// Validate checks the owner/threshold invariants before any encoding work.
func (c *SafeDeploymentConfig) Validate() error {
	if len(c.Owners) == 0 {
		return fmt.Errorf("at least one owner is required")
	}
	if c.Threshold < 1 || c.Threshold > uint64(len(c.Owners)) {
		return fmt.Errorf("threshold must be between 1 and %d, got %d", len(c.Owners), c.Threshold)
	}
	seen := make(map[common.Address]struct{}, len(c.Owners))
	for _, owner := range c.Owners {
		if owner == (common.Address{}) {
			return fmt.Errorf("owner cannot be the zero address")
		}
		if _, ok := seen[owner]; ok {
			return fmt.Errorf("duplicate owner %s", owner)
		}
		seen[owner] = struct{}{}
	}
	return nil
}
