// Package deploy predicts deterministic Safe proxy addresses and encodes
// the factory calls that deploy them. Prediction is a pure function of the
// deployment config: it reproduces the factory's own CREATE2 computation,
// so the predicted address equals the address createProxyWithNonce returns.
package deploy

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/volga-sh/picosafe/contracts"
	"github.com/volga-sh/picosafe/encoding"
	"github.com/volga-sh/picosafe/models"
)

// withDefaults fills in the canonical singleton, factory and fallback
// handler for any address left unset, and zero for absent payment fields.
func withDefaults(cfg models.SafeDeploymentConfig) models.SafeDeploymentConfig {
	if cfg.Singleton == (common.Address{}) {
		cfg.Singleton = contracts.Singleton
	}
	if cfg.Factory == (common.Address{}) {
		cfg.Factory = contracts.ProxyFactory
	}
	if cfg.FallbackHandler == (common.Address{}) {
		cfg.FallbackHandler = contracts.FallbackHandler
	}
	if cfg.Payment == nil {
		cfg.Payment = new(big.Int)
	}
	if cfg.SaltNonce == nil {
		cfg.SaltNonce = new(big.Int)
	}
	return cfg
}

// EncodeSetup builds the setup() calldata that initializes a fresh proxy:
// owners, threshold, the optional setup delegate call and payment terms.
func EncodeSetup(cfg models.SafeDeploymentConfig) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = withDefaults(cfg)

	calldata, err := contracts.SafeABI.Pack(
		"setup",
		cfg.Owners,
		new(big.Int).SetUint64(cfg.Threshold),
		cfg.To,
		cfg.Data,
		cfg.FallbackHandler,
		cfg.PaymentToken,
		cfg.Payment,
		cfg.PaymentReceiver,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack setup call: %w", err)
	}
	return calldata, nil
}

// EncodeCreateProxyWithNonce builds the factory calldata that deploys the
// proxy for cfg.
func EncodeCreateProxyWithNonce(cfg models.SafeDeploymentConfig) ([]byte, error) {
	initializer, err := EncodeSetup(cfg)
	if err != nil {
		return nil, err
	}
	cfg = withDefaults(cfg)

	calldata, err := contracts.ProxyFactoryABI.Pack(
		"createProxyWithNonce",
		cfg.Singleton,
		initializer,
		cfg.SaltNonce,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack createProxyWithNonce call: %w", err)
	}
	return calldata, nil
}

// CreationSalt derives the CREATE2 salt the factory uses:
// keccak256(keccak256(initializer) || pad32(saltNonce)).
func CreationSalt(initializer []byte, saltNonce *big.Int) (common.Hash, error) {
	nonceWord, err := encoding.Uint256Word(saltNonce)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid salt nonce: %w", err)
	}
	return crypto.Keccak256Hash(crypto.Keccak256(initializer), nonceWord), nil
}

// PredictAddress computes the address the factory will deploy the proxy at.
// The init code is the proxy creation bytecode with the singleton appended
// as its ABI-encoded constructor argument.
func PredictAddress(cfg models.SafeDeploymentConfig) (common.Address, error) {
	initializer, err := EncodeSetup(cfg)
	if err != nil {
		return common.Address{}, err
	}
	cfg = withDefaults(cfg)

	salt, err := CreationSalt(initializer, cfg.SaltNonce)
	if err != nil {
		return common.Address{}, err
	}

	initCode := make([]byte, 0, len(contracts.ProxyCreationCode)+encoding.WordSize)
	initCode = append(initCode, contracts.ProxyCreationCode...)
	initCode = append(initCode, encoding.AddressWord(cfg.Singleton)...)

	return crypto.CreateAddress2(cfg.Factory, salt, crypto.Keccak256(initCode)), nil
}
