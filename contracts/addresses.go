// Package contracts pins the canonical Safe v1.3.0 deployment addresses,
// function selectors and ABI fragments the engine encodes against. The
// addresses are identical across all EVM chains thanks to deterministic
// deployment.
package contracts

import "github.com/ethereum/go-ethereum/common"

var (
	// Singleton is the Safe master copy every proxy delegates to.
	Singleton = common.HexToAddress("0xd9Db270c1B5E3Bd161E8c8503c55cEABeE709552")

	// ProxyFactory deploys Safe proxies via CREATE2.
	ProxyFactory = common.HexToAddress("0xa6B71E26C5e0845f74c812102Ca7114b6a896AB2")

	// FallbackHandler is the default CompatibilityFallbackHandler wired in
	// during setup.
	FallbackHandler = common.HexToAddress("0xf48f2B2d2a534e402487b3ee7C18c33Aec0Fe5e4")

	// MultiSend executes packed batches of calls and delegatecalls.
	MultiSend = common.HexToAddress("0xA238CBeb142c10Ef7Ad8442C6D1f9E89e07e7761")

	// MultiSendCallOnly is the MultiSend variant that refuses delegate
	// sub-calls; batched Safe transactions target it.
	MultiSendCallOnly = common.HexToAddress("0x40A2aCCbd92BCA938b02010E17A5b8929b49130D")

	// Sentinel is the head marker of the Safe's owner and module linked
	// lists.
	Sentinel = common.HexToAddress("0x0000000000000000000000000000000000000001")
)
