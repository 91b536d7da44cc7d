package contracts

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// safeABI covers the subset of the Safe singleton interface the engine
// encodes calls for or decodes results from.
const safeABI = `[
	{
		"inputs": [
			{"internalType": "address[]", "name": "_owners", "type": "address[]"},
			{"internalType": "uint256", "name": "_threshold", "type": "uint256"},
			{"internalType": "address", "name": "to", "type": "address"},
			{"internalType": "bytes", "name": "data", "type": "bytes"},
			{"internalType": "address", "name": "fallbackHandler", "type": "address"},
			{"internalType": "address", "name": "paymentToken", "type": "address"},
			{"internalType": "uint256", "name": "payment", "type": "uint256"},
			{"internalType": "address", "name": "paymentReceiver", "type": "address"}
		],
		"name": "setup",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "address", "name": "to", "type": "address"},
			{"internalType": "uint256", "name": "value", "type": "uint256"},
			{"internalType": "bytes", "name": "data", "type": "bytes"},
			{"internalType": "uint8", "name": "operation", "type": "uint8"},
			{"internalType": "uint256", "name": "safeTxGas", "type": "uint256"},
			{"internalType": "uint256", "name": "baseGas", "type": "uint256"},
			{"internalType": "uint256", "name": "gasPrice", "type": "uint256"},
			{"internalType": "address", "name": "gasToken", "type": "address"},
			{"internalType": "address", "name": "refundReceiver", "type": "address"},
			{"internalType": "bytes", "name": "signatures", "type": "bytes"}
		],
		"name": "execTransaction",
		"outputs": [{"internalType": "bool", "name": "success", "type": "bool"}],
		"stateMutability": "payable",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "address", "name": "owner", "type": "address"},
			{"internalType": "bytes32", "name": "hash", "type": "bytes32"}
		],
		"name": "approvedHashes",
		"outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "nonce",
		"outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "getOwners",
		"outputs": [{"internalType": "address[]", "name": "", "type": "address[]"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "getThreshold",
		"outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"internalType": "address", "name": "owner", "type": "address"}],
		"name": "isOwner",
		"outputs": [{"internalType": "bool", "name": "", "type": "bool"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "address", "name": "start", "type": "address"},
			{"internalType": "uint256", "name": "pageSize", "type": "uint256"}
		],
		"name": "getModulesPaginated",
		"outputs": [
			{"internalType": "address[]", "name": "array", "type": "address[]"},
			{"internalType": "address", "name": "next", "type": "address"}
		],
		"stateMutability": "view",
		"type": "function"
	}
]`

// proxyFactoryABI covers proxy deployment and the factory's own creation
// code getter used to cross-check address prediction.
const proxyFactoryABI = `[
	{
		"inputs": [
			{"internalType": "address", "name": "_singleton", "type": "address"},
			{"internalType": "bytes", "name": "initializer", "type": "bytes"},
			{"internalType": "uint256", "name": "saltNonce", "type": "uint256"}
		],
		"name": "createProxyWithNonce",
		"outputs": [{"internalType": "contract GnosisSafeProxy", "name": "proxy", "type": "address"}],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "proxyCreationCode",
		"outputs": [{"internalType": "bytes", "name": "", "type": "bytes"}],
		"stateMutability": "pure",
		"type": "function"
	}
]`

const multiSendABI = `[
	{
		"inputs": [{"internalType": "bytes", "name": "transactions", "type": "bytes"}],
		"name": "multiSend",
		"outputs": [],
		"stateMutability": "payable",
		"type": "function"
	}
]`

// erc1271ABI is the current isValidSignature variant (EIP-1271 final).
const erc1271ABI = `[
	{
		"inputs": [
			{"internalType": "bytes32", "name": "_dataHash", "type": "bytes32"},
			{"internalType": "bytes", "name": "_signature", "type": "bytes"}
		],
		"name": "isValidSignature",
		"outputs": [{"internalType": "bytes4", "name": "", "type": "bytes4"}],
		"stateMutability": "view",
		"type": "function"
	}
]`

// erc1271LegacyABI is the pre-final variant that verifies raw data bytes.
// It shares the method name with the current variant, so it lives in its
// own ABI to keep geth's overload mangling out of the call sites.
const erc1271LegacyABI = `[
	{
		"inputs": [
			{"internalType": "bytes", "name": "_data", "type": "bytes"},
			{"internalType": "bytes", "name": "_signature", "type": "bytes"}
		],
		"name": "isValidSignature",
		"outputs": [{"internalType": "bytes4", "name": "", "type": "bytes4"}],
		"stateMutability": "view",
		"type": "function"
	}
]`

var (
	SafeABI          = mustParseABI("safe", safeABI)
	ProxyFactoryABI  = mustParseABI("proxy factory", proxyFactoryABI)
	MultiSendABI     = mustParseABI("multisend", multiSendABI)
	ERC1271ABI       = mustParseABI("erc1271", erc1271ABI)
	ERC1271LegacyABI = mustParseABI("erc1271 legacy", erc1271LegacyABI)
)

func mustParseABI(name, raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse %s ABI: %v", name, err))
	}
	return parsed
}
