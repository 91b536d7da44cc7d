package contracts

// 4-byte function selectors the engine emits calldata for. Kept as raw
// constants so packed encoders do not need an ABI round trip.
var (
	SetGuardSelector      = []byte{0xe1, 0x9a, 0x9d, 0xd9} // setGuard(address)
	EnableModuleSelector  = []byte{0x61, 0x0b, 0x59, 0x25} // enableModule(address)
	DisableModuleSelector = []byte{0xe0, 0x09, 0xcf, 0xde} // disableModule(address,address)
	MultiSendSelector     = []byte{0x8d, 0x80, 0xff, 0x0a} // multiSend(bytes)

	AddOwnerSelector        = []byte{0x0d, 0x58, 0x2f, 0x13} // addOwnerWithThreshold(address,uint256)
	RemoveOwnerSelector     = []byte{0xf8, 0xdc, 0x5d, 0xd9} // removeOwner(address,address,uint256)
	SwapOwnerSelector       = []byte{0xe3, 0x18, 0xb5, 0x2b} // swapOwner(address,address,address)
	ChangeThresholdSelector = []byte{0x69, 0x4e, 0x80, 0xc3} // changeThreshold(uint256)
)

// EIP-1271 magic values returned by isValidSignature.
var (
	// ERC1271Magic is the return value of the current
	// isValidSignature(bytes32,bytes) variant.
	ERC1271Magic = [4]byte{0x16, 0x26, 0xba, 0x7e}

	// ERC1271LegacyMagic is the return value of the legacy
	// isValidSignature(bytes,bytes) variant that verifies the raw
	// pre-image instead of its hash.
	ERC1271LegacyMagic = [4]byte{0x20, 0xc1, 0x3b, 0x0b}
)
