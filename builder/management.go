package builder

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/volga-sh/picosafe/contracts"
	"github.com/volga-sh/picosafe/encoding"
	"github.com/volga-sh/picosafe/models/errors"
)

// Management calldata helpers. The Safe stores owners and modules as
// singly-linked lists headed by the sentinel address, so removal and swap
// calls need the predecessor of the affected entry; callers pass the
// current list as read from the chain.

// EncodeSetGuard builds setGuard(guard) calldata. The zero address clears
// the guard.
func EncodeSetGuard(guard common.Address) ([]byte, error) {
	return encoding.EncodeWithSelector(contracts.SetGuardSelector, guard.Bytes())
}

// EncodeEnableModule builds enableModule(module) calldata.
func EncodeEnableModule(module common.Address) ([]byte, error) {
	return encoding.EncodeWithSelector(contracts.EnableModuleSelector, module.Bytes())
}

// EncodeDisableModule builds disableModule(prevModule, module) calldata,
// resolving the predecessor from the current module list.
func EncodeDisableModule(modules []common.Address, module common.Address) ([]byte, error) {
	prev, err := previousEntry(modules, module, errors.NewModuleNotFound(module))
	if err != nil {
		return nil, err
	}
	return encoding.EncodeWithSelector(
		contracts.DisableModuleSelector,
		prev.Bytes(),
		module.Bytes(),
	)
}

// EncodeAddOwnerWithThreshold builds addOwnerWithThreshold(owner, threshold)
// calldata.
func EncodeAddOwnerWithThreshold(owner common.Address, threshold *big.Int) ([]byte, error) {
	thresholdWord, err := encoding.Uint256Word(threshold)
	if err != nil {
		return nil, err
	}
	return encoding.EncodeWithSelector(
		contracts.AddOwnerSelector,
		owner.Bytes(),
		thresholdWord,
	)
}

// EncodeRemoveOwner builds removeOwner(prevOwner, owner, threshold)
// calldata, resolving the predecessor from the current owner list.
func EncodeRemoveOwner(
	owners []common.Address,
	owner common.Address,
	threshold *big.Int,
) ([]byte, error) {
	prev, err := previousEntry(owners, owner, errors.NewOwnerNotFound(owner))
	if err != nil {
		return nil, err
	}
	thresholdWord, err := encoding.Uint256Word(threshold)
	if err != nil {
		return nil, err
	}
	return encoding.EncodeWithSelector(
		contracts.RemoveOwnerSelector,
		prev.Bytes(),
		owner.Bytes(),
		thresholdWord,
	)
}

// EncodeSwapOwner builds swapOwner(prevOwner, oldOwner, newOwner) calldata,
// resolving the predecessor from the current owner list.
func EncodeSwapOwner(owners []common.Address, oldOwner, newOwner common.Address) ([]byte, error) {
	prev, err := previousEntry(owners, oldOwner, errors.NewOwnerNotFound(oldOwner))
	if err != nil {
		return nil, err
	}
	return encoding.EncodeWithSelector(
		contracts.SwapOwnerSelector,
		prev.Bytes(),
		oldOwner.Bytes(),
		newOwner.Bytes(),
	)
}

// EncodeChangeThreshold builds changeThreshold(threshold) calldata.
func EncodeChangeThreshold(threshold *big.Int) ([]byte, error) {
	thresholdWord, err := encoding.Uint256Word(threshold)
	if err != nil {
		return nil, err
	}
	return encoding.EncodeWithSelector(contracts.ChangeThresholdSelector, thresholdWord)
}

// previousEntry finds the linked-list predecessor of target: the sentinel
// when target heads the list, the preceding entry otherwise. notFound is
// returned when target is not in the list at all.
func previousEntry(
	list []common.Address,
	target common.Address,
	notFound error,
) (common.Address, error) {
	for i, entry := range list {
		if entry != target {
			continue
		}
		if i == 0 {
			return contracts.Sentinel, nil
		}
		return list[i-1], nil
	}
	return common.Address{}, notFound
}
