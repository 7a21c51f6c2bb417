package inventory

import (
	"errors"
	"fmt"

	"github.com/gravitas-015/gamekit/item"
)

// ErrorKind is the closed set of failure reasons a mutating operation can
// return. All kinds are non-fatal and meant to be handled by the caller;
// the only fatal path in the engine is an out-of-range InsertInto index,
// which panics because it is a caller bug rather than game state.
type ErrorKind int

const (
	// ErrSlotEmpty: the operation targeted an empty slot where content
	// was required.
	ErrSlotEmpty ErrorKind = iota
	// ErrSlotOccupied: an insertion targeted an already occupied slot.
	ErrSlotOccupied
	// ErrNotEnoughQuantity: a deletion or transfer requested more units
	// than are present.
	ErrNotEnoughQuantity
	// ErrInventoryFull: no slot is available and the inventory cannot
	// grow.
	ErrInventoryFull
	// ErrInventoryOverflow: reserved for overflow-splitting failures.
	// Not currently raised.
	ErrInventoryOverflow
	// ErrStackOverflow: reserved for maximum-stack enforcement on
	// insertion. Not currently raised; merge already respects the cap.
	ErrStackOverflow
	// ErrItemDestroyed: UseItem broke an item whose durability was zero.
	// Carries the removed stack.
	ErrItemDestroyed
	// ErrStackConsumed: Consume emptied a stack. Carries the removed
	// stack.
	ErrStackConsumed
	// ErrSlotRestricted: the target slot's restriction rejects the item's
	// slot type.
	ErrSlotRestricted
	// ErrLockedOriginSlot: reserved for slot locking.
	ErrLockedOriginSlot
	// ErrLockedRemoteSlot: reserved for slot locking.
	ErrLockedRemoteSlot
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrSlotEmpty:
		return "SlotEmpty"
	case ErrSlotOccupied:
		return "SlotOccupied"
	case ErrNotEnoughQuantity:
		return "NotEnoughQuantity"
	case ErrInventoryFull:
		return "InventoryFull"
	case ErrInventoryOverflow:
		return "InventoryOverflow"
	case ErrStackOverflow:
		return "StackOverflow"
	case ErrItemDestroyed:
		return "ItemDestroyed"
	case ErrStackConsumed:
		return "StackConsumed"
	case ErrSlotRestricted:
		return "SlotRestricted"
	case ErrLockedOriginSlot:
		return "LockedOriginSlot"
	case ErrLockedRemoteSlot:
		return "LockedRemoteSlot"
	default:
		return "Unknown"
	}
}

// ItemError is the error value returned by every failing inventory
// operation. Kinds that destroy or consume a stack carry the removed stack
// so the caller can run cleanup or feedback with it.
type ItemError[K comparable, U comparable] struct {
	Kind ErrorKind
	// Stack is the removed stack for ErrItemDestroyed, ErrStackConsumed
	// and ErrStackOverflow.
	Stack item.Instance[K, U]
	// Stacks is the set of stacks that did not fit, for
	// ErrInventoryOverflow.
	Stacks []item.Instance[K, U]
}

// Error implements the error interface.
func (e *ItemError[K, U]) Error() string {
	switch e.Kind {
	case ErrItemDestroyed, ErrStackConsumed, ErrStackOverflow:
		return fmt.Sprintf("inventory: %s (key=%v quantity=%d)", e.Kind, e.Stack.Key, e.Stack.Quantity)
	case ErrInventoryOverflow:
		return fmt.Sprintf("inventory: %s (%d stacks)", e.Kind, len(e.Stacks))
	default:
		return fmt.Sprintf("inventory: %s", e.Kind)
	}
}

// ErrorKind returns the failure reason.
func (e *ItemError[K, U]) ErrorKind() ErrorKind { return e.Kind }

func newError[K comparable, U comparable](kind ErrorKind) *ItemError[K, U] {
	return &ItemError[K, U]{Kind: kind}
}

func stackError[K comparable, U comparable](kind ErrorKind, stack item.Instance[K, U]) *ItemError[K, U] {
	return &ItemError[K, U]{Kind: kind, Stack: stack}
}

type errorKinder interface {
	ErrorKind() ErrorKind
}

// KindOf extracts the ErrorKind from an inventory error without the caller
// having to name the ItemError type parameters.
func KindOf(err error) (ErrorKind, bool) {
	var k errorKinder
	if errors.As(err, &k) {
		return k.ErrorKind(), true
	}
	return 0, false
}

// IsKind reports whether err is an inventory error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
