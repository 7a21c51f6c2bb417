package inventory

// Package inventory implements a slot-based inventory engine: an ordered
// set of slots holding item stacks, with stacking, durability and
// slot-restriction rules enforced by every mutating operation.
//
// An Inventory has exactly one owner and no internal locking; concurrent
// mutation must be serialized by the caller. The shared item catalog is
// read-only and passed into every operation that needs stack limits.

import "github.com/gravitas-015/gamekit/item"

// SizingKind selects how the slot count behaves.
type SizingKind int

const (
	// SizingFixed keeps the slot count constant.
	SizingFixed SizingKind = iota
	// SizingDynamic grows the slot count on demand between a minimum and
	// a maximum. Slot restrictions are ignored in this mode.
	SizingDynamic
)

// String returns a human-readable representation of the sizing kind.
func (k SizingKind) String() string {
	switch k {
	case SizingFixed:
		return "Fixed"
	case SizingDynamic:
		return "Dynamic"
	default:
		return "Unknown"
	}
}

// SizingMode configures whether an inventory resizes as stacks are
// inserted and removed.
type SizingMode struct {
	Kind SizingKind `json:"kind"`
	// Size is the slot count under SizingFixed.
	Size int `json:"size,omitempty"`
	// MinSize and MaxSize bound the slot count under SizingDynamic.
	MinSize int `json:"minSize,omitempty"`
	MaxSize int `json:"maxSize,omitempty"`
}

// FixedSizing returns a fixed slot-count sizing mode.
func FixedSizing(size int) SizingMode {
	return SizingMode{Kind: SizingFixed, Size: size}
}

// DynamicSizing returns an elastic sizing mode bounded by min and max.
func DynamicSizing(min, max int) SizingMode {
	return SizingMode{Kind: SizingDynamic, MinSize: min, MaxSize: max}
}

// MoveToFrontMode configures how a vacated slot is handled.
type MoveToFrontMode int

const (
	// MoveToFrontNone leaves a hole where the stack was removed.
	MoveToFrontNone MoveToFrontMode = iota
	// MoveToFrontTakeLast moves the last slot's content into the vacated
	// slot and appends an empty slot at the tail.
	MoveToFrontTakeLast
	// MoveToFrontOffset shifts every later slot left by one and appends
	// an empty slot at the tail. Preserves ordering at O(n) cost.
	MoveToFrontOffset
)

// String returns a human-readable representation of the compaction mode.
func (m MoveToFrontMode) String() string {
	switch m {
	case MoveToFrontNone:
		return "None"
	case MoveToFrontTakeLast:
		return "TakeLast"
	case MoveToFrontOffset:
		return "Offset"
	default:
		return "Unknown"
	}
}

// Catalog is the read-only item metadata view the engine consults during
// stack operations. *item.Definitions implements it.
type Catalog[K comparable, S any] interface {
	// MaximumStack reports the per-stack unit cap for a key; false when
	// the item is uncapped or unknown.
	MaximumStack(key K) (int, bool)
	// SlotTypeOf reports the slot capability tag for a key.
	SlotTypeOf(key K) (S, bool)
}

// Inventory is an ordered sequence of slots holding item stacks.
// A nil entry in Content is an empty but existing slot, distinct from a
// slot beyond the current count.
type Inventory[K comparable, S item.SlotType[S], U comparable] struct {
	// Content holds the stacks, indexed by slot number.
	Content []*item.Instance[K, U] `json:"content"`
	// SlotRestriction maps slot index to an optional capability tag
	// restricting what may occupy the slot. Nil entries are unrestricted.
	// Only meaningful under fixed sizing.
	SlotRestriction []*S `json:"slotRestriction,omitempty"`
	// MoveToFront configures how stack removal compacts the slots.
	MoveToFront MoveToFrontMode `json:"moveToFront"`
	// Sizing configures whether the inventory resizes.
	Sizing SizingMode `json:"sizing"`
}
