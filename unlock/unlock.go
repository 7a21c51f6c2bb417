package unlock

// Package unlock gates values behind stat and item-possession conditions.

import "github.com/gravitas-015/gamekit/stat"

// ItemCondition requires possessing a quantity of an item key to unlock.
type ItemCondition[I comparable] struct {
	Item     I   `json:"item"`
	Quantity int `json:"quantity"`
}

// ItemQuery is the read-only inventory view unlock checks consult.
// *inventory.Inventory implements it.
type ItemQuery[I comparable] interface {
	HasQuantity(key I, quantity int) bool
}

// Unlockable wraps a value that is only reachable once unlocked.
type Unlockable[K any, S comparable, I comparable] struct {
	inner K
	// Unlocked reports the current lock state.
	Unlocked bool `json:"unlocked"`
	// StatConditions must all hold to pass TryUnlock.
	StatConditions []stat.Condition[S] `json:"statConditions,omitempty"`
	// ItemConditions must all hold to pass TryUnlock.
	ItemConditions []ItemCondition[I] `json:"itemConditions,omitempty"`
}

// New wraps a value, locked.
func New[K any, S comparable, I comparable](inner K) *Unlockable[K, S, I] {
	return &Unlockable[K, S, I]{inner: inner}
}

// TryGet returns the inner value only when unlocked.
func (u *Unlockable[K, S, I]) TryGet() (K, bool) {
	if !u.Unlocked {
		var zero K
		return zero, false
	}
	return u.inner, true
}

// Get returns the inner value without checking the lock.
func (u *Unlockable[K, S, I]) Get() K { return u.inner }

// Set replaces the inner value without changing the lock.
func (u *Unlockable[K, S, I]) Set(inner K) { u.inner = inner }

// Lock locks the inner value.
func (u *Unlockable[K, S, I]) Lock() { u.Unlocked = false }

// Unlock unlocks the inner value unconditionally.
func (u *Unlockable[K, S, I]) Unlock() { u.Unlocked = true }

// TryUnlock unlocks the value when every stat and item condition holds.
func (u *Unlockable[K, S, I]) TryUnlock(stats *stat.Set[S], items ItemQuery[I]) bool {
	if !stat.CheckAll(stats, u.StatConditions) {
		return false
	}
	for _, c := range u.ItemConditions {
		if !items.HasQuantity(c.Item, c.Quantity) {
			return false
		}
	}
	u.Unlocked = true
	return true
}
