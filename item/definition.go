package item

// Package item describes the static and runtime sides of game items: the
// immutable per-key catalog (Definition, Definitions) and the stacks that
// live inside inventories (Instance).
//
// Type parameters used throughout:
//   - K: item key (unique identifier, map key)
//   - S: slot capability tag (see SlotType)
//   - D: opaque per-definition extension data
//   - U: opaque per-stack extension data

import (
	"errors"
	"fmt"
)

// Definition describes the static properties of a single item key.
// Definitions are created at catalog-load time and never mutated.
type Definition[K comparable, S any, D any] struct {
	// Key uniquely identifies the item within a catalog.
	Key K `json:"key" yaml:"key"`
	// SlotType tags the kind of slot this item may occupy.
	SlotType S `json:"slotType" yaml:"slotType"`
	// Name is the internal display name.
	Name string `json:"name" yaml:"name"`
	// FriendlyName is the player-facing display name.
	FriendlyName string `json:"friendlyName" yaml:"friendlyName"`
	// Description is the player-facing description.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// MaximumStack limits how many units a single stack may hold.
	// Nil means unlimited.
	MaximumStack *int `json:"maximumStack,omitempty" yaml:"maximumStack,omitempty"`
	// MaximumDurability is the durability a fresh stack of this item
	// starts with. Nil means the item is unbreakable.
	MaximumDurability *int `json:"maximumDurability,omitempty" yaml:"maximumDurability,omitempty"`
	// UserData carries application-defined extension data.
	UserData D `json:"userData,omitempty" yaml:"userData,omitempty"`
}

// Definitions is an immutable catalog mapping item keys to their
// definitions. It is safe for concurrent reads once constructed.
type Definitions[K comparable, S any, D any] struct {
	defs  map[K]Definition[K, S, D]
	order []K
}

// NewDefinitions builds a catalog from the provided definitions.
// Keys must be unique.
func NewDefinitions[K comparable, S any, D any](defs ...Definition[K, S, D]) (*Definitions[K, S, D], error) {
	c := &Definitions[K, S, D]{
		defs:  make(map[K]Definition[K, S, D], len(defs)),
		order: make([]K, 0, len(defs)),
	}
	for _, d := range defs {
		if _, exists := c.defs[d.Key]; exists {
			return nil, fmt.Errorf("item: duplicate definition key: %v", d.Key)
		}
		c.defs[d.Key] = d
		c.order = append(c.order, d.Key)
	}
	return c, nil
}

// Lookup returns the definition for the provided key, if present.
func (c *Definitions[K, S, D]) Lookup(key K) (Definition[K, S, D], bool) {
	d, ok := c.defs[key]
	return d, ok
}

// Len returns the number of definitions in the catalog.
func (c *Definitions[K, S, D]) Len() int { return len(c.defs) }

// All returns the definitions in catalog-load order, suitable for sending
// to clients.
func (c *Definitions[K, S, D]) All() []Definition[K, S, D] {
	out := make([]Definition[K, S, D], 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.defs[k])
	}
	return out
}

// MaximumStack reports the stack limit for the provided key. The second
// return is false when the item is uncapped or unknown.
func (c *Definitions[K, S, D]) MaximumStack(key K) (int, bool) {
	d, ok := c.defs[key]
	if !ok || d.MaximumStack == nil {
		return 0, false
	}
	return *d.MaximumStack, true
}

// SlotTypeOf reports the slot capability tag for the provided key.
func (c *Definitions[K, S, D]) SlotTypeOf(key K) (S, bool) {
	d, ok := c.defs[key]
	if !ok {
		var zero S
		return zero, false
	}
	return d.SlotType, true
}

// NewStack creates a fresh stack of the provided key with the definition's
// full durability, if the item tracks durability.
func (c *Definitions[K, S, D]) NewStack(key K, quantity int) (Instance[K, struct{}], error) {
	return newStackIn[K, S, D, struct{}](c, key, quantity, struct{}{})
}

// NewStackWithData creates a fresh stack carrying user data.
func NewStackWithData[K comparable, S any, D any, U comparable](c *Definitions[K, S, D], key K, quantity int, data U) (Instance[K, U], error) {
	return newStackIn[K, S, D, U](c, key, quantity, data)
}

func newStackIn[K comparable, S any, D any, U comparable](c *Definitions[K, S, D], key K, quantity int, data U) (Instance[K, U], error) {
	d, ok := c.defs[key]
	if !ok {
		return Instance[K, U]{}, fmt.Errorf("item: unknown definition key: %v", key)
	}
	if quantity <= 0 {
		return Instance[K, U]{}, errors.New("item: quantity must be positive")
	}
	inst := Instance[K, U]{Key: key, Quantity: quantity, UserData: data}
	if d.MaximumDurability != nil {
		dur := *d.MaximumDurability
		inst.Durability = &dur
	}
	return inst, nil
}
