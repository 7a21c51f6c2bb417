package transition

import (
	"fmt"

	"github.com/gravitas-015/gamekit/inventory"
	"github.com/gravitas-015/gamekit/item"
)

// Adapter runs a transition's item flow against an inventory: input
// validation, consumption and output insertion. Operations are
// all-or-nothing at the validation pass; nothing is consumed when any
// requirement is missing.
type Adapter[K comparable, S item.SlotType[S], U comparable] struct {
	inv *inventory.Inventory[K, S, U]
	cat inventory.Catalog[K, S]
}

// NewAdapter wraps an inventory and its catalog.
func NewAdapter[K comparable, S item.SlotType[S], U comparable](inv *inventory.Inventory[K, S, U], cat inventory.Catalog[K, S]) *Adapter[K, S, U] {
	return &Adapter[K, S, U]{inv: inv, cat: cat}
}

// CanAfford reports whether every input requirement is present in the
// inventory. Tool-style inputs (UseOnce, UsePerSecond) are validated for
// presence without being reserved.
func (a *Adapter[K, S, U]) CanAfford(inputs []Input[K]) bool {
	for _, req := range inputs {
		if !a.inv.HasQuantity(req.Item, req.Quantity) {
			return false
		}
	}
	return true
}

// ConsumeInputs removes the consumable inputs from the inventory and wears
// tool inputs by one use. The first pass validates every requirement; only
// then is anything mutated.
func (a *Adapter[K, S, U]) ConsumeInputs(inputs []Input[K]) error {
	for _, req := range inputs {
		if !a.inv.HasQuantity(req.Item, req.Quantity) {
			return fmt.Errorf("transition: insufficient %v: need %d", req.Item, req.Quantity)
		}
	}
	for _, req := range inputs {
		switch req.Mode.Kind {
		case Consume:
			if _, err := a.inv.DeleteKey(req.Item, req.Quantity); err != nil {
				return fmt.Errorf("transition: failed to consume %v: %w", req.Item, err)
			}
		default:
			// Tools wear instead of vanishing. A tool that breaks on
			// this use is reported to the caller.
			if err := a.wearTool(req.Item); err != nil {
				return err
			}
		}
	}
	return nil
}

// ProduceOutputs inserts the outputs into the inventory. Each output stack
// is created fresh from the catalog-declared item key.
func (a *Adapter[K, S, U]) ProduceOutputs(outputs []Output[K]) error {
	for _, out := range outputs {
		stack := item.Instance[K, U]{Key: out.Item, Quantity: out.Quantity}
		if err := a.inv.Insert(stack, a.cat); err != nil {
			return fmt.Errorf("transition: failed to store %v: %w", out.Item, err)
		}
	}
	return nil
}

func (a *Adapter[K, S, U]) wearTool(key K) error {
	for idx, ii := range a.inv.Content {
		if ii != nil && ii.Key == key {
			if _, err := a.inv.UseItem(idx); err != nil {
				return fmt.Errorf("transition: tool %v broke: %w", key, err)
			}
			return nil
		}
	}
	return fmt.Errorf("transition: missing tool %v", key)
}
