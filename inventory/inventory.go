package inventory

import (
	"fmt"

	"github.com/gravitas-015/gamekit/item"
)

// Option configures inventory construction.
type Option[K comparable, S item.SlotType[S], U comparable] func(*Inventory[K, S, U])

// WithMoveToFront selects the compaction policy applied when a slot is
// vacated.
func WithMoveToFront[K comparable, S item.SlotType[S], U comparable](mode MoveToFrontMode) Option[K, S, U] {
	return func(inv *Inventory[K, S, U]) {
		inv.MoveToFront = mode
	}
}

// WithSlotRestriction restricts one slot to the provided capability tag.
// Only meaningful for fixed-size inventories.
func WithSlotRestriction[K comparable, S item.SlotType[S], U comparable](idx int, tag S) Option[K, S, U] {
	return func(inv *Inventory[K, S, U]) {
		if idx >= 0 && idx < len(inv.SlotRestriction) {
			inv.SlotRestriction[idx] = &tag
		}
	}
}

// NewFixed creates an all-empty inventory with a constant slot count and an
// all-unrestricted slot-restriction array of the same length.
func NewFixed[K comparable, S item.SlotType[S], U comparable](count int, opts ...Option[K, S, U]) *Inventory[K, S, U] {
	inv := &Inventory[K, S, U]{
		Content:         make([]*item.Instance[K, U], count),
		SlotRestriction: make([]*S, count),
		MoveToFront:     MoveToFrontNone,
		Sizing:          FixedSizing(count),
	}
	applyOptions(inv, opts...)
	return inv
}

// NewDynamic creates an all-empty inventory that grows on demand. A minimum
// of min slots are present at all times; the slot count never exceeds max.
// Slot restrictions are not available in this mode.
func NewDynamic[K comparable, S item.SlotType[S], U comparable](min, max int, opts ...Option[K, S, U]) *Inventory[K, S, U] {
	inv := &Inventory[K, S, U]{
		Content:     make([]*item.Instance[K, U], min),
		MoveToFront: MoveToFrontNone,
		Sizing:      DynamicSizing(min, max),
	}
	applyOptions(inv, opts...)
	return inv
}

func applyOptions[K comparable, S item.SlotType[S], U comparable](inv *Inventory[K, S, U], opts ...Option[K, S, U]) {
	for _, opt := range opts {
		if opt != nil {
			opt(inv)
		}
	}
}

// UseItem decreases the durability of the stack at the specified index.
// Stacks without durability tracking are untouched and yield a nil value.
// A stack whose durability already reached zero breaks: the whole stack is
// removed and ErrItemDestroyed carrying it is returned.
func (inv *Inventory[K, S, U]) UseItem(idx int) (*int, error) {
	ii := inv.Get(idx)
	if ii == nil {
		return nil, newError[K, U](ErrSlotEmpty)
	}
	if ii.Durability == nil {
		return nil, nil
	}
	if *ii.Durability == 0 {
		removed := ii.Clone()
		inv.removeSlot(idx)
		return nil, stackError(ErrItemDestroyed, removed)
	}
	*ii.Durability--
	remaining := *ii.Durability
	return &remaining, nil
}

// Consume decreases the stack size at the specified index by one and
// returns the remaining quantity. When the stack empties, the slot is
// removed and ErrStackConsumed carrying the removed stack is returned.
func (inv *Inventory[K, S, U]) Consume(idx int) (int, error) {
	ii := inv.Get(idx)
	if ii == nil {
		return 0, newError[K, U](ErrSlotEmpty)
	}
	ii.Quantity--
	if ii.Quantity == 0 {
		removed := ii.Clone()
		inv.removeSlot(idx)
		return 0, stackError(ErrStackConsumed, removed)
	}
	return ii.Quantity, nil
}

// HasSpace reports whether another stack can be added without merging.
func (inv *Inventory[K, S, U]) HasSpace() bool {
	switch inv.Sizing.Kind {
	case SizingFixed:
		for _, ii := range inv.Content {
			if ii == nil {
				return true
			}
		}
		return false
	default:
		return len(inv.Content) != inv.Sizing.MaxSize
	}
}

// Delete removes the specified quantity from the slot and returns a
// detached stack carrying it. Durability and user data are copied onto the
// returned stack wholesale; durability is a stack-level attribute and is
// not divided. When the source empties, the slot is removed per the
// compaction policy.
func (inv *Inventory[K, S, U]) Delete(idx int, quantity int) (item.Instance[K, U], error) {
	ii := inv.Get(idx)
	if ii == nil {
		return item.Instance[K, U]{}, newError[K, U](ErrSlotEmpty)
	}
	if ii.Quantity < quantity {
		return item.Instance[K, U]{}, newError[K, U](ErrNotEnoughQuantity)
	}
	ii.Quantity -= quantity
	ret := ii.Clone()
	ret.Quantity = quantity
	if ii.Quantity == 0 {
		inv.removeSlot(idx)
	}
	return ret, nil
}

// DeleteStack removes the whole stack at the specified index and returns
// it.
func (inv *Inventory[K, S, U]) DeleteStack(idx int) (item.Instance[K, U], error) {
	ii := inv.Get(idx)
	if ii == nil {
		return item.Instance[K, U]{}, newError[K, U](ErrSlotEmpty)
	}
	return inv.Delete(idx, ii.Quantity)
}

// DeleteKey drains stacks matching the key, in slot order, until the
// requested quantity has been removed. The call is all-or-nothing: when the
// inventory holds less than the requested quantity nothing is mutated and
// ErrNotEnoughQuantity is returned. The returned stack is synthetic; its
// durability is not meaningful when several stacks were drained.
func (inv *Inventory[K, S, U]) DeleteKey(key K, quantity int) (item.Instance[K, U], error) {
	if !inv.HasQuantity(key, quantity) {
		return item.Instance[K, U]{}, newError[K, U](ErrNotEnoughQuantity)
	}
	remaining := quantity
	for remaining > 0 {
		idx := -1
		for i, ii := range inv.Content {
			if ii != nil && ii.Key == key {
				idx = i
				break
			}
		}
		if idx < 0 {
			// HasQuantity guaranteed enough stock.
			panic("inventory: ran out of matching stacks during DeleteKey")
		}
		avail := inv.Content[idx].Quantity
		rm := remaining
		if avail < rm {
			rm = avail
		}
		if _, err := inv.Delete(idx, rm); err != nil {
			panic(fmt.Sprintf("inventory: failed to delete during DeleteKey: %v", err))
		}
		remaining -= rm
	}
	return item.Instance[K, U]{Key: key, Quantity: quantity}, nil
}

// HasQuantity reports whether stacks matching the key hold at least the
// specified total quantity.
func (inv *Inventory[K, S, U]) HasQuantity(key K, quantity int) bool {
	sum := 0
	for _, ii := range inv.Content {
		if ii != nil && ii.Key == key {
			sum += ii.Quantity
		}
	}
	return sum >= quantity
}

// Has reports whether at least one stack of the specified key is present.
func (inv *Inventory[K, S, U]) Has(key K) bool {
	for _, ii := range inv.Content {
		if ii != nil && ii.Key == key {
			return true
		}
	}
	return false
}

// Get returns the stack at the specified index, or nil when the slot is
// empty or does not exist. The returned pointer aliases the slot content;
// mutating it mutates the inventory.
func (inv *Inventory[K, S, U]) Get(idx int) *item.Instance[K, U] {
	if idx < 0 || idx >= len(inv.Content) {
		return nil
	}
	return inv.Content[idx]
}

// GetKey returns the occupied stacks matching the key, in slot order. The
// pointers alias slot contents.
func (inv *Inventory[K, S, U]) GetKey(key K) []*item.Instance[K, U] {
	var out []*item.Instance[K, U]
	for _, ii := range inv.Content {
		if ii != nil && ii.Key == key {
			out = append(out, ii)
		}
	}
	return out
}

// InsertInto places a stack into the specified slot. The slot must exist
// and be empty. An index beyond the current slot count is a caller bug and
// panics. When the slot carries a restriction, the item's catalog slot
// type must be accepted or ErrSlotRestricted is returned.
func (inv *Inventory[K, S, U]) InsertInto(idx int, ii item.Instance[K, U], cat Catalog[K, S]) error {
	if idx < 0 || idx >= len(inv.Content) {
		panic(fmt.Sprintf("inventory: out of bound insertion at index %d", idx))
	}
	if inv.Content[idx] != nil {
		return newError[K, U](ErrSlotOccupied)
	}
	if !inv.slotAccepts(idx, ii.Key, cat) {
		return newError[K, U](ErrSlotRestricted)
	}
	stored := ii
	inv.Content[idx] = &stored
	return nil
}

// Insert places a stack at the first available position. Matching occupied
// stacks are merged into first, in slot order; any residual quantity goes
// into the first empty slot accepting the item. Dynamically sized
// inventories grow by one slot when no empty slot exists and the maximum
// has not been reached.
func (inv *Inventory[K, S, U]) Insert(ii item.Instance[K, U], cat Catalog[K, S]) error {
	for _, inst := range inv.GetKey(ii.Key) {
		if ii.Quantity == 0 {
			break
		}
		item.Merge(inst, &ii, cat)
	}
	if ii.Quantity == 0 {
		return nil
	}
	if slot, ok := inv.firstInsertableSlot(ii.Key, cat); ok {
		if slot == len(inv.Content) {
			// TakeLast/Offset report the slot past the tail while a
			// dynamic inventory is below its maximum.
			inv.Content = append(inv.Content, nil)
		}
		if err := inv.InsertInto(slot, ii, cat); err != nil {
			panic(fmt.Sprintf("inventory: failed to insert into free slot %d: %v", slot, err))
		}
		return nil
	}
	if inv.Sizing.Kind == SizingFixed {
		return newError[K, U](ErrInventoryFull)
	}
	if !inv.HasSpace() {
		return newError[K, U](ErrInventoryFull)
	}
	inv.Content = append(inv.Content, nil)
	if err := inv.InsertInto(len(inv.Content)-1, ii, cat); err != nil {
		panic(fmt.Sprintf("inventory: failed to insert into grown slot: %v", err))
	}
	return nil
}

// FirstEmptySlot returns the index of the first empty slot, if any. Under
// the TakeLast and Offset compaction policies holes never persist
// mid-array, so the only candidate is the slot past the current length,
// available while the length is below the sizing maximum.
func (inv *Inventory[K, S, U]) FirstEmptySlot() (int, bool) {
	switch inv.MoveToFront {
	case MoveToFrontNone:
		for i, ii := range inv.Content {
			if ii == nil {
				return i, true
			}
		}
		return 0, false
	default:
		max := inv.Sizing.Size
		if inv.Sizing.Kind == SizingDynamic {
			max = inv.Sizing.MaxSize
		}
		if len(inv.Content) != max {
			return len(inv.Content), true
		}
		return 0, false
	}
}

// firstInsertableSlot is FirstEmptySlot filtered by slot restrictions for
// the provided key.
func (inv *Inventory[K, S, U]) firstInsertableSlot(key K, cat Catalog[K, S]) (int, bool) {
	switch inv.MoveToFront {
	case MoveToFrontNone:
		for i, ii := range inv.Content {
			if ii == nil && inv.slotAccepts(i, key, cat) {
				return i, true
			}
		}
		return 0, false
	default:
		return inv.FirstEmptySlot()
	}
}

// slotAccepts checks the slot's restriction against the item's catalog
// slot type. Unrestricted slots and dynamically sized inventories accept
// everything.
func (inv *Inventory[K, S, U]) slotAccepts(idx int, key K, cat Catalog[K, S]) bool {
	if inv.Sizing.Kind != SizingFixed || idx >= len(inv.SlotRestriction) {
		return true
	}
	restriction := inv.SlotRestriction[idx]
	if restriction == nil {
		return true
	}
	itemType, known := cat.SlotTypeOf(key)
	if !known {
		return true
	}
	return (*restriction).CanInsertInto(itemType)
}

// Transfer moves the specified quantity from a slot of this inventory into
// a slot of the target inventory. The target slot is validated before the
// source is touched, so a rejected transfer never mutates either side. A
// target aliasing the receiver is handled as an in-inventory move, since
// compaction on the shared slot array can invalidate the cross-check. The
// withOverflow flag is reserved; spreading across several free slots is
// not implemented.
func (inv *Inventory[K, S, U]) Transfer(fromIdx int, target *Inventory[K, S, U], toIdx int, quantity int, withOverflow bool, cat Catalog[K, S]) error {
	if target == inv {
		return inv.MoveItem(fromIdx, toIdx, quantity, withOverflow, cat)
	}
	src := inv.Get(fromIdx)
	if src == nil {
		return newError[K, U](ErrSlotEmpty)
	}
	if src.Quantity < quantity {
		return newError[K, U](ErrNotEnoughQuantity)
	}
	if toIdx < 0 || toIdx >= len(target.Content) {
		panic(fmt.Sprintf("inventory: out of bound insertion at index %d", toIdx))
	}
	if target.Content[toIdx] != nil {
		return newError[K, U](ErrSlotOccupied)
	}
	if !target.slotAccepts(toIdx, src.Key, cat) {
		return newError[K, U](ErrSlotRestricted)
	}
	mv, err := inv.Delete(fromIdx, quantity)
	if err != nil {
		return err
	}
	if err := target.InsertInto(toIdx, mv, cat); err != nil {
		panic(fmt.Sprintf("inventory: pre-validated transfer failed: %v", err))
	}
	return nil
}

// TransferStack moves the whole stack at the specified slot into a slot of
// the target inventory.
func (inv *Inventory[K, S, U]) TransferStack(fromIdx int, target *Inventory[K, S, U], toIdx int, withOverflow bool, cat Catalog[K, S]) error {
	src := inv.Get(fromIdx)
	if src == nil {
		return newError[K, U](ErrSlotEmpty)
	}
	return inv.Transfer(fromIdx, target, toIdx, src.Quantity, withOverflow, cat)
}

// MoveItem moves the specified quantity from one slot to another within
// this inventory. Moving a full stack onto its own slot is a no-op; moving
// a partial quantity onto its own slot fails with ErrSlotOccupied. When
// compaction shifts the target slot between the delete and the insert, the
// moved quantity is reinserted at the first available position rather than
// lost.
func (inv *Inventory[K, S, U]) MoveItem(fromIdx int, toIdx int, quantity int, withOverflow bool, cat Catalog[K, S]) error {
	src := inv.Get(fromIdx)
	if src == nil {
		return newError[K, U](ErrSlotEmpty)
	}
	if src.Quantity < quantity {
		return newError[K, U](ErrNotEnoughQuantity)
	}
	if toIdx < 0 || toIdx >= len(inv.Content) {
		panic(fmt.Sprintf("inventory: out of bound insertion at index %d", toIdx))
	}
	if fromIdx == toIdx {
		if quantity == src.Quantity {
			return nil
		}
		return newError[K, U](ErrSlotOccupied)
	}
	if inv.Content[toIdx] != nil {
		return newError[K, U](ErrSlotOccupied)
	}
	if !inv.slotAccepts(toIdx, src.Key, cat) {
		return newError[K, U](ErrSlotRestricted)
	}
	mv, err := inv.Delete(fromIdx, quantity)
	if err != nil {
		return err
	}
	if err := inv.InsertInto(toIdx, mv, cat); err != nil {
		// Compaction moved another stack into the pre-validated target.
		// The delete vacated a slot, so the stack lands there rather than
		// being lost.
		for i, slot := range inv.Content {
			if slot == nil && inv.slotAccepts(i, mv.Key, cat) {
				stored := mv
				inv.Content[i] = &stored
				return err
			}
		}
		if insErr := inv.Insert(mv, cat); insErr != nil {
			return insErr
		}
		return err
	}
	return nil
}

// MoveStack moves a whole stack from one slot to another within this
// inventory.
func (inv *Inventory[K, S, U]) MoveStack(fromIdx int, toIdx int, withOverflow bool, cat Catalog[K, S]) error {
	src := inv.Get(fromIdx)
	if src == nil {
		return newError[K, U](ErrSlotEmpty)
	}
	return inv.MoveItem(fromIdx, toIdx, src.Quantity, withOverflow, cat)
}

// removeSlot vacates a slot according to the compaction policy. The slot
// count is preserved in every mode.
func (inv *Inventory[K, S, U]) removeSlot(idx int) {
	switch inv.MoveToFront {
	case MoveToFrontNone:
		inv.Content[idx] = nil
	case MoveToFrontTakeLast:
		last := len(inv.Content) - 1
		inv.Content[idx] = inv.Content[last]
		inv.Content[last] = nil
	case MoveToFrontOffset:
		copy(inv.Content[idx:], inv.Content[idx+1:])
		inv.Content[len(inv.Content)-1] = nil
	}
}
