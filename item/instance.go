package item

// Instance is a runtime stack of a single item key. A stack with
// Quantity 0 must never be stored; the owning slot is removed instead.
type Instance[K comparable, U comparable] struct {
	// Key identifies which item this stack holds.
	Key K `json:"key"`
	// Quantity is the number of units in the stack. Always > 0 while the
	// stack is held by an inventory slot.
	Quantity int `json:"quantity"`
	// Durability is the remaining durability of the stack. Nil means the
	// item is unbreakable; zero means the next use destroys it.
	// Durability belongs to the stack as a whole, not to individual units.
	Durability *int `json:"durability,omitempty"`
	// UserData carries application-defined stack data. Stacks merge only
	// when their user data is equal.
	UserData U `json:"userData,omitempty"`
}

// Clone returns a copy of the stack with its own durability value.
func (ii Instance[K, U]) Clone() Instance[K, U] {
	out := ii
	if ii.Durability != nil {
		dur := *ii.Durability
		out.Durability = &dur
	}
	return out
}

// StackLimits is the read-only catalog view Merge consults for per-key
// stack caps. *Definitions implements it.
type StackLimits[K comparable] interface {
	// MaximumStack reports the stack limit for a key; false when uncapped.
	MaximumStack(key K) (int, bool)
}

// Merge moves as much quantity as allowed from src into dst, in place.
// Stacks merge only when key and user data are equal; on mismatch the call
// is a silent no-op. When the catalog caps the stack size, the moved amount
// is clamped so that dst never exceeds the cap. Merge never removes src
// even when it reaches zero quantity; the caller owns that cleanup.
func Merge[K comparable, U comparable](dst, src *Instance[K, U], limits StackLimits[K]) {
	if dst == nil || src == nil || dst == src {
		return
	}
	if dst.Key != src.Key || dst.UserData != src.UserData {
		return
	}
	moved := src.Quantity
	if max, capped := limits.MaximumStack(dst.Key); capped {
		room := max - dst.Quantity
		if room < 0 {
			room = 0
		}
		if moved > room {
			moved = room
		}
	}
	dst.Quantity += moved
	src.Quantity -= moved
}
