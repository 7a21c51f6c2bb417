package item

// SlotType is the pluggable capability deciding whether an item type may
// occupy a given slot. A slot's restriction tag receives the candidate
// item's slot tag and accepts or rejects it.
//
// The self-referential parameter keeps restriction checks typed: an
// inventory over slot tag S only ever compares S against S.
type SlotType[S any] interface {
	// CanInsertInto reports whether an item tagged itemType may occupy a
	// slot restricted to the receiver.
	CanInsertInto(itemType S) bool
}

// AnySlot is the universal slot tag: every item fits everywhere.
type AnySlot struct{}

// CanInsertInto always accepts.
func (AnySlot) CanInsertInto(AnySlot) bool { return true }
