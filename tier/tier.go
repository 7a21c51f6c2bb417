package tier

// Package tier wraps arbitrary elements with a numeric tier or an
// experience-driven level.

// Tiered adds a numeric tier to any element.
type Tiered[T any] struct {
	// Tier is the numeric tier.
	Tier uint32 `json:"tier"`
	// Element is the wrapped value.
	Element T `json:"element"`
}

// LevelCurve converts accumulated experience into a level. Implementations
// typically use a threshold table.
type LevelCurve interface {
	LevelForXP(xp uint32) uint32
}

// Leveled wraps an element that accumulates experience. The element can be
// anything: an item, a player, a monster, a skill.
type Leveled[T any] struct {
	// AccumulatedXP is the experience gathered so far.
	AccumulatedXP uint32 `json:"accumulatedXp"`
	// Element is the wrapped value.
	Element T `json:"element"`
	// Curve maps experience to levels.
	Curve LevelCurve `json:"-"`
}

// Level returns the current level for the accumulated experience.
func (l *Leveled[T]) Level() uint32 {
	return l.Curve.LevelForXP(l.AccumulatedXP)
}

// Gain adds experience and returns the new level.
func (l *Leveled[T]) Gain(xp uint32) uint32 {
	l.AccumulatedXP += xp
	return l.Level()
}

// Thresholds is a LevelCurve backed by ascending XP thresholds: the level
// is the number of thresholds at or below the accumulated experience.
type Thresholds []uint32

// LevelForXP implements LevelCurve.
func (t Thresholds) LevelForXP(xp uint32) uint32 {
	level := uint32(0)
	for _, th := range t {
		if xp < th {
			break
		}
		level++
	}
	return level
}
