package effector

// Package effector implements temporary stat modifiers: definitions keyed
// by effector, active instances with expiry, and the application pipeline
// that turns base stat values into effective values.
//
// Time is driven externally: callers pass elapsed seconds into Update, the
// package never schedules anything itself.

import "github.com/gravitas-015/gamekit/stat"

// Type selects how an effect modifies its stat.
type Type int

const (
	// Additive adds a value to the base value of the stat.
	Additive Type = iota
	// AdditiveMultiplier multiplies the stat by a value, stacking
	// additively with other multipliers on the same stat.
	AdditiveMultiplier
	// MultiplicativeMultiplier multiplies the stat by a value, stacking
	// multiplicatively with other multipliers on the same stat.
	MultiplicativeMultiplier
)

// String returns a human-readable representation of the effector type.
func (t Type) String() string {
	switch t {
	case Additive:
		return "Additive"
	case AdditiveMultiplier:
		return "AdditiveMultiplier"
	case MultiplicativeMultiplier:
		return "MultiplicativeMultiplier"
	default:
		return "Unknown"
	}
}

// Effect is a single stat modification caused by an effector.
type Effect[K comparable] struct {
	Stat  K       `json:"stat"`
	Type  Type    `json:"type"`
	Value float64 `json:"value"`
}

// Definition describes a stat effector.
type Definition[K comparable, E comparable] struct {
	// Key identifies the effector.
	Key E `json:"key"`
	// Duration in seconds. Nil means the effector does not expire; zero
	// means it is applied only once.
	Duration *float64 `json:"duration,omitempty"`
	// Effects caused by this effector.
	Effects []Effect[K] `json:"effects"`
}

// Definitions is the immutable catalog of effector definitions.
type Definitions[K comparable, E comparable] struct {
	defs map[E]Definition[K, E]
}

// NewDefinitions builds a catalog from a list of definitions. Later
// duplicates of a key replace earlier ones.
func NewDefinitions[K comparable, E comparable](defs ...Definition[K, E]) *Definitions[K, E] {
	c := &Definitions[K, E]{defs: make(map[E]Definition[K, E], len(defs))}
	for _, d := range defs {
		c.defs[d.Key] = d
	}
	return c
}

// Lookup returns the definition for the provided key, if present.
func (c *Definitions[K, E]) Lookup(key E) (Definition[K, E], bool) {
	d, ok := c.defs[key]
	return d, ok
}

// Instance is an active effector on an entity.
type Instance[E comparable] struct {
	// Key identifies the effector definition.
	Key E `json:"key"`
	// DisableIn is the remaining lifetime in seconds. Nil means the
	// instance does not expire.
	DisableIn *float64 `json:"disableIn,omitempty"`
}

// Set holds the currently active effectors of a single entity.
type Set[E comparable] struct {
	Effectors []Instance[E] `json:"effectors"`
}

// Add activates an effector using the definition's duration.
func Add[K comparable, E comparable](s *Set[E], defs *Definitions[K, E], key E) {
	inst := Instance[E]{Key: key}
	if d, ok := defs.Lookup(key); ok && d.Duration != nil {
		remaining := *d.Duration
		inst.DisableIn = &remaining
	}
	s.Effectors = append(s.Effectors, inst)
}

// Update advances the remaining lifetime of every instance by the elapsed
// seconds and retires the expired ones.
func (s *Set[E]) Update(deltaSeconds float64) {
	alive := s.Effectors[:0]
	for _, e := range s.Effectors {
		if e.DisableIn != nil {
			remaining := *e.DisableIn - deltaSeconds
			if remaining <= 0 {
				continue
			}
			e.DisableIn = &remaining
		}
		alive = append(alive, e)
	}
	s.Effectors = alive
}

// Apply refreshes the effective value of every stat in the set.
//
// For each stat: sum the additives, sum the additive multipliers, multiply
// the multiplicative multipliers, then
// effective = (base + additive) * (multiplicative + additiveMultiplier).
// Unknown effector keys are skipped.
func Apply[K comparable, E comparable](s *Set[E], defs *Definitions[K, E], stats *stat.Set[K], deltaSeconds float64) {
	_ = deltaSeconds
	for _, inst := range stats.Stats {
		multiplicative := 1.0
		additiveMultiplier := 0.0
		additive := 0.0
		for _, e := range s.Effectors {
			def, ok := defs.Lookup(e.Key)
			if !ok {
				continue
			}
			for _, effect := range def.Effects {
				if effect.Stat != inst.Key {
					continue
				}
				switch effect.Type {
				case Additive:
					additive += effect.Value
				case AdditiveMultiplier:
					additiveMultiplier += effect.Value
				case MultiplicativeMultiplier:
					multiplicative *= effect.Value
				}
			}
		}
		inst.ValueWithEffectors = (inst.Value + additive) * (multiplicative + additiveMultiplier)
	}
}
