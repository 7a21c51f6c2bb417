package stat

// Package stat holds the stat sheets consumed read-only by skills, item
// transitions and unlock checks: per-key definitions, runtime values and
// condition predicates.

import "fmt"

// Definition describes a single stat key.
type Definition[K comparable] struct {
	Key          K       `json:"key" yaml:"key"`
	Name         string  `json:"name" yaml:"name"`
	FriendlyName string  `json:"friendlyName,omitempty" yaml:"friendlyName,omitempty"`
	Description  string  `json:"description,omitempty" yaml:"description,omitempty"`
	// Default is the value a fresh instance starts with.
	Default float64 `json:"default,omitempty" yaml:"default,omitempty"`
	// Minimum and Maximum clamp the base value when set.
	Minimum *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
}

// Instance is the runtime value of one stat.
type Instance[K comparable] struct {
	Key K `json:"key"`
	// Value is the base value, before effectors.
	Value float64 `json:"value"`
	// ValueWithEffectors is the effective value after the active
	// effectors have been applied. Refreshed by effector.Apply.
	ValueWithEffectors float64 `json:"valueWithEffectors"`
}

// Set holds the runtime stats of a single entity.
type Set[K comparable] struct {
	Stats map[K]*Instance[K] `json:"stats"`
}

// NewSet builds a set with one instance per definition, at default values.
func NewSet[K comparable](defs ...Definition[K]) *Set[K] {
	s := &Set[K]{Stats: make(map[K]*Instance[K], len(defs))}
	for _, d := range defs {
		s.Stats[d.Key] = &Instance[K]{
			Key:                d.Key,
			Value:              d.Default,
			ValueWithEffectors: d.Default,
		}
	}
	return s
}

// Value returns the effective value of a stat.
func (s *Set[K]) Value(key K) (float64, bool) {
	inst, ok := s.Stats[key]
	if !ok {
		return 0, false
	}
	return inst.ValueWithEffectors, true
}

// SetBase updates the base value of a stat and resets its effective value
// until effectors are reapplied.
func (s *Set[K]) SetBase(key K, value float64) error {
	inst, ok := s.Stats[key]
	if !ok {
		return fmt.Errorf("stat: unknown key: %v", key)
	}
	inst.Value = value
	inst.ValueWithEffectors = value
	return nil
}

// ConditionKind selects how a condition compares the stat value.
type ConditionKind int

const (
	// MinValue requires value >= the condition value.
	MinValue ConditionKind = iota
	// MaxValue requires value <= the condition value.
	MaxValue
	// BetweenValue requires value in [Value, UpperValue].
	BetweenValue
	// EqualValue requires value == the condition value.
	EqualValue
)

// String returns a human-readable representation of the condition kind.
func (k ConditionKind) String() string {
	switch k {
	case MinValue:
		return "MinValue"
	case MaxValue:
		return "MaxValue"
	case BetweenValue:
		return "BetweenValue"
	case EqualValue:
		return "EqualValue"
	default:
		return "Unknown"
	}
}

// Condition is a predicate over one stat of a set, evaluated against the
// effective (effector-adjusted) value.
type Condition[K comparable] struct {
	Stat K             `json:"stat"`
	Kind ConditionKind `json:"kind"`
	// Value is the comparison operand (lower bound for BetweenValue).
	Value float64 `json:"value"`
	// UpperValue is the upper bound for BetweenValue.
	UpperValue float64 `json:"upperValue,omitempty"`
}

// Check evaluates the condition. A missing stat fails the check.
func (c Condition[K]) Check(set *Set[K]) bool {
	v, ok := set.Value(c.Stat)
	if !ok {
		return false
	}
	switch c.Kind {
	case MinValue:
		return v >= c.Value
	case MaxValue:
		return v <= c.Value
	case BetweenValue:
		return v >= c.Value && v <= c.UpperValue
	case EqualValue:
		return v == c.Value
	default:
		return false
	}
}

// CheckAll reports whether every condition holds against the set.
func CheckAll[K comparable](set *Set[K], conditions []Condition[K]) bool {
	for _, c := range conditions {
		if !c.Check(set) {
			return false
		}
	}
	return true
}
