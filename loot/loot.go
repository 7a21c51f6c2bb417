package loot

// Package loot implements weighted random loot tables. A builder collects
// weighted nodes; the built table rolls by walking cumulative weight
// thresholds.
//
// Example: nodes {weight 5, "item1"} and {weight 2, "item2"} roll a value
// in [0,7); [0,5) yields item1 and [5,7) yields item2.

import (
	"errors"
	"math/rand"
)

// Node is a weighted entry of a loot table.
type Node[R any] struct {
	// Weight is the relative chance of this node.
	Weight int `json:"weight" yaml:"weight"`
	// Result is the value produced when this node is picked.
	Result R `json:"result" yaml:"result"`
}

// Builder collects nodes for a loot table.
type Builder[R any] struct {
	Nodes []Node[R] `json:"nodes" yaml:"nodes"`
}

// NewBuilder creates an empty builder.
func NewBuilder[R any]() *Builder[R] {
	return &Builder[R]{}
}

// Add appends a weighted node and returns the builder.
func (b *Builder[R]) Add(weight int, result R) *Builder[R] {
	b.Nodes = append(b.Nodes, Node[R]{Weight: weight, Result: result})
	return b
}

// Build constructs the table. Nodes with non-positive weight are rejected.
func (b *Builder[R]) Build() (*Table[R], error) {
	t := &Table[R]{
		thresholds: make([]int, 0, len(b.Nodes)),
		results:    make([]R, 0, len(b.Nodes)),
	}
	accum := 0
	for _, n := range b.Nodes {
		if n.Weight <= 0 {
			return nil, errors.New("loot: node weight must be positive")
		}
		t.thresholds = append(t.thresholds, accum)
		t.results = append(t.results, n.Result)
		accum += n.Weight
	}
	t.max = accum
	return t, nil
}

// Table is a built loot table. Safe for concurrent rolls with RollWith;
// Roll uses the shared package-level random source.
type Table[R any] struct {
	thresholds []int
	results    []R
	max        int
}

// Roll returns a random result, or false when the table is empty.
func (t *Table[R]) Roll() (R, bool) {
	if t.max == 0 {
		var zero R
		return zero, false
	}
	return t.eval(rand.Intn(t.max)), true
}

// RollWith returns a random result using the provided source, for
// deterministic rolls.
func (t *Table[R]) RollWith(r *rand.Rand) (R, bool) {
	if t.max == 0 {
		var zero R
		return zero, false
	}
	return t.eval(r.Intn(t.max)), true
}

func (t *Table[R]) eval(v int) R {
	// Last node whose threshold is <= v.
	idx := 0
	for i, th := range t.thresholds {
		if th > v {
			break
		}
		idx = i
	}
	return t.results[idx]
}
