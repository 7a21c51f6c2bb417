package loot

import (
	"math/rand"
	"testing"
)

func TestEvalBoundaries(t *testing.T) {
	table, err := NewBuilder[string]().Add(5, "item1").Add(2, "item2").Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	cases := []struct {
		v    int
		want string
	}{
		{0, "item1"},
		{4, "item1"},
		{5, "item2"},
		{6, "item2"},
	}
	for _, tc := range cases {
		if got := table.eval(tc.v); got != tc.want {
			t.Fatalf("eval(%d) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestRollWithIsDeterministic(t *testing.T) {
	table, err := NewBuilder[string]().Add(1, "rare").Add(99, "common").Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	first := make([]string, 0, 20)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		got, ok := table.RollWith(r)
		if !ok {
			t.Fatalf("roll %d reported empty table", i)
		}
		first = append(first, got)
	}
	r = rand.New(rand.NewSource(42))
	for i, want := range first {
		got, _ := table.RollWith(r)
		if got != want {
			t.Fatalf("roll %d = %q, want %q", i, got, want)
		}
	}
}

func TestRollCoversEveryNode(t *testing.T) {
	table, err := NewBuilder[string]().Add(1, "a").Add(1, "b").Add(1, "c").Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	seen := map[string]bool{}
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		got, _ := table.RollWith(r)
		seen[got] = true
	}
	for _, want := range []string{"a", "b", "c"} {
		if !seen[want] {
			t.Fatalf("result %q never rolled", want)
		}
	}
}

func TestEmptyTableRoll(t *testing.T) {
	table, err := NewBuilder[string]().Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if _, ok := table.Roll(); ok {
		t.Fatalf("empty table must not produce a result")
	}
}

func TestBuildRejectsNonPositiveWeight(t *testing.T) {
	if _, err := NewBuilder[string]().Add(0, "free").Build(); err == nil {
		t.Fatalf("expected weight rejection for 0")
	}
	if _, err := NewBuilder[string]().Add(-3, "debt").Build(); err == nil {
		t.Fatalf("expected weight rejection for -3")
	}
}
