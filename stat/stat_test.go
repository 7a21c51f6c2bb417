package stat

import "testing"

func testSet(t *testing.T) *Set[string] {
	t.Helper()
	return NewSet(
		Definition[string]{Key: "health", Name: "health", Default: 100},
		Definition[string]{Key: "mana", Name: "mana", Default: 50},
	)
}

func TestNewSetStartsAtDefaults(t *testing.T) {
	s := testSet(t)
	if v, ok := s.Value("health"); !ok || v != 100 {
		t.Fatalf("expected health 100, got %v/%v", v, ok)
	}
	if _, ok := s.Value("stamina"); ok {
		t.Fatalf("unknown stat must not resolve")
	}
}

func TestSetBase(t *testing.T) {
	s := testSet(t)
	if err := s.SetBase("mana", 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := s.Value("mana"); v != 20 {
		t.Fatalf("expected mana 20, got %v", v)
	}
	if err := s.SetBase("stamina", 1); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestConditions(t *testing.T) {
	s := testSet(t)
	cases := []struct {
		name string
		cond Condition[string]
		want bool
	}{
		{"min pass", Condition[string]{Stat: "health", Kind: MinValue, Value: 50}, true},
		{"min fail", Condition[string]{Stat: "health", Kind: MinValue, Value: 150}, false},
		{"max pass", Condition[string]{Stat: "mana", Kind: MaxValue, Value: 60}, true},
		{"max fail", Condition[string]{Stat: "mana", Kind: MaxValue, Value: 10}, false},
		{"between pass", Condition[string]{Stat: "health", Kind: BetweenValue, Value: 90, UpperValue: 110}, true},
		{"between fail", Condition[string]{Stat: "health", Kind: BetweenValue, Value: 0, UpperValue: 10}, false},
		{"equal pass", Condition[string]{Stat: "mana", Kind: EqualValue, Value: 50}, true},
		{"equal fail", Condition[string]{Stat: "mana", Kind: EqualValue, Value: 51}, false},
		{"missing stat", Condition[string]{Stat: "stamina", Kind: MinValue, Value: 0}, false},
	}
	for _, tc := range cases {
		if got := tc.cond.Check(s); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestConditionsUseEffectiveValue(t *testing.T) {
	s := testSet(t)
	s.Stats["health"].ValueWithEffectors = 10
	cond := Condition[string]{Stat: "health", Kind: MinValue, Value: 50}
	if cond.Check(s) {
		t.Fatalf("conditions must read the effector-adjusted value")
	}
}

func TestCheckAll(t *testing.T) {
	s := testSet(t)
	conds := []Condition[string]{
		{Stat: "health", Kind: MinValue, Value: 50},
		{Stat: "mana", Kind: MinValue, Value: 50},
	}
	if !CheckAll(s, conds) {
		t.Fatalf("expected all conditions to hold")
	}
	conds = append(conds, Condition[string]{Stat: "mana", Kind: MinValue, Value: 999})
	if CheckAll(s, conds) {
		t.Fatalf("expected failure with an impossible condition")
	}
	if !CheckAll(s, nil) {
		t.Fatalf("empty condition sets always hold")
	}
}
