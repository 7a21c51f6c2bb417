package skill

import (
	"errors"
	"testing"

	"github.com/gravitas-015/gamekit/stat"
)

func fireballDef() Definition[string, string, string] {
	return Definition[string, string, string]{
		Key:      "fireball",
		Name:     "fireball",
		Cooldown: 3,
		Conditions: []stat.Condition[string]{
			{Stat: "mana", Kind: stat.MinValue, Value: 30},
		},
		Effectors: []string{"burning"},
	}
}

func casterStats() *stat.Set[string] {
	return stat.NewSet(stat.Definition[string]{Key: "mana", Default: 50})
}

func TestTriggerAppliesCooldown(t *testing.T) {
	set := NewSet[string]()
	set.Learn("fireball")
	effectors, err := Trigger(set, fireballDef(), casterStats())
	if err != nil {
		t.Fatalf("unexpected trigger error: %v", err)
	}
	if len(effectors) != 1 || effectors[0] != "burning" {
		t.Fatalf("expected burning effector, got %v", effectors)
	}
	if _, err := Trigger(set, fireballDef(), casterStats()); !errors.Is(err, ErrOnCooldown) {
		t.Fatalf("expected ErrOnCooldown, got %v", err)
	}
}

func TestCooldownElapsesThroughUpdate(t *testing.T) {
	set := NewSet[string]()
	set.Learn("fireball")
	if _, err := Trigger(set, fireballDef(), casterStats()); err != nil {
		t.Fatalf("unexpected trigger error: %v", err)
	}
	set.Update(1.5)
	if set.Skills["fireball"].Ready() {
		t.Fatalf("cooldown must still be running")
	}
	set.Update(1.5)
	if _, err := Trigger(set, fireballDef(), casterStats()); err != nil {
		t.Fatalf("expected skill ready again, got %v", err)
	}
}

func TestTriggerChecksConditions(t *testing.T) {
	set := NewSet[string]()
	set.Learn("fireball")
	drained := stat.NewSet(stat.Definition[string]{Key: "mana", Default: 10})
	if _, err := Trigger(set, fireballDef(), drained); !errors.Is(err, ErrConditionsNotMet) {
		t.Fatalf("expected ErrConditionsNotMet, got %v", err)
	}
	if !set.Skills["fireball"].Ready() {
		t.Fatalf("failed trigger must not start the cooldown")
	}
}

func TestTriggerUnknownSkill(t *testing.T) {
	set := NewSet[string]()
	if _, err := Trigger(set, fireballDef(), casterStats()); err == nil {
		t.Fatalf("expected unknown skill error")
	}
}

func TestLearnIsIdempotent(t *testing.T) {
	set := NewSet[string]()
	set.Learn("fireball")
	set.Skills["fireball"].CurrentCooldown = 2
	set.Learn("fireball")
	if set.Skills["fireball"].CurrentCooldown != 2 {
		t.Fatalf("relearning must not reset cooldown state")
	}
}
