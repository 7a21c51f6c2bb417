package tier

import "testing"

func TestThresholdsLevelForXP(t *testing.T) {
	curve := Thresholds{0, 100, 300, 600}
	cases := []struct {
		xp   uint32
		want uint32
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{600, 4},
		{10000, 4},
	}
	for _, tc := range cases {
		if got := curve.LevelForXP(tc.xp); got != tc.want {
			t.Fatalf("LevelForXP(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestEmptyCurve(t *testing.T) {
	if got := (Thresholds{}).LevelForXP(500); got != 0 {
		t.Fatalf("empty curve level = %d, want 0", got)
	}
}

func TestLeveledGain(t *testing.T) {
	l := &Leveled[string]{Element: "sword", Curve: Thresholds{0, 100, 300}}
	if got := l.Level(); got != 1 {
		t.Fatalf("fresh level = %d, want 1", got)
	}
	if got := l.Gain(50); got != 1 {
		t.Fatalf("level after 50 xp = %d, want 1", got)
	}
	if got := l.Gain(50); got != 2 {
		t.Fatalf("level after 100 xp = %d, want 2", got)
	}
	if l.AccumulatedXP != 100 {
		t.Fatalf("accumulated xp = %d, want 100", l.AccumulatedXP)
	}
	if got := l.Gain(250); got != 3 {
		t.Fatalf("level after 350 xp = %d, want 3", got)
	}
}

func TestTieredWraps(t *testing.T) {
	w := Tiered[string]{Tier: 3, Element: "iron-pickaxe"}
	if w.Tier != 3 || w.Element != "iron-pickaxe" {
		t.Fatalf("unexpected wrapper contents: %+v", w)
	}
}
