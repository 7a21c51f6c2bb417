package faction

import (
	"errors"
	"testing"
)

func TestClaimLimitedByPower(t *testing.T) {
	f := &Faction{Power: 2}
	if err := f.Claim(ClaimID{X: 0, Y: 0}); err != nil {
		t.Fatalf("unexpected claim error: %v", err)
	}
	if err := f.Claim(ClaimID{X: 1, Y: 0}); err != nil {
		t.Fatalf("unexpected claim error: %v", err)
	}
	if err := f.Claim(ClaimID{X: 2, Y: 0}); !errors.Is(err, ErrNotEnoughPower) {
		t.Fatalf("expected power error, got %v", err)
	}
	if len(f.Claims) != 2 {
		t.Fatalf("expected 2 claims, got %d", len(f.Claims))
	}
}

func TestPowerBoostExtendsClaims(t *testing.T) {
	f := &Faction{Power: 1, PowerBoost: 1}
	_ = f.Claim(ClaimID{X: 0, Y: 0})
	if err := f.Claim(ClaimID{X: 1, Y: 0}); err != nil {
		t.Fatalf("boosted faction should hold a second claim: %v", err)
	}
}

func TestClaimFrom(t *testing.T) {
	attacker := &Faction{Power: 5}
	defender := &Faction{Power: 5, Claims: []ClaimID{{X: 3, Y: 3}}}
	settings := &Settings{Flags: Flags{Claimable: true}}

	if err := attacker.ClaimFrom(defender, ClaimID{X: 3, Y: 3}, settings); err != nil {
		t.Fatalf("unexpected claim-from error: %v", err)
	}
	if len(defender.Claims) != 0 {
		t.Fatalf("defender should have lost the claim")
	}
	if len(attacker.Claims) != 1 || attacker.Claims[0] != (ClaimID{X: 3, Y: 3}) {
		t.Fatalf("attacker should own the claim, got %v", attacker.Claims)
	}
}

func TestClaimFromRespectsClaimableFlag(t *testing.T) {
	attacker := &Faction{Power: 5}
	defender := &Faction{Power: 5, Claims: []ClaimID{{X: 3, Y: 3}}}
	settings := &Settings{Flags: Flags{Claimable: false}}

	if err := attacker.ClaimFrom(defender, ClaimID{X: 3, Y: 3}, settings); !errors.Is(err, ErrUnclaimable) {
		t.Fatalf("expected unclaimable error, got %v", err)
	}
	if len(defender.Claims) != 1 {
		t.Fatalf("defender must keep its claim")
	}
}

func TestClaimFromUnownedChunk(t *testing.T) {
	attacker := &Faction{Power: 5}
	defender := &Faction{Power: 5}
	settings := &Settings{Flags: Flags{Claimable: true}}

	if err := attacker.ClaimFrom(defender, ClaimID{X: 9, Y: 9}, settings); !errors.Is(err, ErrNotClaimed) {
		t.Fatalf("expected not-owned error, got %v", err)
	}
	if len(attacker.Claims) != 0 {
		t.Fatalf("attacker must not gain a claim")
	}
}

func TestClaimIDFromPosition(t *testing.T) {
	s := &LandClaimSettings{ClaimSize: [3]float64{16, 16, 0}}
	cases := []struct {
		pos  [3]float64
		want ClaimID
	}{
		{[3]float64{0, 0, 0}, ClaimID{X: 0, Y: 0, Z: 0}},
		{[3]float64{15.9, 15.9, 100}, ClaimID{X: 0, Y: 0, Z: 0}},
		{[3]float64{16, 0, 50}, ClaimID{X: 1, Y: 0, Z: 0}},
		{[3]float64{33, 47, 9}, ClaimID{X: 2, Y: 2, Z: 0}},
	}
	for _, tc := range cases {
		if got := s.ClaimIDFromPosition(tc.pos); got != tc.want {
			t.Fatalf("position %v mapped to %v, want %v", tc.pos, got, tc.want)
		}
	}

	layered := &LandClaimSettings{ClaimSize: [3]float64{16, 16, 8}}
	if got := layered.ClaimIDFromPosition([3]float64{0, 0, 17}); got.Z != 2 {
		t.Fatalf("expected vertical layer 2, got %d", got.Z)
	}
}
