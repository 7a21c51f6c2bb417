package faction

// Package faction groups users into factions able to claim terrain. The
// claim model divides the world into fixed-size chunks addressed by a
// three-dimensional claim ID.

import "errors"

// Claim errors.
var (
	// ErrNotEnoughPower: the faction lacks the power to hold another
	// claim.
	ErrNotEnoughPower = errors.New("faction: not enough power")
	// ErrUnclaimable: the target faction's terrain cannot be taken.
	ErrUnclaimable = errors.New("faction: terrain not claimable")
	// ErrPvpDenied: player attacks are disabled in this terrain.
	ErrPvpDenied = errors.New("faction: pvp denied")
	// ErrUseDenied: item use is disabled in this terrain.
	ErrUseDenied = errors.New("faction: use denied")
	// ErrNotClaimed: the claim does not belong to the target faction.
	ErrNotClaimed = errors.New("faction: claim not owned")
)

// User is a member of a faction.
type User[T any] struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Data T      `json:"data"`
}

// UserGroup is a set of users acting together.
type UserGroup struct {
	ID    int   `json:"id"`
	Users []int `json:"users"`
}

// UserGroupSettings configures user groups.
type UserGroupSettings struct {
	// MaximumUsers caps the group size.
	MaximumUsers int `json:"maximumUsers" yaml:"maximumUsers"`
}

// ClaimID addresses one claimable terrain chunk.
type ClaimID struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Flags modify how a faction and its claimed terrain behave.
type Flags struct {
	// Claimable allows other factions to steal this faction's terrain.
	Claimable bool `json:"claimable" yaml:"claimable"`
	// PvpEnabled allows player attacks in claimed terrain.
	PvpEnabled bool `json:"pvpEnabled" yaml:"pvpEnabled"`
	// PowerLossInTerritory makes deaths in claimed terrain cost power.
	PowerLossInTerritory bool `json:"powerLossInTerritory" yaml:"powerLossInTerritory"`
	// PowerGainInTerritory allows gaining power in claimed terrain.
	PowerGainInTerritory bool `json:"powerGainInTerritory" yaml:"powerGainInTerritory"`
	// Permanent keeps the faction alive once every member left.
	Permanent bool `json:"permanent" yaml:"permanent"`
}

// Settings configures the faction module.
type Settings struct {
	UserSettings UserGroupSettings `json:"userSettings" yaml:"userSettings"`
	// MaximumPlayerPower caps player-generated claim power.
	MaximumPlayerPower float64 `json:"maximumPlayerPower" yaml:"maximumPlayerPower"`
	Flags              Flags   `json:"flags" yaml:"flags"`
}

// Faction is a team able to claim terrain.
type Faction struct {
	Users UserGroup `json:"users"`
	// Power limits how many claims the faction can hold and maintain.
	Power float64 `json:"power"`
	// Claims owned by this faction.
	Claims []ClaimID `json:"claims"`
	// PowerBoost is added to the calculated power value.
	PowerBoost float64 `json:"powerBoost"`
}

// EffectivePower is the power available for claims.
func (f *Faction) EffectivePower() float64 {
	return f.Power + f.PowerBoost
}

// CanClaim reports whether the faction can hold one more claim.
func (f *Faction) CanClaim() bool {
	return f.EffectivePower() > float64(len(f.Claims))
}

// Claim takes an unowned chunk.
func (f *Faction) Claim(id ClaimID) error {
	if !f.CanClaim() {
		return ErrNotEnoughPower
	}
	f.Claims = append(f.Claims, id)
	return nil
}

// ClaimFrom takes a claimed chunk from another faction. The target's
// terrain must be flagged claimable and the claim must belong to it.
func (f *Faction) ClaimFrom(other *Faction, id ClaimID, settings *Settings) error {
	if !settings.Flags.Claimable {
		return ErrUnclaimable
	}
	if !f.CanClaim() {
		return ErrNotEnoughPower
	}
	if !other.removeClaim(id) {
		return ErrNotClaimed
	}
	f.Claims = append(f.Claims, id)
	return nil
}

func (f *Faction) removeClaim(id ClaimID) bool {
	for i, c := range f.Claims {
		if c == id {
			f.Claims = append(f.Claims[:i], f.Claims[i+1:]...)
			return true
		}
	}
	return false
}

// LandClaimSettings divides the world into claimable chunks.
type LandClaimSettings struct {
	// ClaimSize is the size of one claimable chunk per axis.
	ClaimSize [3]float64 `json:"claimSize" yaml:"claimSize"`
}

// ClaimIDFromPosition maps a world position to its claim chunk. A zero Z
// size flattens the world to a single vertical layer.
func (s *LandClaimSettings) ClaimIDFromPosition(pos [3]float64) ClaimID {
	x := pos[0] / s.ClaimSize[0]
	y := pos[1] / s.ClaimSize[1]
	z := 0.0
	if s.ClaimSize[2] != 0 {
		z = pos[2] / s.ClaimSize[2]
	}
	return ClaimID{X: int(x), Y: int(y), Z: int(z)}
}
