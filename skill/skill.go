package skill

// Package skill holds skill definitions and per-entity cooldown tracking.
// Cooldowns advance only through caller-passed elapsed time.

import (
	"errors"
	"fmt"

	"github.com/gravitas-015/gamekit/stat"
)

// ErrOnCooldown is returned when a skill is triggered before its cooldown
// elapsed.
var ErrOnCooldown = errors.New("skill: on cooldown")

// ErrConditionsNotMet is returned when a skill's stat conditions fail.
var ErrConditionsNotMet = errors.New("skill: stat conditions not met")

// Definition describes a skill.
// E is the effector key type of the effectors the skill applies.
type Definition[K comparable, S comparable, E comparable] struct {
	Key          K      `json:"key"`
	Name         string `json:"name"`
	FriendlyName string `json:"friendlyName,omitempty"`
	Description  string `json:"description,omitempty"`
	// Cooldown in seconds between uses.
	Cooldown float64 `json:"cooldown"`
	// Conditions that must hold on the user's stats to trigger.
	Conditions []stat.Condition[S] `json:"conditions,omitempty"`
	// Effectors applied to the user when the skill triggers.
	Effectors []E `json:"effectors,omitempty"`
}

// Instance is one entity's state for a known skill.
type Instance[K comparable] struct {
	Key K `json:"key"`
	// CurrentCooldown is the remaining time in seconds before the skill
	// can trigger again.
	CurrentCooldown float64 `json:"currentCooldown"`
}

// Ready reports whether the cooldown has elapsed.
func (i *Instance[K]) Ready() bool { return i.CurrentCooldown <= 0 }

// Set holds the skills known by one entity.
type Set[K comparable] struct {
	Skills map[K]*Instance[K] `json:"skills"`
}

// NewSet builds an empty skill set.
func NewSet[K comparable]() *Set[K] {
	return &Set[K]{Skills: make(map[K]*Instance[K])}
}

// Learn adds a skill to the set, ready to use.
func (s *Set[K]) Learn(key K) {
	if _, known := s.Skills[key]; !known {
		s.Skills[key] = &Instance[K]{Key: key}
	}
}

// Update advances every cooldown by the elapsed seconds.
func (s *Set[K]) Update(deltaSeconds float64) {
	for _, inst := range s.Skills {
		if inst.CurrentCooldown > 0 {
			inst.CurrentCooldown -= deltaSeconds
			if inst.CurrentCooldown < 0 {
				inst.CurrentCooldown = 0
			}
		}
	}
}

// Trigger attempts to use a skill: the skill must be known, off cooldown
// and its stat conditions must hold. On success the cooldown restarts and
// the effector keys to apply are returned.
func Trigger[K comparable, S comparable, E comparable](s *Set[K], def Definition[K, S, E], stats *stat.Set[S]) ([]E, error) {
	inst, known := s.Skills[def.Key]
	if !known {
		return nil, fmt.Errorf("skill: unknown skill: %v", def.Key)
	}
	if !inst.Ready() {
		return nil, ErrOnCooldown
	}
	if !stat.CheckAll(stats, def.Conditions) {
		return nil, ErrConditionsNotMet
	}
	inst.CurrentCooldown = def.Cooldown
	return def.Effectors, nil
}
