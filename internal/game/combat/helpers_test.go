package combat_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
	"github.com/cory-johannsen/skirmish/internal/game/ruleset"
	"github.com/cory-johannsen/skirmish/internal/game/skill"
)

// fixedSource always returns val, clamped to [0, n).
type fixedSource struct {
	mu    sync.Mutex
	val   int
	calls int
}

func (f *fixedSource) Intn(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.val >= n {
		return n - 1
	}
	return f.val
}

func (f *fixedSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type classStats struct {
	hp, stamina           float64
	attack, armor, stMult float64
	skill                 skill.Skill
}

func newClass(id string, c classStats) *ruleset.UnitClass {
	if c.skill == nil {
		c.skill = skill.NewStrike(skill.FuryPunch)
	}
	return &ruleset.UnitClass{
		ID:                id,
		Name:              id,
		MaxHealth:         c.hp,
		MaxStamina:        c.stamina,
		AttackMultiplier:  c.attack,
		ArmorMultiplier:   c.armor,
		StaminaMultiplier: c.stMult,
		Skill:             c.skill,
	}
}

func newUnit(t *testing.T, name string, class *ruleset.UnitClass, w *inventory.Weapon, a *inventory.Armor, p combat.Policy) *combat.Unit {
	t.Helper()
	u, err := combat.NewUnit(name, class, w, a, p)
	require.NoError(t, err)
	return u
}

func sword() *inventory.Weapon {
	return &inventory.Weapon{ID: "sword", Name: "Sword", Damage: 10, StaminaPerHit: 5}
}

func club() *inventory.Weapon {
	return &inventory.Weapon{ID: "club", Name: "Club", Damage: 6, StaminaPerHit: 4}
}

func leather() *inventory.Armor {
	return &inventory.Armor{ID: "leather", Name: "Leather", Defence: 2, StaminaPerTurn: 2}
}

func hide() *inventory.Armor {
	return &inventory.Armor{ID: "hide", Name: "Hide", Defence: 1, StaminaPerTurn: 2}
}

// newHero returns a 50 hp / 20 stamina player unit with a Sword and Leather.
func newHero(t *testing.T, hp float64) *combat.Unit {
	t.Helper()
	class := newClass("hero", classStats{hp: hp, stamina: 20, attack: 1, armor: 1, stMult: 1})
	return newUnit(t, "Hero", class, sword(), leather(), combat.BasicPolicy{})
}

// newGoblin returns an enemy unit with a Club and Hide whose skill never
// triggers.
func newGoblin(t *testing.T, hp float64) *combat.Unit {
	t.Helper()
	class := newClass("goblin", classStats{hp: hp, stamina: 10, attack: 1, armor: 1, stMult: 0.5})
	policy := combat.NewAutoSkillPolicy(&fixedSource{val: 99}, combat.DefaultSkillTriggerPercent)
	return newUnit(t, "Goblin", class, club(), hide(), policy)
}
