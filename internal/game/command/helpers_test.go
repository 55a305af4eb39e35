package command

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
	"github.com/cory-johannsen/skirmish/internal/game/ruleset"
	"github.com/cory-johannsen/skirmish/internal/game/skill"
)

// neverSource never triggers the enemy skill.
type neverSource struct{}

func (neverSource) Intn(n int) int { return n - 1 }

func testItems(t *testing.T) *inventory.Registry {
	t.Helper()
	reg := inventory.NewRegistry()
	require.NoError(t, reg.RegisterWeapon(&inventory.Weapon{ID: "sword", Name: "Sword", Damage: 10, StaminaPerHit: 5}))
	require.NoError(t, reg.RegisterWeapon(&inventory.Weapon{ID: "axe", Name: "Axe", Damage: 14, StaminaPerHit: 6}))
	require.NoError(t, reg.RegisterArmor(&inventory.Armor{ID: "leather", Name: "Leather", Defence: 2, StaminaPerTurn: 2}))
	require.NoError(t, reg.RegisterArmor(&inventory.Armor{ID: "plate", Name: "Plate", Defence: 5, StaminaPerTurn: 3}))
	return reg
}

func testClass(id string, hp float64) *ruleset.UnitClass {
	return &ruleset.UnitClass{
		ID: id, Name: id, MaxHealth: hp, MaxStamina: 20,
		AttackMultiplier: 1, ArmorMultiplier: 1, StaminaMultiplier: 1,
		Skill: skill.NewStrike(skill.HardShot),
	}
}

func testBattle(t *testing.T, items *inventory.Registry, enemyHP float64) *combat.Battle {
	t.Helper()
	sword, _ := items.Weapon("sword")
	leather, _ := items.Armor("leather")

	player, err := combat.NewUnit("Hero", testClass("Warrior", 50), sword, leather, combat.BasicPolicy{})
	require.NoError(t, err)
	enemy, err := combat.NewUnit("Bandit", testClass("Thief", enemyHP), sword, leather,
		combat.NewAutoSkillPolicy(neverSource{}, combat.DefaultSkillTriggerPercent))
	require.NoError(t, err)

	b, err := combat.NewBattle("test", player, enemy, combat.DefaultOptions(), zap.NewNop())
	require.NoError(t, err)
	return b
}
