package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/command"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
	"github.com/cory-johannsen/skirmish/internal/game/ruleset"
	"github.com/cory-johannsen/skirmish/internal/game/skill"
)

type neverSource struct{}

func (neverSource) Intn(n int) int { return n - 1 }

type fixture struct {
	battle     *combat.Battle
	items      *inventory.Registry
	dispatcher *command.Dispatcher
}

func newFixture(t *testing.T, enemyHP float64) fixture {
	t.Helper()
	items := inventory.NewRegistry()
	sword := &inventory.Weapon{ID: "sword", Name: "Sword", Damage: 10, StaminaPerHit: 5}
	leather := &inventory.Armor{ID: "leather", Name: "Leather", Defence: 2, StaminaPerTurn: 2}
	require.NoError(t, items.RegisterWeapon(sword))
	require.NoError(t, items.RegisterArmor(leather))

	class := func(name string, hp float64) *ruleset.UnitClass {
		return &ruleset.UnitClass{
			ID: name, Name: name, MaxHealth: hp, MaxStamina: 20,
			AttackMultiplier: 1, ArmorMultiplier: 1, StaminaMultiplier: 1,
			Skill: skill.NewStrike(skill.FuryPunch),
		}
	}
	player, err := combat.NewUnit("Hero", class("Warrior", 50), sword, leather, combat.BasicPolicy{})
	require.NoError(t, err)
	enemy, err := combat.NewUnit("Rat", class("Thief", enemyHP), sword, leather,
		combat.NewAutoSkillPolicy(neverSource{}, combat.DefaultSkillTriggerPercent))
	require.NoError(t, err)

	b, err := combat.NewBattle("cli", player, enemy, combat.DefaultOptions(), zap.NewNop())
	require.NoError(t, err)
	return fixture{
		battle:     b,
		items:      items,
		dispatcher: command.NewDispatcher(command.DefaultRegistry(), b, items, zap.NewNop()),
	}
}
