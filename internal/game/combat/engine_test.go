package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

func TestEngine_StartAndGet(t *testing.T) {
	eng := combat.NewEngine(zap.NewNop())
	b, err := eng.StartBattle(newHero(t, 50), newGoblin(t, 50), combat.DefaultOptions())
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, 1, eng.ActiveCount())

	got, ok := eng.GetBattle(b.ID)
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = eng.GetBattle("missing")
	assert.False(t, ok)
}

func TestEngine_RefusesUnitInTwoBattles(t *testing.T) {
	eng := combat.NewEngine(zap.NewNop())
	hero, goblin := newHero(t, 50), newGoblin(t, 50)
	_, err := eng.StartBattle(hero, goblin, combat.DefaultOptions())
	require.NoError(t, err)

	_, err = eng.StartBattle(hero, newGoblin(t, 50), combat.DefaultOptions())
	assert.Error(t, err)
	_, err = eng.StartBattle(newHero(t, 50), goblin, combat.DefaultOptions())
	assert.Error(t, err)
	assert.Equal(t, 1, eng.ActiveCount())
}

func TestEngine_EndBattleFreesUnits(t *testing.T) {
	eng := combat.NewEngine(zap.NewNop())
	hero, goblin := newHero(t, 50), newGoblin(t, 50)
	b, err := eng.StartBattle(hero, goblin, combat.DefaultOptions())
	require.NoError(t, err)

	eng.EndBattle(b.ID)
	eng.EndBattle("missing")
	assert.Equal(t, 0, eng.ActiveCount())

	_, err = eng.StartBattle(hero, goblin, combat.DefaultOptions())
	assert.NoError(t, err)
}

func TestEngine_PropagatesBattleErrors(t *testing.T) {
	eng := combat.NewEngine(zap.NewNop())
	hero := newHero(t, 50)
	_, err := eng.StartBattle(hero, hero, combat.DefaultOptions())
	assert.Error(t, err)
	assert.Equal(t, 0, eng.ActiveCount())
}
