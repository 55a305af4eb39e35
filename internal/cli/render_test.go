package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/command"
)

func TestRenderer_Banner(t *testing.T) {
	f := newFixture(t, 50)
	out := StripANSI(NewRenderer(f.battle, true).Banner())
	assert.Contains(t, out, "Hero vs Rat")
	assert.Contains(t, out, "Hero the Warrior  HP 50/50")
	assert.Contains(t, out, "Rat the Thief")
}

func TestRenderer_NoColorHasNoEscapes(t *testing.T) {
	f := newFixture(t, 50)
	r := NewRenderer(f.battle, false)
	assert.NotContains(t, r.Banner(), "\033[")
	assert.NotContains(t, r.Prompt(), "\033[")
	assert.Equal(t, "[HP 50/50 | ST 20/20] > ", r.Prompt())
}

func TestRenderer_ReplyColorsLinesByActor(t *testing.T) {
	f := newFixture(t, 50)
	r := NewRenderer(f.battle, true)
	reply, err := f.dispatcher.Dispatch("hit")
	require.NoError(t, err)

	out := r.Reply(reply)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], BrightGreen+"Hero"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], BrightRed+"Rat"), lines[1])
}

func TestRenderer_EmptyReply(t *testing.T) {
	f := newFixture(t, 50)
	assert.Equal(t, "", NewRenderer(f.battle, true).Reply(command.Reply{}))
}

func TestRenderer_Events(t *testing.T) {
	f := newFixture(t, 5)
	_, err := f.battle.PlayerHit()
	require.NoError(t, err)

	out := NewRenderer(f.battle, false).Events(f.battle.Events())
	assert.Contains(t, out, "[  1] Hero, wielding Sword")
	assert.Contains(t, out, "[  1] Hero wins the battle!")
}

func TestRenderer_Result(t *testing.T) {
	f := newFixture(t, 50)
	r := NewRenderer(f.battle, false)
	assert.Equal(t, "Victory!\n", r.Result(combat.ResultPlayerWon))
	assert.Equal(t, "Defeat.\n", r.Result(combat.ResultEnemyWon))
	assert.Equal(t, "Draw.\n", r.Result(combat.ResultDraw))
	assert.Equal(t, "The battle was interrupted.\n", r.Result(combat.ResultNone))
}
