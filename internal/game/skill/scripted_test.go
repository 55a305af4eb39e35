package skill_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/skirmish/internal/game/skill"
	"github.com/cory-johannsen/skirmish/internal/scripting"
)

var bloodRage = skill.Def{ID: "blood_rage", Name: "Blood Rage", StaminaCost: 8, Damage: 10}

func loadScript(t *testing.T, body string) *scripting.Script {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skill.lua")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	s, err := scripting.LoadScript(path, 0)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestScripted_UsesScriptDamage(t *testing.T) {
	script := loadScript(t, `
function effect(user, target, skill)
  return skill.damage + (user.max_hp - user.hp) * 0.25
end
`)
	s := skill.NewScripted(bloodRage, script, zap.NewNop())
	user := &fighter{name: "Berserker", hp: 40, maxHP: 80, stamina: 20}
	target := &fighter{name: "Thief", hp: 50}

	out := s.Resolve(user, target)
	require.True(t, out.Applied)
	assert.Equal(t, 20.0, out.Damage)
	assert.Equal(t, 30.0, out.TargetHP)
	assert.Equal(t, 12.0, out.UserStamina)
	assert.Equal(t, "Berserker uses Blood Rage and deals 20 damage to Thief.", out.Narrative)
}

func TestScripted_CustomNarrative(t *testing.T) {
	script := loadScript(t, `
function effect(user, target, skill)
  return 3, user.name .. " howls at " .. target.name
end
`)
	s := skill.NewScripted(bloodRage, script, zap.NewNop())
	out := s.Resolve(&fighter{name: "B", stamina: 8}, &fighter{name: "T", hp: 10})
	assert.Equal(t, "B howls at T", out.Narrative)
	assert.Equal(t, 7.0, out.TargetHP)
}

func TestScripted_NegativeDamageClampedToZero(t *testing.T) {
	script := loadScript(t, `function effect() return -25 end`)
	s := skill.NewScripted(bloodRage, script, zap.NewNop())
	out := s.Resolve(&fighter{name: "B", stamina: 8}, &fighter{name: "T", hp: 10})
	assert.True(t, out.Applied)
	assert.Equal(t, 0.0, out.Damage)
	assert.Equal(t, 10.0, out.TargetHP, "a skill never heals its target")
}

func TestScripted_FallsBackOnError(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	script := loadScript(t, `function effect() error("broken") end`)
	s := skill.NewScripted(bloodRage, script, zap.New(core))

	out := s.Resolve(&fighter{name: "B", stamina: 8}, &fighter{name: "T", hp: 30})
	assert.True(t, out.Applied)
	assert.Equal(t, 10.0, out.Damage)
	assert.Equal(t, 20.0, out.TargetHP)
	assert.Equal(t, 1, logs.FilterMessage("skill script failed, using base damage").Len())
}

func TestScripted_FallsBackOnNonNumber(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	script := loadScript(t, `function effect() return "lots" end`)
	s := skill.NewScripted(bloodRage, script, zap.New(core))

	out := s.Resolve(&fighter{name: "B", stamina: 8}, &fighter{name: "T", hp: 30})
	assert.Equal(t, 10.0, out.Damage)
	assert.Equal(t, 1, logs.Len())
}

func TestScripted_GateSkipsScript(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	script := loadScript(t, `function effect() error("must not run") end`)
	s := skill.NewScripted(bloodRage, script, zap.New(core))

	out := s.Resolve(&fighter{name: "B", stamina: 7.9}, &fighter{name: "T", hp: 30})
	assert.False(t, out.Applied)
	assert.Equal(t, 30.0, out.TargetHP)
	assert.Zero(t, logs.Len())
}
