package skill

import (
	"math"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/scripting"
)

// effectFunc is the global function a skill script must define:
//
//	function effect(user, target, skill) return damage [, narrative] end
const effectFunc = "effect"

// Scripted is a skill whose damage is computed by a Lua script. The stamina
// gate, stamina cost and hit point clamp are the same as for Strike.
//
// Script failures never surface to the caller: they are logged and the skill
// deals its base damage instead.
type Scripted struct {
	def    Def
	script *scripting.Script
	logger *zap.Logger
}

// NewScripted creates a Scripted skill from def backed by script.
//
// Precondition: def.Validate() == nil; script and logger are non-nil.
func NewScripted(def Def, script *scripting.Script, logger *zap.Logger) *Scripted {
	return &Scripted{def: def, script: script, logger: logger}
}

func (s *Scripted) ID() string           { return s.def.ID }
func (s *Scripted) Name() string         { return s.def.Name }
func (s *Scripted) StaminaCost() float64 { return s.def.StaminaCost }
func (s *Scripted) Damage() float64      { return s.def.Damage }

// Resolve applies the stamina gate, asks the script for the damage, and
// applies it.
func (s *Scripted) Resolve(user, target Participant) Outcome {
	if !canAfford(s.def.StaminaCost, user) {
		return rejected(s, user, target)
	}
	damage, narrative := s.scriptDamage(user, target)
	out := strike(s, user, target, damage)
	if narrative != "" {
		out.Narrative = narrative
	}
	return out
}

// scriptDamage runs the effect function. The returned damage is rounded to
// one decimal and never negative.
func (s *Scripted) scriptDamage(user, target Participant) (float64, string) {
	out, err := s.script.Call(effectFunc, 2,
		participantArgs(user),
		participantArgs(target),
		scripting.Args{
			"name":         lua.LString(s.def.Name),
			"damage":       lua.LNumber(s.def.Damage),
			"stamina_cost": lua.LNumber(s.def.StaminaCost),
		},
	)
	if err != nil {
		s.logger.Warn("skill script failed, using base damage",
			zap.String("skill", s.def.ID),
			zap.Error(err),
		)
		return s.def.Damage, ""
	}

	n, ok := out[0].(lua.LNumber)
	if !ok || math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
		s.logger.Warn("skill script returned no usable damage, using base damage",
			zap.String("skill", s.def.ID),
			zap.String("returned", out[0].String()),
		)
		return s.def.Damage, ""
	}

	damage := round1(math.Max(float64(n), 0))
	var narrative string
	if str, ok := out[1].(lua.LString); ok {
		narrative = string(str)
	}
	return damage, narrative
}

func participantArgs(p Participant) scripting.Args {
	return scripting.Args{
		"name":    lua.LString(p.Name()),
		"hp":      lua.LNumber(p.HP()),
		"max_hp":  lua.LNumber(p.MaxHP()),
		"stamina": lua.LNumber(p.Stamina()),
	}
}
