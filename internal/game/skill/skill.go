// Package skill implements the once-per-battle special abilities a unit class
// grants. Skills are stateless templates: resolving one computes the effect
// from a (user, target) pair without keeping either, so a single Skill value
// can serve any number of concurrent battles.
package skill

import (
	"errors"
	"fmt"
	"math"
)

// Participant is the read-only view of a combatant a skill resolves against.
type Participant interface {
	Name() string
	HP() float64
	MaxHP() float64
	Stamina() float64
}

// Outcome is the result of resolving a skill.
//
// When Applied is false the stamina gate rejected the attempt: UserStamina
// and TargetHP equal the participants' current values.
type Outcome struct {
	Applied     bool
	Damage      float64
	UserStamina float64
	TargetHP    float64
	Narrative   string
}

// Skill is a special ability with a stamina cost and a damage value.
type Skill interface {
	ID() string
	Name() string
	StaminaCost() float64
	Damage() float64
	// Resolve gates on user stamina and computes the effect on target.
	//
	// Postcondition: if Applied, UserStamina == user.Stamina()-StaminaCost()
	// and 0 <= TargetHP <= target.HP().
	Resolve(user, target Participant) Outcome
}

// Def is the static description of a skill loaded from YAML.
type Def struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	StaminaCost float64 `yaml:"stamina_cost"`
	Damage      float64 `yaml:"damage"`
	// Script is an optional Lua file, relative to the scripts root, whose
	// effect function computes the damage dealt.
	Script string `yaml:"script"`
}

// Validate checks that the Def satisfies its invariants.
//
// Postcondition: Returns nil iff ID and Name are non-empty and costs are non-negative.
func (d *Def) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.StaminaCost < 0 {
		errs = append(errs, errors.New("stamina_cost must be >= 0"))
	}
	if d.Damage < 0 {
		errs = append(errs, errors.New("damage must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("skill %q validation failed: %w", d.ID, errors.Join(errs...))
	}
	return nil
}

// canAfford reports whether user has enough stamina to pay cost.
func canAfford(cost float64, user Participant) bool {
	return user.Stamina() >= cost
}

// rejected is the outcome of a gated-out attempt: nothing changes.
func rejected(s Skill, user, target Participant) Outcome {
	return Outcome{
		UserStamina: user.Stamina(),
		TargetHP:    target.HP(),
		Narrative:   fmt.Sprintf("%s tried to use %s but lacked the stamina.", user.Name(), s.Name()),
	}
}

// strike spends the skill's stamina cost and removes damage from the
// target's hit points, clamping at zero. Stamina is not floored.
func strike(s Skill, user, target Participant, damage float64) Outcome {
	hp := target.HP()
	if hp-damage > 0 {
		hp -= damage
	} else {
		hp = 0
	}
	return Outcome{
		Applied:     true,
		Damage:      damage,
		UserStamina: user.Stamina() - s.StaminaCost(),
		TargetHP:    hp,
		Narrative: fmt.Sprintf("%s uses %s and deals %g damage to %s.",
			user.Name(), s.Name(), damage, target.Name()),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
