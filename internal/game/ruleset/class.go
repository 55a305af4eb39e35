// Package ruleset defines unit classes: the archetypes that set a combatant's
// health and stamina pools, its attack, armor and stamina multipliers, and
// the special skill it may use once per battle.
package ruleset

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/content"
	"github.com/cory-johannsen/skirmish/internal/game/skill"
)

// ClassDef is the YAML form of a unit class. Skill names a skill ID that is
// resolved against a skill.Registry when the catalog is built.
type ClassDef struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	MaxHealth   float64 `yaml:"max_health"`
	MaxStamina  float64 `yaml:"max_stamina"`
	Attack      float64 `yaml:"attack"`
	Armor       float64 `yaml:"armor"`
	Stamina     float64 `yaml:"stamina"`
	Skill       string  `yaml:"skill"`
}

// Validate checks the ClassDef invariants.
//
// Postcondition: Returns nil iff identity and skill are set, pools are positive
// and multipliers are non-negative.
func (d *ClassDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.MaxHealth <= 0 {
		errs = append(errs, errors.New("max_health must be > 0"))
	}
	if d.MaxStamina <= 0 {
		errs = append(errs, errors.New("max_stamina must be > 0"))
	}
	if d.Attack < 0 || d.Armor < 0 || d.Stamina < 0 {
		errs = append(errs, errors.New("attack, armor and stamina multipliers must be >= 0"))
	}
	if d.Skill == "" {
		errs = append(errs, errors.New("skill must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("class %q validation failed: %w", d.ID, errors.Join(errs...))
	}
	return nil
}

// UnitClass is the immutable archetype shared by every unit of the class.
type UnitClass struct {
	ID                string
	Name              string
	MaxHealth         float64
	MaxStamina        float64
	AttackMultiplier  float64
	ArmorMultiplier   float64
	StaminaMultiplier float64
	Skill             skill.Skill
}

// NewUnitClass binds def to its resolved skill.
//
// Precondition: def is valid; s is the skill named by def.Skill.
func NewUnitClass(def *ClassDef, s skill.Skill) *UnitClass {
	return &UnitClass{
		ID:                def.ID,
		Name:              def.Name,
		MaxHealth:         def.MaxHealth,
		MaxStamina:        def.MaxStamina,
		AttackMultiplier:  def.Attack,
		ArmorMultiplier:   def.Armor,
		StaminaMultiplier: def.Stamina,
		Skill:             s,
	}
}

// LoadClasses reads all YAML files in dir and parses each as a ClassDef.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed, validated defs (may be empty slice) or a non-nil error.
func LoadClasses(dir string) ([]*ClassDef, error) {
	return content.Decode[ClassDef](dir, "class")
}
