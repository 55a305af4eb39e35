// Package inventory provides the equipment model for duels: weapon and armor
// definitions, their YAML loaders, and an ID-indexed registry.
package inventory

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/content"
)

// Weapon defines the static properties of a weapon loaded from YAML.
//
// Weapons are immutable once loaded and shared by reference between units.
type Weapon struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Damage        float64 `yaml:"damage"`
	StaminaPerHit float64 `yaml:"stamina_per_hit"`
}

// Validate checks that the Weapon satisfies its invariants.
// Precondition: w is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (w *Weapon) Validate() error {
	var errs []error
	if w.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if w.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if w.Damage < 0 {
		errs = append(errs, errors.New("damage must be >= 0"))
	}
	if w.StaminaPerHit < 0 {
		errs = append(errs, errors.New("stamina_per_hit must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// LoadWeapons reads all YAML files from dir, parses each as a Weapon,
// validates it, and returns the collected slice.
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Weapons or the first encountered error.
func LoadWeapons(dir string) ([]*Weapon, error) {
	weapons, err := content.Decode[Weapon](dir, "weapon")
	if err != nil {
		return nil, fmt.Errorf("LoadWeapons: %w", err)
	}
	return weapons, nil
}
