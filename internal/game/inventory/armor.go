package inventory

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/content"
)

// Armor defines the static properties of an armor piece loaded from YAML.
//
// StaminaPerTurn is the base cost of bracing with the armor for one incoming
// hit; the wearer's class stamina multiplier scales it.
type Armor struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Defence        float64 `yaml:"defence"`
	StaminaPerTurn float64 `yaml:"stamina_per_turn"`
}

// Validate reports an error if the Armor is missing required fields or contains illegal values.
// Precondition: a is non-nil.
// Postcondition: Returns nil iff the armor is well-formed.
func (a *Armor) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if a.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if a.Defence < 0 {
		errs = append(errs, errors.New("defence must be >= 0"))
	}
	if a.StaminaPerTurn < 0 {
		errs = append(errs, errors.New("stamina_per_turn must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("armor validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// LoadArmors reads all YAML files in dir and returns the parsed Armor slice.
// Precondition: dir must be a readable directory.
// Postcondition: Returns non-nil slice and nil error on success; all returned armors pass Validate.
func LoadArmors(dir string) ([]*Armor, error) {
	armors, err := content.Decode[Armor](dir, "armor")
	if err != nil {
		return nil, fmt.Errorf("LoadArmors: %w", err)
	}
	return armors, nil
}
