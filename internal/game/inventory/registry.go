package inventory

import (
	"fmt"
	"sort"
)

// Registry holds all loaded weapon and armor definitions indexed by ID.
//
// A Registry is populated once at startup and read-only afterwards.
type Registry struct {
	weapons map[string]*Weapon
	armors  map[string]*Armor
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		weapons: make(map[string]*Weapon),
		armors:  make(map[string]*Armor),
	}
}

// LoadRegistry loads weapons from weaponsDir and armors from armorsDir into a new Registry.
//
// Postcondition: Returns a populated Registry or the first load/registration error.
func LoadRegistry(weaponsDir, armorsDir string) (*Registry, error) {
	weapons, err := LoadWeapons(weaponsDir)
	if err != nil {
		return nil, err
	}
	armors, err := LoadArmors(armorsDir)
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	for _, w := range weapons {
		if err := r.RegisterWeapon(w); err != nil {
			return nil, err
		}
	}
	for _, a := range armors {
		if err := r.RegisterArmor(a); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RegisterWeapon adds w to the registry.
//
// Precondition:  w must not be nil.
// Postcondition: Weapon(w.ID) returns w; returns error if w.ID already registered.
func (r *Registry) RegisterWeapon(w *Weapon) error {
	if _, exists := r.weapons[w.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterWeapon: weapon ID %q already registered", w.ID)
	}
	r.weapons[w.ID] = w
	return nil
}

// RegisterArmor adds a to the registry.
//
// Precondition:  a must not be nil.
// Postcondition: Armor(a.ID) returns a; returns error if a.ID already registered.
func (r *Registry) RegisterArmor(a *Armor) error {
	if _, exists := r.armors[a.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterArmor: armor ID %q already registered", a.ID)
	}
	r.armors[a.ID] = a
	return nil
}

// Weapon returns the Weapon for the given id and whether it was found.
func (r *Registry) Weapon(id string) (*Weapon, bool) {
	w, ok := r.weapons[id]
	return w, ok
}

// Armor returns the Armor for the given id and whether it was found.
func (r *Registry) Armor(id string) (*Armor, bool) {
	a, ok := r.armors[id]
	return a, ok
}

// WeaponIDs returns all registered weapon IDs in sorted order.
func (r *Registry) WeaponIDs() []string {
	out := make([]string, 0, len(r.weapons))
	for id := range r.weapons {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ArmorIDs returns all registered armor IDs in sorted order.
func (r *Registry) ArmorIDs() []string {
	out := make([]string, 0, len(r.armors))
	for id := range r.armors {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
