package skill

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/content"
	"github.com/cory-johannsen/skirmish/internal/scripting"
)

// Registry holds every skill available to unit classes, indexed by ID.
type Registry struct {
	skills map[string]Skill
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{skills: make(map[string]Skill)}
}

// Register adds s to the registry.
//
// Precondition: s must not be nil.
// Postcondition: Skill(s.ID()) returns s; returns error if the ID is already registered.
func (r *Registry) Register(s Skill) error {
	if _, exists := r.skills[s.ID()]; exists {
		return fmt.Errorf("skill: Registry.Register: skill ID %q already registered", s.ID())
	}
	r.skills[s.ID()] = s
	return nil
}

// RegisterBuiltins registers FuryPunch and HardShot.
func (r *Registry) RegisterBuiltins() error {
	for _, def := range []Def{FuryPunch, HardShot} {
		if err := r.Register(NewStrike(def)); err != nil {
			return err
		}
	}
	return nil
}

// Skill returns the skill registered under id.
func (r *Registry) Skill(id string) (Skill, bool) {
	s, ok := r.skills[id]
	return s, ok
}

// IDs returns all registered skill IDs in sorted order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.skills))
	for id := range r.skills {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// LoadDefs reads all YAML files in dir and parses each as a Def.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed, validated defs (may be empty) or a non-nil error.
func LoadDefs(dir string) ([]*Def, error) {
	defs, err := content.Decode[Def](dir, "skill")
	if err != nil {
		return nil, fmt.Errorf("LoadDefs: %w", err)
	}
	return defs, nil
}

// LoadRegistry builds a Registry holding the builtin skills plus every skill
// defined in dir. Defs naming a script are loaded through scripts.
//
// Precondition: scripts and logger must be non-nil.
// Postcondition: Returns a populated Registry or the first load error.
func LoadRegistry(dir string, scripts *scripting.Manager, logger *zap.Logger) (*Registry, error) {
	r := NewRegistry()
	if err := r.RegisterBuiltins(); err != nil {
		return nil, err
	}
	defs, err := LoadDefs(dir)
	if err != nil {
		return nil, err
	}
	for _, d := range defs {
		var s Skill
		if d.Script != "" {
			script, err := scripts.Load(d.ID, d.Script)
			if err != nil {
				return nil, fmt.Errorf("skill %q: %w", d.ID, err)
			}
			s = NewScripted(*d, script, logger)
		} else {
			s = NewStrike(*d)
		}
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}
