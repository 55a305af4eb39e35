package ruleset

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/skirmish/internal/game/skill"
)

// Catalog provides lookup of unit classes by ID.
type Catalog struct {
	classes map[string]*UnitClass
}

// NewCatalog resolves every def's skill against skills and indexes the
// resulting classes.
//
// Precondition: skills must be non-nil.
// Postcondition: Returns a Catalog, or an error on a duplicate class ID or an
// unknown skill ID.
func NewCatalog(defs []*ClassDef, skills *skill.Registry) (*Catalog, error) {
	c := &Catalog{classes: make(map[string]*UnitClass, len(defs))}
	for _, d := range defs {
		if _, exists := c.classes[d.ID]; exists {
			return nil, fmt.Errorf("ruleset: duplicate class ID %q", d.ID)
		}
		s, ok := skills.Skill(d.Skill)
		if !ok {
			return nil, fmt.Errorf("ruleset: class %q references unknown skill %q", d.ID, d.Skill)
		}
		c.classes[d.ID] = NewUnitClass(d, s)
	}
	return c, nil
}

// Class returns the UnitClass for the given ID, if registered.
func (c *Catalog) Class(id string) (*UnitClass, bool) {
	u, ok := c.classes[id]
	return u, ok
}

// IDs returns all class IDs in sorted order.
func (c *Catalog) IDs() []string {
	out := make([]string, 0, len(c.classes))
	for id := range c.classes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
