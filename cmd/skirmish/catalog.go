package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
	"github.com/cory-johannsen/skirmish/internal/game/ruleset"
	"github.com/cory-johannsen/skirmish/internal/game/skill"
	"github.com/cory-johannsen/skirmish/internal/scripting"
)

// catalog holds every content registry the binary needs.
type catalog struct {
	Items   *inventory.Registry
	Skills  *skill.Registry
	Classes *ruleset.Catalog
	Scripts *scripting.Manager
}

// loadCatalog loads weapons, armors, skills (with their scripts) and classes.
//
// Postcondition: Returns a catalog whose Scripts must be closed, or an error
// with every loaded script already closed.
func loadCatalog(cfg config.Config, logger *zap.Logger) (*catalog, error) {
	items, err := inventory.LoadRegistry(cfg.Content.WeaponsDir, cfg.Content.ArmorsDir)
	if err != nil {
		return nil, fmt.Errorf("loading equipment: %w", err)
	}

	scripts := scripting.NewManager(cfg.Content.ScriptsDir, cfg.Scripting.InstructionLimit, logger)
	skills, err := skill.LoadRegistry(cfg.Content.SkillsDir, scripts, logger)
	if err != nil {
		scripts.Close()
		return nil, fmt.Errorf("loading skills: %w", err)
	}

	defs, err := ruleset.LoadClasses(cfg.Content.ClassesDir)
	if err != nil {
		scripts.Close()
		return nil, fmt.Errorf("loading classes: %w", err)
	}
	classes, err := ruleset.NewCatalog(defs, skills)
	if err != nil {
		scripts.Close()
		return nil, fmt.Errorf("binding classes: %w", err)
	}

	return &catalog{Items: items, Skills: skills, Classes: classes, Scripts: scripts}, nil
}

// Close releases the script VMs.
func (c *catalog) Close() {
	c.Scripts.Close()
}

// loadout names the content a unit is built from.
type loadout struct {
	Name   string
	Class  string
	Weapon string
	Armor  string
}

// NewUnit resolves l against the catalog and builds a unit. An empty name
// takes the class name.
func (c *catalog) NewUnit(l loadout, policy combat.Policy) (*combat.Unit, error) {
	class, ok := c.Classes.Class(l.Class)
	if !ok {
		return nil, fmt.Errorf("unknown class %q", l.Class)
	}
	weapon, ok := c.Items.Weapon(l.Weapon)
	if !ok {
		return nil, fmt.Errorf("unknown weapon %q", l.Weapon)
	}
	armor, ok := c.Items.Armor(l.Armor)
	if !ok {
		return nil, fmt.Errorf("unknown armor %q", l.Armor)
	}
	name := l.Name
	if name == "" {
		name = class.Name
	}
	return combat.NewUnit(name, class, weapon, armor, policy)
}
