// Package command provides the command registry, parser, built-in command
// definitions and the dispatcher that applies commands to a battle.
package command

// Categories for organizing commands.
const (
	CategoryCombat    = "combat"
	CategoryEquipment = "equipment"
	CategorySystem    = "system"
)

// Handler identifiers mapping commands to dispatcher actions.
const (
	HandlerHit    = "hit"
	HandlerSkill  = "skill"
	HandlerPass   = "pass"
	HandlerStatus = "status"
	HandlerEquip  = "equip"
	HandlerHelp   = "help"
	HandlerQuit   = "quit"
)

// turnHandlers are the handlers that spend the player's turn.
var turnHandlers = map[string]bool{
	HandlerHit:   true,
	HandlerSkill: true,
	HandlerPass:  true,
	HandlerQuit:  true,
}

// freeHandlers inspect or adjust the player without ending the turn.
var freeHandlers = map[string]bool{
	HandlerStatus: true,
	HandlerEquip:  true,
	HandlerHelp:   true,
}

var categories = map[string]bool{
	CategoryCombat:    true,
	CategoryEquipment: true,
	CategorySystem:    true,
}

// TakesTurn reports whether the command spends the player's turn, letting
// the enemy act.
func (c *Command) TakesTurn() bool {
	return turnHandlers[c.Handler]
}

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command.
	Category string
	// Handler selects the dispatcher action.
	Handler string
}

// BuiltinCommands returns all built-in duel commands.
func BuiltinCommands() []Command {
	return []Command{
		// Combat commands
		{Name: "hit", Aliases: []string{"h", "attack"}, Help: "Attack the enemy with your weapon", Category: CategoryCombat, Handler: HandlerHit},
		{Name: "skill", Aliases: []string{"s", "use"}, Help: "Use your class skill (once per battle)", Category: CategoryCombat, Handler: HandlerSkill},
		{Name: "pass", Aliases: []string{"p", "wait"}, Help: "Skip your action and recover stamina", Category: CategoryCombat, Handler: HandlerPass},
		{Name: "status", Aliases: []string{"st"}, Help: "Show both fighters", Category: CategoryCombat, Handler: HandlerStatus},

		// Equipment commands
		{Name: "equip", Aliases: []string{"eq"}, Help: "Equip gear (equip weapon|armor <id>)", Category: CategoryEquipment, Handler: HandlerEquip},

		// System commands
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"q", "flee"}, Help: "Flee the battle and exit", Category: CategorySystem, Handler: HandlerQuit},
	}
}
