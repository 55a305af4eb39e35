package command

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
)

// Reply is the outcome of dispatching one input line.
type Reply struct {
	// Handler is the handler of the resolved command, empty when unresolved.
	Handler string
	// Text is the narrative to show the player.
	Text string
	// Done reports that the session should stop: the battle has a result or
	// the player quit.
	Done bool
}

// Dispatcher applies parsed commands to a single battle.
type Dispatcher struct {
	commands *Registry
	battle   *combat.Battle
	items    *inventory.Registry
	logger   *zap.Logger
}

// NewDispatcher creates a Dispatcher for battle.
//
// Precondition: all arguments must be non-nil.
func NewDispatcher(commands *Registry, battle *combat.Battle, items *inventory.Registry, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{commands: commands, battle: battle, items: items, logger: logger}
}

// Dispatch parses line, resolves the command and applies it.
//
// Postcondition: Returns a Reply. The error is non-nil only for failures
// other than ordinary player mistakes.
func (d *Dispatcher) Dispatch(line string) (Reply, error) {
	parsed := Parse(line)
	if parsed.Command == "" {
		return Reply{}, nil
	}
	cmd, ok := d.commands.Resolve(parsed.Command)
	if !ok {
		return Reply{Text: fmt.Sprintf("Unknown command %q. Type help for a list of commands.", parsed.Command)}, nil
	}
	d.logger.Debug("dispatching command",
		zap.String("command", cmd.Name),
		zap.Strings("args", parsed.Args),
	)

	reply := Reply{Handler: cmd.Handler}
	var (
		text string
		err  error
	)
	switch cmd.Handler {
	case HandlerHit:
		text, err = d.battle.PlayerHit()
	case HandlerSkill:
		text, err = d.battle.PlayerUseSkill()
	case HandlerPass:
		text, err = d.battle.PassTurn()
	case HandlerQuit:
		text, err = d.battle.EndBattle()
		reply.Done = true
	case HandlerStatus:
		text = HandleStatus(d.battle)
	case HandlerEquip:
		text, err = HandleEquip(d.battle, d.items, parsed.Args)
	case HandlerHelp:
		text = d.commands.HelpText()
	default:
		return reply, fmt.Errorf("command %q has unknown handler %q", cmd.Name, cmd.Handler)
	}

	if errors.Is(err, combat.ErrBattleOver) {
		reply.Text = fmt.Sprintf("The battle is over (%s).", d.battle.Result())
		reply.Done = true
		return reply, nil
	}
	if err != nil {
		return reply, err
	}
	reply.Text = text
	reply.Done = reply.Done || d.battle.Over()
	return reply, nil
}
