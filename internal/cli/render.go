package cli

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/command"
)

// Renderer formats battle output for a terminal.
type Renderer struct {
	// Color enables ANSI escape sequences.
	Color  bool
	battle *combat.Battle
}

// NewRenderer creates a Renderer for battle.
func NewRenderer(battle *combat.Battle, color bool) *Renderer {
	return &Renderer{Color: color, battle: battle}
}

func (r *Renderer) paint(color, text string) string {
	if !r.Color {
		return text
	}
	return Colorize(color, text)
}

// Banner introduces the two fighters.
func (r *Renderer) Banner() string {
	var b strings.Builder
	r.battle.Inspect(func(_ int, _ combat.Result, player, enemy *combat.Unit) {
		b.WriteString(r.paint(Bold+BrightYellow, fmt.Sprintf("%s vs %s", player.Name(), enemy.Name())))
		b.WriteByte('\n')
		b.WriteString(r.paint(BrightGreen, command.FormatUnit(player)))
		b.WriteByte('\n')
		b.WriteString(r.paint(BrightRed, command.FormatUnit(enemy)))
		b.WriteByte('\n')
	})
	b.WriteString(r.paint(Dim, "Type help for a list of commands."))
	b.WriteByte('\n')
	return b.String()
}

// Prompt shows the player's vitals before reading a command.
func (r *Renderer) Prompt() string {
	var vitals string
	r.battle.Inspect(func(_ int, _ combat.Result, p, _ *combat.Unit) {
		vitals = fmt.Sprintf("[HP %g/%g | ST %g/%g] ", p.HealthPoints(), p.MaxHP(), p.StaminaPoints(), p.Class().MaxStamina)
	})
	return r.paint(Cyan, vitals) + "> "
}

// Reply colours each narrative line by who it is about.
func (r *Renderer) Reply(reply command.Reply) string {
	if reply.Text == "" {
		return ""
	}
	switch reply.Handler {
	case command.HandlerStatus, command.HandlerEquip:
		return r.paint(White, reply.Text) + "\n"
	case command.HandlerHelp:
		return r.paint(Cyan, reply.Text)
	case "":
		return r.paint(Yellow, reply.Text) + "\n"
	}

	var b strings.Builder
	for _, line := range strings.Split(reply.Text, "\n") {
		b.WriteString(r.line(line))
		b.WriteByte('\n')
	}
	return b.String()
}

// Events renders a battle log, one narrative per line.
func (r *Renderer) Events(events []combat.RoundEvent) string {
	var b strings.Builder
	for _, ev := range events {
		prefix := fmt.Sprintf("[%3d] ", ev.Round)
		b.WriteString(r.paint(Dim, prefix))
		b.WriteString(r.line(ev.Narrative))
		b.WriteByte('\n')
	}
	return b.String()
}

// Result renders the final outcome.
func (r *Renderer) Result(res combat.Result) string {
	switch res {
	case combat.ResultPlayerWon:
		return r.paint(Bold+BrightGreen, "Victory!") + "\n"
	case combat.ResultEnemyWon:
		return r.paint(Bold+BrightRed, "Defeat.") + "\n"
	case combat.ResultDraw:
		return r.paint(Bold+BrightYellow, "Draw.") + "\n"
	default:
		return r.paint(Dim, "The battle was interrupted.") + "\n"
	}
}

func (r *Renderer) line(text string) string {
	switch {
	case strings.HasPrefix(text, r.battle.Player.Name()):
		return r.paint(BrightGreen, text)
	case strings.HasPrefix(text, r.battle.Enemy.Name()):
		return r.paint(BrightRed, text)
	default:
		return r.paint(BrightYellow, text)
	}
}
