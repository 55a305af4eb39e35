package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

// FormatUnit renders one unit's vitals, gear and skill state on one line.
//
// Precondition: u is not being changed concurrently; use Battle.Inspect for
// units of a running battle.
func FormatUnit(u *combat.Unit) string {
	skillState := "ready"
	if u.SkillUsed() {
		skillState = "used"
	}
	return fmt.Sprintf("%s the %s  HP %g/%g  Stamina %g/%g  Weapon %s  Armor %s  Skill %s (%s)",
		u.Name(), u.Class().Name,
		u.HealthPoints(), u.Class().MaxHealth,
		u.StaminaPoints(), u.Class().MaxStamina,
		u.Weapon().Name, u.Armor().Name,
		u.Class().Skill.Name(), skillState,
	)
}

// HandleStatus renders both fighters and the round counter.
func HandleStatus(b *combat.Battle) string {
	var sb strings.Builder
	b.Inspect(func(round int, result combat.Result, player, enemy *combat.Unit) {
		fmt.Fprintf(&sb, "Round %d (%s)\n", round, result)
		sb.WriteString(FormatUnit(player))
		sb.WriteByte('\n')
		sb.WriteString(FormatUnit(enemy))
	})
	return sb.String()
}
