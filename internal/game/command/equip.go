package command

import (
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/inventory"
)

const equipUsage = "Usage: equip weapon|armor <id>"

// HandleEquip processes the "equip" command for the battle's player.
// args is expected to be ["weapon"|"armor", "<id>"].
//
// Precondition: b and reg must not be nil.
// Postcondition: On success the player's weapon or armor is replaced and a
// confirmation is returned. On failure the player is unchanged. The error is
// combat.ErrBattleOver once the battle has a result.
func HandleEquip(b *combat.Battle, reg *inventory.Registry, args []string) (string, error) {
	if len(args) != 2 {
		return equipUsage, nil
	}
	kind, id := args[0], args[1]

	switch kind {
	case "weapon", "w":
		w, ok := reg.Weapon(id)
		if !ok {
			return fmt.Sprintf("%s: no such weapon", id), nil
		}
		return b.EquipPlayerWeapon(w)
	case "armor", "armour", "a":
		a, ok := reg.Armor(id)
		if !ok {
			return fmt.Sprintf("%s: no such armor", id), nil
		}
		return b.EquipPlayerArmor(a)
	default:
		return equipUsage, nil
	}
}
