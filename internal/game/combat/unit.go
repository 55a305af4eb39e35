package combat

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/skirmish/internal/game/inventory"
	"github.com/cory-johannsen/skirmish/internal/game/ruleset"
)

// Construction errors. A unit must always carry a class with a skill, a
// weapon and an armor so that no battle operation can fail half-way.
var (
	ErrMissingClass  = errors.New("combat: unit class is required")
	ErrMissingSkill  = errors.New("combat: unit class has no skill")
	ErrMissingWeapon = errors.New("combat: weapon is required")
	ErrMissingArmor  = errors.New("combat: armor is required")
)

// Unit is one combatant in a duel.
//
// Invariant: 0 <= HP() <= Class().MaxHealth after every operation.
// Invariant: SkillUsed() turns true at most once and never resets.
// Stamina has no floor: every spending path is gated on a comparison with
// the raw value, and StaminaPoints clamps at zero for display.
type Unit struct {
	ID string

	name   string
	class  *ruleset.UnitClass
	weapon *inventory.Weapon
	armor  *inventory.Armor
	policy Policy

	hp        float64
	stamina   float64
	skillUsed bool
}

// NewUnit creates a unit with full health and stamina from class.
// A nil policy selects BasicPolicy.
//
// Postcondition: Returns a unit with a fresh uuid ID, or one of the
// ErrMissing* errors.
func NewUnit(name string, class *ruleset.UnitClass, weapon *inventory.Weapon, armor *inventory.Armor, policy Policy) (*Unit, error) {
	switch {
	case class == nil:
		return nil, ErrMissingClass
	case class.Skill == nil:
		return nil, fmt.Errorf("%w: %q", ErrMissingSkill, class.ID)
	case weapon == nil:
		return nil, ErrMissingWeapon
	case armor == nil:
		return nil, ErrMissingArmor
	}
	if policy == nil {
		policy = BasicPolicy{}
	}
	return &Unit{
		ID:      uuid.NewString(),
		name:    name,
		class:   class,
		weapon:  weapon,
		armor:   armor,
		policy:  policy,
		hp:      class.MaxHealth,
		stamina: class.MaxStamina,
	}, nil
}

func (u *Unit) Name() string              { return u.name }
func (u *Unit) Class() *ruleset.UnitClass { return u.class }
func (u *Unit) Weapon() *inventory.Weapon { return u.weapon }
func (u *Unit) Armor() *inventory.Armor   { return u.armor }
func (u *Unit) Policy() Policy            { return u.policy }
func (u *Unit) HP() float64               { return u.hp }
func (u *Unit) MaxHP() float64            { return u.class.MaxHealth }
func (u *Unit) Stamina() float64          { return u.stamina }
func (u *Unit) SkillUsed() bool           { return u.skillUsed }
func (u *Unit) IsDead() bool              { return u.hp <= 0 }

// HealthPoints returns hit points rounded to one decimal for display.
func (u *Unit) HealthPoints() float64 {
	return round1(u.hp)
}

// StaminaPoints returns stamina rounded to one decimal, never below zero.
func (u *Unit) StaminaPoints() float64 {
	return round1(max(u.stamina, 0))
}

// EquipWeapon replaces the equipped weapon reference. A nil weapon is refused
// and nothing changes.
func (u *Unit) EquipWeapon(w *inventory.Weapon) string {
	if w == nil {
		return fmt.Sprintf("%s has no weapon to equip.", u.name)
	}
	u.weapon = w
	return fmt.Sprintf("%s equipped weapon %s.", u.name, w.Name)
}

// EquipArmor replaces the equipped armor reference. A nil armor is refused
// and nothing changes.
func (u *Unit) EquipArmor(a *inventory.Armor) string {
	if a == nil {
		return fmt.Sprintf("%s has no armor to equip.", u.name)
	}
	u.armor = a
	return fmt.Sprintf("%s equipped armor %s.", u.name, a.Name)
}

// TakeDamage removes damage from hit points, clamping at zero. Negative
// damage is ignored.
//
// Postcondition: HP() == max(hp0-damage, 0) for damage >= 0, else hp0.
func (u *Unit) TakeDamage(damage float64) float64 {
	if damage < 0 {
		return u.hp
	}
	if u.hp-damage > 0 {
		u.hp -= damage
	} else {
		u.hp = 0
	}
	return u.hp
}

// Hit performs this unit's turn against target as decided by its policy.
func (u *Unit) Hit(target *Unit) string {
	return u.policy.Hit(u, target)
}

// Attack is the ordinary weapon attack. It is refused without any state
// change when stamina is below the weapon's per-hit cost.
func (u *Unit) Attack(target *Unit) string {
	if u.stamina < u.weapon.StaminaPerHit {
		return fmt.Sprintf("%s tried to use %s but lacked the stamina.", u.name, u.weapon.Name)
	}
	damage := u.countDamage(target)
	if damage > 0 {
		return fmt.Sprintf("%s, wielding %s, pierces %s's %s and deals %g damage.",
			u.name, u.weapon.Name, target.name, target.armor.Name, damage)
	}
	return fmt.Sprintf("%s strikes with %s, but %s's %s stops the blow.",
		u.name, u.weapon.Name, target.name, target.armor.Name)
}

// countDamage spends the attacker's per-hit stamina, computes weapon damage,
// lets the defender brace with armor if it can pay the brace cost, rounds the
// result to one decimal and applies it. The returned damage may be <= 0 when
// the armor absorbed the hit.
//
// Precondition: the caller checked u.stamina >= u.weapon.StaminaPerHit.
func (u *Unit) countDamage(target *Unit) float64 {
	u.stamina -= u.weapon.StaminaPerHit
	damage := u.weapon.Damage * u.class.AttackMultiplier

	brace := target.armor.StaminaPerTurn * target.class.StaminaMultiplier
	if target.stamina >= brace {
		target.stamina -= brace
		damage -= target.armor.Defence * target.class.ArmorMultiplier
	}

	damage = round1(damage)
	target.TakeDamage(damage)
	return damage
}

// UseSkill spends this unit's single skill attempt on target. The attempt is
// consumed even when the skill's stamina gate rejects it.
func (u *Unit) UseSkill(target *Unit) string {
	if u.skillUsed {
		return fmt.Sprintf("%s has already used %s.", u.name, u.class.Skill.Name())
	}
	out := u.class.Skill.Resolve(u, target)
	if out.Applied {
		u.stamina = out.UserStamina
		target.hp = min(max(out.TargetHP, 0), target.class.MaxHealth)
	}
	u.skillUsed = true
	return out.Narrative
}

// regenerate restores amount scaled by the class stamina multiplier, capped
// at the class maximum.
func (u *Unit) regenerate(amount float64) {
	u.stamina = min(u.stamina+amount*u.class.StaminaMultiplier, u.class.MaxStamina)
}
