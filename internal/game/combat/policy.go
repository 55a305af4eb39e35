package combat

// Policy decides what a unit does when it is asked to hit.
type Policy interface {
	Hit(attacker, target *Unit) string
}

// BasicPolicy always performs the ordinary weapon attack. Player units use it;
// their skill is only used on explicit request.
type BasicPolicy struct{}

// Hit performs attacker.Attack(target).
func (BasicPolicy) Hit(attacker, target *Unit) string {
	return attacker.Attack(target)
}

// DefaultSkillTriggerPercent is the chance, per turn, that an enemy able to
// use its skill does so instead of attacking.
const DefaultSkillTriggerPercent = 10

// AutoSkillPolicy is the enemy policy: while the skill is unused and
// affordable, each turn draws a uniform value in [0, 100) and uses the skill
// when the draw is below the trigger percentage. Otherwise it attacks.
type AutoSkillPolicy struct {
	src            Source
	triggerPercent int
}

// NewAutoSkillPolicy creates an AutoSkillPolicy drawing from src.
//
// Precondition: src must be non-nil; 0 <= triggerPercent <= 100.
func NewAutoSkillPolicy(src Source, triggerPercent int) *AutoSkillPolicy {
	return &AutoSkillPolicy{src: src, triggerPercent: triggerPercent}
}

// TriggerPercent returns the configured trigger chance.
func (p *AutoSkillPolicy) TriggerPercent() int { return p.triggerPercent }

// Hit uses the skill or attacks. No draw is made once the skill is used or
// while the attacker cannot afford it.
func (p *AutoSkillPolicy) Hit(attacker, target *Unit) string {
	if !attacker.skillUsed &&
		attacker.stamina >= attacker.class.Skill.StaminaCost() &&
		p.src.Intn(100) < p.triggerPercent {
		return attacker.UseSkill(target)
	}
	return attacker.Attack(target)
}
