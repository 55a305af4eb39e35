package skill

// FuryPunch is the warrior's skill.
var FuryPunch = Def{
	ID:          "fury_punch",
	Name:        "Fury Punch",
	Description: "A savage blow that ignores armor.",
	StaminaCost: 6,
	Damage:      12,
}

// HardShot is the thief's skill.
var HardShot = Def{
	ID:          "hard_shot",
	Name:        "Hard Shot",
	Description: "A precise thrust between the plates.",
	StaminaCost: 5,
	Damage:      15,
}

// Strike is a skill that deals its fixed damage directly to the target,
// bypassing weapon and armor.
type Strike struct {
	def Def
}

// NewStrike creates a Strike from def.
//
// Precondition: def.Validate() == nil.
func NewStrike(def Def) *Strike {
	return &Strike{def: def}
}

func (s *Strike) ID() string           { return s.def.ID }
func (s *Strike) Name() string         { return s.def.Name }
func (s *Strike) StaminaCost() float64 { return s.def.StaminaCost }
func (s *Strike) Damage() float64      { return s.def.Damage }

// Resolve applies the stamina gate then the fixed damage.
func (s *Strike) Resolve(user, target Participant) Outcome {
	if !canAfford(s.def.StaminaCost, user) {
		return rejected(s, user, target)
	}
	return strike(s, user, target, s.def.Damage)
}
