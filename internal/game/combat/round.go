package combat

// ActionType identifies the kind of action recorded in a RoundEvent.
type ActionType int

const (
	// ActionUnknown is the zero value and is never recorded.
	ActionUnknown ActionType = iota
	// ActionHit is a policy-driven hit: an attack, or the enemy's triggered skill.
	ActionHit
	// ActionSkill is an explicit skill request.
	ActionSkill
	// ActionPass skips the actor's action.
	ActionPass
	// ActionFlee ends the battle early.
	ActionFlee
	// ActionResult records the battle result.
	ActionResult
)

// String returns the lowercase name of the action.
func (a ActionType) String() string {
	switch a {
	case ActionHit:
		return "hit"
	case ActionSkill:
		return "skill"
	case ActionPass:
		return "pass"
	case ActionFlee:
		return "flee"
	case ActionResult:
		return "result"
	default:
		return "unknown"
	}
}

// RoundEvent records one narrated action in a battle.
type RoundEvent struct {
	Round     int
	ActorID   string
	ActorName string
	Action    ActionType
	Narrative string
}

// Result is the outcome of a battle.
type Result int

const (
	// ResultNone means the battle is still in progress.
	ResultNone Result = iota
	ResultPlayerWon
	ResultEnemyWon
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultPlayerWon:
		return "player won"
	case ResultEnemyWon:
		return "enemy won"
	case ResultDraw:
		return "draw"
	default:
		return "in progress"
	}
}
