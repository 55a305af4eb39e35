package combat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/inventory"
)

// ErrBattleOver is returned for any action on a battle that already has a result.
var ErrBattleOver = errors.New("combat: battle is over")

// ErrUnbounded is returned for options under which a battle between two
// exhausted units could never end.
var ErrUnbounded = errors.New("combat: battle without regeneration needs a round cap")

// Options tunes the battle driver.
type Options struct {
	// StaminaPerRound is regenerated by both units before each enemy turn,
	// scaled by each unit's class stamina multiplier.
	StaminaPerRound float64
	// MaxRounds ends the battle as a draw once reached. Zero means no cap.
	MaxRounds int
}

// Validate checks the option invariants.
//
// Postcondition: Returns nil, or an error wrapping ErrUnbounded when neither
// regeneration nor a round cap is set.
func (o Options) Validate() error {
	if o.StaminaPerRound < 0 {
		return fmt.Errorf("combat: stamina per round must be >= 0, got %g", o.StaminaPerRound)
	}
	if o.MaxRounds < 0 {
		return fmt.Errorf("combat: max rounds must be >= 0, got %d", o.MaxRounds)
	}
	if o.StaminaPerRound == 0 && o.MaxRounds == 0 {
		return ErrUnbounded
	}
	return nil
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{StaminaPerRound: 1, MaxRounds: 100}
}

// Battle drives a duel between a player unit and an enemy unit. Each player
// action is followed by the enemy's turn. All methods are safe for concurrent
// use; actions are serialised. Player and Enemy may only be read or changed
// through Battle methods once the battle is shared.
type Battle struct {
	ID     string
	Player *Unit
	Enemy  *Unit

	opts   Options
	logger *zap.Logger

	mu     sync.Mutex
	round  int
	result Result
	events []RoundEvent
}

// NewBattle creates a battle between two distinct units.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns a battle in round 0 with ResultNone, or an error.
func NewBattle(id string, player, enemy *Unit, opts Options, logger *zap.Logger) (*Battle, error) {
	if player == nil || enemy == nil {
		return nil, errors.New("combat: battle requires two units")
	}
	if player == enemy {
		return nil, fmt.Errorf("combat: unit %q cannot fight itself", player.Name())
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Battle{
		ID:     id,
		Player: player,
		Enemy:  enemy,
		opts:   opts,
		logger: logger.With(zap.String("battle_id", id)),
	}, nil
}

// Round returns the number of player actions taken so far.
func (b *Battle) Round() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.round
}

// Result returns the battle result, ResultNone while in progress.
func (b *Battle) Result() Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.result
}

// Over reports whether the battle has a result.
func (b *Battle) Over() bool {
	return b.Result() != ResultNone
}

// Events returns a copy of the battle log.
func (b *Battle) Events() []RoundEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RoundEvent, len(b.events))
	copy(out, b.events)
	return out
}

// Inspect calls fn with the round, the result and both units while holding
// the battle lock, so fn sees the state between two actions.
//
// Precondition: fn must not call methods of b.
func (b *Battle) Inspect(fn func(round int, result Result, player, enemy *Unit)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(b.round, b.result, b.Player, b.Enemy)
}

// EquipPlayerWeapon swaps the player's weapon. It does not take a turn.
func (b *Battle) EquipPlayerWeapon(w *inventory.Weapon) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.result != ResultNone {
		return "", ErrBattleOver
	}
	return b.Player.EquipWeapon(w), nil
}

// EquipPlayerArmor swaps the player's armor. It does not take a turn.
func (b *Battle) EquipPlayerArmor(a *inventory.Armor) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.result != ResultNone {
		return "", ErrBattleOver
	}
	return b.Player.EquipArmor(a), nil
}

// PlayerHit performs the player's policy-driven hit, then the enemy turn.
func (b *Battle) PlayerHit() (string, error) {
	return b.playerAction(ActionHit, func() string {
		return b.Player.Hit(b.Enemy)
	})
}

// PlayerUseSkill spends the player's skill attempt, then the enemy turn.
func (b *Battle) PlayerUseSkill() (string, error) {
	return b.playerAction(ActionSkill, func() string {
		return b.Player.UseSkill(b.Enemy)
	})
}

// PassTurn skips the player's action; the enemy still acts.
func (b *Battle) PassTurn() (string, error) {
	return b.playerAction(ActionPass, func() string {
		return fmt.Sprintf("%s waits.", b.Player.Name())
	})
}

// EndBattle ends the battle early with an enemy victory.
func (b *Battle) EndBattle() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.result != ResultNone {
		return "", ErrBattleOver
	}
	narrative := fmt.Sprintf("%s flees the battle.", b.Player.Name())
	b.record(b.Player, ActionFlee, narrative)
	return narrative + "\n" + b.finish(ResultEnemyWon), nil
}

// RunAuto drives the battle with the player always hitting until it has a
// result. Cancellation is checked between rounds.
//
// Postcondition: Returns a result other than ResultNone, or ctx.Err().
func (b *Battle) RunAuto(ctx context.Context) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return b.Result(), err
		}
		if _, err := b.PlayerHit(); err != nil {
			if errors.Is(err, ErrBattleOver) {
				return b.Result(), nil
			}
			return b.Result(), err
		}
		if r := b.Result(); r != ResultNone {
			return r, nil
		}
	}
}

func (b *Battle) playerAction(action ActionType, act func() string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.result != ResultNone {
		return "", ErrBattleOver
	}
	b.round++
	lines := []string{act()}
	b.record(b.Player, action, lines[0])
	lines = append(lines, b.nextTurn()...)
	return strings.Join(lines, "\n"), nil
}

// nextTurn checks hit points, regenerates stamina and lets the enemy act.
//
// Precondition: b.mu is held.
func (b *Battle) nextTurn() []string {
	if r := b.decide(); r != ResultNone {
		return []string{b.finish(r)}
	}

	b.Player.regenerate(b.opts.StaminaPerRound)
	b.Enemy.regenerate(b.opts.StaminaPerRound)

	narrative := b.Enemy.Hit(b.Player)
	b.record(b.Enemy, ActionHit, narrative)
	lines := []string{narrative}

	if r := b.decide(); r != ResultNone {
		return append(lines, b.finish(r))
	}
	if b.opts.MaxRounds > 0 && b.round >= b.opts.MaxRounds {
		return append(lines, b.finish(ResultDraw))
	}
	return lines
}

func (b *Battle) decide() Result {
	switch {
	case b.Player.IsDead() && b.Enemy.IsDead():
		return ResultDraw
	case b.Player.IsDead():
		return ResultEnemyWon
	case b.Enemy.IsDead():
		return ResultPlayerWon
	}
	return ResultNone
}

// finish stores r, records and logs it and returns its narrative.
//
// Precondition: b.mu is held.
func (b *Battle) finish(r Result) string {
	b.result = r
	var narrative string
	switch r {
	case ResultPlayerWon:
		narrative = fmt.Sprintf("%s wins the battle!", b.Player.Name())
	case ResultEnemyWon:
		narrative = fmt.Sprintf("%s wins the battle!", b.Enemy.Name())
	default:
		narrative = "The battle ends in a draw."
	}
	b.record(nil, ActionResult, narrative)
	b.logger.Info("battle finished",
		zap.String("result", r.String()),
		zap.Int("round", b.round),
		zap.Float64("player_hp", b.Player.HealthPoints()),
		zap.Float64("enemy_hp", b.Enemy.HealthPoints()),
	)
	return narrative
}

func (b *Battle) record(actor *Unit, action ActionType, narrative string) {
	ev := RoundEvent{Round: b.round, Action: action, Narrative: narrative}
	if actor != nil {
		ev.ActorID = actor.ID
		ev.ActorName = actor.Name()
	}
	b.events = append(b.events, ev)
	b.logger.Debug("round event",
		zap.Int("round", ev.Round),
		zap.String("actor", ev.ActorName),
		zap.Stringer("action", ev.Action),
		zap.String("narrative", ev.Narrative),
	)
}
