package combat

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine manages all active battles.
type Engine struct {
	mu      sync.RWMutex
	battles map[string]*Battle
	// fighting maps a unit ID to the ID of the battle it is in.
	fighting map[string]string
	logger   *zap.Logger
}

// NewEngine creates an empty Engine.
//
// Precondition: logger must be non-nil.
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{
		battles:  make(map[string]*Battle),
		fighting: make(map[string]string),
		logger:   logger,
	}
}

// StartBattle registers a new battle between player and enemy.
//
// Precondition: neither unit is in another active battle.
// Postcondition: Returns the battle under a fresh uuid, or an error.
func (e *Engine) StartBattle(player, enemy *Unit, opts Options) (*Battle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, u := range []*Unit{player, enemy} {
		if u == nil {
			continue
		}
		if id, ok := e.fighting[u.ID]; ok {
			return nil, fmt.Errorf("combat: unit %q is already fighting in battle %s", u.Name(), id)
		}
	}

	b, err := NewBattle(uuid.NewString(), player, enemy, opts, e.logger)
	if err != nil {
		return nil, err
	}
	e.battles[b.ID] = b
	e.fighting[player.ID] = b.ID
	e.fighting[enemy.ID] = b.ID

	e.logger.Info("battle started",
		zap.String("battle_id", b.ID),
		zap.String("player", player.Name()),
		zap.String("enemy", enemy.Name()),
	)
	return b, nil
}

// GetBattle returns the battle registered under id.
func (e *Engine) GetBattle(id string) (*Battle, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	b, ok := e.battles[id]
	return b, ok
}

// EndBattle removes the battle and frees its units. Unknown IDs are ignored.
func (e *Engine) EndBattle(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.battles[id]
	if !ok {
		return
	}
	delete(e.battles, id)
	delete(e.fighting, b.Player.ID)
	delete(e.fighting, b.Enemy.ID)
}

// ActiveCount returns the number of registered battles.
func (e *Engine) ActiveCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.battles)
}
