package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hollowmere/emberfall/internal/game/catalog"
	"github.com/hollowmere/emberfall/internal/game/dice"
	"github.com/hollowmere/emberfall/internal/game/effect"
)

// fleeDC is the target number for escaping a battle.
const fleeDC = 10

// Engine resolves combat actions against the loaded content catalog.
// All randomness flows through the injected dice source, so a seeded
// source makes every resolution reproducible.
type Engine struct {
	cat     *catalog.Catalog
	effects *effect.Registry
	src     dice.Source
	logger  *zap.Logger
	hooks   effect.Hooks
}

// NewEngine builds an Engine. A nil logger is replaced with a no-op logger.
//
// Precondition: cat, effects, and src are non-nil, or NewEngine panics.
func NewEngine(cat *catalog.Catalog, effects *effect.Registry, src dice.Source, logger *zap.Logger) *Engine {
	if cat == nil {
		panic("combat: NewEngine requires a catalog")
	}
	if effects == nil {
		panic("combat: NewEngine requires an effect registry")
	}
	if src == nil {
		panic("combat: NewEngine requires a dice source")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cat: cat, effects: effects, src: src, logger: logger}
}

// SetHooks installs an optional lifecycle hook sink for status effects
// applied by the engine. A nil sink disables hooks.
func (e *Engine) SetHooks(h effect.Hooks) {
	e.hooks = h
}

// RollInitiative rolls opposed d20s to decide who acts first. The player
// adds their dexterity modifier, the monster its attack bonus. Ties go
// to the player.
func (e *Engine) RollInitiative(playerDexMod, monsterAttackBonus int) InitiativeResult {
	playerRoll := dice.RollD20(playerDexMod, e.src)
	monsterRoll := dice.RollD20(monsterAttackBonus, e.src)
	res := InitiativeResult{
		PlayerRoll:  playerRoll,
		MonsterRoll: monsterRoll,
		PlayerFirst: playerRoll.Total() >= monsterRoll.Total(),
	}
	if res.PlayerFirst {
		res.Message = fmt.Sprintf("You act first! (%d vs %d)", playerRoll.Total(), monsterRoll.Total())
	} else {
		res.Message = fmt.Sprintf("The enemy acts first! (%d vs %d)", monsterRoll.Total(), playerRoll.Total())
	}
	e.logger.Debug("initiative rolled",
		zap.Int("player_total", playerRoll.Total()),
		zap.Int("monster_total", monsterRoll.Total()),
		zap.Bool("player_first", res.PlayerFirst))
	return res
}

// AttemptFlee rolls a dexterity check against a fixed DC to escape the
// battle. The returned message always reports the rolled total.
func (e *Engine) AttemptFlee(dexModifier int) FleeResult {
	roll := dice.RollD20(dexModifier, e.src)
	res := FleeResult{
		Success: roll.Total() >= fleeDC,
		Roll:    roll,
	}
	if res.Success {
		res.Message = fmt.Sprintf("You escape! (%d vs DC %d)", roll.Total(), fleeDC)
	} else {
		res.Message = fmt.Sprintf("You fail to get away! (%d vs DC %d)", roll.Total(), fleeDC)
	}
	e.logger.Debug("flee attempted",
		zap.Int("total", roll.Total()),
		zap.Bool("success", res.Success))
	return res
}
