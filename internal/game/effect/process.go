package effect

import (
	"fmt"

	"github.com/hollowmere/emberfall/internal/game/dice"
)

// StatModifiers supplies ability score modifiers for saving throws. Using a
// local interface keeps this package from importing the character package.
type StatModifiers interface {
	// Modifier returns the ability modifier for a stat name such as
	// "constitution" or "wisdom".
	Modifier(stat string) int
}

// Hooks receives scripting callbacks for effect lifecycle events. All methods
// are fire-and-forget; implementations must never panic into the engine.
// A nil Hooks is a no-op.
type Hooks interface {
	OnApply(effectID, hook string)
	OnTick(effectID, hook string)
	OnRemove(effectID, hook string)
}

// TurnStart is the outcome of processing one combatant's active effects at the
// start of their turn.
type TurnStart struct {
	// Messages are the player-facing log lines, in processing order.
	Messages []string
	// TickDamage is the accumulated damage from all ticking effects. The
	// caller applies it to HP so the presentation layer can sequence the hit.
	TickDamage int
}

// ProcessTurnStart walks the active effects in application order. For each:
//
//  1. Tick damage (fixed or dice-rolled) is accumulated; HP is not mutated here.
//  2. A debuff with SaveDC > 0 and save listed as a removal method rolls
//     d20 + modifier(SaveStat); meeting the DC removes the effect immediately,
//     skipping the duration decrement.
//  3. Otherwise the remaining duration is decremented; at zero the effect is
//     removed and reported as worn off.
//
// Precondition: stats and src must be non-nil. hooks may be nil.
// Postcondition: returned TickDamage >= 0 unless an effect defines negative
// tick damage (regenerative effects).
func (s *ActiveSet) ProcessTurnStart(stats StatModifiers, src dice.Source, hooks Hooks) TurnStart {
	var result TurnStart

	for _, id := range append([]string(nil), s.order...) {
		ac, ok := s.byID[id]
		if !ok {
			continue
		}
		def := ac.Def

		if def.TickDice != "" {
			roll := dice.Roll(dice.MustParse(def.TickDice), src)
			result.TickDamage += roll.Total()
			result.Messages = append(result.Messages,
				fmt.Sprintf("%s deals %d damage!", def.Name, roll.Total()))
			fireHook(hooks, hooksOnTick, def.ID, def.OnTick)
		} else if def.TickDamage != 0 {
			result.TickDamage += def.TickDamage
			result.Messages = append(result.Messages,
				fmt.Sprintf("%s deals %d damage!", def.Name, def.TickDamage))
			fireHook(hooks, hooksOnTick, def.ID, def.OnTick)
		}

		if def.Category == Debuff && def.SaveDC > 0 && def.Removable(RemoveSave) {
			save := dice.RollD20(stats.Modifier(def.SaveStat), src)
			if save.Total() >= def.SaveDC {
				s.Remove(id)
				result.Messages = append(result.Messages,
					fmt.Sprintf("Saved against %s! (%s vs DC %d)", def.Name, save, def.SaveDC))
				fireHook(hooks, hooksOnRemove, def.ID, def.OnRemove)
				continue
			}
		}

		ac.Remaining--
		if ac.Remaining <= 0 {
			s.Remove(id)
			result.Messages = append(result.Messages,
				fmt.Sprintf("%s wore off.", def.Name))
			fireHook(hooks, hooksOnRemove, def.ID, def.OnRemove)
		}
	}

	return result
}

type hookKind int

const (
	hooksOnApply hookKind = iota
	hooksOnTick
	hooksOnRemove
)

func fireHook(h Hooks, kind hookKind, effectID, hook string) {
	if h == nil || hook == "" {
		return
	}
	switch kind {
	case hooksOnApply:
		h.OnApply(effectID, hook)
	case hooksOnTick:
		h.OnTick(effectID, hook)
	case hooksOnRemove:
		h.OnRemove(effectID, hook)
	}
}

// FireApplyHook runs the definition's on-apply hook, if any. Resolvers call
// this after a successful Apply so scripting sees every application.
func FireApplyHook(h Hooks, def *Definition) {
	fireHook(h, hooksOnApply, def.ID, def.OnApply)
}
