package combat

import (
	"github.com/hollowmere/emberfall/internal/game/dice"
)

// AttackOutcome is the categorized result of a single attack roll
// checked against a target number.
type AttackOutcome struct {
	// Hit reports whether the attack lands at all.
	Hit bool
	// Critical reports a natural 20, which always lands and doubles
	// the damage dice.
	Critical bool
	// Fumble reports a natural 1, which always misses.
	Fumble bool
	// Natural is the raw d20 face before modifiers.
	Natural int
	// Total is the modified attack roll.
	Total int
}

// ResolveAttackRoll categorizes a d20 attack roll against a target number.
// A natural 20 is always a critical hit and a natural 1 is always a fumble,
// regardless of modifiers, the target number, or autoHit. On any other face
// the attack hits when the modified total meets the target or autoHit is set.
func ResolveAttackRoll(roll dice.D20Result, target int, autoHit bool) AttackOutcome {
	out := AttackOutcome{Natural: roll.Natural, Total: roll.Total()}
	switch {
	case roll.Natural == 20:
		out.Hit = true
		out.Critical = true
	case roll.Natural == 1:
		out.Fumble = true
	default:
		out.Hit = out.Total >= target || autoHit
	}
	return out
}

// RollAttackDamage rolls count dice of the given sides, doubling the dice
// count on a critical hit, then adds bonus and floors the result at minimum.
// The flat bonus is never doubled.
//
// Precondition: count >= 1 and sides >= 2, or RollAttackDamage panics.
func RollAttackDamage(count, sides int, critical bool, bonus, minimum int, src dice.Source) int {
	if critical {
		count *= 2
	}
	total := dice.RollDice(count, sides, src) + bonus
	if total < minimum {
		total = minimum
	}
	return total
}
