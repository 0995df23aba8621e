// Package dice provides the randomness abstraction and roll primitives for the
// Emberfall combat engine. Every random number the engine consumes flows through
// a Source, so battles can be replayed deterministically under test.
package dice

import "fmt"

// RollDie returns a uniform random integer in [1, sides].
//
// Precondition: sides >= 2; src must be non-nil.
func RollDie(sides int, src Source) int {
	if sides < 2 {
		panic(fmt.Sprintf("dice: RollDie called with sides %d < 2", sides))
	}
	return src.Intn(sides) + 1
}

// RollDice sums count independent RollDie calls.
//
// Precondition: count >= 1; sides >= 2; src must be non-nil.
// Postcondition: return value is in [count, count*sides].
func RollDice(count, sides int, src Source) int {
	if count < 1 {
		panic(fmt.Sprintf("dice: RollDice called with count %d < 1", count))
	}
	total := 0
	for i := 0; i < count; i++ {
		total += RollDie(sides, src)
	}
	return total
}

// D20Result is one d20 roll with its flat modifier, kept separate so callers
// can inspect the natural die face for critical and fumble handling.
type D20Result struct {
	Natural  int // raw die face in [1, 20]
	Modifier int // flat modifier (may be negative)
}

// Total returns Natural + Modifier.
func (r D20Result) Total() int { return r.Natural + r.Modifier }

// String returns an audit string like "d20(14) +3 = 17".
func (r D20Result) String() string {
	return fmt.Sprintf("d20(%d) %+d = %d", r.Natural, r.Modifier, r.Total())
}

// RollD20 rolls one d20 and attaches modifier.
//
// Precondition: src must be non-nil.
// Postcondition: result.Natural is in [1, 20].
func RollD20(modifier int, src Source) D20Result {
	return D20Result{Natural: RollDie(20, src), Modifier: modifier}
}

// AbilityModifier converts an ability score to its modifier using floor
// division: floor((score-10)/2). Low scores produce negative modifiers.
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}
