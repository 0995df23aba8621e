package combat

import "github.com/hollowmere/emberfall/internal/game/dice"

// Result is implemented by every resolver outcome. Line returns the
// narration text suitable for the battle log.
type Result interface {
	Line() string
}

// InitiativeResult reports the opening rolls of a battle.
type InitiativeResult struct {
	PlayerRoll  dice.D20Result
	MonsterRoll dice.D20Result
	// PlayerFirst is true when the player acts first; ties go to the player.
	PlayerFirst bool
	Message     string
}

// Line implements Result.
func (r InitiativeResult) Line() string { return r.Message }

// AttackResult reports a resolved weapon attack.
type AttackResult struct {
	Outcome AttackOutcome
	// Damage is the HP actually removed from the defender.
	Damage  int
	Message string
}

// Line implements Result.
func (r AttackResult) Line() string { return r.Message }

// SpellResult reports a resolved spell cast.
type SpellResult struct {
	// Cast is false when the spell never happened: unknown id, a utility
	// spell, or insufficient MP. No MP is spent in those cases.
	Cast bool
	// Outcome is nil for healing spells and casts that never happened.
	Outcome *AttackOutcome
	Damage  int
	Healed  int
	MPSpent int
	Message string
}

// Line implements Result.
func (r SpellResult) Line() string { return r.Message }

// AbilityResult reports a resolved player ability use.
type AbilityResult struct {
	Used    bool
	Outcome *AttackOutcome
	Damage  int
	Healed  int
	MPSpent int
	Message string
}

// Line implements Result.
func (r AbilityResult) Line() string { return r.Message }

// MonsterAttackResult reports a resolved monster weapon attack.
type MonsterAttackResult struct {
	Outcome AttackOutcome
	Damage  int
	Message string
}

// Line implements Result.
func (r MonsterAttackResult) Line() string { return r.Message }

// MonsterAbilityResult reports a resolved monster special ability.
// Monster damage abilities bypass the attack roll entirely.
type MonsterAbilityResult struct {
	Damage int
	// Healed is HP recovered by the monster, either from a healing
	// ability or from a self-heal rider on a damage ability.
	Healed int
	// StatusApplied names the effect inflicted on the player, if any.
	StatusApplied string
	Message       string
}

// Line implements Result.
func (r MonsterAbilityResult) Line() string { return r.Message }

// FleeResult reports an escape attempt.
type FleeResult struct {
	Success bool
	Roll    dice.D20Result
	Message string
}

// Line implements Result.
func (r FleeResult) Line() string { return r.Message }
