package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hollowmere/emberfall/internal/game/catalog"
	"github.com/hollowmere/emberfall/internal/game/character"
	"github.com/hollowmere/emberfall/internal/game/dice"
)

// unarmedDice is the damage expression used when no weapon is equipped.
const unarmedDice = "1d6"

// PlayerAttack resolves a main-hand weapon attack against the monster and
// applies the resulting damage. The effective target number is the
// monster's armor class plus its effect AC modifiers, the defend bonus,
// and the weather penalty. Damage on a non-critical hit never drops
// below 1.
//
// Precondition: player and monster must not be nil, or PlayerAttack panics.
func (e *Engine) PlayerAttack(player, monster *character.Combatant, defendBonus, weatherPenalty int) AttackResult {
	requirePair(player, monster, "PlayerAttack")

	target := monsterTargetNumber(monster, defendBonus, weatherPenalty)
	mod := character.AttackModifier(player, e.cat) + player.Effects.AccuracyModifier()
	roll := dice.RollD20(mod, e.src)
	out := ResolveAttackRoll(roll, target, false)

	res := AttackResult{Outcome: out}
	switch {
	case out.Fumble:
		res.Message = fmt.Sprintf("You swing wildly and miss the %s!", monster.Name)
	case !out.Hit:
		res.Message = fmt.Sprintf("You miss the %s. (%d vs AC %d)", monster.Name, out.Total, target)
	default:
		expr := weaponExpression(player.Weapon)
		bonus := weaponBonus(player.Weapon) + expr.Modifier +
			character.TalentDamageBonus(player, e.cat) + player.Effects.DamageModifier()
		res.Damage = RollAttackDamage(expr.Count, expr.Sides, out.Critical, bonus, hitMinimum(out), e.src)
		monster.ApplyDamage(res.Damage)
		if out.Critical {
			res.Message = fmt.Sprintf("Critical hit! You strike the %s for %d damage!", monster.Name, res.Damage)
		} else {
			res.Message = fmt.Sprintf("You hit the %s for %d damage!", monster.Name, res.Damage)
		}
	}

	e.logger.Debug("player attack resolved",
		zap.String("monster", monster.Name),
		zap.Int("natural", out.Natural),
		zap.Int("total", out.Total),
		zap.Int("target", target),
		zap.Bool("hit", out.Hit),
		zap.Bool("critical", out.Critical),
		zap.Int("damage", res.Damage))
	return res
}

// PlayerOffHandAttack resolves a bonus attack with the off-hand weapon.
// It shares the attack roll shape of PlayerAttack but rolls the off-hand
// weapon's dice and always names the off-hand in its narration.
//
// Precondition: player and monster must not be nil and the player must
// have an off-hand weapon equipped, or PlayerOffHandAttack panics.
func (e *Engine) PlayerOffHandAttack(player, monster *character.Combatant, defendBonus, weatherPenalty int) AttackResult {
	requirePair(player, monster, "PlayerOffHandAttack")
	if player.OffHand == nil {
		panic("combat: PlayerOffHandAttack requires an equipped off-hand weapon")
	}

	target := monsterTargetNumber(monster, defendBonus, weatherPenalty)
	mod := character.AttackModifier(player, e.cat) + player.Effects.AccuracyModifier()
	roll := dice.RollD20(mod, e.src)
	out := ResolveAttackRoll(roll, target, false)

	res := AttackResult{Outcome: out}
	switch {
	case out.Fumble:
		res.Message = fmt.Sprintf("Your off-hand swing goes wide of the %s!", monster.Name)
	case !out.Hit:
		res.Message = fmt.Sprintf("Your off-hand attack misses the %s. (%d vs AC %d)", monster.Name, out.Total, target)
	default:
		expr := weaponExpression(player.OffHand)
		bonus := weaponBonus(player.OffHand) + expr.Modifier +
			character.TalentDamageBonus(player, e.cat) + player.Effects.DamageModifier()
		res.Damage = RollAttackDamage(expr.Count, expr.Sides, out.Critical, bonus, hitMinimum(out), e.src)
		monster.ApplyDamage(res.Damage)
		if out.Critical {
			res.Message = fmt.Sprintf("Critical hit! Your off-hand attack tears into the %s for %d damage!", monster.Name, res.Damage)
		} else {
			res.Message = fmt.Sprintf("Your off-hand attack hits the %s for %d damage!", monster.Name, res.Damage)
		}
	}

	e.logger.Debug("player off-hand attack resolved",
		zap.String("monster", monster.Name),
		zap.Int("natural", out.Natural),
		zap.Int("total", out.Total),
		zap.Int("target", target),
		zap.Bool("hit", out.Hit),
		zap.Int("damage", res.Damage))
	return res
}

// monsterTargetNumber is the effective number a player attack roll must
// meet: the monster's armor class adjusted by its active effects, plus
// any defend bonus and weather penalty.
func monsterTargetNumber(monster *character.Combatant, defendBonus, weatherPenalty int) int {
	return monster.ArmorClass + monster.Effects.ACModifier() + defendBonus + weatherPenalty
}

// weaponExpression parses the weapon's damage dice, falling back to an
// unarmed strike when no weapon is equipped or no dice are defined.
func weaponExpression(weapon *catalog.Item) dice.Expression {
	if weapon == nil || weapon.DamageDice == "" {
		return dice.MustParse(unarmedDice)
	}
	return dice.MustParse(weapon.DamageDice)
}

func weaponBonus(weapon *catalog.Item) int {
	if weapon == nil {
		return 0
	}
	return weapon.Effect
}

// hitMinimum is the damage floor for a landed attack. Critical hits are
// exempt so doubled dice stand on their own.
func hitMinimum(out AttackOutcome) int {
	if out.Critical {
		return 0
	}
	return 1
}

func requirePair(player, monster *character.Combatant, op string) {
	if player == nil {
		panic("combat: " + op + " requires a player")
	}
	if monster == nil {
		panic("combat: " + op + " requires a monster")
	}
}
