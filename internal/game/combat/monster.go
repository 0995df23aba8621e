package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hollowmere/emberfall/internal/game/catalog"
	"github.com/hollowmere/emberfall/internal/game/character"
	"github.com/hollowmere/emberfall/internal/game/dice"
	"github.com/hollowmere/emberfall/internal/game/effect"
)

// MonsterAttack resolves the monster's weapon attack against the player
// and applies the resulting damage. The target number is the player's
// derived armor class (which already includes the defend bonus and the
// player's effect AC modifiers) plus the weather penalty. atkBoost is a
// temporary attack bonus such as a rage-style enrage.
//
// Precondition: monster and player must not be nil, or MonsterAttack panics.
func (e *Engine) MonsterAttack(monster, player *character.Combatant, playerDefendBonus, weatherPenalty, atkBoost int) MonsterAttackResult {
	requirePair(player, monster, "MonsterAttack")

	target := character.ArmorClass(player, e.cat, playerDefendBonus) + weatherPenalty
	mod := monster.AttackBonus + atkBoost + monster.Effects.AccuracyModifier()
	roll := dice.RollD20(mod, e.src)
	out := ResolveAttackRoll(roll, target, false)

	res := MonsterAttackResult{Outcome: out}
	switch {
	case out.Fumble:
		res.Message = fmt.Sprintf("The %s attacks wildly and misses!", monster.Name)
	case !out.Hit:
		res.Message = fmt.Sprintf("The %s misses you. (%d vs AC %d)", monster.Name, out.Total, target)
	default:
		expr := monsterDamageExpression(monster)
		bonus := expr.Modifier + monster.Effects.DamageModifier()
		res.Damage = RollAttackDamage(expr.Count, expr.Sides, out.Critical, bonus, hitMinimum(out), e.src)
		player.ApplyDamage(res.Damage)
		if out.Critical {
			res.Message = fmt.Sprintf("Critical! The %s savages you for %d damage!", monster.Name, res.Damage)
		} else {
			res.Message = fmt.Sprintf("The %s hits you for %d damage!", monster.Name, res.Damage)
		}
	}

	e.logger.Debug("monster attack resolved",
		zap.String("monster", monster.Name),
		zap.Int("natural", out.Natural),
		zap.Int("total", out.Total),
		zap.Int("target", target),
		zap.Bool("hit", out.Hit),
		zap.Bool("critical", out.Critical),
		zap.Int("damage", res.Damage))
	return res
}

// MonsterUseAbility resolves a monster special ability. Healing abilities
// restore the monster's HP. Damage abilities bypass the attack roll
// entirely: the dice land unconditionally, optionally draining the dealt
// damage back as HP and inflicting a status effect on the player.
//
// Precondition: monster and player must not be nil, or MonsterUseAbility
// panics.
func (e *Engine) MonsterUseAbility(ability catalog.MonsterAbility, monster, player *character.Combatant) MonsterAbilityResult {
	requirePair(player, monster, "MonsterUseAbility")

	res := MonsterAbilityResult{}
	expr := dice.MustParse(ability.Dice)
	rolled := dice.Roll(expr, e.src).Total()

	if ability.Kind == catalog.MonsterAbilityHeal {
		res.Healed = monster.Heal(rolled)
		res.Message = fmt.Sprintf("The %s uses %s and recovers %d HP!", monster.Name, ability.Name, res.Healed)
		e.logger.Debug("monster heal ability resolved",
			zap.String("monster", monster.Name),
			zap.String("ability", ability.Name),
			zap.Int("healed", res.Healed))
		return res
	}

	res.Damage = rolled
	player.ApplyDamage(res.Damage)
	res.Message = fmt.Sprintf("The %s uses %s on you for %d damage!", monster.Name, ability.Name, res.Damage)

	if ability.SelfHeal {
		res.Healed = monster.Heal(res.Damage)
		res.Message += fmt.Sprintf(" It drains %d HP!", res.Healed)
	}

	if ability.StatusEffect != "" {
		if def, ok := e.effects.Get(ability.StatusEffect); ok {
			applied := player.Effects.Apply(def, monster.Name, 0)
			if applied.Applied || applied.Refreshed {
				res.StatusApplied = def.ID
				res.Message += fmt.Sprintf(" You are %s!", def.Name)
				effect.FireApplyHook(e.hooks, def)
			}
		} else {
			e.logger.Warn("monster ability references unknown status effect",
				zap.String("monster", monster.Name),
				zap.String("ability", ability.Name),
				zap.String("effect", ability.StatusEffect))
		}
	}

	e.logger.Debug("monster damage ability resolved",
		zap.String("monster", monster.Name),
		zap.String("ability", ability.Name),
		zap.Int("damage", res.Damage),
		zap.Int("healed", res.Healed),
		zap.String("status", res.StatusApplied))
	return res
}

// monsterDamageExpression parses the monster's damage dice, falling back
// to an unarmed strike for stat blocks without one.
func monsterDamageExpression(monster *character.Combatant) dice.Expression {
	if monster.DamageDice == "" {
		return dice.MustParse(unarmedDice)
	}
	return dice.MustParse(monster.DamageDice)
}
