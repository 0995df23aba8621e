package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hollowmere/emberfall/internal/game/catalog"
	"github.com/hollowmere/emberfall/internal/game/character"
	"github.com/hollowmere/emberfall/internal/game/dice"
)

// notEnoughMP is the canonical refusal when a cast costs more MP than
// the caster has. No MP is spent and no dice are rolled.
const notEnoughMP = "Not enough MP!"

// CastSpell resolves the player casting the spell with the given id at the
// monster. Unknown spells, utility spells, and insufficient MP refuse the
// cast without spending anything. Healing spells never roll to hit and
// never overheal. Damage spells roll against the monster's armor class
// unless the spell is auto-hit; a natural 1 still fumbles an auto-hit
// spell.
//
// Precondition: player and monster must not be nil, or CastSpell panics.
func (e *Engine) CastSpell(player *character.Combatant, spellID string, monster *character.Combatant, weatherPenalty int) SpellResult {
	requirePair(player, monster, "CastSpell")

	spell, ok := e.cat.Spell(spellID)
	if !ok {
		return SpellResult{Message: fmt.Sprintf("You don't know any spell called %q!", spellID)}
	}
	if spell.Kind == catalog.CastUtility {
		return SpellResult{Message: fmt.Sprintf("%s cannot be used in battle!", spell.Name)}
	}
	if player.MP < spell.MPCost {
		return SpellResult{Message: notEnoughMP}
	}
	player.SpendMP(spell.MPCost)

	res := SpellResult{Cast: true, MPSpent: spell.MPCost}
	expr := dice.MustParse(spell.Dice)

	if spell.Kind == catalog.CastHeal {
		rolled := dice.Roll(expr, e.src).Total()
		res.Healed = player.Heal(rolled)
		res.Message = fmt.Sprintf("You cast %s and recover %d HP!", spell.Name, res.Healed)
		e.logger.Debug("heal spell resolved",
			zap.String("spell", spell.ID),
			zap.Int("rolled", rolled),
			zap.Int("healed", res.Healed))
		return res
	}

	target := monsterTargetNumber(monster, 0, weatherPenalty)
	mod := character.SpellModifier(player, e.cat) + player.Effects.AccuracyModifier()
	roll := dice.RollD20(mod, e.src)
	out := ResolveAttackRoll(roll, target, spell.AutoHit)
	res.Outcome = &out

	switch {
	case out.Fumble:
		res.Message = fmt.Sprintf("Your %s fizzles and sputters out!", spell.Name)
	case !out.Hit:
		res.Message = fmt.Sprintf("Your %s misses the %s. (%d vs AC %d)", spell.Name, monster.Name, out.Total, target)
	default:
		bonus := expr.Modifier + character.TalentDamageBonus(player, e.cat) + player.Effects.DamageModifier()
		res.Damage = RollAttackDamage(expr.Count, expr.Sides, out.Critical, bonus, hitMinimum(out), e.src)
		monster.ApplyDamage(res.Damage)
		if out.Critical {
			res.Message = fmt.Sprintf("Critical! Your %s blasts the %s for %d damage!", spell.Name, monster.Name, res.Damage)
		} else {
			res.Message = fmt.Sprintf("Your %s hits the %s for %d damage!", spell.Name, monster.Name, res.Damage)
		}
	}

	e.logger.Debug("damage spell resolved",
		zap.String("spell", spell.ID),
		zap.Int("natural", out.Natural),
		zap.Int("total", out.Total),
		zap.Int("target", target),
		zap.Bool("auto_hit", spell.AutoHit),
		zap.Bool("hit", out.Hit),
		zap.Int("damage", res.Damage))
	return res
}

// UseAbility resolves the player using the ability with the given id. The
// attack roll uses the ability's governing stat modifier plus proficiency
// and talent attack bonuses. MP economy and refusal cases match CastSpell.
//
// Precondition: player and monster must not be nil, or UseAbility panics.
func (e *Engine) UseAbility(player *character.Combatant, abilityID string, monster *character.Combatant, weatherPenalty int) AbilityResult {
	requirePair(player, monster, "UseAbility")

	ability, ok := e.cat.Ability(abilityID)
	if !ok {
		return AbilityResult{Message: fmt.Sprintf("You don't know any ability called %q!", abilityID)}
	}
	if ability.Kind == catalog.CastUtility {
		return AbilityResult{Message: fmt.Sprintf("%s cannot be used in battle!", ability.Name)}
	}
	if player.MP < ability.MPCost {
		return AbilityResult{Message: notEnoughMP}
	}
	player.SpendMP(ability.MPCost)

	res := AbilityResult{Used: true, MPSpent: ability.MPCost}
	expr := dice.MustParse(ability.Dice)

	if ability.Kind == catalog.CastHeal {
		rolled := dice.Roll(expr, e.src).Total()
		res.Healed = player.Heal(rolled)
		res.Message = fmt.Sprintf("You use %s and recover %d HP!", ability.Name, res.Healed)
		e.logger.Debug("heal ability resolved",
			zap.String("ability", ability.ID),
			zap.Int("rolled", rolled),
			zap.Int("healed", res.Healed))
		return res
	}

	target := monsterTargetNumber(monster, 0, weatherPenalty)
	mod := character.StatAttackModifier(player, e.cat, ability.Stat) +
		player.Effects.AccuracyModifier()
	roll := dice.RollD20(mod, e.src)
	out := ResolveAttackRoll(roll, target, false)
	res.Outcome = &out

	switch {
	case out.Fumble:
		res.Message = fmt.Sprintf("Your %s fumbles badly!", ability.Name)
	case !out.Hit:
		res.Message = fmt.Sprintf("Your %s misses the %s. (%d vs AC %d)", ability.Name, monster.Name, out.Total, target)
	default:
		bonus := expr.Modifier + character.TalentDamageBonus(player, e.cat) + player.Effects.DamageModifier()
		res.Damage = RollAttackDamage(expr.Count, expr.Sides, out.Critical, bonus, hitMinimum(out), e.src)
		monster.ApplyDamage(res.Damage)
		if out.Critical {
			res.Message = fmt.Sprintf("Critical! Your %s crushes the %s for %d damage!", ability.Name, monster.Name, res.Damage)
		} else {
			res.Message = fmt.Sprintf("Your %s hits the %s for %d damage!", ability.Name, monster.Name, res.Damage)
		}
	}

	e.logger.Debug("damage ability resolved",
		zap.String("ability", ability.ID),
		zap.String("stat", ability.Stat),
		zap.Int("natural", out.Natural),
		zap.Int("total", out.Total),
		zap.Int("target", target),
		zap.Bool("hit", out.Hit),
		zap.Int("damage", res.Damage))
	return res
}
