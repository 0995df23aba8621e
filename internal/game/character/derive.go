package character

import (
	"github.com/hollowmere/emberfall/internal/game/catalog"
)

// unarmoredAC is the base armor class with no armor equipped.
const unarmoredAC = 10

// ProficiencyBonus returns the level-scaled proficiency bonus:
// floor((level-1)/4) + 2.
//
// Precondition: level >= 1.
// Postcondition: Returns >= 2.
func ProficiencyBonus(level int) int {
	return (level-1)/4 + 2
}

// ArmorClass derives the combatant's effective armor class:
// base (armor, or 10 unarmored, plus shield) + dexterity modifier +
// situational bonus (e.g. +2 while defending) + talent AC bonuses +
// active-effect AC modifiers.
//
// All terms are additive; no floor or ceiling is enforced, so heavy negative
// stacking can drive AC arbitrarily low.
//
// Precondition: c and cat must be non-nil.
func ArmorClass(c *Combatant, cat *catalog.Catalog, situational int) int {
	ac := unarmoredAC
	if c.Armor != nil {
		ac = c.Armor.BaseAC + c.Armor.Effect
	}
	if c.Shield != nil {
		ac += c.Shield.Effect
	}
	ac += c.Abilities.Modifier("dexterity")
	ac += situational
	ac += talentBonus(c, cat, func(t *catalog.Talent) int { return t.ACBonus })
	ac += c.Effects.ACModifier()
	return ac
}

// AttackModifier derives the weapon attack roll modifier: strength modifier
// (dexterity for light weapons) + proficiency + talent attack bonuses.
//
// Precondition: c and cat must be non-nil.
func AttackModifier(c *Combatant, cat *catalog.Catalog) int {
	stat := "strength"
	if c.Weapon != nil && c.Weapon.Light {
		stat = "dexterity"
	}
	return c.Abilities.Modifier(stat) +
		ProficiencyBonus(c.Level) +
		talentBonus(c, cat, func(t *catalog.Talent) int { return t.AttackBonus })
}

// SpellModifier derives the spell attack roll modifier: intelligence modifier
// + proficiency + talent attack bonuses.
//
// Precondition: c and cat must be non-nil.
func SpellModifier(c *Combatant, cat *catalog.Catalog) int {
	return c.Abilities.Modifier("intelligence") +
		ProficiencyBonus(c.Level) +
		talentBonus(c, cat, func(t *catalog.Talent) int { return t.AttackBonus })
}

// StatAttackModifier derives an attack roll modifier governed by an
// arbitrary ability score, as used by trained abilities: stat modifier
// + proficiency + talent attack bonuses.
//
// Precondition: c and cat must be non-nil; stat must name an ability score.
func StatAttackModifier(c *Combatant, cat *catalog.Catalog, stat string) int {
	return c.Abilities.Modifier(stat) +
		ProficiencyBonus(c.Level) +
		talentBonus(c, cat, func(t *catalog.Talent) int { return t.AttackBonus })
}

// TalentDamageBonus sums the damage bonuses of every known talent.
//
// Precondition: c and cat must be non-nil.
func TalentDamageBonus(c *Combatant, cat *catalog.Catalog) int {
	return talentBonus(c, cat, func(t *catalog.Talent) int { return t.DamageBonus })
}

// talentBonus sums field across the combatant's known talents. Unknown
// talent ids contribute nothing; missing content is not an error here.
func talentBonus(c *Combatant, cat *catalog.Catalog, field func(*catalog.Talent) int) int {
	total := 0
	for id := range c.Talents {
		if t, ok := cat.Talent(id); ok {
			total += field(t)
		}
	}
	return total
}
