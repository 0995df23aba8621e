package catalog

import (
	"errors"
	"fmt"

	"github.com/hollowmere/emberfall/internal/game/dice"
)

// MonsterAbilityKind classifies a monster special ability.
type MonsterAbilityKind string

const (
	// MonsterAbilityDamage lands automatically, bypassing AC.
	MonsterAbilityDamage MonsterAbilityKind = "damage"
	// MonsterAbilityHeal restores the monster's own HP.
	MonsterAbilityHeal MonsterAbilityKind = "heal"
)

// MonsterAbility defines one special ability on a monster stat block.
type MonsterAbility struct {
	Name string             `yaml:"name"`
	Kind MonsterAbilityKind `yaml:"kind"`
	Dice string             `yaml:"dice"`
	// SelfHeal makes a damage ability also restore the monster's HP by the
	// amount dealt (life drain).
	SelfHeal bool `yaml:"self_heal"`
	// StatusEffect is the id of a status effect inflicted on the target,
	// or empty.
	StatusEffect string `yaml:"status_effect"`
}

// Monster defines a monster stat block.
type Monster struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	MaxHP       int              `yaml:"max_hp"`
	ArmorClass  int              `yaml:"armor_class"`
	AttackBonus int              `yaml:"attack_bonus"`
	DamageDice  string           `yaml:"damage_dice"`
	Abilities   []MonsterAbility `yaml:"abilities"`
}

// Validate checks that the Monster satisfies its invariants.
func (m *Monster) Validate() error {
	var errs []error
	if m.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if m.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if m.MaxHP < 1 {
		errs = append(errs, errors.New("MaxHP must be >= 1"))
	}
	if _, err := dice.Parse(m.DamageDice); err != nil {
		errs = append(errs, fmt.Errorf("DamageDice: %w", err))
	}
	for i, ab := range m.Abilities {
		if ab.Name == "" {
			errs = append(errs, fmt.Errorf("ability %d: Name must not be empty", i))
		}
		if ab.Kind != MonsterAbilityDamage && ab.Kind != MonsterAbilityHeal {
			errs = append(errs, fmt.Errorf("ability %q: Kind %q is not valid", ab.Name, ab.Kind))
		}
		if _, err := dice.Parse(ab.Dice); err != nil {
			errs = append(errs, fmt.Errorf("ability %q: Dice: %w", ab.Name, err))
		}
		if ab.SelfHeal && ab.Kind != MonsterAbilityDamage {
			errs = append(errs, fmt.Errorf("ability %q: SelfHeal applies to damage abilities only", ab.Name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("monster validation failed: %v", errs)
	}
	return nil
}

// Talent defines a passive talent granting flat combat bonuses while known.
type Talent struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	ACBonus     int    `yaml:"ac_bonus"`
	AttackBonus int    `yaml:"attack_bonus"`
	DamageBonus int    `yaml:"damage_bonus"`
}

// Validate checks that the Talent satisfies its invariants.
func (t *Talent) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if t.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("talent validation failed: %v", errs)
	}
	return nil
}
