package catalog

import (
	"errors"
	"fmt"

	"github.com/hollowmere/emberfall/internal/game/dice"
)

// CastKind classifies what a spell or ability does when invoked.
type CastKind string

const (
	// CastDamage rolls an attack and deals damage on a hit.
	CastDamage CastKind = "damage"
	// CastHeal restores the caster's HP with no attack roll.
	CastHeal CastKind = "heal"
	// CastUtility has an out-of-combat effect and is rejected in battle.
	CastUtility CastKind = "utility"
)

func validCastKind(k CastKind) bool {
	return k == CastDamage || k == CastHeal || k == CastUtility
}

// Spell defines a castable spell. Spells always roll with the caster's spell
// modifier (intelligence-based).
type Spell struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Kind   CastKind `yaml:"kind"`
	MPCost int      `yaml:"mp_cost"`
	Dice   string   `yaml:"dice"`
	// AutoHit makes a damage spell land without beating AC (e.g. magic
	// missile). A natural 1 still fumbles.
	AutoHit bool `yaml:"auto_hit"`
}

// Validate checks that the Spell satisfies its invariants.
func (s *Spell) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if s.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !validCastKind(s.Kind) {
		errs = append(errs, fmt.Errorf("Kind %q is not a valid cast kind", s.Kind))
	}
	if s.MPCost < 0 {
		errs = append(errs, errors.New("MPCost must be >= 0"))
	}
	if s.Kind != CastUtility {
		if _, err := dice.Parse(s.Dice); err != nil {
			errs = append(errs, fmt.Errorf("Dice: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("spell validation failed: %v", errs)
	}
	return nil
}

// Ability defines a martial or class ability. Unlike spells, each ability names
// the ability score it rolls with.
type Ability struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Kind   CastKind `yaml:"kind"`
	MPCost int      `yaml:"mp_cost"`
	Dice   string   `yaml:"dice"`
	// Stat is the ability score used for the attack roll:
	// "strength", "dexterity", or "wisdom".
	Stat string `yaml:"stat"`
}

// Validate checks that the Ability satisfies its invariants.
func (a *Ability) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if a.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !validCastKind(a.Kind) {
		errs = append(errs, fmt.Errorf("Kind %q is not a valid cast kind", a.Kind))
	}
	if a.MPCost < 0 {
		errs = append(errs, errors.New("MPCost must be >= 0"))
	}
	switch a.Stat {
	case "strength", "dexterity", "wisdom":
	default:
		if a.Kind == CastDamage {
			errs = append(errs, fmt.Errorf("Stat %q must be strength, dexterity, or wisdom", a.Stat))
		}
	}
	if a.Kind != CastUtility {
		if _, err := dice.Parse(a.Dice); err != nil {
			errs = append(errs, fmt.Errorf("Dice: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("ability validation failed: %v", errs)
	}
	return nil
}
