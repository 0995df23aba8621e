// Package catalog holds the immutable content definitions the combat engine
// consumes: items, spells, abilities, monsters, and talents, each looked up by
// string id. Definitions are plain value records loaded from YAML or registered
// in code; the engine never mutates them.
package catalog

import (
	"errors"
	"fmt"

	"github.com/hollowmere/emberfall/internal/game/dice"
)

// ItemKind classifies an item for equip rules.
type ItemKind string

const (
	// ItemWeapon can occupy the main-hand or off-hand slot.
	ItemWeapon ItemKind = "weapon"
	// ItemArmor occupies the armor slot and contributes base AC.
	ItemArmor ItemKind = "armor"
	// ItemShield occupies the shield slot and contributes base AC.
	ItemShield ItemKind = "shield"
	// ItemConsumable is usable (potions, antidotes) and never equipped.
	ItemConsumable ItemKind = "consumable"
)

// Item defines the static properties of an item.
// Effect is the item's numeric bonus: attack/damage bonus for weapons,
// additional AC for armor and shields, potency for consumables.
type Item struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Kind       ItemKind `yaml:"kind"`
	Effect     int      `yaml:"effect"`
	BaseAC     int      `yaml:"base_ac"`     // armor only; 0 = contributes nothing
	DamageDice string   `yaml:"damage_dice"` // weapons only; empty = engine default
	Light      bool     `yaml:"light"`       // weapons only; required for dual wield
	TwoHanded  bool     `yaml:"two_handed"`  // weapons only; blocks off-hand use
}

// IsWeapon reports whether the item is a weapon.
func (i *Item) IsWeapon() bool { return i.Kind == ItemWeapon }

// Validate checks that the Item satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (i *Item) Validate() error {
	var errs []error
	if i.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if i.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	switch i.Kind {
	case ItemWeapon, ItemArmor, ItemShield, ItemConsumable:
	default:
		errs = append(errs, fmt.Errorf("Kind %q is not a valid item kind", i.Kind))
	}
	if i.Kind != ItemWeapon && (i.Light || i.TwoHanded || i.DamageDice != "") {
		errs = append(errs, errors.New("Light, TwoHanded, and DamageDice apply to weapons only"))
	}
	if i.Kind == ItemWeapon && i.Light && i.TwoHanded {
		errs = append(errs, errors.New("a weapon cannot be both light and two-handed"))
	}
	if i.DamageDice != "" {
		if _, err := dice.Parse(i.DamageDice); err != nil {
			errs = append(errs, fmt.Errorf("DamageDice: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}
