package character

import (
	"fmt"

	"github.com/hollowmere/emberfall/internal/game/catalog"
)

// EquipResult reports whether an equip attempt succeeded. Failures carry a
// player-facing message, never an error; an illegal equip is a game-rule
// outcome.
type EquipResult struct {
	Success bool
	Message string
}

// IsLightWeapon reports whether item is a weapon flagged light.
func IsLightWeapon(item *catalog.Item) bool {
	return item != nil && item.IsWeapon() && item.Light
}

// CanDualWield reports whether the combatant may fight with two weapons: the
// main-hand weapon must be light and not two-handed, and no shield equipped.
func CanDualWield(c *Combatant) bool {
	return IsLightWeapon(c.Weapon) && !c.Weapon.TwoHanded && c.Shield == nil
}

// EquipOffHand attempts to place item in the off-hand slot. Rejected when the
// item is not a weapon, not light, two-handed, identical to the main-hand
// weapon by id, or the main hand itself is not light. On success, any equipped
// shield is removed and the off-hand slot is set.
//
// Precondition: c must be non-nil; item must not be nil.
// Postcondition: on success, c.OffHand == item and c.Shield == nil; on
// failure, equipment is unchanged.
func EquipOffHand(c *Combatant, item *catalog.Item) EquipResult {
	if item == nil {
		panic("character: EquipOffHand called with nil item")
	}
	if !item.IsWeapon() {
		return EquipResult{Message: fmt.Sprintf("%s is not a weapon.", item.Name)}
	}
	if item.TwoHanded {
		return EquipResult{Message: fmt.Sprintf("%s needs both hands.", item.Name)}
	}
	if !item.Light {
		return EquipResult{Message: fmt.Sprintf("%s is too heavy for your off-hand.", item.Name)}
	}
	if c.Weapon != nil && c.Weapon.ID == item.ID {
		return EquipResult{Message: fmt.Sprintf("%s is already in your main hand.", item.Name)}
	}
	if !IsLightWeapon(c.Weapon) {
		return EquipResult{Message: "Your main-hand weapon must be light to dual wield."}
	}

	c.Shield = nil
	c.OffHand = item
	return EquipResult{
		Success: true,
		Message: fmt.Sprintf("You ready %s in your off-hand.", item.Name),
	}
}
