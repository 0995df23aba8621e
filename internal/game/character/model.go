// Package character defines combatant state and pure stat derivation for the
// Emberfall combat engine: ability scores, HP/MP accounting, equipment slots,
// and the armor class / attack / spell modifier formulas.
package character

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hollowmere/emberfall/internal/game/catalog"
	"github.com/hollowmere/emberfall/internal/game/dice"
	"github.com/hollowmere/emberfall/internal/game/effect"
)

// AbilityScores holds the six ability score values for a combatant.
type AbilityScores struct {
	Strength     int `yaml:"strength"`
	Dexterity    int `yaml:"dexterity"`
	Constitution int `yaml:"constitution"`
	Intelligence int `yaml:"intelligence"`
	Wisdom       int `yaml:"wisdom"`
	Charisma     int `yaml:"charisma"`
}

// Modifier returns the ability modifier for the named stat. Modifiers are
// always derived from the score, never stored.
//
// Precondition: stat must be one of the six ability score names.
func (a AbilityScores) Modifier(stat string) int {
	switch stat {
	case "strength":
		return dice.AbilityModifier(a.Strength)
	case "dexterity":
		return dice.AbilityModifier(a.Dexterity)
	case "constitution":
		return dice.AbilityModifier(a.Constitution)
	case "intelligence":
		return dice.AbilityModifier(a.Intelligence)
	case "wisdom":
		return dice.AbilityModifier(a.Wisdom)
	case "charisma":
		return dice.AbilityModifier(a.Charisma)
	default:
		panic(fmt.Sprintf("character: unknown ability score %q", stat))
	}
}

// Kind distinguishes player combatants from monster combatants.
type Kind int

const (
	// KindPlayer is a player character.
	KindPlayer Kind = iota
	// KindMonster is a monster instance built from a catalog stat block.
	KindMonster
)

// Combatant is the live battle state of one participant. It is created at
// battle start as a defensive copy of persistent state and mutated only by
// engine functions; its identity (InstanceID) never changes mid-battle.
type Combatant struct {
	InstanceID string
	Name       string
	Kind       Kind
	Level      int
	Abilities  AbilityScores

	MaxHP int
	HP    int
	MaxMP int
	MP    int

	// Equipment slots; nil = empty.
	Weapon  *catalog.Item
	OffHand *catalog.Item
	Armor   *catalog.Item
	Shield  *catalog.Item

	// Talents is the set of known talent ids.
	Talents map[string]bool
	// Spells and AbilityIDs are the known spell/ability ids.
	Spells     []string
	AbilityIDs []string

	// Effects is the active status effect container. Never nil.
	Effects *effect.ActiveSet

	// Monster-only stat block fields. Zero for players, whose armor
	// class is derived from equipment instead.
	ArmorClass  int
	AttackBonus int
	DamageDice  string
}

// NewMonster builds a battle combatant from a catalog stat block.
//
// Precondition: def must not be nil and must have passed Validate.
// Postcondition: HP == MaxHP; InstanceID is a fresh UUID.
func NewMonster(def *catalog.Monster) *Combatant {
	return &Combatant{
		InstanceID:  uuid.NewString(),
		Name:        def.Name,
		Kind:        KindMonster,
		Level:       1,
		MaxHP:       def.MaxHP,
		HP:          def.MaxHP,
		ArmorClass:  def.ArmorClass,
		AttackBonus: def.AttackBonus,
		DamageDice:  def.DamageDice,
		Talents:     map[string]bool{},
		Effects:     effect.NewActiveSet(),
	}
}

// Snapshot returns a defensive battle copy of c with a fresh InstanceID.
// Equipment pointers are shared (definitions are immutable); the talent set,
// known lists, and active effects are deep-copied so battle mutations never
// leak back into the source record.
func (c *Combatant) Snapshot() *Combatant {
	cp := *c
	cp.InstanceID = uuid.NewString()

	cp.Talents = make(map[string]bool, len(c.Talents))
	for id := range c.Talents {
		cp.Talents[id] = true
	}
	cp.Spells = append([]string(nil), c.Spells...)
	cp.AbilityIDs = append([]string(nil), c.AbilityIDs...)

	cp.Effects = effect.NewActiveSet()
	if c.Effects != nil {
		for _, ac := range c.Effects.All() {
			cp.Effects.Apply(ac.Def, ac.Source, ac.Remaining)
		}
	}
	return &cp
}

// IsAlive reports whether the combatant has HP remaining.
func (c *Combatant) IsAlive() bool { return c.HP > 0 }

// HasTalent reports whether the combatant knows the talent with id.
func (c *Combatant) HasTalent(id string) bool { return c.Talents[id] }

// ApplyDamage reduces HP by amount, clamping at zero.
//
// Precondition: amount >= 0.
// Postcondition: 0 <= HP <= MaxHP.
func (c *Combatant) ApplyDamage(amount int) {
	if amount < 0 {
		panic("character: ApplyDamage called with negative amount")
	}
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
}

// Heal restores up to amount HP, clamping at MaxHP, and returns the amount
// actually restored.
//
// Precondition: amount >= 0.
// Postcondition: 0 <= HP <= MaxHP; return value <= amount.
func (c *Combatant) Heal(amount int) int {
	if amount < 0 {
		panic("character: Heal called with negative amount")
	}
	missing := c.MaxHP - c.HP
	if amount > missing {
		amount = missing
	}
	c.HP += amount
	return amount
}

// SpendMP deducts cost from MP. Returns false (and changes nothing) when MP is
// insufficient, which is a game-rule failure rather than an error.
//
// Postcondition: MP >= 0; on false return, MP is unchanged.
func (c *Combatant) SpendMP(cost int) bool {
	if cost < 0 {
		panic("character: SpendMP called with negative cost")
	}
	if c.MP < cost {
		return false
	}
	c.MP -= cost
	return true
}
