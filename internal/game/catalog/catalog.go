package catalog

import "fmt"

// Catalog aggregates all content definition registries. Lookups are by string
// id; every lookup returns (def, true) or (nil, false), never an error; a
// missing id is a soft failure the combat resolvers turn into player-facing
// messages.
//
// A Catalog is immutable once loading/registration completes and is then safe
// for concurrent reads.
type Catalog struct {
	items     map[string]*Item
	spells    map[string]*Spell
	abilities map[string]*Ability
	monsters  map[string]*Monster
	talents   map[string]*Talent
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{
		items:     make(map[string]*Item),
		spells:    make(map[string]*Spell),
		abilities: make(map[string]*Ability),
		monsters:  make(map[string]*Monster),
		talents:   make(map[string]*Talent),
	}
}

// RegisterItem validates def and adds it, overwriting any entry with the same id.
//
// Precondition: def must not be nil.
func (c *Catalog) RegisterItem(def *Item) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	c.items[def.ID] = def
	return nil
}

// RegisterSpell validates def and adds it, overwriting any entry with the same id.
func (c *Catalog) RegisterSpell(def *Spell) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	c.spells[def.ID] = def
	return nil
}

// RegisterAbility validates def and adds it, overwriting any entry with the same id.
func (c *Catalog) RegisterAbility(def *Ability) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	c.abilities[def.ID] = def
	return nil
}

// RegisterMonster validates def and adds it, overwriting any entry with the same id.
func (c *Catalog) RegisterMonster(def *Monster) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	c.monsters[def.ID] = def
	return nil
}

// RegisterTalent validates def and adds it, overwriting any entry with the same id.
func (c *Catalog) RegisterTalent(def *Talent) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	c.talents[def.ID] = def
	return nil
}

// Item returns the item definition for id, or (nil, false) if not found.
func (c *Catalog) Item(id string) (*Item, bool) {
	d, ok := c.items[id]
	return d, ok
}

// Spell returns the spell definition for id, or (nil, false) if not found.
func (c *Catalog) Spell(id string) (*Spell, bool) {
	d, ok := c.spells[id]
	return d, ok
}

// Ability returns the ability definition for id, or (nil, false) if not found.
func (c *Catalog) Ability(id string) (*Ability, bool) {
	d, ok := c.abilities[id]
	return d, ok
}

// Monster returns the monster definition for id, or (nil, false) if not found.
func (c *Catalog) Monster(id string) (*Monster, bool) {
	d, ok := c.monsters[id]
	return d, ok
}

// Talent returns the talent definition for id, or (nil, false) if not found.
func (c *Catalog) Talent(id string) (*Talent, bool) {
	d, ok := c.talents[id]
	return d, ok
}
