// Package effect implements the status effect system: static effect
// definitions, the per-combatant active-effect container, aggregate modifier
// queries, and the start-of-turn processor that ticks damage, rolls saving
// throws, and expires durations.
package effect

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hollowmere/emberfall/internal/game/dice"
)

// Category separates harmful effects from beneficial ones. Battle-end cleanup
// washes debuffs away while leaving buffs for the caller to settle.
type Category string

const (
	// Debuff is a harmful effect inflicted by an enemy or hazard.
	Debuff Category = "debuff"
	// Buff is a beneficial effect, usually self-applied.
	Buff Category = "buff"
)

// Method is one way an active effect can end.
type Method string

const (
	// RemoveDuration expires the effect when its remaining turns reach zero.
	RemoveDuration Method = "duration"
	// RemoveSave lets the afflicted combatant roll it off at turn start.
	RemoveSave Method = "save"
	// RemoveCure lets a matching curing item remove it.
	RemoveCure Method = "cure"
	// RemoveManual is removed only by explicit engine/controller action.
	RemoveManual Method = "manual"
)

// Definition is the static definition of one status effect.
type Definition struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	// Duration is the default number of turns the effect lasts.
	Duration int `yaml:"duration"`
	// TickDamage is flat damage dealt at the start of each afflicted turn.
	// TickDice, when set, is rolled instead.
	TickDamage int    `yaml:"tick_damage"`
	TickDice   string `yaml:"tick_dice"`
	// AccuracyMod, ACMod, and DamageMod adjust the bearer's rolls while active.
	AccuracyMod int `yaml:"accuracy_mod"`
	ACMod       int `yaml:"ac_mod"`
	DamageMod   int `yaml:"damage_mod"`
	// SkipsTurn forces the bearer to lose their action.
	SkipsTurn bool `yaml:"skips_turn"`
	// SaveStat and SaveDC define the saving throw that ends the effect early.
	// SaveDC == 0 means the effect cannot be saved off.
	SaveStat string `yaml:"save_stat"`
	SaveDC   int    `yaml:"save_dc"`
	// Removal lists every way this effect can end.
	Removal []Method `yaml:"removal"`
	// CureItem is the item id that cures this effect, when removal includes "cure".
	CureItem string `yaml:"cure_item"`
	// OnApply, OnTick, and OnRemove name optional Lua hook functions run by the
	// scripting layer. Empty = no hook.
	OnApply  string `yaml:"on_apply"`
	OnTick   string `yaml:"on_tick"`
	OnRemove string `yaml:"on_remove"`
}

// Removable reports whether m is one of the definition's removal methods.
func (d *Definition) Removable(m Method) bool {
	for _, r := range d.Removal {
		if r == m {
			return true
		}
	}
	return false
}

// Validate checks that the Definition satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (d *Definition) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if d.Category != Debuff && d.Category != Buff {
		errs = append(errs, fmt.Errorf("Category %q must be debuff or buff", d.Category))
	}
	if d.Duration < 1 {
		errs = append(errs, errors.New("Duration must be >= 1"))
	}
	if d.TickDice != "" {
		if _, err := dice.Parse(d.TickDice); err != nil {
			errs = append(errs, fmt.Errorf("TickDice: %w", err))
		}
	}
	if d.SaveDC > 0 && d.SaveStat == "" {
		errs = append(errs, errors.New("SaveStat must be set when SaveDC > 0"))
	}
	if len(d.Removal) == 0 {
		errs = append(errs, errors.New("Removal must list at least one method"))
	}
	for _, m := range d.Removal {
		switch m {
		case RemoveDuration, RemoveSave, RemoveCure, RemoveManual:
		default:
			errs = append(errs, fmt.Errorf("removal method %q is not valid", m))
		}
	}
	if d.Removable(RemoveCure) && d.CureItem == "" {
		errs = append(errs, errors.New("CureItem must be set when removal includes cure"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("effect validation failed: %v", errs)
	}
	return nil
}

// Registry holds all known effect Definitions keyed by ID.
type Registry struct {
	defs map[string]*Definition
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register validates def and adds it, overwriting any existing entry with the
// same ID.
//
// Precondition: def must not be nil.
func (r *Registry) Register(def *Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	r.defs[def.ID] = def
	return nil
}

// Get returns the Definition for id, or (nil, false) if not found.
func (r *Registry) Get(id string) (*Definition, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// All returns a snapshot slice of all registered Definitions.
func (r *Registry) All() []*Definition {
	out := make([]*Definition, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	return out
}

// LoadDirectory reads every *.yaml file in dir, parses each as a Definition,
// and returns a populated Registry.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error if any file fails to
// parse or validate.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("effect: reading dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("effect: reading %q: %w", path, err)
		}
		var def Definition
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("effect: parsing %q: %w", path, err)
		}
		if err := reg.Register(&def); err != nil {
			return nil, fmt.Errorf("effect: %q: %w", path, err)
		}
	}
	return reg, nil
}
