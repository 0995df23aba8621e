package effect

import "fmt"

// Active tracks one applied effect instance on a combatant.
type Active struct {
	Def       *Definition
	Remaining int    // turns left before expiry
	Source    string // who or what inflicted it, for log attribution
}

// ActiveSet tracks all effects currently applied to one combatant.
//
// Invariant: at most one Active per effect id. Re-applying an active effect
// refreshes it; it never stacks a second instance. Iteration order is
// application order.
//
// ActiveSet is not safe for concurrent use; the battle controller serialises
// access.
type ActiveSet struct {
	order []string
	byID  map[string]*Active
}

// NewActiveSet creates an empty ActiveSet.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{byID: make(map[string]*Active)}
}

// ApplyResult reports what Apply did.
type ApplyResult struct {
	// Applied is true when a new instance was added or an existing one refreshed.
	Applied bool
	// Refreshed is true when an existing instance had its duration extended.
	Refreshed bool
	// Message is the player-facing log line.
	Message string
}

// Apply adds the effect to this combatant, or refreshes an existing instance.
// duration <= 0 means use the definition's default. An existing instance is
// refreshed only when the new duration is strictly greater than the remaining
// turns; otherwise the set is unchanged and the result reports the combatant
// is already afflicted.
//
// Precondition: def must not be nil.
// Postcondition: Has(def.ID) is true; at most one instance of def.ID exists.
func (s *ActiveSet) Apply(def *Definition, source string, duration int) ApplyResult {
	if def == nil {
		panic("effect: Apply called with nil definition")
	}
	if duration <= 0 {
		duration = def.Duration
	}

	if existing, ok := s.byID[def.ID]; ok {
		if duration > existing.Remaining {
			existing.Remaining = duration
			existing.Source = source
			return ApplyResult{
				Applied:   true,
				Refreshed: true,
				Message:   fmt.Sprintf("%s takes hold again!", def.Name),
			}
		}
		return ApplyResult{
			Message: fmt.Sprintf("Already afflicted by %s.", def.Name),
		}
	}

	s.byID[def.ID] = &Active{Def: def, Remaining: duration, Source: source}
	s.order = append(s.order, def.ID)
	return ApplyResult{
		Applied: true,
		Message: fmt.Sprintf("%s takes hold!", def.Name),
	}
}

// Remove deletes the effect with the given id from the set. Returns true when
// an instance was removed.
//
// Postcondition: Has(id) is false.
func (s *ActiveSet) Remove(id string) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// CureWithItem removes every active effect whose definition names itemID as its
// curing item and lists cure as a removal method. Returns the display names of
// the removed effects; an empty slice means nothing matched, which is the
// failure signal (using the item was wasted).
func (s *ActiveSet) CureWithItem(itemID string) []string {
	var cured []string
	for _, id := range append([]string(nil), s.order...) {
		ac := s.byID[id]
		if ac.Def.CureItem == itemID && ac.Def.Removable(RemoveCure) {
			s.Remove(id)
			cured = append(cured, ac.Def.Name)
		}
	}
	return cured
}

// Has reports whether the effect with id is currently active.
func (s *ActiveSet) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Get returns the active instance for id, or (nil, false).
func (s *ActiveSet) Get(id string) (*Active, bool) {
	ac, ok := s.byID[id]
	return ac, ok
}

// Len returns the number of active effects.
func (s *ActiveSet) Len() int { return len(s.order) }

// All returns the active instances in application order. The slice is a new
// allocation but the pointed-to Active values are shared.
func (s *ActiveSet) All() []*Active {
	out := make([]*Active, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// AccuracyModifier sums the accuracy modifier across all active effects.
func (s *ActiveSet) AccuracyModifier() int {
	total := 0
	for _, ac := range s.byID {
		total += ac.Def.AccuracyMod
	}
	return total
}

// ACModifier sums the armor class modifier across all active effects.
func (s *ActiveSet) ACModifier() int {
	total := 0
	for _, ac := range s.byID {
		total += ac.Def.ACMod
	}
	return total
}

// DamageModifier sums the damage modifier across all active effects.
func (s *ActiveSet) DamageModifier() int {
	total := 0
	for _, ac := range s.byID {
		total += ac.Def.DamageMod
	}
	return total
}

// MustSkipTurn reports whether any active effect forces the bearer to lose
// their action this turn.
func (s *ActiveSet) MustSkipTurn() bool {
	for _, ac := range s.byID {
		if ac.Def.SkipsTurn {
			return true
		}
	}
	return false
}

// ClearAll removes every active effect. Used at battle end.
//
// Postcondition: Len() == 0.
func (s *ActiveSet) ClearAll() {
	s.order = nil
	s.byID = make(map[string]*Active)
}

// ClearDebuffs removes only debuff-category effects, preserving buffs so the
// battle controller can settle self-buffs like Rage explicitly.
//
// Postcondition: every remaining active effect has Category == Buff.
func (s *ActiveSet) ClearDebuffs() {
	for _, id := range append([]string(nil), s.order...) {
		if s.byID[id].Def.Category == Debuff {
			s.Remove(id)
		}
	}
}
