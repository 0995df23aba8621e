package effect

// Builtin returns a Registry pre-populated with the standard effect table, so
// the engine works without content files. Content directories loaded on top
// may override entries by id.
func Builtin() *Registry {
	reg := NewRegistry()
	for _, def := range []*Definition{
		{
			ID: "poison", Name: "Poison", Category: Debuff, Duration: 3,
			TickDice: "1d4",
			SaveStat: "constitution", SaveDC: 12,
			Removal:  []Method{RemoveDuration, RemoveSave, RemoveCure},
			CureItem: "antidote",
		},
		{
			ID: "burning", Name: "Burning", Category: Debuff, Duration: 2,
			TickDice: "1d6",
			SaveStat: "dexterity", SaveDC: 12,
			Removal: []Method{RemoveDuration, RemoveSave},
		},
		{
			ID: "frostbite", Name: "Frostbite", Category: Debuff, Duration: 3,
			TickDamage: 2, ACMod: -1,
			Removal:  []Method{RemoveDuration, RemoveCure},
			CureItem: "warmingTonic",
		},
		{
			ID: "paralysis", Name: "Paralysis", Category: Debuff, Duration: 2,
			SkipsTurn: true,
			SaveStat:  "constitution", SaveDC: 14,
			Removal: []Method{RemoveDuration, RemoveSave},
		},
		{
			ID: "frightened", Name: "Frightened", Category: Debuff, Duration: 2,
			AccuracyMod: -2,
			SaveStat:    "wisdom", SaveDC: 12,
			Removal: []Method{RemoveDuration, RemoveSave},
		},
		{
			ID: "slowed", Name: "Slowed", Category: Debuff, Duration: 3,
			ACMod:   -2,
			Removal: []Method{RemoveDuration},
		},
		{
			ID: "rage", Name: "Rage", Category: Buff, Duration: 3,
			DamageMod: 2,
			Removal:   []Method{RemoveDuration, RemoveManual},
		},
		{
			ID: "shielded", Name: "Shielded", Category: Buff, Duration: 3,
			ACMod:   2,
			Removal: []Method{RemoveDuration, RemoveManual},
		},
		{
			ID: "blessed", Name: "Blessed", Category: Buff, Duration: 3,
			AccuracyMod: 1,
			Removal:     []Method{RemoveDuration, RemoveManual},
		},
	} {
		if err := reg.Register(def); err != nil {
			panic("effect: builtin table invalid: " + err.Error())
		}
	}
	return reg
}
