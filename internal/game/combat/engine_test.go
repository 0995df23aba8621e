package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowmere/emberfall/internal/game/catalog"
	"github.com/hollowmere/emberfall/internal/game/character"
	"github.com/hollowmere/emberfall/internal/game/combat"
	"github.com/hollowmere/emberfall/internal/game/dice"
	"github.com/hollowmere/emberfall/internal/game/effect"
)

// facesSource replays a fixed sequence of die faces. Each Intn call pops
// the next face and returns face-1; an exhausted queue falls back to the
// midpoint so damage rolls stay in range.
type facesSource struct {
	faces []int
	i     int
}

func faces(f ...int) *facesSource { return &facesSource{faces: f} }

func (s *facesSource) Intn(n int) int {
	if s.i >= len(s.faces) {
		return n / 2
	}
	face := s.faces[s.i]
	s.i++
	if face > n {
		face = n
	}
	return face - 1
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()
	require.NoError(t, cat.RegisterItem(&catalog.Item{
		ID: "shortsword", Name: "Shortsword", Kind: catalog.ItemWeapon, DamageDice: "1d6", Effect: 1,
	}))
	require.NoError(t, cat.RegisterItem(&catalog.Item{
		ID: "dagger", Name: "Dagger", Kind: catalog.ItemWeapon, DamageDice: "1d4", Light: true,
	}))
	require.NoError(t, cat.RegisterSpell(&catalog.Spell{
		ID: "fireBolt", Name: "Fire Bolt", Kind: catalog.CastDamage, MPCost: 2, Dice: "1d10",
	}))
	require.NoError(t, cat.RegisterSpell(&catalog.Spell{
		ID: "magicMissile", Name: "Magic Missile", Kind: catalog.CastDamage, MPCost: 3, Dice: "2d4", AutoHit: true,
	}))
	require.NoError(t, cat.RegisterSpell(&catalog.Spell{
		ID: "cureWounds", Name: "Cure Wounds", Kind: catalog.CastHeal, MPCost: 2, Dice: "1d8",
	}))
	require.NoError(t, cat.RegisterSpell(&catalog.Spell{
		ID: "light", Name: "Light", Kind: catalog.CastUtility, MPCost: 1,
	}))
	require.NoError(t, cat.RegisterAbility(&catalog.Ability{
		ID: "powerStrike", Name: "Power Strike", Kind: catalog.CastDamage, MPCost: 2, Dice: "1d8", Stat: "strength",
	}))
	require.NoError(t, cat.RegisterAbility(&catalog.Ability{
		ID: "secondWind", Name: "Second Wind", Kind: catalog.CastHeal, MPCost: 1, Dice: "1d6",
	}))
	require.NoError(t, cat.RegisterTalent(&catalog.Talent{
		ID: "brawler", Name: "Brawler", DamageBonus: 1,
	}))
	return cat
}

func newEngine(t *testing.T, src dice.Source) (*combat.Engine, *catalog.Catalog) {
	t.Helper()
	cat := testCatalog(t)
	return combat.NewEngine(cat, effect.Builtin(), src, nil), cat
}

// newHero builds a level-1 player: str 14, dex 12, int 14, 12 HP, 6 MP.
func newHero(cat *catalog.Catalog) *character.Combatant {
	weapon, _ := cat.Item("shortsword")
	return &character.Combatant{
		Name: "Wren", Kind: character.KindPlayer, Level: 1,
		Abilities: character.AbilityScores{
			Strength: 14, Dexterity: 12, Constitution: 13,
			Intelligence: 14, Wisdom: 11, Charisma: 8,
		},
		MaxHP: 12, HP: 12, MaxMP: 6, MP: 6,
		Weapon:  weapon,
		Talents: map[string]bool{},
		Effects: effect.NewActiveSet(),
	}
}

func newGoblin() *character.Combatant {
	return character.NewMonster(&catalog.Monster{
		ID: "goblin", Name: "Goblin", MaxHP: 10, ArmorClass: 13,
		AttackBonus: 3, DamageDice: "1d6",
	})
}

func TestRollInitiative_TieGoesToPlayer(t *testing.T) {
	e, _ := newEngine(t, faces(10, 12))
	// player 10+2=12, monster 12+0=12
	res := e.RollInitiative(2, 0)
	assert.True(t, res.PlayerFirst)
	assert.Equal(t, 12, res.PlayerRoll.Total())
	assert.Equal(t, 12, res.MonsterRoll.Total())
	assert.Contains(t, res.Message, "You act first")
}

func TestRollInitiative_MonsterWins(t *testing.T) {
	e, _ := newEngine(t, faces(5, 15))
	res := e.RollInitiative(0, 3)
	assert.False(t, res.PlayerFirst)
	assert.Contains(t, res.Message, "The enemy acts first")
}

func TestAttemptFlee(t *testing.T) {
	e, _ := newEngine(t, faces(9))
	res := e.AttemptFlee(1)
	assert.True(t, res.Success, "total 10 meets DC 10")
	assert.Contains(t, res.Message, "10")

	e2, _ := newEngine(t, faces(7))
	res2 := e2.AttemptFlee(2)
	assert.False(t, res2.Success)
	assert.Contains(t, res2.Message, "9", "failure message reports the total")
}

func TestNewEngine_PanicsOnNilDeps(t *testing.T) {
	cat := testCatalog(t)
	assert.Panics(t, func() { combat.NewEngine(nil, effect.Builtin(), faces(), nil) })
	assert.Panics(t, func() { combat.NewEngine(cat, nil, faces(), nil) })
	assert.Panics(t, func() { combat.NewEngine(cat, effect.Builtin(), nil, nil) })
}
