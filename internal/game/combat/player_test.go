package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowmere/emberfall/internal/game/catalog"
	"github.com/hollowmere/emberfall/internal/game/character"
	"github.com/hollowmere/emberfall/internal/game/dice"
	"github.com/hollowmere/emberfall/internal/game/effect"
)

func TestPlayerAttack_Hit(t *testing.T) {
	// Attack mod: str +2, proficiency +2 = +4. Face 11 totals 15 vs AC 13.
	// Damage: face 4 on 1d6 plus weapon effect +1 = 5.
	e, cat := newEngine(t, faces(11, 4))
	hero := newHero(cat)
	goblin := newGoblin()

	res := e.PlayerAttack(hero, goblin, 0, 0)
	require.True(t, res.Outcome.Hit)
	assert.False(t, res.Outcome.Critical)
	assert.Equal(t, 5, res.Damage)
	assert.Equal(t, 5, goblin.HP, "damage is applied to the monster")
	assert.Contains(t, res.Message, "You hit the Goblin for 5 damage!")
}

func TestPlayerAttack_Miss(t *testing.T) {
	// Face 5 totals 9 vs AC 13.
	e, cat := newEngine(t, faces(5))
	hero := newHero(cat)
	goblin := newGoblin()

	res := e.PlayerAttack(hero, goblin, 0, 0)
	assert.False(t, res.Outcome.Hit)
	assert.Equal(t, 0, res.Damage)
	assert.Equal(t, 10, goblin.HP)
	assert.Contains(t, res.Message, "9 vs AC 13")
}

func TestPlayerAttack_DefendAndWeatherRaiseTarget(t *testing.T) {
	// Face 11 totals 15: beats AC 13 but not 13+2+1.
	e, cat := newEngine(t, faces(11))
	hero := newHero(cat)
	goblin := newGoblin()

	res := e.PlayerAttack(hero, goblin, 2, 1)
	assert.False(t, res.Outcome.Hit)
	assert.Contains(t, res.Message, "15 vs AC 16")
}

func TestPlayerAttack_Natural20_AlwaysCritsAndDoublesDice(t *testing.T) {
	// AC 100 is unreachable on totals, but the natural 20 still lands.
	// Crit doubles 1d6 to 2d6: faces 6 and 6 plus weapon effect +1 = 13.
	e, cat := newEngine(t, faces(20, 6, 6))
	hero := newHero(cat)
	goblin := newGoblin()
	goblin.ArmorClass = 100
	goblin.MaxHP, goblin.HP = 50, 50

	res := e.PlayerAttack(hero, goblin, 0, 0)
	require.True(t, res.Outcome.Critical)
	assert.Equal(t, 13, res.Damage)
	assert.Equal(t, 37, goblin.HP)
	assert.Contains(t, res.Message, "Critical hit!")
}

func TestPlayerAttack_Natural1_AlwaysFumbles(t *testing.T) {
	// AC 0 means any total would hit, but the natural 1 misses anyway.
	e, cat := newEngine(t, faces(1))
	hero := newHero(cat)
	goblin := newGoblin()
	goblin.ArmorClass = 0

	res := e.PlayerAttack(hero, goblin, 0, 0)
	assert.True(t, res.Outcome.Fumble)
	assert.False(t, res.Outcome.Hit)
	assert.Equal(t, 10, goblin.HP)
}

func TestPlayerAttack_DamageFloorsAtOne(t *testing.T) {
	// Dagger 1d4 rolling 1 with a -2 damage debuff would go negative.
	e, cat := newEngine(t, faces(15, 1))
	hero := newHero(cat)
	dagger, _ := cat.Item("dagger")
	hero.Weapon = dagger
	hero.Effects.Apply(&effect.Definition{
		ID: "weakened", Name: "Weakened", Category: effect.Debuff,
		Duration: 3, DamageMod: -2,
	}, "test", 0)
	goblin := newGoblin()

	res := e.PlayerAttack(hero, goblin, 0, 0)
	require.True(t, res.Outcome.Hit)
	assert.Equal(t, 1, res.Damage)
	assert.Equal(t, 9, goblin.HP)
}

func TestPlayerAttack_TalentAndEffectBonusesStack(t *testing.T) {
	// brawler +1 damage, rage +2 damage, 1d6 face 3, weapon effect +1 = 7.
	e, cat := newEngine(t, faces(11, 3))
	hero := newHero(cat)
	hero.Talents["brawler"] = true
	rage, ok := effect.Builtin().Get("rage")
	require.True(t, ok)
	hero.Effects.Apply(rage, "test", 0)
	goblin := newGoblin()

	res := e.PlayerAttack(hero, goblin, 0, 0)
	require.True(t, res.Outcome.Hit)
	assert.Equal(t, 7, res.Damage)
}

func TestPlayerAttack_AccuracyDebuffLowersRoll(t *testing.T) {
	// frightened is -2 accuracy: face 10 with +4 mod would total 14 and
	// hit AC 13, but the debuff pulls it down to 12.
	e, cat := newEngine(t, faces(10))
	hero := newHero(cat)
	frightened, ok := effect.Builtin().Get("frightened")
	require.True(t, ok)
	hero.Effects.Apply(frightened, "test", 0)
	goblin := newGoblin()

	res := e.PlayerAttack(hero, goblin, 0, 0)
	assert.False(t, res.Outcome.Hit)
	assert.Equal(t, 12, res.Outcome.Total)
}

func TestPlayerAttack_Unarmed(t *testing.T) {
	// No weapon falls back to 1d6 with no flat bonus.
	e, cat := newEngine(t, faces(11, 3))
	hero := newHero(cat)
	hero.Weapon = nil
	goblin := newGoblin()

	res := e.PlayerAttack(hero, goblin, 0, 0)
	require.True(t, res.Outcome.Hit)
	assert.Equal(t, 3, res.Damage)
}

func TestPlayerAttack_PanicsOnNil(t *testing.T) {
	e, cat := newEngine(t, faces())
	hero := newHero(cat)
	assert.Panics(t, func() { e.PlayerAttack(nil, newGoblin(), 0, 0) })
	assert.Panics(t, func() { e.PlayerAttack(hero, nil, 0, 0) })
}

func TestPlayerOffHandAttack_PanicsWithoutWeapon(t *testing.T) {
	e, cat := newEngine(t, faces())
	hero := newHero(cat)
	assert.Panics(t, func() { e.PlayerOffHandAttack(hero, newGoblin(), 0, 0) })
}

func TestPlayerOffHandAttack_UsesOffHandDice(t *testing.T) {
	e, cat := newEngine(t, faces(15, 2))
	hero := newHero(cat)
	dagger, _ := cat.Item("dagger")
	hero.Weapon = dagger
	offhand := *dagger
	offhand.ID = "dagger2"
	hero.OffHand = &offhand
	goblin := newGoblin()

	res := e.PlayerOffHandAttack(hero, goblin, 0, 0)
	require.True(t, res.Outcome.Hit)
	assert.Equal(t, 2, res.Damage, "1d4 face 2, no flat bonus")
	assert.Contains(t, res.Message, "off-hand")
}

func TestPlayerOffHandAttack_MissMentionsOffHand(t *testing.T) {
	e, cat := newEngine(t, faces(2))
	hero := newHero(cat)
	dagger, _ := cat.Item("dagger")
	hero.Weapon = dagger
	hero.OffHand = dagger
	goblin := newGoblin()

	res := e.PlayerOffHandAttack(hero, goblin, 0, 0)
	assert.False(t, res.Outcome.Hit)
	assert.Contains(t, res.Message, "off-hand")
}

func TestPlayerAttack_HitRateAgainstWeakTarget(t *testing.T) {
	// Against AC 1 only a natural 1 misses, so the observed hit rate over
	// many seeded attacks must be well above 90%.
	e, cat := newEngine(t, dice.NewSeededSource(7))
	hero := newHero(cat)

	hits := 0
	const trials = 1000
	for i := 0; i < trials; i++ {
		goblin := character.NewMonster(&catalog.Monster{
			ID: "dummy", Name: "Dummy", MaxHP: 1000, ArmorClass: 1,
		})
		if res := e.PlayerAttack(hero, goblin, 0, 0); res.Outcome.Hit {
			hits++
		}
	}
	assert.Greater(t, hits, trials*9/10)
}
