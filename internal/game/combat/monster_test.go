package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowmere/emberfall/internal/game/catalog"
	"github.com/hollowmere/emberfall/internal/game/effect"
)

func TestMonsterAttack_HitReducesPlayerHP(t *testing.T) {
	// Hero AC: 10 + dex 1 = 11. Goblin +3: face 10 totals 13.
	// Damage: 1d6 face 4.
	e, cat := newEngine(t, faces(10, 4))
	hero := newHero(cat)
	goblin := newGoblin()

	res := e.MonsterAttack(goblin, hero, 0, 0, 0)
	require.True(t, res.Outcome.Hit)
	assert.Equal(t, 4, res.Damage)
	assert.Equal(t, 8, hero.HP, "damage lands directly on the player")
	assert.Contains(t, res.Message, "hits you for 4 damage")
}

func TestMonsterAttack_DefendBonusRaisesPlayerAC(t *testing.T) {
	// Face 10 totals 13: hits AC 11 but not 11+4.
	e, cat := newEngine(t, faces(10))
	hero := newHero(cat)
	goblin := newGoblin()

	res := e.MonsterAttack(goblin, hero, 4, 0, 0)
	assert.False(t, res.Outcome.Hit)
	assert.Equal(t, 12, hero.HP)
	assert.Contains(t, res.Message, "13 vs AC 15")
}

func TestMonsterAttack_AtkBoost(t *testing.T) {
	// Face 10 with +3 and a +2 boost totals 15.
	e, cat := newEngine(t, faces(10, 3))
	hero := newHero(cat)
	goblin := newGoblin()

	res := e.MonsterAttack(goblin, hero, 4, 0, 2)
	assert.True(t, res.Outcome.Hit)
}

func TestMonsterAttack_Fumble(t *testing.T) {
	e, cat := newEngine(t, faces(1))
	hero := newHero(cat)
	goblin := newGoblin()

	res := e.MonsterAttack(goblin, hero, 0, 0, 0)
	assert.True(t, res.Outcome.Fumble)
	assert.Equal(t, 12, hero.HP)
	assert.Contains(t, res.Message, "wildly")
}

func TestMonsterAttack_CritDoublesDice(t *testing.T) {
	// 1d6 doubled: faces 6 and 5.
	e, cat := newEngine(t, faces(20, 6, 5))
	hero := newHero(cat)
	goblin := newGoblin()

	res := e.MonsterAttack(goblin, hero, 0, 0, 0)
	require.True(t, res.Outcome.Critical)
	assert.Equal(t, 11, res.Damage)
	assert.Equal(t, 1, hero.HP)
}

func TestMonsterUseAbility_Heal(t *testing.T) {
	e, cat := newEngine(t, faces(5))
	hero := newHero(cat)
	goblin := newGoblin()
	goblin.HP = 3

	res := e.MonsterUseAbility(catalog.MonsterAbility{
		Name: "Regenerate", Kind: catalog.MonsterAbilityHeal, Dice: "1d8",
	}, goblin, hero)
	assert.Equal(t, 5, res.Healed)
	assert.Equal(t, 8, goblin.HP)
	assert.Equal(t, 12, hero.HP, "healing never touches the player")
	assert.Contains(t, res.Message, "recovers 5 HP")
}

func TestMonsterUseAbility_HealCapsAtMax(t *testing.T) {
	e, cat := newEngine(t, faces(8))
	hero := newHero(cat)
	goblin := newGoblin()
	goblin.HP = 7

	res := e.MonsterUseAbility(catalog.MonsterAbility{
		Name: "Regenerate", Kind: catalog.MonsterAbilityHeal, Dice: "1d8",
	}, goblin, hero)
	assert.Equal(t, 3, res.Healed)
	assert.Equal(t, 10, goblin.HP)
}

func TestMonsterUseAbility_DamageBypassesArmor(t *testing.T) {
	// No attack roll: the only face consumed is the damage die.
	e, cat := newEngine(t, faces(6))
	hero := newHero(cat)
	goblin := newGoblin()

	res := e.MonsterUseAbility(catalog.MonsterAbility{
		Name: "Fire Breath", Kind: catalog.MonsterAbilityDamage, Dice: "1d6",
	}, goblin, hero)
	assert.Equal(t, 6, res.Damage)
	assert.Equal(t, 6, hero.HP)
}

func TestMonsterUseAbility_SelfHealDrain(t *testing.T) {
	e, cat := newEngine(t, faces(4))
	hero := newHero(cat)
	goblin := newGoblin()
	goblin.HP = 5

	res := e.MonsterUseAbility(catalog.MonsterAbility{
		Name: "Life Drain", Kind: catalog.MonsterAbilityDamage, Dice: "1d6", SelfHeal: true,
	}, goblin, hero)
	assert.Equal(t, 4, res.Damage)
	assert.Equal(t, 8, hero.HP)
	assert.Equal(t, 4, res.Healed)
	assert.Equal(t, 9, goblin.HP)
	assert.Contains(t, res.Message, "drains")
}

func TestMonsterUseAbility_SelfHealCappedAtMax(t *testing.T) {
	e, cat := newEngine(t, faces(6))
	hero := newHero(cat)
	goblin := newGoblin()
	goblin.HP = 9

	res := e.MonsterUseAbility(catalog.MonsterAbility{
		Name: "Life Drain", Kind: catalog.MonsterAbilityDamage, Dice: "1d6", SelfHeal: true,
	}, goblin, hero)
	assert.Equal(t, 6, res.Damage)
	assert.Equal(t, 1, res.Healed)
	assert.Equal(t, 10, goblin.HP)
}

func TestMonsterUseAbility_InflictsStatusEffect(t *testing.T) {
	e, cat := newEngine(t, faces(3))
	hero := newHero(cat)
	goblin := newGoblin()

	res := e.MonsterUseAbility(catalog.MonsterAbility{
		Name: "Venomous Bite", Kind: catalog.MonsterAbilityDamage, Dice: "1d4", StatusEffect: "poison",
	}, goblin, hero)
	assert.Equal(t, "poison", res.StatusApplied)
	assert.True(t, hero.Effects.Has("poison"))
	poisoned, ok := hero.Effects.Get("poison")
	require.True(t, ok)
	assert.Equal(t, "Goblin", poisoned.Source)
}

func TestMonsterUseAbility_UnknownStatusEffectIgnored(t *testing.T) {
	e, cat := newEngine(t, faces(3))
	hero := newHero(cat)
	goblin := newGoblin()

	res := e.MonsterUseAbility(catalog.MonsterAbility{
		Name: "Mystery Bite", Kind: catalog.MonsterAbilityDamage, Dice: "1d4", StatusEffect: "doom",
	}, goblin, hero)
	assert.Empty(t, res.StatusApplied)
	assert.Equal(t, 3, res.Damage)
	assert.Equal(t, 0, hero.Effects.Len())
}

func TestMonsterUseAbility_StatusRefreshKeepsSource(t *testing.T) {
	reg := effect.Builtin()
	poison, ok := reg.Get("poison")
	require.True(t, ok)

	e, cat := newEngine(t, faces(3))
	hero := newHero(cat)
	hero.Effects.Apply(poison, "Trap", 1)
	goblin := newGoblin()

	res := e.MonsterUseAbility(catalog.MonsterAbility{
		Name: "Venomous Bite", Kind: catalog.MonsterAbilityDamage, Dice: "1d4", StatusEffect: "poison",
	}, goblin, hero)
	assert.Equal(t, "poison", res.StatusApplied)
	active, ok := hero.Effects.Get("poison")
	require.True(t, ok)
	assert.Equal(t, "Goblin", active.Source, "a longer application refreshes the source")
}
