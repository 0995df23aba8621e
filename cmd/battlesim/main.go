// Package main provides the battle simulator for the Emberfall combat
// engine. It wires together configuration, content loading, Lua effect
// hooks, and the combat resolvers, then runs one battle to completion on
// stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/hollowmere/emberfall/internal/config"
	"github.com/hollowmere/emberfall/internal/game/catalog"
	"github.com/hollowmere/emberfall/internal/game/character"
	"github.com/hollowmere/emberfall/internal/game/combat"
	"github.com/hollowmere/emberfall/internal/game/dice"
	"github.com/hollowmere/emberfall/internal/game/effect"
	"github.com/hollowmere/emberfall/internal/observability"
	"github.com/hollowmere/emberfall/internal/scripting"
)

const maxRounds = 50

func main() {
	configPath := flag.String("config", "", "path to configuration file (empty = built-in defaults)")
	seed := flag.Int64("seed", 0, "dice seed for a reproducible battle (0 = crypto randomness)")
	monsterID := flag.String("monster", "goblin", "catalog id of the monster to fight")
	weather := flag.Bool("weather", false, "fight in bad weather (applies the configured to-hit penalty)")
	flag.Parse()

	// Load configuration
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting Emberfall battle simulator",
		zap.Int64("seed", *seed),
		zap.String("monster", *monsterID),
	)

	// Dice source
	var src dice.Source
	if *seed != 0 {
		src = dice.NewSeededSource(*seed)
	} else {
		src = dice.NewCryptoSource()
	}

	// Content
	cat, effects, err := loadContent(cfg.Content.Dir, logger)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}

	engine := combat.NewEngine(cat, effects, src, logger)

	// Lua effect hooks
	var hooks *scripting.Manager
	if cfg.Scripting.Dir != "" {
		hooks = scripting.NewManager(src, logger)
		if err := hooks.LoadDirectory(cfg.Scripting.Dir, cfg.Scripting.InstructionLimit); err != nil {
			logger.Fatal("loading effect hook scripts", zap.Error(err))
		}
		defer hooks.Close()
		engine.SetHooks(hooks)
	}

	monsterDef, ok := cat.Monster(*monsterID)
	if !ok {
		logger.Fatal("unknown monster", zap.String("id", *monsterID))
	}

	hero := demoHero(cat)
	monster := character.NewMonster(monsterDef)

	weatherPenalty := 0
	if *weather {
		weatherPenalty = cfg.Battle.WeatherPenalty
		fmt.Println("Rain lashes the battlefield.")
	}

	runBattle(engine, hooks, hero, monster, monsterDef, src, weatherPenalty)
}

// loadContent builds the catalog and effect registry, preferring the
// configured content directory and falling back to the built-in demo set.
func loadContent(dir string, logger *zap.Logger) (*catalog.Catalog, *effect.Registry, error) {
	if dir == "" {
		logger.Info("no content directory configured, using built-in content")
		return demoCatalog(), effect.Builtin(), nil
	}

	cat, err := catalog.LoadDirectory(dir)
	if err != nil {
		return nil, nil, err
	}

	effects := effect.Builtin()
	effectsDir := filepath.Join(dir, "effects")
	if _, err := os.Stat(effectsDir); err == nil {
		loaded, err := effect.LoadDirectory(effectsDir)
		if err != nil {
			return nil, nil, err
		}
		for _, def := range loaded.All() {
			if err := effects.Register(def); err != nil {
				return nil, nil, err
			}
		}
	}

	logger.Info("content loaded",
		zap.String("dir", dir),
		zap.Int("effects", len(effects.All())),
	)
	return cat, effects, nil
}

// runBattle plays one battle to completion, narrating every action.
func runBattle(engine *combat.Engine, hooks *scripting.Manager, hero, monster *character.Combatant, monsterDef *catalog.Monster, src dice.Source, weatherPenalty int) {
	fmt.Printf("A %s appears! (%d HP, AC %d)\n\n", monster.Name, monster.MaxHP, monster.ArmorClass)

	init := engine.RollInitiative(hero.Abilities.Modifier("dexterity"), monster.AttackBonus)
	fmt.Println(init.Line())

	playerTurn := init.PlayerFirst
	for round := 1; round <= maxRounds; round++ {
		if !hero.IsAlive() || !monster.IsAlive() {
			break
		}

		if playerTurn {
			tickCombatant(hero, "You", src, hooks)
			if hero.IsAlive() && monster.IsAlive() && !hero.Effects.MustSkipTurn() {
				fmt.Println(playerAction(engine, hero, monster, weatherPenalty).Line())
			}
		} else {
			tickCombatant(monster, "The "+monster.Name, src, hooks)
			if hero.IsAlive() && monster.IsAlive() && !monster.Effects.MustSkipTurn() {
				fmt.Println(monsterAction(engine, monster, hero, monsterDef, src, weatherPenalty).Line())
			}
		}
		playerTurn = !playerTurn
	}

	fmt.Println()
	switch {
	case !hero.IsAlive():
		fmt.Printf("You fall to the %s. Defeat!\n", monster.Name)
	case !monster.IsAlive():
		fmt.Printf("The %s collapses. Victory!\n", monster.Name)
	default:
		fmt.Println("The battle grinds to a stalemate.")
	}
}

// tickCombatant runs turn-start effect processing and narrates the results.
func tickCombatant(c *character.Combatant, who string, src dice.Source, hooks *scripting.Manager) {
	var h effect.Hooks
	if hooks != nil {
		h = hooks
	}
	tick := c.Effects.ProcessTurnStart(c.Abilities, src, h)
	for _, msg := range tick.Messages {
		fmt.Printf("  [%s] %s\n", who, msg)
	}
	if tick.TickDamage > 0 {
		c.ApplyDamage(tick.TickDamage)
	}
	if c.Effects.MustSkipTurn() {
		fmt.Printf("  [%s] Unable to act this turn!\n", who)
	}
}

// playerAction picks a simple demo policy: lead with the strongest known
// spell while MP lasts, then fall back to weapon attacks.
func playerAction(engine *combat.Engine, hero, monster *character.Combatant, weatherPenalty int) combat.Result {
	for _, id := range hero.Spells {
		res := engine.CastSpell(hero, id, monster, weatherPenalty)
		if res.Cast {
			return res
		}
	}
	res := engine.PlayerAttack(hero, monster, 0, weatherPenalty)
	if hero.OffHand != nil && monster.IsAlive() {
		off := engine.PlayerOffHandAttack(hero, monster, 0, weatherPenalty)
		return twoLines{res, off}
	}
	return res
}

// monsterAction uses the first special ability on a one-in-three roll,
// otherwise swings.
func monsterAction(engine *combat.Engine, monster, hero *character.Combatant, def *catalog.Monster, src dice.Source, weatherPenalty int) combat.Result {
	if len(def.Abilities) > 0 && dice.RollDie(3, src) == 3 {
		return engine.MonsterUseAbility(def.Abilities[0], monster, hero)
	}
	return engine.MonsterAttack(monster, hero, 0, weatherPenalty, 0)
}

// twoLines joins a main-hand and off-hand result into one narration.
type twoLines struct {
	main, off combat.Result
}

func (t twoLines) Line() string { return t.main.Line() + "\n" + t.off.Line() }

// demoHero builds the built-in player character.
func demoHero(cat *catalog.Catalog) *character.Combatant {
	weapon, _ := cat.Item("shortsword")
	armor, _ := cat.Item("leatherArmor")
	return &character.Combatant{
		Name: "Wren", Kind: character.KindPlayer, Level: 3,
		Abilities: character.AbilityScores{
			Strength: 14, Dexterity: 12, Constitution: 13,
			Intelligence: 14, Wisdom: 11, Charisma: 8,
		},
		MaxHP: 24, HP: 24, MaxMP: 10, MP: 10,
		Weapon: weapon, Armor: armor,
		Talents: map[string]bool{},
		Spells:  []string{"fireBolt"},
		Effects: effect.NewActiveSet(),
	}
}

// demoCatalog is the built-in content set used when no content directory
// is configured.
func demoCatalog() *catalog.Catalog {
	cat := catalog.New()
	mustRegister(cat.RegisterItem(&catalog.Item{
		ID: "shortsword", Name: "Shortsword", Kind: catalog.ItemWeapon, DamageDice: "1d6", Effect: 1,
	}))
	mustRegister(cat.RegisterItem(&catalog.Item{
		ID: "leatherArmor", Name: "Leather Armor", Kind: catalog.ItemArmor, BaseAC: 11,
	}))
	mustRegister(cat.RegisterSpell(&catalog.Spell{
		ID: "fireBolt", Name: "Fire Bolt", Kind: catalog.CastDamage, MPCost: 2, Dice: "1d10",
	}))
	mustRegister(cat.RegisterMonster(&catalog.Monster{
		ID: "goblin", Name: "Goblin", MaxHP: 14, ArmorClass: 13,
		AttackBonus: 3, DamageDice: "1d6",
		Abilities: []catalog.MonsterAbility{
			{Name: "Venomous Bite", Kind: catalog.MonsterAbilityDamage, Dice: "1d4", StatusEffect: "poison"},
		},
	}))
	return cat
}

func mustRegister(err error) {
	if err != nil {
		log.Fatalf("registering demo content: %v", err)
	}
}
