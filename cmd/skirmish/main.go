// Package main provides the skirmish binary: a terminal duel between a player
// unit and an enemy unit built from the content catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/cli"
	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/command"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	root := flag.String("root", ".", "directory relative content paths are resolved against")
	name := flag.String("name", "Hero", "player unit name")
	class := flag.String("class", "warrior", "player class ID")
	weapon := flag.String("weapon", "short_sword", "player weapon ID")
	armor := flag.String("armor", "leather", "player armor ID")
	enemyName := flag.String("enemy-name", "", "enemy unit name; empty = enemy class name")
	enemyClass := flag.String("enemy-class", "thief", "enemy class ID")
	enemyWeapon := flag.String("enemy-weapon", "dagger", "enemy weapon ID")
	enemyArmor := flag.String("enemy-armor", "leather", "enemy armor ID")
	auto := flag.Bool("auto", false, "let the player hit automatically every round")
	seed := flag.Uint64("seed", 0, "seed for reproducible battles; 0 = config value or crypto randomness")
	color := flag.Bool("color", true, "colour output with ANSI escapes")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}
	cfg.Content = cfg.Content.Rebase(*root)
	if *seed != 0 {
		cfg.Battle.Seed = *seed
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}
	defer cat.Close()
	logger.Info("content loaded",
		zap.Strings("classes", cat.Classes.IDs()),
		zap.Strings("weapons", cat.Items.WeaponIDs()),
		zap.Strings("armors", cat.Items.ArmorIDs()),
		zap.Strings("skills", cat.Skills.IDs()),
		zap.Int("scripts", cat.Scripts.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	src := newSource(cfg.Battle.Seed, logger)
	player, err := cat.NewUnit(loadout{Name: *name, Class: *class, Weapon: *weapon, Armor: *armor}, combat.BasicPolicy{})
	if err != nil {
		logger.Fatal("building player", zap.Error(err))
	}
	enemy, err := cat.NewUnit(loadout{Name: *enemyName, Class: *enemyClass, Weapon: *enemyWeapon, Armor: *enemyArmor},
		combat.NewAutoSkillPolicy(src, cfg.Battle.SkillTriggerPercent))
	if err != nil {
		logger.Fatal("building enemy", zap.Error(err))
	}

	engine := combat.NewEngine(logger)
	battle, err := engine.StartBattle(player, enemy, combat.Options{
		StaminaPerRound: cfg.Battle.StaminaPerRound,
		MaxRounds:       cfg.Battle.MaxRounds,
	})
	if err != nil {
		logger.Fatal("starting battle", zap.Error(err))
	}
	defer engine.EndBattle(battle.ID)

	renderer := cli.NewRenderer(battle, *color)
	var res combat.Result
	if *auto {
		res, err = battle.RunAuto(ctx)
		fmt.Print(renderer.Banner(), renderer.Events(battle.Events()), renderer.Result(res))
	} else {
		dispatcher := command.NewDispatcher(command.DefaultRegistry(), battle, cat.Items, logger)
		res, err = cli.NewSession(os.Stdin, os.Stdout, battle, dispatcher, renderer, logger).Run(ctx)
	}
	if err != nil {
		logger.Error("battle aborted", zap.Error(err))
	}
	logger.Info("battle over",
		zap.String("result", res.String()),
		zap.Int("rounds", battle.Round()),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// newSource selects a seeded source when seed is non-zero, else crypto
// randomness. Draws are logged at debug level.
func newSource(seed uint64, logger *zap.Logger) dice.Source {
	var src dice.Source
	if seed != 0 {
		src = dice.NewSeededSource(seed)
		logger.Info("using seeded random source", zap.Uint64("seed", seed))
	} else {
		src = dice.NewCryptoSource()
	}
	return dice.NewLoggedSource(src, logger)
}
