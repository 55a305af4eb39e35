// Package config provides Viper-based configuration loading for the skirmish binary.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File receives log output. Empty or "stderr" writes to stderr, which
	// interleaves with the duel on the terminal.
	File string `mapstructure:"file"`
}

// ContentConfig holds the directories the content catalog is loaded from.
type ContentConfig struct {
	ClassesDir string `mapstructure:"classes_dir"`
	WeaponsDir string `mapstructure:"weapons_dir"`
	ArmorsDir  string `mapstructure:"armors_dir"`
	SkillsDir  string `mapstructure:"skills_dir"`
	// ScriptsDir is the root that skill script paths are relative to.
	ScriptsDir string `mapstructure:"scripts_dir"`
}

// Rebase returns a copy with every relative directory joined onto base.
//
// Postcondition: absolute directories are unchanged.
func (c ContentConfig) Rebase(base string) ContentConfig {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	return ContentConfig{
		ClassesDir: join(c.ClassesDir),
		WeaponsDir: join(c.WeaponsDir),
		ArmorsDir:  join(c.ArmorsDir),
		SkillsDir:  join(c.SkillsDir),
		ScriptsDir: join(c.ScriptsDir),
	}
}

// BattleConfig tunes the battle driver and the enemy policy.
type BattleConfig struct {
	// SkillTriggerPercent is the per-turn chance the enemy uses its skill.
	SkillTriggerPercent int `mapstructure:"skill_trigger_percent"`
	// StaminaPerRound is regenerated by both units each round.
	StaminaPerRound float64 `mapstructure:"stamina_per_round"`
	// MaxRounds ends a battle as a draw. Zero disables the cap.
	MaxRounds int `mapstructure:"max_rounds"`
	// Seed makes random draws reproducible. Zero selects a crypto source.
	Seed uint64 `mapstructure:"seed"`
}

// ScriptingConfig holds Lua sandbox settings.
type ScriptingConfig struct {
	// InstructionLimit bounds the VM instructions of a single script call.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Content   ContentConfig   `mapstructure:"content"`
	Battle    BattleConfig    `mapstructure:"battle"`
	Scripting ScriptingConfig `mapstructure:"scripting"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateBattle(c.Battle); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Scripting.InstructionLimit < 1 {
		errs = append(errs, fmt.Sprintf("scripting.instruction_limit must be >= 1, got %d", c.Scripting.InstructionLimit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	for _, d := range []struct{ key, val string }{
		{"content.classes_dir", c.ClassesDir},
		{"content.weapons_dir", c.WeaponsDir},
		{"content.armors_dir", c.ArmorsDir},
		{"content.skills_dir", c.SkillsDir},
		{"content.scripts_dir", c.ScriptsDir},
	} {
		if d.val == "" {
			errs = append(errs, d.key+" must not be empty")
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateBattle(b BattleConfig) error {
	var errs []string
	if b.SkillTriggerPercent < 0 || b.SkillTriggerPercent > 100 {
		errs = append(errs, fmt.Sprintf("battle.skill_trigger_percent must be 0-100, got %d", b.SkillTriggerPercent))
	}
	if b.StaminaPerRound < 0 {
		errs = append(errs, fmt.Sprintf("battle.stamina_per_round must be >= 0, got %g", b.StaminaPerRound))
	}
	if b.MaxRounds < 0 {
		errs = append(errs, fmt.Sprintf("battle.max_rounds must be >= 0, got %d", b.MaxRounds))
	}
	if b.MaxRounds == 0 && b.StaminaPerRound == 0 {
		errs = append(errs, "battle.max_rounds must be > 0 when battle.stamina_per_round is 0")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with SKIRMISH_ prefix
	v.SetEnvPrefix("SKIRMISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given.
//
// Postcondition: Default().Validate() == nil.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

// DefaultLogFile is where logs go unless configured otherwise.
const DefaultLogFile = "skirmish.log"

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", DefaultLogFile)

	v.SetDefault("content.classes_dir", "content/classes")
	v.SetDefault("content.weapons_dir", "content/weapons")
	v.SetDefault("content.armors_dir", "content/armors")
	v.SetDefault("content.skills_dir", "content/skills")
	v.SetDefault("content.scripts_dir", "content/scripts")

	v.SetDefault("battle.skill_trigger_percent", 10)
	v.SetDefault("battle.stamina_per_round", 1.0)
	v.SetDefault("battle.max_rounds", 100)
	v.SetDefault("battle.seed", 0)

	v.SetDefault("scripting.instruction_limit", 100000)
}
