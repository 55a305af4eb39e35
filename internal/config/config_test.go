package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Content: ContentConfig{
			ClassesDir: "content/classes",
			WeaponsDir: "content/weapons",
			ArmorsDir:  "content/armors",
			SkillsDir:  "content/skills",
			ScriptsDir: "content/scripts",
		},
		Battle: BattleConfig{
			SkillTriggerPercent: 10,
			StaminaPerRound:     1,
			MaxRounds:           100,
		},
		Scripting: ScriptingConfig{InstructionLimit: 100000},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Battle.SkillTriggerPercent)
	assert.Equal(t, 1.0, cfg.Battle.StaminaPerRound)
	assert.Equal(t, 100, cfg.Battle.MaxRounds)
	assert.Equal(t, uint64(0), cfg.Battle.Seed)
	assert.Equal(t, "content/classes", cfg.Content.ClassesDir)
	assert.Equal(t, DefaultLogFile, cfg.Logging.File, "logs stay off the terminal")
}

func TestLoadLogFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  file: stderr\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "stderr", cfg.Logging.File)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
content:
  classes_dir: /data/classes
battle:
  skill_trigger_percent: 25
  stamina_per_round: 1.5
  seed: 42
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/data/classes", cfg.Content.ClassesDir)
	assert.Equal(t, "content/weapons", cfg.Content.WeaponsDir, "unset keys keep defaults")
	assert.Equal(t, 25, cfg.Battle.SkillTriggerPercent)
	assert.Equal(t, 1.5, cfg.Battle.StaminaPerRound)
	assert.Equal(t, uint64(42), cfg.Battle.Seed)
	assert.Equal(t, 100000, cfg.Scripting.InstructionLimit)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("battle:\n  max_rounds: 10\n"), 0644))
	t.Setenv("SKIRMISH_BATTLE_MAX_ROUNDS", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Battle.MaxRounds)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromViperRejectsInvalid(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("logging.level", "trace")
	_, err := LoadFromViper(v)
	assert.ErrorContains(t, err, "logging.level")
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateContentDirs(t *testing.T) {
	cfg := validConfig()
	cfg.Content.SkillsDir = ""
	cfg.Content.ScriptsDir = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content.skills_dir")
	assert.Contains(t, err.Error(), "content.scripts_dir")
}

func TestValidateAccumulatesAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	cfg.Battle.MaxRounds = -1
	cfg.Scripting.InstructionLimit = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "battle.max_rounds")
	assert.Contains(t, err.Error(), "scripting.instruction_limit")
}

func TestValidateStaminaPerRound(t *testing.T) {
	cfg := validConfig()
	cfg.Battle.StaminaPerRound = -0.5
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnboundedBattle(t *testing.T) {
	cfg := validConfig()
	cfg.Battle.StaminaPerRound = 0
	cfg.Battle.MaxRounds = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "battle.max_rounds must be > 0")

	cfg.Battle.MaxRounds = 50
	assert.NoError(t, cfg.Validate(), "a round cap bounds a battle without regeneration")
	cfg.Battle.MaxRounds = 0
	cfg.Battle.StaminaPerRound = 1
	assert.NoError(t, cfg.Validate(), "regeneration alone is enough")
}

func TestContentRebase(t *testing.T) {
	c := validConfig().Content
	c.ArmorsDir = "/abs/armors"
	got := c.Rebase("/srv/skirmish")
	assert.Equal(t, filepath.Join("/srv/skirmish", "content/classes"), got.ClassesDir)
	assert.Equal(t, "/abs/armors", got.ArmorsDir)
}

// Property-based tests

func TestPropertyValidTriggerPercent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pct := rapid.IntRange(0, 100).Draw(t, "pct")
		cfg := validConfig()
		cfg.Battle.SkillTriggerPercent = pct
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid percent %d rejected: %v", pct, err)
		}
	})
}

func TestPropertyInvalidTriggerPercent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pct := rapid.OneOf(
			rapid.IntRange(-1000, -1),
			rapid.IntRange(101, 100000),
		).Draw(t, "pct")
		cfg := validConfig()
		cfg.Battle.SkillTriggerPercent = pct
		if cfg.Validate() == nil {
			t.Fatalf("invalid percent %d accepted", pct)
		}
	})
}
