package config

import (
	"os"
	"path/filepath"
	"testing"

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
			Dir: "content",
		},
		Scripting: ScriptingConfig{
			Dir:              "content/scripts",
			InstructionLimit: 0,
		},
		Battle: BattleConfig{
			DefendBonus:    2,
			WeatherPenalty: 2,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.Battle.DefendBonus)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
content:
  dir: /srv/emberfall/content
scripting:
  dir: /srv/emberfall/scripts
  instruction_limit: 50000
battle:
  defend_bonus: 3
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/srv/emberfall/content", cfg.Content.Dir)
	assert.Equal(t, 50000, cfg.Scripting.InstructionLimit)
	assert.Equal(t, 3, cfg.Battle.DefendBonus)
	assert.Equal(t, 2, cfg.Battle.WeatherPenalty, "unset keys keep defaults")
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
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

func TestValidateInstructionLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Scripting.InstructionLimit = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateBattle(t *testing.T) {
	cfg := validConfig()
	cfg.Battle.DefendBonus = -1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Battle.WeatherPenalty = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateAggregatesViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.Battle.DefendBonus = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "battle.defend_bonus")
}

// Property-based tests

func TestPropertyBattleBonusRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		defend := rapid.IntRange(0, 100).Draw(t, "defend")
		weather := rapid.IntRange(0, 100).Draw(t, "weather")
		cfg := validConfig()
		cfg.Battle.DefendBonus = defend
		cfg.Battle.WeatherPenalty = weather
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid battle config defend=%d weather=%d rejected: %v", defend, weather, err)
		}
	})
}

func TestPropertyNegativeInstructionLimitRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		limit := rapid.IntRange(-100000, -1).Draw(t, "limit")
		cfg := validConfig()
		cfg.Scripting.InstructionLimit = limit
		if err := cfg.Validate(); err == nil {
			t.Fatalf("negative instruction limit %d accepted", limit)
		}
	})
}
