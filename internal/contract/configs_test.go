package contract

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/gitbars/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input mirroring the viper defaults.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		RepoPathStr: ".",
		Period:      "day",
		Output:      "text",
		Top:         DefaultTopFiles,
		Symbols:     "yes",
		Color:       "yes",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, validInput())
	require.NoError(t, err)

	assert.Equal(t, schema.DayPeriod, cfg.Period)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, DefaultTopFiles, cfg.TopFiles)
	assert.True(t, cfg.UseSymbols)
	assert.Equal(t, DefaultColorScheme(), cfg.Colors)
	assert.True(t, filepath.IsAbs(cfg.RepoPath))
}

func TestProcessAndValidatePeriodCaseInsensitive(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Period = "MONTH"
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.MonthPeriod, cfg.Period)
}

func TestProcessAndValidateInvalidPeriod(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Period = "week"
	assert.Error(t, ProcessAndValidate(cfg, input))
}

func TestProcessAndValidateInvalidOutput(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Output = "xml"
	assert.Error(t, ProcessAndValidate(cfg, input))
}

func TestProcessAndValidateLimits(t *testing.T) {
	t.Run("negative max-commits", func(t *testing.T) {
		input := validInput()
		input.MaxCommits = -1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("max-commits over cap", func(t *testing.T) {
		input := validInput()
		input.MaxCommits = MaxCommitsCap + 1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("zero top", func(t *testing.T) {
		input := validInput()
		input.Top = 0
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("top over cap", func(t *testing.T) {
		input := validInput()
		input.Top = MaxTopFiles + 1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("negative width", func(t *testing.T) {
		input := validInput()
		input.Width = -5
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})
}

func TestProcessAndValidateExcludes(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Exclude = " *.lock , vendor/** ,,go.sum "
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"*.lock", "vendor/**", "go.sum"}, cfg.Excludes)
}

func TestProcessAndValidateColorsDisabled(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Color = "no"
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, DisabledColorScheme(), cfg.Colors)
}

func TestProcessAndValidateInvalidBools(t *testing.T) {
	input := validInput()
	input.Symbols = "maybe"
	assert.Error(t, ProcessAndValidate(&Config{}, input))

	input = validInput()
	input.Color = "maybe"
	assert.Error(t, ProcessAndValidate(&Config{}, input))
}

func TestLogFilters(t *testing.T) {
	cfg := &Config{Author: "alice", Since: "1 month ago", Until: "yesterday", PathFilter: "core"}
	assert.Equal(t, LogFilters{
		Author: "alice",
		Since:  "1 month ago",
		Until:  "yesterday",
		Path:   "core",
	}, cfg.LogFilters())
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{RepoPath: "/tmp/repo", Excludes: []string{"*.lock"}}
	clone := cfg.Clone()

	clone.RepoPath = "/elsewhere"
	clone.Excludes[0] = "changed"

	assert.Equal(t, "/tmp/repo", cfg.RepoPath)
	assert.Equal(t, "*.lock", cfg.Excludes[0])
}
