package contract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huangsam/gitbars/schema"
)

// Default values for configuration.
const (
	DefaultTopFiles = 15
	MaxTopFiles     = 100
	MaxCommitsCap   = 100000
)

// Config holds the runtime configuration for one invocation.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath   string
	Period     schema.GroupPeriod
	Author     string
	Since      string
	Until      string
	PathFilter string
	MaxCommits int
	TopFiles   int
	Excludes   []string
	Output     schema.OutputMode
	OutputFile string
	Width      int // Display width override (0 = auto-detect)

	ShowInsights bool
	ShowChurn    bool
	ShowVelocity bool
	ShowHeatmap  bool

	UseSymbols bool // Enable decorative symbols in output headers
	Notify     bool // Send a desktop notification when the run completes

	Colors ColorScheme
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Period     string `mapstructure:"period"`
	Author     string `mapstructure:"author"`
	Since      string `mapstructure:"since"`
	Until      string `mapstructure:"until"`
	Filter     string `mapstructure:"filter"`
	MaxCommits int    `mapstructure:"max-commits"`
	Top        int    `mapstructure:"top"`
	Exclude    string `mapstructure:"exclude"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`

	Insights bool `mapstructure:"insights"`
	Churn    bool `mapstructure:"churn"`
	Velocity bool `mapstructure:"velocity"`
	Heatmap  bool `mapstructure:"heatmap"`

	Symbols string `mapstructure:"symbols"`
	Color   string `mapstructure:"color"`
	Notify  bool   `mapstructure:"notify"`

	// --- Color overrides from config file ---
	Colors ColorSchemeRawInput `mapstructure:"colors"`
}

// LogFilters derives git log filters from the validated config.
func (c *Config) LogFilters() LogFilters {
	return LogFilters{
		Author: c.Author,
		Since:  c.Since,
		Until:  c.Until,
		Path:   c.PathFilter,
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. Whether the path is actually a git
// repository is checked later by the fetcher, which reports it as a normal
// "nothing to show" outcome rather than a validation failure.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Period Validation ---
	cfg.Period = schema.GroupPeriod(strings.ToLower(input.Period))
	if _, ok := schema.ValidGroupPeriods[cfg.Period]; !ok {
		return fmt.Errorf("invalid period '%s'. must be day, month, year", input.Period)
	}

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, svg, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 3. Count Limits ---
	if input.MaxCommits < 0 || input.MaxCommits > MaxCommitsCap {
		return fmt.Errorf("max-commits must be between 0 and %d (received %d)", MaxCommitsCap, input.MaxCommits)
	}
	cfg.MaxCommits = input.MaxCommits

	if input.Top <= 0 || input.Top > MaxTopFiles {
		return fmt.Errorf("top must be greater than 0 and cannot exceed %d (received %d)", MaxTopFiles, input.Top)
	}
	cfg.TopFiles = input.Top

	// --- 4. Width ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 5. Simple passthrough fields ---
	cfg.Author = input.Author
	cfg.Since = input.Since
	cfg.Until = input.Until
	cfg.PathFilter = input.Filter
	cfg.ShowInsights = input.Insights
	cfg.ShowChurn = input.Churn
	cfg.ShowVelocity = input.Velocity
	cfg.ShowHeatmap = input.Heatmap
	cfg.Notify = input.Notify

	// --- 6. Symbol and color toggles ---
	symbols, err := ParseBoolString(input.Symbols)
	if err != nil {
		return fmt.Errorf("invalid --symbols value: %w", err)
	}
	cfg.UseSymbols = symbols

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.Colors = ResolveColorScheme(input.Colors, colors)

	// --- 7. Excludes Processing ---
	cfg.Excludes = nil
	if input.Exclude != "" {
		for p := range strings.SplitSeq(input.Exclude, ",") {
			trimmedP := strings.TrimSpace(p)
			if trimmedP != "" {
				cfg.Excludes = append(cfg.Excludes, trimmedP)
			}
		}
	}

	// --- 8. Repo Path Resolution ---
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = filepath.Clean(absSearchPath)

	return nil
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	return &clone
}
