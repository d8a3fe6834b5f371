// Package cmd defines the command-line interface for gitbars.
package cmd

import (
	"github.com/huangsam/gitbars/internal/contract"
	"github.com/huangsam/gitbars/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(churnCmd)
	rootCmd.AddCommand(velocityCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("period", "p", string(schema.DayPeriod), "Grouping period: day or month or year")
	rootCmd.PersistentFlags().StringP("author", "a", "", "Filter commits by author name or email pattern")
	rootCmd.PersistentFlags().String("since", "", "Only include commits after this date (ISO8601 or time ago)")
	rootCmd.PersistentFlags().String("until", "", "Only include commits before this date (ISO8601 or time ago)")
	rootCmd.PersistentFlags().StringP("filter", "f", "", "Restrict analysis to commits touching this path")
	rootCmd.PersistentFlags().IntP("max-commits", "m", 0, "Maximum number of commits to analyze (0 = unlimited)")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or json or csv or svg or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("top", contract.DefaultTopFiles, "Number of files to display in churn listings")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated list of glob patterns to ignore in churn listings")
	rootCmd.PersistentFlags().String("symbols", "yes", "Use Unicode glyphs in charts (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Bool("notify", false, "Send a desktop notification when the run completes")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of activityCmd to Viper
	activityCmd.Flags().Bool("insights", false, "Append the insights report to the activity chart")
	activityCmd.Flags().Bool("churn", false, "Append the file churn listing to the activity chart")
	activityCmd.Flags().Bool("velocity", false, "Append the line velocity chart to the activity chart")
	activityCmd.Flags().Bool("heatmap", false, "Append the calendar heatmap to the activity chart")
	if err := viper.BindPFlags(activityCmd.Flags()); err != nil {
		contract.LogFatal("Error binding activity flags", err)
	}
}
