package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/huangsam/gitbars/core/agg"
	"github.com/huangsam/gitbars/internal/contract"
	"github.com/huangsam/gitbars/internal/notify"
	"github.com/huangsam/gitbars/internal/outwriter"
	"github.com/huangsam/gitbars/internal/parquet"
	"github.com/huangsam/gitbars/schema"
)

// DefaultParquetFile is used when --output parquet is requested without an
// explicit --output-file.
const DefaultParquetFile = "commit_data.parquet"

// ExecutorFunc defines the function signature for executing different
// analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// DailyCounts regroups commit records into per-day counts regardless of the
// configured period. Heatmaps and distribution charts always work on days.
func DailyCounts(records []schema.CommitRecord) map[string]int {
	counts := make(map[string]int, len(records))
	for _, record := range records {
		counts[record.Date.Format(schema.DayKeyLayout)]++
	}
	return counts
}

// finishRun sends the completion notification when requested.
func finishRun(cfg *contract.Config, commits int) {
	if cfg.Notify {
		notify.Send("gitbars", fmt.Sprintf("Analyzed %d commits in %s", commits, filepath.Base(cfg.RepoPath)))
	}
}

// ExecuteActivity runs the grouped-count analysis and renders it in the
// configured output mode. It serves as the main entry point for the
// 'activity' mode.
func ExecuteActivity(ctx context.Context, cfg *contract.Config) error {
	client := contract.NewLocalGitClient()
	return runActivity(ctx, cfg, client)
}

func runActivity(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	grouped, records := FetchActivity(ctx, cfg, client)
	if len(records) == 0 {
		alertf(cfg.Colors, "No commits found matching the specified criteria")
		return nil
	}

	switch cfg.Output {
	case schema.JSONOut:
		err := outwriter.WriteWithFile(cfg.OutputFile, func(w io.Writer) error {
			return outwriter.WriteActivityJSON(w, grouped, records)
		}, "JSON data written")
		if err != nil {
			return err
		}
	case schema.CSVOut:
		err := outwriter.WriteWithFile(cfg.OutputFile, func(w io.Writer) error {
			return outwriter.WriteActivityCSV(w, records)
		}, "CSV data written")
		if err != nil {
			return err
		}
	case schema.SVGOut:
		path, err := outwriter.WriteSVGFile(grouped)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "SVG chart written to %s\n", path)
	case schema.ParquetOut:
		target := cfg.OutputFile
		if target == "" {
			target = DefaultParquetFile
		}
		if err := parquet.WriteCommitsParquet(records, target); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Parquet data written to %s\n", target)
	default:
		ow := outwriter.New(os.Stdout, cfg)
		ow.WriteBars(grouped)
		if cfg.ShowInsights {
			details := agg.SummarizeCommits(records)
			streaks := agg.CalculateStreaks(records, time.Now())
			ow.WriteInsights(details, streaks, DailyCounts(records))
		}
		if cfg.ShowHeatmap {
			ow.WriteHeatmap(DailyCounts(records), time.Now())
		}
		if cfg.ShowChurn {
			ow.WriteChurn(FetchFileChurn(ctx, cfg, client))
		}
		if cfg.ShowVelocity {
			ow.WriteVelocity(FetchVelocity(ctx, cfg, client))
		}
	}

	finishRun(cfg, len(records))
	return nil
}

// ExecuteInsights runs the full repository insights report. It serves as the
// main entry point for the 'insights' mode.
func ExecuteInsights(ctx context.Context, cfg *contract.Config) error {
	client := contract.NewLocalGitClient()
	_, records := FetchActivity(ctx, cfg, client)
	if len(records) == 0 {
		alertf(cfg.Colors, "No commits found matching the specified criteria")
		return nil
	}

	ow := outwriter.New(os.Stdout, cfg)
	details := agg.SummarizeCommits(records)
	streaks := agg.CalculateStreaks(records, time.Now())
	ow.WriteInsights(details, streaks, DailyCounts(records))

	finishRun(cfg, len(records))
	return nil
}

// ExecuteChurn lists the most frequently changed files. It serves as the
// main entry point for the 'churn' mode.
func ExecuteChurn(ctx context.Context, cfg *contract.Config) error {
	client := contract.NewLocalGitClient()
	if err := client.CheckRepo(ctx, cfg.RepoPath); err != nil {
		alertf(cfg.Colors, "Error: Not a git repository")
		return nil
	}

	entries := FetchFileChurn(ctx, cfg, client)
	ow := outwriter.New(os.Stdout, cfg)
	ow.WriteChurn(entries)

	finishRun(cfg, 0)
	return nil
}

// ExecuteVelocity reports lines added and removed per period. It serves as
// the main entry point for the 'velocity' mode.
func ExecuteVelocity(ctx context.Context, cfg *contract.Config) error {
	client := contract.NewLocalGitClient()
	if err := client.CheckRepo(ctx, cfg.RepoPath); err != nil {
		alertf(cfg.Colors, "Error: Not a git repository")
		return nil
	}

	velocity := FetchVelocity(ctx, cfg, client)
	ow := outwriter.New(os.Stdout, cfg)
	ow.WriteVelocity(velocity)

	finishRun(cfg, 0)
	return nil
}

// ExecuteHeatmap renders the calendar heatmap of the most recent year. It
// serves as the main entry point for the 'heatmap' mode.
func ExecuteHeatmap(ctx context.Context, cfg *contract.Config) error {
	client := contract.NewLocalGitClient()
	_, records := FetchActivity(ctx, cfg, client)
	if len(records) == 0 {
		alertf(cfg.Colors, "No commits found matching the specified criteria")
		return nil
	}

	ow := outwriter.New(os.Stdout, cfg)
	ow.WriteHeatmap(DailyCounts(records), time.Now())

	finishRun(cfg, len(records))
	return nil
}
