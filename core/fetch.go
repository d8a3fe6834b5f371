// Package core has the fetch and orchestration logic for gitbars.
package core

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huangsam/gitbars/core/agg"
	"github.com/huangsam/gitbars/internal/contract"
	"github.com/huangsam/gitbars/schema"
)

// alertf prints a colored alert message to stderr so that structured exports
// on stdout stay machine-parseable.
func alertf(scheme contract.ColorScheme, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(os.Stderr, "%s%s%s\n", scheme.Alert, msg, scheme.Reset)
}

// parseCommitLine parses a single "timestamp|hash|author|subject" log line.
// Only the first three delimiters split the line; the subject may itself
// contain the delimiter.
func parseCommitLine(line string) (schema.CommitRecord, error) {
	parts := strings.SplitN(line, "|", 4)
	if len(parts) != 4 {
		return schema.CommitRecord{}, fmt.Errorf("expected 4 fields, got %d", len(parts))
	}
	date, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[0]))
	if err != nil {
		return schema.CommitRecord{}, fmt.Errorf("bad timestamp %q: %w", parts[0], err)
	}
	return schema.CommitRecord{
		Hash:    parts[1],
		Date:    date,
		Author:  parts[2],
		Message: parts[3],
	}, nil
}

// FetchActivity invokes the git log and returns the grouped-count map along
// with the ordered commit records. Failures are reported to stderr and yield
// empty results rather than an error, so callers can treat "nothing to show"
// uniformly.
func FetchActivity(ctx context.Context, cfg *contract.Config, client contract.GitClient) (map[string]int, []schema.CommitRecord) {
	if err := client.CheckRepo(ctx, cfg.RepoPath); err != nil {
		alertf(cfg.Colors, "Error: Not a git repository")
		return map[string]int{}, nil
	}

	out, err := client.GetCommitLog(ctx, cfg.RepoPath, cfg.LogFilters())
	if err != nil {
		alertf(cfg.Colors, "Error executing git command")
		_, _ = fmt.Fprintf(os.Stderr, "Error details: %v\n", err)
		return map[string]int{}, nil
	}

	var records []schema.CommitRecord
	for line := range strings.SplitSeq(strings.TrimSpace(string(out)), "\n") {
		if line == "" {
			continue
		}
		record, err := parseCommitLine(line)
		if err != nil {
			alertf(cfg.Colors, "Warning: Skipping malformed commit entry")
			continue
		}
		records = append(records, record)
	}

	// Cap applies to the earliest-returned entries, before grouping.
	if cfg.MaxCommits > 0 && len(records) > cfg.MaxCommits {
		records = records[:cfg.MaxCommits]
	}

	grouped := make(map[string]int, len(records))
	layout := cfg.Period.KeyLayout()
	for _, record := range records {
		grouped[record.Date.Format(layout)]++
	}

	return grouped, records
}

// FetchFileChurn returns the most frequently touched file paths across the
// filtered log. Command failures are reported and yield an empty result.
func FetchFileChurn(ctx context.Context, cfg *contract.Config, client contract.GitClient) []schema.ChurnEntry {
	out, err := client.GetNameOnlyLog(ctx, cfg.RepoPath, cfg.LogFilters())
	if err != nil {
		contract.LogWarn("could not fetch file change log", err)
		return nil
	}
	return agg.CountFileChurn(out, cfg.Excludes, cfg.TopFiles)
}

// FetchVelocity returns per-period added/removed line totals from the
// numstat stream. Command failures are reported and yield an empty result.
func FetchVelocity(ctx context.Context, cfg *contract.Config, client contract.GitClient) map[string]schema.VelocityStat {
	out, err := client.GetNumstatLog(ctx, cfg.RepoPath, cfg.LogFilters())
	if err != nil {
		contract.LogWarn("could not fetch numstat log", err)
		return map[string]schema.VelocityStat{}
	}
	return agg.ParseVelocity(out, cfg.Period)
}
