// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "context"

// LogFilters narrows a git log invocation. Since and Until are passed to git
// verbatim, so anything git understands ("2 weeks ago", "2024-01-01") works.
type LogFilters struct {
	Author string // Author substring filter
	Since  string // Lower bound date expression
	Until  string // Upper bound date expression
	Path   string // Restrict the log to a path scope
}

// GitClient defines the operations needed to read commit activity.
// This allows the aggregation logic to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// CheckRepo returns an error when repoPath is not inside a git working tree.
	CheckRepo(ctx context.Context, repoPath string) error

	// GetCommitLog returns one line per commit formatted as
	// timestamp|hash|author|subject.
	GetCommitLog(ctx context.Context, repoPath string, filters LogFilters) ([]byte, error)

	// GetNameOnlyLog returns the file-name-only diff listing across the
	// filtered log, used for churn counting.
	GetNameOnlyLog(ctx context.Context, repoPath string, filters LogFilters) ([]byte, error)

	// GetNumstatLog returns the numstat stream with ISO date markers
	// interleaved between per-file stat lines, used for velocity.
	GetNumstatLog(ctx context.Context, repoPath string, filters LogFilters) ([]byte, error)
}
