package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// CheckRepo implements the GitClient interface.
func (c *LocalGitClient) CheckRepo(ctx context.Context, repoPath string) error {
	_, err := c.Run(ctx, repoPath, "rev-parse", "--git-dir")
	return err
}

// appendFilters converts LogFilters into git log arguments. Since and Until
// are forwarded untouched so git's own date expression parsing applies.
func appendFilters(args []string, filters LogFilters) []string {
	if filters.Author != "" {
		args = append(args, "--author", filters.Author)
	}
	if filters.Since != "" {
		args = append(args, "--since", filters.Since)
	}
	if filters.Until != "" {
		args = append(args, "--until", filters.Until)
	}
	if filters.Path != "" {
		args = append(args, "--", filters.Path)
	}
	return args
}

// GetCommitLog implements the GitClient interface.
func (c *LocalGitClient) GetCommitLog(ctx context.Context, repoPath string, filters LogFilters) ([]byte, error) {
	args := []string{"log", "--format=%aI|%h|%an|%s"}
	args = appendFilters(args, filters)
	return c.Run(ctx, repoPath, args...)
}

// GetNameOnlyLog implements the GitClient interface.
func (c *LocalGitClient) GetNameOnlyLog(ctx context.Context, repoPath string, filters LogFilters) ([]byte, error) {
	args := []string{"log", "--name-only", "--format="}
	args = appendFilters(args, filters)
	return c.Run(ctx, repoPath, args...)
}

// GetNumstatLog implements the GitClient interface.
func (c *LocalGitClient) GetNumstatLog(ctx context.Context, repoPath string, filters LogFilters) ([]byte, error) {
	args := []string{"log", "--numstat", "--format=%aI"}
	args = appendFilters(args, filters)
	return c.Run(ctx, repoPath, args...)
}
