package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient interface.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	var mockArgs []any
	mockArgs = append(mockArgs, ctx, repoPath)
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// CheckRepo implements the GitClient interface.
func (m *MockGitClient) CheckRepo(ctx context.Context, repoPath string) error {
	ret := m.Called(ctx, repoPath)
	return ret.Error(0)
}

// GetCommitLog implements the GitClient interface.
func (m *MockGitClient) GetCommitLog(ctx context.Context, repoPath string, filters LogFilters) ([]byte, error) {
	ret := m.Called(ctx, repoPath, filters)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// GetNameOnlyLog implements the GitClient interface.
func (m *MockGitClient) GetNameOnlyLog(ctx context.Context, repoPath string, filters LogFilters) ([]byte, error) {
	ret := m.Called(ctx, repoPath, filters)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// GetNumstatLog implements the GitClient interface.
func (m *MockGitClient) GetNumstatLog(ctx context.Context, repoPath string, filters LogFilters) ([]byte, error) {
	ret := m.Called(ctx, repoPath, filters)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}
