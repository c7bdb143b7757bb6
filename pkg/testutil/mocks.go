package testutil

import (
	"context"
	"sync"

	"github.com/muffin-cms/muffin/pkg/types"
)

// MockImporter records Import calls and optionally runs ImportFunc.
type MockImporter struct {
	ImportFunc func(ctx context.Context, files []string, env types.Overrides) error

	mu    sync.Mutex
	Calls []ImportCall
}

// ImportCall captures the arguments of one Import invocation.
type ImportCall struct {
	Files []string
	Env   types.Overrides
}

// Import records the call.
func (m *MockImporter) Import(ctx context.Context, files []string, env types.Overrides) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, ImportCall{Files: append([]string(nil), files...), Env: env})
	m.mu.Unlock()

	if m.ImportFunc != nil {
		return m.ImportFunc(ctx, files, env)
	}
	return nil
}

// MockInstaller returns a canned result and records the directories it was
// asked to install into.
type MockInstaller struct {
	Result types.InstallResult
	Err    error

	Dirs []string
}

// Install records dir and returns the canned result.
func (m *MockInstaller) Install(ctx context.Context, dir string) (types.InstallResult, error) {
	m.Dirs = append(m.Dirs, dir)
	return m.Result, m.Err
}
