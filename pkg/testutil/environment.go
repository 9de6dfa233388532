// pkg/testutil/environment.go
// DEPENDENCIES: pkg/types
// PURPOSE: Orchestrate test environments with a home and a source tree

package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// FixedTime is the run start used by Context, so backup directories have a
// predictable name.
var FixedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

// TestEnvironment provides a home directory and a source repository.
type TestEnvironment struct {
	SourceRoot string
	HomeDir    string
	FS         afero.Fs
	Type       EnvType

	t *testing.T
}

// FileTree represents a directory structure for testing. Values are file
// contents (string) or nested trees.
type FileTree map[string]interface{}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.SourceRoot = "/virtual/dotfiles"
		env.HomeDir = "/virtual/home"
		env.FS = afero.NewMemMapFs()
	case EnvIsolated:
		tempDir := t.TempDir()
		env.SourceRoot = filepath.Join(tempDir, "dotfiles")
		env.HomeDir = filepath.Join(tempDir, "home")
		env.FS = afero.NewOsFs()
		t.Setenv("HOME", env.HomeDir)
		t.Setenv("XDG_STATE_HOME", filepath.Join(tempDir, "state"))
	}

	for _, dir := range []string{env.SourceRoot, env.HomeDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	return env
}

// WithSourceTree creates files under the source root.
func (env *TestEnvironment) WithSourceTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	createFileTree(env.t, env.FS, env.SourceRoot, tree)
	return env
}

// WithHomeTree creates files under the home directory.
func (env *TestEnvironment) WithHomeTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	createFileTree(env.t, env.FS, env.HomeDir, tree)
	return env
}

// Context builds an execution context rooted in this environment.
func (env *TestEnvironment) Context(opts types.Options) types.ExecutionContext {
	opts.SourceRoot = env.SourceRoot
	return types.NewExecutionContext(opts, types.Environment{
		Home:  env.HomeDir,
		User:  "tester",
		Shell: "/bin/bash",
	}, FixedTime)
}

// Home joins rel onto the home directory.
func (env *TestEnvironment) Home(rel ...string) string {
	return filepath.Join(append([]string{env.HomeDir}, rel...)...)
}

// Source joins rel onto the source root.
func (env *TestEnvironment) Source(rel ...string) string {
	return filepath.Join(append([]string{env.SourceRoot}, rel...)...)
}

// ReadFile returns the content of path, failing the test if it is missing.
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := afero.ReadFile(env.FS, path)
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists.
func (env *TestEnvironment) Exists(path string) bool {
	_, err := env.FS.Stat(path)
	return err == nil
}

// Perm returns the permission bits of path.
func (env *TestEnvironment) Perm(path string) os.FileMode {
	env.t.Helper()
	info, err := env.FS.Stat(path)
	if err != nil {
		env.t.Fatalf("Failed to stat %s: %v", path, err)
	}
	return info.Mode().Perm()
}

// createFileTree recursively creates a file tree
func createFileTree(t *testing.T, fs afero.Fs, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
			}
			if err := afero.WriteFile(fs, fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// SampleSource is a small but complete source repository.
func SampleSource() FileTree {
	return FileTree{
		"configs": FileTree{
			"shell": FileTree{
				"bash_profile":     "export EDITOR=vim\n",
				"zshrc":            "plugins=(git)\n",
				"personal_profile": "export PERSONAL=1\n",
				"work_profile":     "export WORK=1\n",
			},
			"vim": FileTree{
				"vimrc": "set number\n",
			},
			"git": FileTree{
				".gitconfig":        "[user]\n\tname = Op\n",
				".gitignore_global": ".DS_Store\n",
			},
			"ssh": FileTree{
				"config": "Host *\n  AddKeysToAgent yes\n",
			},
			"fonts": FileTree{
				"Hack-Regular.ttf": "font-bytes",
				"readme.txt":       "not a font",
			},
		},
	}
}
