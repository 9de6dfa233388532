package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isGitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func TestExpandHomeWith(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", ""},
		{"tilde only", "~", "/home/op"},
		{"tilde slash", "~/.vimrc", "/home/op/.vimrc"},
		{"nested", "~/Library/Fonts", "/home/op/Library/Fonts"},
		{"other user", "~root/.bashrc", "~root/.bashrc"},
		{"absolute", "/etc/hosts", "/etc/hosts"},
		{"relative", "configs/vim", "configs/vim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHomeWith(tt.path, "/home/op"))
		})
	}
}

func TestExpandHome_UsesHOME(t *testing.T) {
	t.Setenv(EnvHome, "/custom/home")
	assert.Equal(t, "/custom/home/.zshrc", ExpandHome("~/.zshrc"))
}

func TestNew_ExplicitRoot(t *testing.T) {
	t.Setenv(EnvHome, "/home/op")

	p, err := New("~/dotfiles")
	require.NoError(t, err)
	assert.Equal(t, "/home/op/dotfiles", p.SourceRoot())
	assert.False(t, p.UsedFallback())
}

func TestNew_DirectoriesFromEnvironment(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/config")
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	p, err := New("/src")
	require.NoError(t, err)
	assert.Equal(t, "/custom/config", p.ConfigDir())
	assert.Equal(t, "/custom/config/config.toml", p.ConfigFile())
	assert.Equal(t, "/custom/state/dotsync", p.StateDir())
}

func TestFindSourceRoot(t *testing.T) {
	originalCwd, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		_ = os.Chdir(originalCwd)
	}()

	tests := []struct {
		name           string
		setupEnv       map[string]string
		setupFunc      func(t *testing.T) string
		expectedPath   string
		expectFallback bool
		skipIfNoGit    bool
	}{
		{
			name:         "DOTFILES_ROOT env var takes precedence",
			setupEnv:     map[string]string{EnvDotfilesRoot: "/env/dotfiles"},
			expectedPath: "/env/dotfiles",
		},
		{
			name: "git repository root discovery",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				require.NoError(t, os.Chdir(tmpDir))
				require.NoError(t, exec.Command("git", "init", "-q").Run())

				subDir := filepath.Join(tmpDir, "sub", "dir")
				require.NoError(t, os.MkdirAll(subDir, 0755))
				require.NoError(t, os.Chdir(subDir))
				return tmpDir
			},
			skipIfNoGit: true,
		},
		{
			name: "fallback to current directory outside git",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				require.NoError(t, os.Chdir(tmpDir))
				return tmpDir
			},
			expectFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.skipIfNoGit && !isGitAvailable() {
				t.Skip("git not available")
			}

			t.Setenv(EnvDotfilesRoot, "")
			for k, v := range tt.setupEnv {
				t.Setenv(k, v)
			}

			expectedPath := tt.expectedPath
			if tt.setupFunc != nil {
				expectedPath = tt.setupFunc(t)
			}

			path, usedFallback, err := findSourceRoot()
			require.NoError(t, err)

			expected, _ := filepath.EvalSymlinks(expectedPath)
			actual, _ := filepath.EvalSymlinks(path)
			if expected == "" {
				expected, actual = expectedPath, path
			}
			assert.Equal(t, expected, actual)
			assert.Equal(t, tt.expectFallback, usedFallback)
		})
	}
}
