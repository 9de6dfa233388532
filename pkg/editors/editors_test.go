// Test Type: Unit Test
// Description: Tests for reading extension lists and driving installs per editor

package editors

import (
	"context"
	"strings"
	"testing"

	"github.com/arthur-debert/dotsync/pkg/config"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/runner"
	"github.com/arthur-debert/dotsync/pkg/testutil"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner answers --list-extensions from installed and records installs.
type fakeRunner struct {
	onPath    map[string]bool
	installed map[string][]string
	calls     []string
}

func (f *fakeRunner) LookPath(name string) bool {
	return f.onPath[name]
}

func (f *fakeRunner) Capture(ctx context.Context, name string, args ...string) (runner.Output, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if len(args) > 0 && args[0] == "--list-extensions" {
		return runner.Output{Stdout: strings.Join(f.installed[name], "\n")}, nil
	}
	return runner.Output{}, nil
}

var testEditors = map[string]config.Editor{
	"cursor": {CLI: "cursor", Source: "configs/editors/cursor", ExtensionsFile: "extensions.txt"},
	"vscode": {CLI: "code", Source: "configs/editors/vscode", ExtensionsFile: "extensions.txt"},
}

func newEnv(t *testing.T) *testutil.TestEnvironment {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithSourceTree(testutil.FileTree{
		"configs": testutil.FileTree{
			"editors": testutil.FileTree{
				"vscode": testutil.FileTree{
					"extensions.txt": "# go\ngolang.go\n\n  esbenp.prettier-vscode  \n",
				},
			},
		},
	})
	return env
}

func TestReadExtensions(t *testing.T) {
	env := newEnv(t)
	s := New(env.FS, env.Context(types.Options{}), testEditors, nil, &fakeRunner{})

	ids, found, err := s.ReadExtensions("vscode")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"golang.go", "esbenp.prettier-vscode"}, ids)

	ids, found, err = s.ReadExtensions("cursor")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, ids)
}

func TestNames(t *testing.T) {
	s := New(nil, types.ExecutionContext{}, testEditors, nil, &fakeRunner{})

	names, err := s.Names(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"cursor", "vscode"}, names)

	names, err = s.Names([]string{"vscode"})
	require.NoError(t, err)
	assert.Equal(t, []string{"vscode"}, names)

	_, err = s.Names([]string{"emacs"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRun_InstallsMissingAndSkipsEditorsWithoutList(t *testing.T) {
	env := newEnv(t)
	r := &fakeRunner{
		onPath:    map[string]bool{"code": true, "cursor": true},
		installed: map[string][]string{"code": {"Golang.Go"}},
	}
	s := New(env.FS, env.Context(types.Options{}), testEditors, nil, r)

	var seen int
	outcomes, err := s.Run(context.Background(), nil, func(types.ExtensionOutcome) { seen++ })
	require.NoError(t, err)

	require.Len(t, outcomes, 2)
	assert.Equal(t, 2, seen)
	assert.Equal(t, types.OutcomeAlreadyInstalled, outcomes[0].Kind)
	assert.Equal(t, types.OutcomeInstalled, outcomes[1].Kind)
	assert.Contains(t, r.calls, "code --install-extension esbenp.prettier-vscode")
	assert.NotContains(t, r.calls, "code --install-extension golang.go")
	for _, c := range r.calls {
		assert.False(t, strings.HasPrefix(c, "cursor"), "cursor has no list, got %q", c)
	}
}

func TestRun_MissingCLIIsHardFailure(t *testing.T) {
	env := newEnv(t)
	r := &fakeRunner{onPath: map[string]bool{}}
	s := New(env.FS, env.Context(types.Options{}), testEditors, nil, r)

	outcomes, err := s.Run(context.Background(), []string{"vscode"}, nil)
	require.NoError(t, err)

	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.Equal(t, types.OutcomeHardFailure, o.Kind)
		assert.Equal(t, "code not found on PATH", o.Reason)
	}
	assert.Empty(t, r.calls)
}

func TestRun_DryRunPlansWithoutSpawning(t *testing.T) {
	env := newEnv(t)
	r := &fakeRunner{}
	s := New(env.FS, env.Context(types.Options{DryRun: true}), testEditors, nil, r)

	outcomes, err := s.Run(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.Equal(t, types.OutcomePlanned, o.Kind)
	}
	assert.Empty(t, r.calls)
}
