package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(dryRun, verbose bool) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var announce, stdout bytes.Buffer
	r := New(types.ExecutionContext{DryRun: dryRun, Verbose: verbose}, &announce)
	r.WithStdio(bytes.NewReader(nil), &stdout, &stdout)
	return r, &announce, &stdout
}

func TestRun_DryRunNeverSpawns(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "touched")
	r, announce, _ := newRunner(true, true)

	err := r.Run(context.Background(), "touch "+marker+" && exit 1", "Touching marker")
	require.NoError(t, err)

	_, statErr := os.Stat(marker)
	assert.True(t, os.IsNotExist(statErr), "dry run must not execute the command")
	assert.Equal(t, "🔧 Touching marker\n", announce.String())
}

func TestRun_VerboseAnnouncement(t *testing.T) {
	tests := []struct {
		name        string
		verbose     bool
		description string
		want        string
	}{
		{"description preferred", true, "Installing git", "🔧 Installing git\n"},
		{"raw command fallback", true, "", "🔧 true\n"},
		{"quiet when not verbose", false, "Installing git", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, announce, _ := newRunner(false, tt.verbose)
			require.NoError(t, r.Run(context.Background(), "true", tt.description))
			assert.Equal(t, tt.want, announce.String())
		})
	}
}

func TestRun_Executes(t *testing.T) {
	r, _, stdout := newRunner(false, false)

	require.NoError(t, r.Run(context.Background(), "echo hello", ""))
	assert.Equal(t, "hello\n", stdout.String())
}

func TestRun_FailureCarriesCommand(t *testing.T) {
	r, _, _ := newRunner(false, false)

	err := r.Run(context.Background(), "exit 3", "failing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
	assert.Equal(t, "exit 3", errors.GetErrorDetails(err)["command"])
	assert.Contains(t, err.Error(), "command failed: exit 3")
	assert.Equal(t, 3, errors.GetErrorDetails(err)["exitCode"])
}

func TestCapture(t *testing.T) {
	r, _, _ := newRunner(false, false)

	out, err := r.Capture(context.Background(), "sh", "-c", "echo out; echo err >&2; exit 2")
	require.NoError(t, err, "non-zero exit is data")
	assert.Equal(t, "out\n", out.Stdout)
	assert.Equal(t, "err\n", out.Stderr)
	assert.Equal(t, 2, out.ExitCode)
	assert.False(t, out.Skipped)
}

func TestCapture_SpawnFailure(t *testing.T) {
	r, _, _ := newRunner(false, false)

	_, err := r.Capture(context.Background(), "dotsync-no-such-binary", "--version")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
}

func TestCapture_DryRun(t *testing.T) {
	r, _, _ := newRunner(true, false)

	out, err := r.Capture(context.Background(), "dotsync-no-such-binary")
	require.NoError(t, err)
	assert.True(t, out.Skipped)
}

func TestLookPath(t *testing.T) {
	r, _, _ := newRunner(true, false)

	assert.True(t, r.LookPath("sh"))
	assert.False(t, r.LookPath("dotsync-no-such-binary"))
}

func TestPrependPath(t *testing.T) {
	t.Setenv("PATH", "/usr/bin:/bin")
	r, _, _ := newRunner(false, false)

	r.PrependPath("/opt/homebrew/bin")
	assert.Equal(t, "/opt/homebrew/bin:/usr/bin:/bin", os.Getenv("PATH"))

	r.PrependPath("/usr/bin")
	assert.Equal(t, "/opt/homebrew/bin:/usr/bin:/bin", os.Getenv("PATH"), "existing entries are not duplicated")
}
