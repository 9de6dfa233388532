package extensions

import (
	"context"
	"testing"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/runner"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Capture(ctx context.Context, name string, args ...string) (runner.Output, error) {
	callArgs := []interface{}{name}
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	ret := m.Called(callArgs...)
	return ret.Get(0).(runner.Output), ret.Error(1)
}

var benign = []string{"is already installed", "SIGSEGV"}

func TestInstall_AlreadyInstalledSkipsInstall(t *testing.T) {
	r := &mockRunner{}
	r.On("Capture", "code", "--list-extensions").Return(runner.Output{Stdout: "esbenp.prettier-vscode\nGolang.Go\n"}, nil)

	outcome := NewInstaller("vscode", "code", r, benign, false).Install(context.Background(), "golang.go")

	assert.Equal(t, types.OutcomeAlreadyInstalled, outcome.Kind)
	assert.Equal(t, "vscode", outcome.Editor)
	r.AssertExpectations(t)
	r.AssertNotCalled(t, "Capture", "code", "--install-extension", "golang.go")
	r.AssertNumberOfCalls(t, "Capture", 1)
}

func TestInstall_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		install    runner.Output
		installErr error
		wantKind   types.OutcomeKind
		wantReason string
	}{
		{
			name:     "exit zero is installed",
			install:  runner.Output{Stdout: "Extension 'golang.go' was successfully installed."},
			wantKind: types.OutcomeInstalled,
		},
		{
			name:       "benign stderr is a soft failure",
			install:    runner.Output{ExitCode: 1, Stderr: "Extension 'golang.go' v0.41.0 is already installed."},
			wantKind:   types.OutcomeSoftFailure,
			wantReason: "is already installed",
		},
		{
			name:       "benign match ignores case",
			install:    runner.Output{ExitCode: 139, Stderr: "Received signal sigsegv in renderer"},
			wantKind:   types.OutcomeSoftFailure,
			wantReason: "SIGSEGV",
		},
		{
			name:       "other failures are hard",
			install:    runner.Output{ExitCode: 1, Stderr: "Installing extensions...\nExtension 'nope.nope' not found.\n"},
			wantKind:   types.OutcomeHardFailure,
			wantReason: "Extension 'nope.nope' not found.",
		},
		{
			name:       "silent failure reports exit status",
			install:    runner.Output{ExitCode: 2},
			wantKind:   types.OutcomeHardFailure,
			wantReason: "exit status 2",
		},
		{
			name:       "spawn error is hard",
			installErr: errors.New(errors.ErrCommandFailed, "cannot run code"),
			wantKind:   types.OutcomeHardFailure,
			wantReason: "[COMMAND_FAILED] cannot run code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &mockRunner{}
			r.On("Capture", "code", "--list-extensions").Return(runner.Output{Stdout: "other.ext\n"}, nil)
			r.On("Capture", "code", "--install-extension", "golang.go").Return(tt.install, tt.installErr)

			outcome := NewInstaller("vscode", "code", r, benign, false).Install(context.Background(), "golang.go")

			assert.Equal(t, tt.wantKind, outcome.Kind)
			assert.Equal(t, tt.wantReason, outcome.Reason)
			assert.Equal(t, tt.wantKind == types.OutcomeSoftFailure || tt.wantKind == types.OutcomeHardFailure, outcome.Failed())
			r.AssertExpectations(t)
		})
	}
}

func TestInstall_ListingFailureStillInstalls(t *testing.T) {
	tests := []struct {
		name    string
		listing runner.Output
		listErr error
	}{
		{"listing exits non-zero", runner.Output{ExitCode: 1, Stderr: "boom"}, nil},
		{"listing cannot start", runner.Output{}, errors.New(errors.ErrCommandFailed, "cannot run cursor")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &mockRunner{}
			r.On("Capture", "cursor", "--list-extensions").Return(tt.listing, tt.listErr)
			r.On("Capture", "cursor", "--install-extension", "golang.go").Return(runner.Output{}, nil)

			outcome := NewInstaller("cursor", "cursor", r, benign, false).Install(context.Background(), "golang.go")

			assert.Equal(t, types.OutcomeInstalled, outcome.Kind)
			r.AssertExpectations(t)
		})
	}
}

func TestInstall_DryRunSpawnsNothing(t *testing.T) {
	r := &mockRunner{}

	outcomes := NewInstaller("vscode", "code", r, benign, true).
		InstallAll(context.Background(), []string{"golang.go", "ms-python.python"})

	assert.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.Equal(t, types.OutcomePlanned, o.Kind)
	}
	r.AssertNotCalled(t, "Capture")
	r.AssertNumberOfCalls(t, "Capture", 0)
}

func TestInstallAll_ContinuesPastFailures(t *testing.T) {
	r := &mockRunner{}
	r.On("Capture", "code", "--list-extensions").Return(runner.Output{}, nil)
	r.On("Capture", "code", "--install-extension", "bad.ext").Return(runner.Output{ExitCode: 1, Stderr: "not found"}, nil)
	r.On("Capture", "code", "--install-extension", "good.ext").Return(runner.Output{}, nil)

	outcomes := NewInstaller("vscode", "code", r, benign, false).
		InstallAll(context.Background(), []string{"bad.ext", "good.ext"})

	assert.Equal(t, types.OutcomeHardFailure, outcomes[0].Kind)
	assert.Equal(t, types.OutcomeInstalled, outcomes[1].Kind)
}

func TestListContains(t *testing.T) {
	listing := "  dbaeumer.vscode-eslint \nGolang.Go\n\n"

	assert.True(t, ListContains(listing, "golang.go"))
	assert.True(t, ListContains(listing, "dbaeumer.vscode-eslint"))
	assert.False(t, ListContains(listing, "golang"))
	assert.False(t, ListContains(listing, ""))
}

func TestClassify_EmptyBenignEntryIgnored(t *testing.T) {
	kind, _ := Classify(runner.Output{ExitCode: 1, Stderr: "anything"}, []string{""})
	assert.Equal(t, types.OutcomeHardFailure, kind)
}
