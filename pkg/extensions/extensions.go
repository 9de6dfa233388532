// Package extensions installs editor extensions through the editor's CLI
// and classifies each attempt.
//
// An install never fails the run. Editor CLIs are known to crash or race
// on their own; stderr text matching a configured benign substring turns a
// failure into a soft failure, everything else is a hard failure for the
// operator to follow up on.
package extensions

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/runner"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/rs/zerolog"
)

// CommandRunner captures the output of a subprocess.
type CommandRunner interface {
	Capture(ctx context.Context, name string, args ...string) (runner.Output, error)
}

// Installer installs extensions for one editor.
type Installer struct {
	editor string
	cli    string
	runner CommandRunner
	benign []string
	dryRun bool
	logger zerolog.Logger
}

// NewInstaller creates an installer driving cli (e.g. "code") for editor.
func NewInstaller(editor, cli string, r CommandRunner, benign []string, dryRun bool) *Installer {
	return &Installer{
		editor: editor,
		cli:    cli,
		runner: r,
		benign: benign,
		dryRun: dryRun,
		logger: logging.GetLogger("extensions").With().Str("editor", editor).Logger(),
	}
}

// InstallAll installs every extension in order and returns one outcome each.
func (i *Installer) InstallAll(ctx context.Context, names []string) []types.ExtensionOutcome {
	outcomes := make([]types.ExtensionOutcome, 0, len(names))
	for _, name := range names {
		outcomes = append(outcomes, i.Install(ctx, name))
	}
	return outcomes
}

// Install makes sure name is installed. It never returns an error; every
// failure is folded into the outcome.
func (i *Installer) Install(ctx context.Context, name string) types.ExtensionOutcome {
	outcome := types.ExtensionOutcome{Editor: i.editor, Extension: name}

	if i.dryRun {
		outcome.Kind = types.OutcomePlanned
		return outcome
	}

	if i.isInstalled(ctx, name) {
		i.logger.Debug().Str("extension", name).Msg("Already installed")
		outcome.Kind = types.OutcomeAlreadyInstalled
		return outcome
	}

	out, err := i.runner.Capture(ctx, i.cli, "--install-extension", name)
	if err != nil {
		outcome.Kind = types.OutcomeHardFailure
		outcome.Reason = err.Error()
		i.logger.Error().Err(err).Str("extension", name).Msg("Cannot run extension installer")
		return outcome
	}
	if out.Skipped {
		outcome.Kind = types.OutcomePlanned
		return outcome
	}

	outcome.Kind, outcome.Reason = Classify(out, i.benign)
	i.logger.Info().
		Str("extension", name).
		Str("outcome", string(outcome.Kind)).
		Str("reason", outcome.Reason).
		Msg("Extension install finished")
	return outcome
}

// isInstalled asks the CLI for its extension list. A failing listing is
// logged and treated as "not installed" so the install is still attempted.
func (i *Installer) isInstalled(ctx context.Context, name string) bool {
	out, err := i.runner.Capture(ctx, i.cli, "--list-extensions")
	if err != nil {
		i.logger.Warn().Err(err).Msg("Cannot list installed extensions")
		return false
	}
	if out.ExitCode != 0 {
		i.logger.Warn().Int("exitCode", out.ExitCode).Str("stderr", out.Stderr).Msg("Listing extensions failed")
		return false
	}
	return ListContains(out.Stdout, name)
}

// ListContains reports whether a --list-extensions output has a line equal
// to name, ignoring case and surrounding space.
func ListContains(listing, name string) bool {
	if name == "" {
		return false
	}
	for _, line := range strings.Split(listing, "\n") {
		if strings.EqualFold(strings.TrimSpace(line), name) {
			return true
		}
	}
	return false
}

// Classify maps a finished install to an outcome kind and reason.
func Classify(out runner.Output, benign []string) (types.OutcomeKind, string) {
	if out.ExitCode == 0 {
		return types.OutcomeInstalled, ""
	}

	stderr := strings.ToLower(out.Stderr)
	for _, s := range benign {
		if s != "" && strings.Contains(stderr, strings.ToLower(s)) {
			return types.OutcomeSoftFailure, s
		}
	}

	return types.OutcomeHardFailure, failureReason(out)
}

// failureReason picks the last non-empty stderr line, which is where
// editor CLIs put the actual error.
func failureReason(out runner.Output) string {
	lines := strings.Split(strings.TrimSpace(out.Stderr), "\n")
	for j := len(lines) - 1; j >= 0; j-- {
		if line := strings.TrimSpace(lines[j]); line != "" {
			return line
		}
	}
	return fmt.Sprintf("exit status %d", out.ExitCode)
}
