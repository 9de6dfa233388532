// Package runner executes external tools on behalf of the sync run.
//
// It is the single authority for dry-run process semantics: when the run
// is a dry run no process is ever spawned, yet every command is still
// announced to the operator in verbose mode.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/rs/zerolog"
)

// Output is what a captured command produced. A non-zero ExitCode is data,
// not an error.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int

	// Skipped is set when the command was not run because of dry run.
	Skipped bool
}

// Runner runs shell commands and captured subprocesses.
type Runner struct {
	logger  zerolog.Logger
	dryRun  bool
	verbose bool

	// announce receives verbose command descriptions.
	announce io.Writer
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

// New creates a runner for the given run. Verbose descriptions are written
// to announce.
func New(ctx types.ExecutionContext, announce io.Writer) *Runner {
	return &Runner{
		logger:   logging.GetLogger("runner"),
		dryRun:   ctx.DryRun,
		verbose:  ctx.Verbose,
		announce: announce,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithStdio replaces the streams inherited by Run.
func (r *Runner) WithStdio(stdin io.Reader, stdout, stderr io.Writer) *Runner {
	r.stdin, r.stdout, r.stderr = stdin, stdout, stderr
	return r
}

// DryRun reports whether commands are suppressed.
func (r *Runner) DryRun() bool {
	return r.dryRun
}

// Run executes command through sh -c with inherited stdio. A non-zero exit
// or a spawn failure is an ErrCommandFailed error carrying the command.
func (r *Runner) Run(ctx context.Context, command, description string) error {
	if r.verbose {
		label := description
		if label == "" {
			label = command
		}
		_, _ = fmt.Fprintf(r.announce, "🔧 %s\n", label)
	}

	if r.dryRun {
		r.logger.Info().Str("command", command).Msg("Dry run mode - command would be executed")
		return nil
	}

	logging.LogCommand(r.logger, "sh", []string{"-c", command})

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		r.logger.Error().Err(err).Str("command", command).Msg("Command execution failed")
		return errors.CommandFailed(command, err)
	}

	r.logger.Info().Str("command", command).Msg("Command executed successfully")
	return nil
}

// Capture runs name with args and returns its output. Only a failure to
// start the process is an error.
func (r *Runner) Capture(ctx context.Context, name string, args ...string) (Output, error) {
	if r.dryRun {
		r.logger.Debug().Str("command", name).Strs("args", args).Msg("Dry run mode - capture skipped")
		return Output{Skipped: true}, nil
	}

	logging.LogCommand(r.logger, name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			out.ExitCode = exitErr.ExitCode()
			r.logger.Debug().
				Str("command", name).
				Int("exitCode", out.ExitCode).
				Str("stderr", out.Stderr).
				Msg("Command exited non-zero")
			return out, nil
		}
		full := strings.TrimSpace(name + " " + strings.Join(args, " "))
		return out, errors.CommandFailed(full, err)
	}

	return out, nil
}

// LookPath reports whether name resolves on PATH. It never spawns.
func (r *Runner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// PrependPath puts dir in front of PATH for this process and every
// subprocess started afterwards. Directories already on PATH are ignored.
func (r *Runner) PrependPath(dir string) {
	current := os.Getenv("PATH")
	for _, entry := range strings.Split(current, string(os.PathListSeparator)) {
		if entry == dir {
			return
		}
	}
	r.logger.Debug().Str("dir", dir).Msg("Prepending to PATH")
	_ = os.Setenv("PATH", dir+string(os.PathListSeparator)+current)
}
