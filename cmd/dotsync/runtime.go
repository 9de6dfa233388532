package dotsync

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/arthur-debert/dotsync/pkg/config"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/arthur-debert/dotsync/pkg/runner"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/arthur-debert/dotsync/pkg/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// runtime is everything a command needs, built once from flags,
// configuration and the process environment.
type runtime struct {
	config  *config.Config
	context types.ExecutionContext
	fs      afero.Fs
	printer ui.Printer
	runner  *runner.Runner
}

func newRuntime(cmd *cobra.Command, flags *globalFlags) (*runtime, error) {
	configFile := flags.configFile
	if configFile == "" {
		configFile = filepath.Join(paths.ConfigDir(), paths.ConfigFileName)
	}

	overrides := map[string]interface{}{}
	if flags.format != "" {
		overrides["output.format"] = flags.format
	}
	cfg, err := config.Load(configFile, overrides)
	if err != nil {
		return nil, err
	}

	source := flags.source
	if source == "" {
		source = cfg.Sync.SourceRoot
	}
	p, err := paths.New(source)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, MsgErrInitPaths)
	}
	if p.UsedFallback() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning, p.SourceRoot())
	}

	ectx := types.NewExecutionContext(types.Options{
		DryRun:       flags.dryRun,
		Verbose:      flags.verbosity > 0,
		Force:        flags.force,
		BackupDir:    paths.ExpandHome(flags.backupDir),
		SourceRoot:   p.SourceRoot(),
		BackupPrefix: cfg.Sync.BackupPrefix,
	}, types.EnvironmentFromOS(), time.Now())

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrFormat, cfg.Output.Format)
	}
	out := cmd.OutOrStdout()
	printer, err := ui.NewPrinter(format, out)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot create printer")
	}

	// Verbose command lines must not end up inside a JSON document.
	var announce io.Writer = out
	if format == ui.FormatJSON {
		announce = cmd.ErrOrStderr()
	}

	return &runtime{
		config:  cfg,
		context: ectx,
		fs:      filesystem.NewOS(),
		printer: printer,
		runner:  runner.New(ectx, announce),
	}, nil
}
