// Package engine applies sync directives to the home directory.
//
// For each directive, in order:
//
//  1. a missing source is skipped, not an error
//  2. a preserve-existing directive whose target exists is left alone
//     unless the run is forced
//  3. structured sources are checked; findings become warnings
//  4. a dry run stops here and reports the directive as planned
//  5. an existing target is backed up
//  6. the parent directory is created (0700 for ssh-config)
//  7. the source is copied over the target
//  8. the directive's permission mask (0600 for ssh-config) is applied
//
// Steps 5 to 8 fail fast; the first error stops the run.
package engine

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotsync/pkg/backup"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/arthur-debert/dotsync/pkg/validate"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Engine applies directives for one run.
type Engine struct {
	fs        afero.Fs
	ctx       types.ExecutionContext
	backups   *backup.Manager
	validator *validate.Validator
	observer  func(types.SyncResult)
	logger    zerolog.Logger
}

// New creates an engine. Backups go through the given manager so that the
// whole run shares one backup directory.
func New(fsys afero.Fs, ctx types.ExecutionContext, backups *backup.Manager) *Engine {
	return &Engine{
		fs:        fsys,
		ctx:       ctx,
		backups:   backups,
		validator: validate.New(fsys),
		logger:    logging.GetLogger("engine"),
	}
}

// WithObserver registers fn to receive every result as soon as it is known.
func (e *Engine) WithObserver(fn func(types.SyncResult)) *Engine {
	e.observer = fn
	return e
}

// ApplyAll applies directives in order and stops at the first error. The
// results gathered so far are returned alongside it.
func (e *Engine) ApplyAll(directives []types.SyncDirective) ([]types.SyncResult, error) {
	done := logging.LogOperationStart(e.logger, "apply directives")
	defer done()

	results := make([]types.SyncResult, 0, len(directives))
	for _, d := range directives {
		res, err := e.Apply(d)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Apply runs the directive contract for a single directive.
func (e *Engine) Apply(d types.SyncDirective) (types.SyncResult, error) {
	src := e.ctx.SourcePath(d.Source)

	exists, err := filesystem.Exists(e.fs, src)
	if err != nil {
		return types.SyncResult{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat source %s", src).
			WithDetail("path", src)
	}
	if !exists {
		e.logger.Debug().Str("source", d.Source).Msg("Source missing, skipping")
		return e.emit(types.SyncResult{Directive: d, Action: types.ActionSkippedMissingSource}), nil
	}

	copyFn := func() error {
		return filesystem.CopyFile(e.fs, src, d.Target)
	}
	return e.install(d, e.validator.Check(src), copyFn)
}

// ApplyContent installs generated content at the directive's target with
// the same backup and permission handling as Apply. The directive's Source
// is only used for reporting.
func (e *Engine) ApplyContent(d types.SyncDirective, content []byte) (types.SyncResult, error) {
	writeFn := func() error {
		return afero.WriteFile(e.fs, d.Target, content, 0644)
	}
	return e.install(d, nil, writeFn)
}

func (e *Engine) install(d types.SyncDirective, warnings []string, write func() error) (types.SyncResult, error) {
	logger := e.logger.With().Str("target", d.Target).Str("category", string(d.Category)).Logger()
	res := types.SyncResult{Directive: d, Warnings: warnings}

	targetExists, err := filesystem.Exists(e.fs, d.Target)
	if err != nil {
		return res, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat target %s", d.Target).
			WithDetail("path", d.Target)
	}

	if d.PreserveExisting && targetExists && !e.ctx.Force {
		logger.Info().Msg("Target exists, preserving")
		res.Action = types.ActionPreserved
		return e.emit(res), nil
	}

	for _, w := range warnings {
		logger.Warn().Str("source", d.Source).Msg(w)
	}

	if e.ctx.DryRun {
		logger.Info().Msg("Dry run mode - directive would be applied")
		res.Action = types.ActionPlanned
		return e.emit(res), nil
	}

	if targetExists {
		res.BackupPath, err = e.backups.Backup(d.Target)
		if err != nil {
			return res, err
		}
	}

	if err := e.ensureParent(d); err != nil {
		return res, err
	}

	if err := write(); err != nil {
		return res, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", d.Target).
			WithDetail("path", d.Target).
			WithDetail("source", d.Source)
	}

	if mode, ok := d.EffectiveMode(); ok {
		if err := e.fs.Chmod(d.Target, mode); err != nil {
			return res, errors.Wrapf(err, errors.ErrPermission, "cannot set mode %04o on %s", mode, d.Target).
				WithDetail("path", d.Target)
		}
	}

	logger.Info().Str("backup", res.BackupPath).Msg("Installed")
	res.Action = types.ActionCopied
	return e.emit(res), nil
}

func (e *Engine) ensureParent(d types.SyncDirective) error {
	parent := filepath.Dir(d.Target)
	perm := dirMode(d.Category)

	if err := e.fs.MkdirAll(parent, perm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", parent).
			WithDetail("path", parent)
	}
	if d.Category == types.CategorySSHConfig {
		if err := e.fs.Chmod(parent, perm); err != nil {
			return errors.Wrapf(err, errors.ErrPermission, "cannot set mode %04o on %s", perm, parent).
				WithDetail("path", parent)
		}
	}
	return nil
}

func dirMode(c types.Category) os.FileMode {
	if c == types.CategorySSHConfig {
		return types.SSHDirMode
	}
	return 0755
}

func (e *Engine) emit(res types.SyncResult) types.SyncResult {
	if e.observer != nil {
		e.observer(res)
	}
	return res
}
