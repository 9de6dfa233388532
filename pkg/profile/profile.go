// Package profile generates the shell-profile stub that loads the
// personal or work profile from the source repository.
package profile

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/arthur-debert/dotsync/pkg/config"
	"github.com/arthur-debert/dotsync/pkg/engine"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

//go:embed profile.sh.tmpl
var stubTemplate string

var stub = template.Must(template.New("profile").Parse(stubTemplate))

// Data fills the stub template.
type Data struct {
	Mode       types.Mode
	SourceRoot string
	Profile    string
}

// Render produces the stub content.
func Render(data Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := stub.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot render profile stub")
	}
	return buf.Bytes(), nil
}

// Writer installs the stub through the sync engine, so it gets the same
// backup and dry-run handling as any other target.
type Writer struct {
	fs     afero.Fs
	engine *engine.Engine
	ctx    types.ExecutionContext
	cfg    config.Profile
	logger zerolog.Logger
}

// New creates a profile writer.
func New(fsys afero.Fs, e *engine.Engine, ctx types.ExecutionContext, cfg config.Profile) *Writer {
	return &Writer{
		fs:     fsys,
		engine: e,
		ctx:    ctx,
		cfg:    cfg,
		logger: logging.GetLogger("profile"),
	}
}

// Directive describes the stub for mode. Source is the profile the stub
// loads.
func (w *Writer) Directive(mode types.Mode) types.SyncDirective {
	source := w.cfg.Personal
	if mode.IsWork() {
		source = w.cfg.Work
	}
	return types.SyncDirective{
		Source:   source,
		Target:   paths.ExpandHomeWith(w.cfg.Target, w.ctx.Home),
		Category: types.CategoryProfile,
	}
}

// Content renders the stub for mode.
func (w *Writer) Content(mode types.Mode) ([]byte, error) {
	d := w.Directive(mode)
	return Render(Data{
		Mode:       mode,
		SourceRoot: w.ctx.SourceRoot,
		Profile:    w.ctx.SourcePath(d.Source),
	})
}

// Write installs the stub for mode. When the selected profile is missing
// from the source repository nothing is written.
func (w *Writer) Write(mode types.Mode) (types.SyncResult, error) {
	d := w.Directive(mode)

	exists, err := filesystem.Exists(w.fs, w.ctx.SourcePath(d.Source))
	if err != nil {
		return types.SyncResult{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", d.Source)
	}
	if !exists {
		w.logger.Warn().Str("profile", d.Source).Msg("Selected profile missing, stub not written")
		return types.SyncResult{Directive: d, Action: types.ActionSkippedMissingSource}, nil
	}

	content, err := w.Content(mode)
	if err != nil {
		return types.SyncResult{}, err
	}
	return w.engine.ApplyContent(d, content)
}
