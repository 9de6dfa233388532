// Package editors drives extension installs for every configured editor.
package editors

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dotsync/pkg/config"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/extensions"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Runner is what editor setup needs from the command runner.
type Runner interface {
	extensions.CommandRunner
	LookPath(name string) bool
}

// Setup installs the extensions listed in the source repository.
type Setup struct {
	fs      afero.Fs
	ctx     types.ExecutionContext
	editors map[string]config.Editor
	benign  []string
	runner  Runner
	logger  zerolog.Logger
}

// New creates the editor setup step.
func New(fsys afero.Fs, ctx types.ExecutionContext, editors map[string]config.Editor, benign []string, r Runner) *Setup {
	return &Setup{
		fs:      fsys,
		ctx:     ctx,
		editors: editors,
		benign:  benign,
		runner:  r,
		logger:  logging.GetLogger("editors"),
	}
}

// Names returns the editors to process: only, when given, otherwise every
// configured editor in name order.
func (s *Setup) Names(only []string) ([]string, error) {
	if len(only) > 0 {
		for _, name := range only {
			if _, ok := s.editors[name]; !ok {
				return nil, errors.Newf(errors.ErrInvalidInput, "unknown editor %q", name).
					WithDetail("editor", name)
			}
		}
		return only, nil
	}

	names := make([]string, 0, len(s.editors))
	for name := range s.editors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ReadExtensions returns the extension ids listed for an editor. Blank
// lines and # comments are ignored. found is false when the editor has no
// extensions file in the source repository.
func (s *Setup) ReadExtensions(name string) (ids []string, found bool, err error) {
	ed := s.editors[name]
	path := s.ctx.SourcePath(filepath.Join(ed.Source, ed.ExtensionsFile))

	exists, err := filesystem.Exists(s.fs, path)
	if err != nil || !exists {
		return nil, false, err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	return ids, true, scanner.Err()
}

// Run installs the extensions of the selected editors. onOutcome, when not
// nil, sees each editor's outcomes once its installs finish. Only unreadable extension lists and
// unknown editor names are errors.
func (s *Setup) Run(ctx context.Context, only []string, onOutcome func(types.ExtensionOutcome)) ([]types.ExtensionOutcome, error) {
	names, err := s.Names(only)
	if err != nil {
		return nil, err
	}

	var all []types.ExtensionOutcome
	for _, name := range names {
		ids, found, err := s.ReadExtensions(name)
		if err != nil {
			return all, err
		}
		if !found {
			s.logger.Debug().Str("editor", name).Msg("No extensions file, skipping")
			continue
		}

		ed := s.editors[name]
		var outcomes []types.ExtensionOutcome
		if !s.ctx.DryRun && !s.runner.LookPath(ed.CLI) {
			s.logger.Warn().Str("editor", name).Str("cli", ed.CLI).Msg("Editor CLI not on PATH")
			outcomes = missingCLI(name, ed.CLI, ids)
		} else {
			installer := extensions.NewInstaller(name, ed.CLI, s.runner, s.benign, s.ctx.DryRun)
			outcomes = installer.InstallAll(ctx, ids)
		}

		if onOutcome != nil {
			for _, o := range outcomes {
				onOutcome(o)
			}
		}
		all = append(all, outcomes...)
	}
	return all, nil
}

func missingCLI(editor, cli string, ids []string) []types.ExtensionOutcome {
	outcomes := make([]types.ExtensionOutcome, 0, len(ids))
	for _, id := range ids {
		outcomes = append(outcomes, types.ExtensionOutcome{
			Editor:    editor,
			Extension: id,
			Kind:      types.OutcomeHardFailure,
			Reason:    fmt.Sprintf("%s not found on PATH", cli),
		})
	}
	return outcomes
}
