package rules

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Builder produces directives from a validated rule table.
type Builder struct {
	fs     afero.Fs
	rules  []Rule
	logger zerolog.Logger
}

// NewBuilder creates a builder over rules; glob rules are expanded on fsys.
func NewBuilder(fsys afero.Fs, rules []Rule) *Builder {
	return &Builder{
		fs:     fsys,
		rules:  rules,
		logger: logging.GetLogger("rules.builder"),
	}
}

// Build returns the directives for mode, in table order. Personal-only
// rules are dropped in work mode. Targets are expanded against ctx.Home and
// must be absolute.
func (b *Builder) Build(ctx types.ExecutionContext, mode types.Mode) ([]types.SyncDirective, error) {
	var directives []types.SyncDirective

	for i, r := range b.rules {
		if r.PersonalOnly && mode.IsWork() {
			b.logger.Debug().Int("rule", i+1).Str("source", r.Source+r.SourceDir).Msg("Skipping personal-only rule in work mode")
			continue
		}

		category, err := types.ParseCategory(r.Category)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrRulesValid, "rule %d", i+1)
		}
		perm, err := parseMode(r.Mode)
		if err != nil {
			return nil, err
		}

		base := types.SyncDirective{
			Category:         category,
			Mode:             perm,
			PersonalOnly:     r.PersonalOnly,
			PreserveExisting: r.PreserveExisting,
		}

		if !r.IsGlob() {
			d := base
			d.Source = filepath.Clean(r.Source)
			d.Target = paths.ExpandHomeWith(r.Target, ctx.Home)
			if err := checkTarget(i, d.Target); err != nil {
				return nil, err
			}
			directives = append(directives, d)
			continue
		}

		sources, err := b.expand(ctx, r)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "rule %d: cannot expand %s", i+1, r.SourceDir)
		}
		targetDir := paths.ExpandHomeWith(r.TargetDir, ctx.Home)
		if err := checkTarget(i, targetDir); err != nil {
			return nil, err
		}
		for _, rel := range sources {
			d := base
			d.Source = rel
			d.Target = filepath.Join(targetDir, filepath.Base(rel))
			directives = append(directives, d)
		}
	}

	b.logger.Debug().Int("count", len(directives)).Str("mode", string(mode)).Msg("Built directives")
	return directives, nil
}

// expand matches the rule's patterns against the base names in its source
// directory and returns repository-relative paths, sorted and without
// duplicates. Directories never match. The source root is never treated as
// a pattern, so it may contain glob metacharacters.
func (b *Builder) expand(ctx types.ExecutionContext, r Rule) ([]string, error) {
	dir := ctx.SourcePath(r.SourceDir)
	isDir, err := filesystem.IsDir(b.fs, dir)
	if err != nil {
		return nil, err
	}
	if !isDir {
		b.logger.Debug().Str("dir", dir).Msg("Glob rule directory missing")
		return nil, nil
	}
	entries, err := afero.ReadDir(b.fs, dir)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for _, pattern := range r.Patterns {
			ok, err := filepath.Match(pattern, entry.Name())
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, filepath.Join(filepath.Clean(r.SourceDir), entry.Name()))
				break
			}
		}
	}

	sort.Strings(out)
	return out, nil
}

func checkTarget(i int, target string) error {
	if !filepath.IsAbs(target) {
		return errors.Newf(errors.ErrRulesValid, "rule %d: target %q is not absolute", i+1, target).
			WithDetail("rule", i+1)
	}
	return nil
}
