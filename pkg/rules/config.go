package rules

import (
	_ "embed"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

//go:embed embedded/rules.toml
var defaultRules []byte

// DefaultRulesContent returns the built-in rule table.
func DefaultRulesContent() string {
	return string(defaultRules)
}

// DefaultRules parses the built-in rule table.
func DefaultRules() ([]Rule, error) {
	return Parse(defaultRules)
}

// Load returns the rule table for a source repository: overrideFile
// (relative to sourceRoot) when it exists, the built-in table otherwise.
func Load(fsys afero.Fs, sourceRoot, overrideFile string) ([]Rule, error) {
	logger := logging.GetLogger("rules.config")

	if overrideFile != "" {
		path := overrideFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(sourceRoot, overrideFile)
		}
		exists, err := filesystem.Exists(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat rules file %s", path)
		}
		if exists {
			data, err := afero.ReadFile(fsys, path)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read rules file %s", path)
			}
			logger.Info().Str("path", path).Msg("Using rules from source repository")
			rules, err := Parse(data)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrRulesValid, "invalid rules file %s", path).
					WithDetail("path", path)
			}
			return rules, nil
		}
	}

	logger.Debug().Msg("Using built-in rules")
	return DefaultRules()
}

// Parse decodes and validates a rule table.
func Parse(data []byte) ([]Rule, error) {
	var table Table
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrap(err, errors.ErrRulesValid, "cannot parse rules")
	}
	if err := validateRules(table.Rules); err != nil {
		return nil, err
	}
	return table.Rules, nil
}

// validateRules checks that every rule has exactly one complete form
func validateRules(rules []Rule) error {
	for i, r := range rules {
		invalid := func(msg string) error {
			return errors.Newf(errors.ErrRulesValid, "rule %d: %s", i+1, msg).
				WithDetail("rule", i+1)
		}

		single := r.Source != "" || r.Target != ""
		glob := r.SourceDir != "" || r.TargetDir != "" || len(r.Patterns) > 0
		switch {
		case single && glob:
			return invalid("mixes source/target with source_dir/patterns/target_dir")
		case single && (r.Source == "" || r.Target == ""):
			return invalid("needs both source and target")
		case glob && (r.SourceDir == "" || r.TargetDir == "" || len(r.Patterns) == 0):
			return invalid("needs source_dir, patterns and target_dir")
		case !single && !glob:
			return invalid("is empty")
		}

		for _, p := range r.Patterns {
			if _, err := filepath.Match(p, ""); err != nil {
				return invalid("bad pattern " + strconv.Quote(p))
			}
		}
		if _, err := types.ParseCategory(r.Category); err != nil {
			return invalid(err.Error())
		}
		if _, err := parseMode(r.Mode); err != nil {
			return invalid(err.Error())
		}
	}
	return nil
}

// parseMode reads an octal permission string such as "0600".
func parseMode(s string) (*os.FileMode, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil || v > 0777 {
		return nil, errors.Newf(errors.ErrRulesValid, "bad mode %q, want an octal permission like \"0644\"", s)
	}
	return types.FileMode(os.FileMode(v)), nil
}
