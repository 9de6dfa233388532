package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/logging"
)

// Environment variable names
const (
	// EnvDotfilesRoot selects the source repository
	EnvDotfilesRoot = "DOTFILES_ROOT"

	// EnvConfigDir overrides the XDG config directory for dotsync
	EnvConfigDir = "DOTSYNC_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under the XDG homes
	AppDirName = "dotsync"

	// ConfigFileName is the user configuration file inside ConfigDir
	ConfigFileName = "config.toml"

	// RulesOverrideFile, when present at the source root, replaces the
	// built-in rule table.
	RulesOverrideFile = "dotsync.rules.toml"
)

// Paths provides centralized path management for dotsync
type Paths interface {
	SourceRoot() string
	UsedFallback() bool
	ConfigDir() string
	ConfigFile() string
	StateDir() string
}

type paths struct {
	sourceRoot   string
	usedFallback bool
	configDir    string
	stateDir     string
}

// New creates a Paths instance. An empty sourceRoot triggers discovery.
func New(sourceRoot string) (Paths, error) {
	p := &paths{}

	if sourceRoot == "" {
		root, usedFallback, err := findSourceRoot()
		if err != nil {
			return nil, err
		}
		p.sourceRoot = root
		p.usedFallback = usedFallback
	} else {
		p.sourceRoot = ExpandHome(sourceRoot)
	}

	absRoot, err := filepath.Abs(p.sourceRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for source root")
	}
	p.sourceRoot = absRoot

	p.configDir = ConfigDir()
	p.stateDir = StateDir()

	return p, nil
}

// ConfigDir returns the dotsync configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the dotsync state directory, which holds the log file.
func StateDir() string {
	return filepath.Dir(logging.LogFilePath())
}

// findSourceRoot determines the source root using the following priority:
// 1. DOTFILES_ROOT environment variable (if set)
// 2. Git repository root
// 3. Current working directory (fallback)
func findSourceRoot() (string, bool, error) {
	logger := logging.GetLogger("paths")

	if root := os.Getenv(EnvDotfilesRoot); root != "" {
		return ExpandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		logger.Debug().Str("root", gitRoot).Msg("using git top level as source root")
		return gitRoot, false, nil
	}
	logger.Debug().Err(err).Msg("git root discovery failed")

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrFileAccess, "git root is empty")
	}
	return gitRoot, nil
}

// ExpandHome expands a leading ~ to the current user's home directory.
func ExpandHome(path string) string {
	home, err := GetHomeDirectory()
	if err != nil {
		return path
	}
	return ExpandHomeWith(path, home)
}

// ExpandHomeWith expands a leading ~ against the given home directory.
// ~user forms are returned unchanged.
func ExpandHomeWith(path, home string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

func (p *paths) SourceRoot() string {
	return p.sourceRoot
}

// UsedFallback reports whether the current directory was used as the root.
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

func (p *paths) StateDir() string {
	return p.stateDir
}
