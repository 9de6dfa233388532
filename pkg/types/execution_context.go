package types

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BackupDirPrefix is the default name prefix of the per-run backup directory.
const BackupDirPrefix = ".dotfiles_backup_"

// BackupTimestampFormat is the layout appended to BackupDirPrefix.
const BackupTimestampFormat = "20060102_150405"

// Environment holds the process environment captured once at startup.
type Environment struct {
	Home  string
	User  string
	Shell string
}

// EnvironmentFromOS reads HOME, USER and SHELL. Call it once per run.
func EnvironmentFromOS() Environment {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return Environment{
		Home:  home,
		User:  os.Getenv("USER"),
		Shell: os.Getenv("SHELL"),
	}
}

// Options are the operator-supplied switches for a run.
type Options struct {
	DryRun     bool
	Verbose    bool
	Force      bool
	BackupDir  string
	SourceRoot string
	// BackupPrefix overrides BackupDirPrefix when BackupDir is empty.
	BackupPrefix string
}

// ExecutionContext is the configuration of a single run. It is built once
// and passed by value; nothing mutates it after NewExecutionContext.
type ExecutionContext struct {
	DryRun     bool
	Verbose    bool
	Force      bool
	BackupDir  string
	SourceRoot string

	Home  string
	User  string
	Shell string
}

// NewExecutionContext builds the context for a run started at now. An empty
// BackupDir resolves to a timestamped directory under the captured home.
func NewExecutionContext(opts Options, env Environment, now time.Time) ExecutionContext {
	backupDir := opts.BackupDir
	if backupDir == "" {
		prefix := opts.BackupPrefix
		if prefix == "" {
			prefix = BackupDirPrefix
		}
		backupDir = filepath.Join(env.Home, prefix+now.Format(BackupTimestampFormat))
	}

	return ExecutionContext{
		DryRun:     opts.DryRun,
		Verbose:    opts.Verbose,
		Force:      opts.Force,
		BackupDir:  backupDir,
		SourceRoot: opts.SourceRoot,
		Home:       env.Home,
		User:       env.User,
		Shell:      env.Shell,
	}
}

// SourcePath resolves a repository-relative path against the source root.
func (c ExecutionContext) SourcePath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.SourceRoot, rel)
}

// String summarizes the context for logs.
func (c ExecutionContext) String() string {
	return fmt.Sprintf("dryRun=%t verbose=%t force=%t backupDir=%s source=%s",
		c.DryRun, c.Verbose, c.Force, c.BackupDir, c.SourceRoot)
}
