// Package backup archives files the sync run is about to overwrite.
package backup

import (
	"path/filepath"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Manager copies targets into the run's backup directory, which is created
// on first use. Files are stored under their base name only, so two targets
// sharing a base name within one run overwrite each other; the last backup
// wins.
type Manager struct {
	fs     afero.Fs
	dir    string
	dryRun bool
	logger zerolog.Logger

	created bool
	written map[string]string
}

// New creates a manager for the run described by ctx.
func New(fsys afero.Fs, ctx types.ExecutionContext) *Manager {
	return &Manager{
		fs:      fsys,
		dir:     ctx.BackupDir,
		dryRun:  ctx.DryRun,
		logger:  logging.GetLogger("backup"),
		written: make(map[string]string),
	}
}

// Dir returns the backup directory, whether or not it exists yet.
func (m *Manager) Dir() string {
	return m.dir
}

// Created reports whether this run has created the backup directory.
func (m *Manager) Created() bool {
	return m.created
}

// Backup copies target into the backup directory and returns the path of
// the copy. It returns an empty path without touching anything when the run
// is a dry run or target does not exist.
func (m *Manager) Backup(target string) (string, error) {
	if m.dryRun {
		return "", nil
	}

	exists, err := filesystem.Exists(m.fs, target)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", target).
			WithDetail("path", target)
	}
	if !exists {
		return "", nil
	}

	if err := m.fs.MkdirAll(m.dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create backup directory %s", m.dir).
			WithDetail("path", m.dir)
	}
	m.created = true

	base := filepath.Base(target)
	dst := filepath.Join(m.dir, base)
	if prev, ok := m.written[base]; ok && prev != target {
		m.logger.Warn().
			Str("previous", prev).
			Str("target", target).
			Str("backup", dst).
			Msg("Backup name collision, keeping the later file")
	}

	if err := filesystem.CopyFile(m.fs, target, dst); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackup, "cannot back up %s", target).
			WithDetail("path", target).
			WithDetail("backup", dst)
	}
	m.written[base] = target

	m.logger.Info().Str("target", target).Str("backup", dst).Msg("Backed up file")
	return dst, nil
}
