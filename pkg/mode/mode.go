// Package mode decides whether a run targets a personal or a work machine.
package mode

import (
	"path/filepath"
	"sync"

	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/spf13/afero"
)

// DefaultMarker is the directory under HOME that marks a work machine.
const DefaultMarker = ".work"

// Detector probes for the marker directory once and remembers the answer
// for the rest of the run.
type Detector struct {
	fs     afero.Fs
	marker string

	once sync.Once
	work bool
}

// NewDetector creates a detector looking for home/marker.
func NewDetector(fsys afero.Fs, home, marker string) *Detector {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Detector{
		fs:     fsys,
		marker: filepath.Join(home, marker),
	}
}

// IsWorkMode reports whether the marker directory exists. A marker that is
// a regular file does not count.
func (d *Detector) IsWorkMode() bool {
	d.once.Do(func() {
		logger := logging.GetLogger("mode")
		isDir, err := filesystem.IsDir(d.fs, d.marker)
		if err != nil {
			logger.Warn().Err(err).Str("marker", d.marker).Msg("Cannot probe work marker, assuming personal mode")
			return
		}
		d.work = isDir
		logger.Debug().Str("marker", d.marker).Bool("work", d.work).Msg("Detected mode")
	})
	return d.work
}

// Mode returns the detected mode.
func (d *Detector) Mode() types.Mode {
	if d.IsWorkMode() {
		return types.ModeWork
	}
	return types.ModePersonal
}
