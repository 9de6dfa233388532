// Package status compares the source repository with what is installed,
// without touching either side.
package status

import (
	"encoding/hex"
	"io"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/zeebo/blake3"
)

// State is the drift state of one directive.
type State string

const (
	StateInSync        State = "in-sync"
	StateDiffers       State = "differs"
	StateMissingTarget State = "missing-target"
	StateMissingSource State = "missing-source"
)

// Entry is the drift of one directive. Digests are hex BLAKE3 sums, empty
// when the side does not exist.
type Entry struct {
	Directive    types.SyncDirective `json:"directive"`
	State        State               `json:"state"`
	SourceDigest string              `json:"sourceDigest,omitempty"`
	TargetDigest string              `json:"targetDigest,omitempty"`
}

// Report is the drift of a whole directive set.
type Report struct {
	Mode    types.Mode `json:"mode"`
	Entries []Entry    `json:"entries"`
}

// Counts tallies entries by state.
func (r *Report) Counts() map[State]int {
	counts := make(map[State]int)
	for _, e := range r.Entries {
		counts[e.State]++
	}
	return counts
}

// InSync reports whether every directive with a source matches its target.
func (r *Report) InSync() bool {
	for _, e := range r.Entries {
		if e.State == StateDiffers || e.State == StateMissingTarget {
			return false
		}
	}
	return true
}

// Checker computes drift. It only reads.
type Checker struct {
	fs     afero.Fs
	ctx    types.ExecutionContext
	logger zerolog.Logger
}

// New creates a checker.
func New(fsys afero.Fs, ctx types.ExecutionContext) *Checker {
	return &Checker{fs: fsys, ctx: ctx, logger: logging.GetLogger("status")}
}

// CheckAll checks directives in order.
func (c *Checker) CheckAll(directives []types.SyncDirective) ([]Entry, error) {
	entries := make([]Entry, 0, len(directives))
	for _, d := range directives {
		e, err := c.Check(d)
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Check compares the directive's source file with its target.
func (c *Checker) Check(d types.SyncDirective) (Entry, error) {
	entry := Entry{Directive: d}

	src := c.ctx.SourcePath(d.Source)
	sum, found, err := c.fileDigest(src)
	if err != nil {
		return entry, err
	}
	if !found {
		entry.State = StateMissingSource
		return entry, nil
	}
	entry.SourceDigest = sum
	return c.compareTarget(entry)
}

// CheckContent compares generated content with the directive's target.
func (c *Checker) CheckContent(d types.SyncDirective, content []byte) (Entry, error) {
	entry := Entry{Directive: d, SourceDigest: Digest(content)}
	return c.compareTarget(entry)
}

func (c *Checker) compareTarget(entry Entry) (Entry, error) {
	sum, found, err := c.fileDigest(entry.Directive.Target)
	if err != nil {
		return entry, err
	}

	switch {
	case !found:
		entry.State = StateMissingTarget
	case sum == entry.SourceDigest:
		entry.TargetDigest = sum
		entry.State = StateInSync
	default:
		entry.TargetDigest = sum
		entry.State = StateDiffers
	}
	c.logger.Debug().
		Str("target", entry.Directive.Target).
		Str("state", string(entry.State)).
		Msg("Checked directive")
	return entry, nil
}

// fileDigest hashes path. found is false when path does not exist.
func (c *Checker) fileDigest(path string) (sum string, found bool, err error) {
	exists, err := filesystem.Exists(c.fs, path)
	if err != nil || !exists {
		return "", false, err
	}

	f, err := c.fs.Open(path)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}
	return hex.EncodeToString(h.Sum(nil)), true, nil
}

// Digest is the hex BLAKE3 sum of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
