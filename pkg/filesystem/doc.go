// Package filesystem provides the filesystem used by dotsync.
//
// Every component takes an afero.Fs: the OS filesystem in production and an
// in-memory filesystem in tests. Helpers here cover the handful of
// operations the engine needs on top of afero.
package filesystem
