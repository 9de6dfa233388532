package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the run log kept under the state directory.
const LogFileName = "dotsync.log"

// levels maps the -v count to a level. Counts past the end mean trace.
var levels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
}

// LevelFor returns the level selected by a -v count.
func LevelFor(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(levels) {
		return zerolog.TraceLevel
	}
	return levels[verbosity]
}

// SetupLogger configures the global logger for a -v count, with console
// output on stderr. A dry run keeps the run log closed.
func SetupLogger(verbosity int, dryRun bool) {
	SetupLoggerTo(os.Stderr, verbosity, dryRun)
}

// SetupLoggerTo configures the global logger with console output on w.
// Unless dryRun is set, every record is also appended as JSON to the run
// log, so a failed sync can be inspected after the terminal is gone.
func SetupLoggerTo(w io.Writer, verbosity int, dryRun bool) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !colorConsole(w),
	}}

	logFile := LogFilePath()
	var fileErr error
	if !dryRun {
		var file *os.File
		file, fileErr = openLogFile(logFile)
		if fileErr == nil {
			writers = append(writers, file)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().
		Timestamp().
		Int("pid", os.Getpid())
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	switch {
	case fileErr != nil:
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Run log unavailable, logging to console only")
	case dryRun:
		log.Debug().Int("verbosity", verbosity).Msg("Logger initialized, run log off for dry run")
	default:
		log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
	}
}

// colorConsole reports whether w is a terminal that should get colour.
func colorConsole(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// GetLogger returns the global logger tagged with a component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath returns the run log location: $XDG_STATE_HOME/dotsync, or
// ~/.local/state/dotsync when XDG_STATE_HOME is unset.
func LogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return LogFileName
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "dotsync", LogFileName)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogCommand records a subprocess about to be started.
func LogCommand(logger zerolog.Logger, name string, args []string) {
	logger.Debug().Str("command", name).Strs("args", args).Msg("Running command")
}

// LogOperationStart records the start of a step. Calling the returned
// function records how long it took.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Step started")
	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("took", time.Since(start)).
			Msg("Step finished")
	}
}
