package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity, false)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "dotsync", "dotsync.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestLogFilePath(t *testing.T) {
	tests := []struct {
		name         string
		xdgState     string
		wantContains string
	}{
		{
			name:         "with XDG_STATE_HOME",
			xdgState:     "/custom/state",
			wantContains: "/custom/state/dotsync/dotsync.log",
		},
		{
			name:         "without XDG_STATE_HOME",
			xdgState:     "",
			wantContains: ".local/state/dotsync/dotsync.log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_STATE_HOME", tt.xdgState)

			got := LogFilePath()
			assert.True(t, filepath.IsAbs(got), "LogFilePath() returned relative path: %s", got)
			assert.True(t, strings.Contains(filepath.ToSlash(got), tt.wantContains),
				"LogFilePath() = %s, want to contain %s", got, tt.wantContains)
		})
	}
}

func TestLogOperationStart(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.WarnLevel) })

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "copy-dotfiles")
	done()

	out := buf.String()
	assert.Contains(t, out, `"operation":"copy-dotfiles"`)
	assert.Contains(t, out, "Step started")
	assert.Contains(t, out, "Step finished")
	assert.Contains(t, out, `"took"`)
}

func TestLogCommand(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.WarnLevel) })

	var buf bytes.Buffer
	LogCommand(zerolog.New(&buf), "code", []string{"--list-extensions"})

	assert.Contains(t, buf.String(), `"command":"code"`)
	assert.Contains(t, buf.String(), `"args":["--list-extensions"]`)
}

func TestSetupLoggerTo_Console(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.WarnLevel) })

	var console bytes.Buffer
	SetupLoggerTo(&console, 1, false)

	logger := GetLogger("engine")
	logger.Info().Msg("copied .vimrc")
	logger.Debug().Msg("hidden at info level")

	assert.Contains(t, console.String(), "copied .vimrc")
	assert.Contains(t, console.String(), "component=engine")
	assert.NotContains(t, console.String(), "hidden at info level")
	assert.NotContains(t, console.String(), "\x1b[", "non-terminal console must not get colour")

	data, err := os.ReadFile(LogFilePath())
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"message":"copied .vimrc"`)
	assert.Contains(t, string(data), `"pid":`)
}

func TestSetupLoggerTo_DryRunLeavesNoLogFile(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.WarnLevel) })

	var console bytes.Buffer
	SetupLoggerTo(&console, 3, true)
	logger := GetLogger("engine")
	logger.Warn().Msg("would copy .vimrc")

	assert.Contains(t, console.String(), "would copy .vimrc")
	entries, err := os.ReadDir(stateHome)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestColorConsole(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.False(t, colorConsole(&bytes.Buffer{}))

	r, w, err := os.Pipe()
	assert.NoError(t, err)
	defer func() { _ = r.Close() }()
	defer func() { _ = w.Close() }()
	assert.False(t, colorConsole(w))
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, LevelFor(-1))
	assert.Equal(t, zerolog.InfoLevel, LevelFor(1))
	assert.Equal(t, zerolog.TraceLevel, LevelFor(9))
}
