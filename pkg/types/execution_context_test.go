package types_test

import (
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestNewExecutionContext_Defaults(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	env := types.Environment{Home: "/home/mike", User: "mike", Shell: "/bin/zsh"}

	ctx := types.NewExecutionContext(types.Options{}, env, now)

	assert.False(t, ctx.DryRun)
	assert.False(t, ctx.Verbose)
	assert.False(t, ctx.Force)
	assert.Equal(t, "/home/mike/.dotfiles_backup_20240309_140507", ctx.BackupDir)
	assert.Regexp(t, regexp.MustCompile(`\.dotfiles_backup_\d{8}_\d{6}$`), ctx.BackupDir)
	assert.Equal(t, "mike", ctx.User)
	assert.Equal(t, "/bin/zsh", ctx.Shell)
}

func TestNewExecutionContext_CustomOptions(t *testing.T) {
	opts := types.Options{
		DryRun:     true,
		Verbose:    true,
		Force:      true,
		BackupDir:  "/custom/backup",
		SourceRoot: "/src/dotfiles",
	}

	ctx := types.NewExecutionContext(opts, types.Environment{Home: "/home/mike"}, time.Now())

	assert.True(t, ctx.DryRun)
	assert.True(t, ctx.Verbose)
	assert.True(t, ctx.Force)
	assert.Equal(t, "/custom/backup", ctx.BackupDir)
	assert.Equal(t, "/src/dotfiles", ctx.SourceRoot)
}

func TestNewExecutionContext_BackupPrefix(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ctx := types.NewExecutionContext(types.Options{BackupPrefix: ".bk_"}, types.Environment{Home: "/h"}, now)
	assert.Equal(t, filepath.Join("/h", ".bk_20240102_030405"), ctx.BackupDir)
}

func TestExecutionContext_SourcePath(t *testing.T) {
	ctx := types.ExecutionContext{SourceRoot: "/src"}
	assert.Equal(t, "/src/configs/git/.gitconfig", ctx.SourcePath("configs/git/.gitconfig"))
	assert.Equal(t, "/abs/file", ctx.SourcePath("/abs/file"))
}
