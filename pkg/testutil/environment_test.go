package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTestEnvironment_Memory(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly).WithSourceTree(SampleSource())

	assert.True(t, env.Exists(env.Source("configs", "vim", "vimrc")))
	assert.Equal(t, "set number\n", env.ReadFile(env.Source("configs/vim/vimrc")))
	assert.Equal(t, "/virtual/home/.vimrc", env.Home(".vimrc"))
}

func TestNewTestEnvironment_Isolated(t *testing.T) {
	env := NewTestEnvironment(t, EnvIsolated).WithHomeTree(FileTree{".zshrc": "old"})

	assert.Equal(t, "old", env.ReadFile(env.Home(".zshrc")))
	ctx := env.Context(optsDryRun())
	assert.True(t, ctx.DryRun)
	assert.Equal(t, env.Home(".dotfiles_backup_20240102_030405"), ctx.BackupDir)
	assert.Equal(t, env.SourceRoot, ctx.SourceRoot)
}
