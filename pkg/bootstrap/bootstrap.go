// Package bootstrap installs the system tools the synced dotfiles expect:
// Homebrew and its packages, rbenv, Oh My Zsh, Vim plugin managers and the
// login shell. Every step checks before it acts, so a second run only
// reports what is already there.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/dotsync/pkg/config"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/runner"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Commander is the slice of the command runner the bootstrap needs.
type Commander interface {
	Run(ctx context.Context, command, description string) error
	Capture(ctx context.Context, name string, args ...string) (runner.Output, error)
	LookPath(name string) bool
	PrependPath(dir string)
	DryRun() bool
}

// Reporter receives progress lines for the operator.
type Reporter interface {
	Section(icon, title string)
	Item(icon, format string, args ...interface{})
	Hint(format string, args ...interface{})
}

// Bootstrapper runs the configured steps in order.
type Bootstrapper struct {
	fs     afero.Fs
	ctx    types.ExecutionContext
	cfg    config.Bootstrap
	cmd    Commander
	out    Reporter
	logger zerolog.Logger
}

// New creates a bootstrapper.
func New(fsys afero.Fs, ctx types.ExecutionContext, cfg config.Bootstrap, cmd Commander, out Reporter) *Bootstrapper {
	return &Bootstrapper{
		fs:     fsys,
		ctx:    ctx,
		cfg:    cfg,
		cmd:    cmd,
		out:    out,
		logger: logging.GetLogger("bootstrap"),
	}
}

// Run executes every step. The first failing command aborts the run.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if !b.cfg.Enabled {
		b.logger.Info().Msg("Bootstrap disabled")
		return nil
	}
	defer logging.LogOperationStart(b.logger, "bootstrap")()

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"homebrew", b.homebrew},
		{"rbenv", b.rbenv},
		{"packages", b.packages},
		{"oh-my-zsh", b.ohMyZsh},
		{"vim", b.vim},
		{"shell", b.shell},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrCommandFailed, "bootstrap interrupted").
				WithDetail("step", step.name)
		}
		if err := step.run(ctx); err != nil {
			return errors.Wrapf(err, errors.GetErrorCode(err), "bootstrap %s", step.name).
				WithDetail("step", step.name)
		}
	}
	return nil
}

func (b *Bootstrapper) homebrew(ctx context.Context) error {
	b.out.Section("🍺", "Installing Homebrew...")
	if b.cmd.LookPath("brew") {
		b.logger.Debug().Msg("brew already on PATH")
		return nil
	}
	if err := b.cmd.Run(ctx, b.cfg.HomebrewInstall, "Installing Homebrew"); err != nil {
		return err
	}

	for _, dir := range b.cfg.BrewPaths {
		if ok, _ := filesystem.IsDir(b.fs, dir); ok {
			b.logger.Info().Str("dir", dir).Msg("Adding Homebrew to PATH")
			b.cmd.PrependPath(dir)
		}
	}
	return nil
}

func (b *Bootstrapper) rbenv(ctx context.Context) error {
	if !b.cfg.Rbenv {
		return nil
	}
	b.out.Section("💎", "Installing Ruby version manager (rbenv)...")
	if b.cmd.LookPath("rbenv") {
		return nil
	}
	if err := b.cmd.Run(ctx, "brew install rbenv ruby-build", "Installing rbenv and ruby-build"); err != nil {
		return err
	}
	b.out.Hint(`Please add 'eval "$(rbenv init -)"' to your shell profile to enable rbenv`)
	return nil
}

func (b *Bootstrapper) packages(ctx context.Context) error {
	if len(b.cfg.Packages) == 0 {
		return nil
	}
	b.out.Section("📦", "Installing Homebrew packages...")
	for _, pkg := range b.cfg.Packages {
		installed, err := b.brewHas(ctx, pkg)
		if err != nil {
			return err
		}
		if installed {
			b.logger.Debug().Str("package", pkg).Msg("Already installed")
			continue
		}
		if err := b.cmd.Run(ctx, "brew install "+pkg, "Installing "+pkg); err != nil {
			return err
		}
	}
	return nil
}

// brewHas asks brew whether pkg is installed. Under dry run the answer is
// always no, and the install that follows is only announced.
func (b *Bootstrapper) brewHas(ctx context.Context, pkg string) (bool, error) {
	out, err := b.cmd.Capture(ctx, "brew", "list", pkg)
	if err != nil {
		return false, err
	}
	if out.Skipped {
		return false, nil
	}
	return out.ExitCode == 0, nil
}

func (b *Bootstrapper) ohMyZsh(ctx context.Context) error {
	if b.cfg.OhMyZshInstall == "" {
		return nil
	}
	b.out.Section("🐚", "Installing Oh My Zsh...")
	if ok, _ := filesystem.IsDir(b.fs, filepath.Join(b.ctx.Home, ".oh-my-zsh")); ok {
		return nil
	}
	return b.cmd.Run(ctx, b.cfg.OhMyZshInstall, "Installing Oh My Zsh")
}

// vim prepares ~/.vim for pathogen and Vundle. Existing plugin managers
// are left as they are.
func (b *Bootstrapper) vim(ctx context.Context) error {
	if !b.cfg.Vim.Enabled {
		return nil
	}
	b.out.Section("📝", "Setting up Vim...")

	vimDir := filepath.Join(b.ctx.Home, ".vim")
	autoload := filepath.Join(vimDir, "autoload")
	bundle := filepath.Join(vimDir, "bundle")

	if !b.ctx.DryRun {
		for _, dir := range []string{autoload, bundle} {
			if err := b.fs.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir).
					WithDetail("path", dir)
			}
		}
	}

	pathogen := filepath.Join(autoload, "pathogen.vim")
	if ok, _ := filesystem.Exists(b.fs, pathogen); !ok && b.cfg.Vim.PathogenURL != "" {
		b.out.Item("🔌", "Installing Pathogen...")
		cmd := fmt.Sprintf("curl -LSso %s %s", pathogen, b.cfg.Vim.PathogenURL)
		if err := b.cmd.Run(ctx, cmd, "Installing Pathogen"); err != nil {
			return err
		}
	}

	vundle := filepath.Join(bundle, "Vundle.vim")
	if ok, _ := filesystem.Exists(b.fs, vundle); !ok && b.cfg.Vim.VundleRepo != "" {
		b.out.Item("🔌", "Installing Vundle...")
		cmd := fmt.Sprintf("git clone --depth=1 %s %s", b.cfg.Vim.VundleRepo, vundle)
		if err := b.cmd.Run(ctx, cmd, "Installing Vundle"); err != nil {
			return err
		}
	}

	b.out.Hint("Please run :PluginInstall in Vim to install plugins")
	return nil
}

func (b *Bootstrapper) shell(ctx context.Context) error {
	if !b.cfg.ChangeShell || b.cfg.Shell == "" || b.ctx.Shell == b.cfg.Shell {
		return nil
	}
	if b.ctx.User == "" {
		b.logger.Warn().Msg("USER is not set, not changing the login shell")
		return nil
	}

	b.out.Section("🐚", "Changing default shell...")
	cmd := fmt.Sprintf("chsh -s %s %s", b.cfg.Shell, b.ctx.User)
	if err := b.cmd.Run(ctx, cmd, "Setting login shell to "+b.cfg.Shell); err != nil {
		return err
	}
	b.out.Hint("Open a new terminal to start using %s", b.cfg.Shell)
	return nil
}
