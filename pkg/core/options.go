package core

import (
	"time"

	"github.com/arthur-debert/dotsync/pkg/bootstrap"
	"github.com/arthur-debert/dotsync/pkg/config"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/arthur-debert/dotsync/pkg/ui"
	"github.com/spf13/afero"
)

// SyncOptions contains everything a sync run needs.
type SyncOptions struct {
	Context    types.ExecutionContext
	Config     *config.Config
	FileSystem afero.Fs
	Runner     bootstrap.Commander
	Printer    ui.Printer

	SkipBootstrap  bool
	SkipExtensions bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// ExtensionsOptions selects the editors for an extensions-only run. An
// empty Editors list means every configured editor.
type ExtensionsOptions struct {
	Context    types.ExecutionContext
	Config     *config.Config
	FileSystem afero.Fs
	Runner     bootstrap.Commander
	Printer    ui.Printer
	Editors    []string
}

// PlanOptions are the inputs of read-only commands.
type PlanOptions struct {
	Context    types.ExecutionContext
	Config     *config.Config
	FileSystem afero.Fs
}

func (o SyncOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
