package core

import (
	"context"

	"github.com/arthur-debert/dotsync/pkg/editors"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/arthur-debert/dotsync/pkg/ui/format"
)

// InstallExtensions runs only the editor extension step.
func InstallExtensions(ctx context.Context, opts ExtensionsOptions) (*types.RunReport, error) {
	report := &types.RunReport{DryRun: opts.Context.DryRun, BackupDir: opts.Context.BackupDir}

	var err error
	report.Extensions, err = installExtensions(ctx, opts)
	return report, err
}

func installExtensions(ctx context.Context, opts ExtensionsOptions) ([]types.ExtensionOutcome, error) {
	opts.Printer.Section("🔌", "Installing editor extensions...")

	setup := editors.New(opts.FileSystem, opts.Context, opts.Config.Editors, opts.Config.Extensions.Benign, opts.Runner)
	return setup.Run(ctx, opts.Editors, func(o types.ExtensionOutcome) {
		if o.Reason != "" {
			opts.Printer.Item(format.OutcomeEmoji(o.Kind), "%s %s: %s (%s)", o.Editor, o.Extension, o.Kind, o.Reason)
			return
		}
		opts.Printer.Item(format.OutcomeEmoji(o.Kind), "%s %s: %s", o.Editor, o.Extension, o.Kind)
	})
}
