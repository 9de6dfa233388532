package core

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/dotsync/pkg/backup"
	"github.com/arthur-debert/dotsync/pkg/bootstrap"
	"github.com/arthur-debert/dotsync/pkg/engine"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/profile"
	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/arthur-debert/dotsync/pkg/ui"
	"github.com/arthur-debert/dotsync/pkg/ui/format"
)

// Sync runs the whole workstation sync. The report is returned even when
// err is not nil and holds what was done before the failure.
func Sync(ctx context.Context, opts SyncOptions) (*types.RunReport, error) {
	logger := logging.GetLogger("core.sync")
	logger.Info().Str("context", opts.Context.String()).Msg("Starting sync")

	report := &types.RunReport{
		DryRun:    opts.Context.DryRun,
		BackupDir: opts.Context.BackupDir,
		StartTime: opts.now(),
	}
	finish := func(err error) (*types.RunReport, error) {
		report.EndTime = opts.now()
		if err != nil {
			logger.Error().Err(err).Msg("Sync failed")
			return report, err
		}
		return report, opts.Printer.RenderReport(report)
	}

	printBanner(opts.Printer, opts.Context)

	if !opts.SkipBootstrap {
		b := bootstrap.New(opts.FileSystem, opts.Context, opts.Config.Bootstrap, opts.Runner, opts.Printer)
		if err := b.Run(ctx); err != nil {
			return finish(err)
		}
	}

	plan, err := BuildPlan(PlanOptions{Context: opts.Context, Config: opts.Config, FileSystem: opts.FileSystem})
	if err != nil {
		return finish(err)
	}
	report.Mode = plan.Mode
	opts.Printer.Section("🧭", "Mode: "+string(plan.Mode))

	backups := backup.New(opts.FileSystem, opts.Context)
	eng := engine.New(opts.FileSystem, opts.Context, backups).
		WithObserver(func(res types.SyncResult) { printResult(opts.Printer, res) })

	opts.Printer.Section("📋", "Syncing files...")
	report.Directives, err = eng.ApplyAll(plan.Directives)
	if err != nil {
		return finish(err)
	}

	opts.Printer.Section("🐚", "Writing shell profile...")
	stub := profile.New(opts.FileSystem, eng, opts.Context, opts.Config.Profile)
	res, err := stub.Write(plan.Mode)
	if err != nil {
		return finish(err)
	}
	if res.Action == types.ActionSkippedMissingSource {
		printResult(opts.Printer, res)
	}
	report.Directives = append(report.Directives, res)

	if !opts.SkipExtensions {
		report.Extensions, err = installExtensions(ctx, ExtensionsOptions{
			Context:    opts.Context,
			Config:     opts.Config,
			FileSystem: opts.FileSystem,
			Runner:     opts.Runner,
			Printer:    opts.Printer,
		})
		if err != nil {
			return finish(err)
		}
	}

	for _, hint := range restartHints(report.Directives) {
		opts.Printer.Hint("%s", hint)
	}
	return finish(nil)
}

func printBanner(p ui.Printer, ctx types.ExecutionContext) {
	subtitle := "📁 Backup directory: " + ctx.BackupDir
	if ctx.DryRun {
		subtitle = "🔍 Dry run mode: no changes will be made"
	}
	p.Banner("🚀 Welcome to dotsync", subtitle)
}

func printResult(p ui.Printer, res types.SyncResult) {
	d := res.Directive
	name := filepath.Base(d.Source)

	switch res.Action {
	case types.ActionCopied:
		if res.BackupPath != "" {
			p.Item("💾", "Backed up %s", filepath.Base(d.Target))
		}
		p.Item(format.CategoryEmoji(d.Category), "Copied %s to %s", name, d.Target)
	case types.ActionPlanned:
		p.Item(format.ActionEmoji(res.Action), "Would copy %s to %s", name, d.Target)
	case types.ActionPreserved:
		p.Item(format.ActionEmoji(res.Action), "%s already exists, skipping", filepath.Base(d.Target))
	case types.ActionSkippedMissingSource:
		p.Item(format.ActionEmoji(res.Action), "%s not in source, skipping", d.Source)
	}

	for _, w := range res.Warnings {
		p.Warn("%s", w)
	}
}
