package core

import (
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/mode"
	"github.com/arthur-debert/dotsync/pkg/rules"
	"github.com/arthur-debert/dotsync/pkg/types"
)

// Plan is the mode of a machine and the directives that apply to it.
type Plan struct {
	Mode       types.Mode            `json:"mode"`
	Directives []types.SyncDirective `json:"directives"`
}

// BuildPlan detects the mode and builds the directive list. It reads the
// filesystem but never writes.
func BuildPlan(opts PlanOptions) (*Plan, error) {
	logger := logging.GetLogger("core.plan")

	detector := mode.NewDetector(opts.FileSystem, opts.Context.Home, opts.Config.Sync.WorkMarker)
	m := detector.Mode()

	table, err := rules.Load(opts.FileSystem, opts.Context.SourceRoot, opts.Config.Sync.RulesFile)
	if err != nil {
		return nil, err
	}

	directives, err := rules.NewBuilder(opts.FileSystem, table).Build(opts.Context, m)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("mode", string(m)).
		Int("directives", len(directives)).
		Msg("Plan built")
	return &Plan{Mode: m, Directives: directives}, nil
}
