package core

import (
	"github.com/arthur-debert/dotsync/pkg/profile"
	"github.com/arthur-debert/dotsync/pkg/status"
)

// Status reports drift for every directive of the detected mode, including
// the generated profile stub. Nothing is written.
func Status(opts PlanOptions) (*status.Report, error) {
	plan, err := BuildPlan(opts)
	if err != nil {
		return nil, err
	}

	checker := status.New(opts.FileSystem, opts.Context)
	entries, err := checker.CheckAll(plan.Directives)
	if err != nil {
		return nil, err
	}

	stub := profile.New(opts.FileSystem, nil, opts.Context, opts.Config.Profile)
	d := stub.Directive(plan.Mode)
	profileEntry, err := checker.Check(d)
	if err != nil {
		return nil, err
	}
	if profileEntry.State != status.StateMissingSource {
		content, err := stub.Content(plan.Mode)
		if err != nil {
			return nil, err
		}
		if profileEntry, err = checker.CheckContent(d, content); err != nil {
			return nil, err
		}
	}

	return &status.Report{Mode: plan.Mode, Entries: append(entries, profileEntry)}, nil
}
