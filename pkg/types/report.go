package types

import "time"

// SyncAction is what the engine did with a directive.
type SyncAction string

const (
	// ActionCopied means the target now holds the source content.
	ActionCopied SyncAction = "copied"

	// ActionPlanned means the directive would have been applied; dry run.
	ActionPlanned SyncAction = "planned"

	// ActionSkippedMissingSource means the source tree omits the file.
	ActionSkippedMissingSource SyncAction = "skipped-missing-source"

	// ActionPreserved means an existing target was left alone.
	ActionPreserved SyncAction = "preserved"
)

// SyncResult records the outcome of applying one directive.
type SyncResult struct {
	Directive  SyncDirective `json:"directive"`
	Action     SyncAction    `json:"action"`
	BackupPath string        `json:"backupPath,omitempty"`
	Warnings   []string      `json:"warnings,omitempty"`
}

// OutcomeKind classifies an editor extension install.
type OutcomeKind string

const (
	OutcomeAlreadyInstalled OutcomeKind = "already-installed"
	OutcomeInstalled        OutcomeKind = "installed"
	OutcomeSoftFailure      OutcomeKind = "soft-failure"
	OutcomeHardFailure      OutcomeKind = "hard-failure"

	// OutcomePlanned is reported in dry-run mode, where no subprocess runs.
	OutcomePlanned OutcomeKind = "planned"
)

// ExtensionOutcome is the classified result of installing one extension.
type ExtensionOutcome struct {
	Editor    string      `json:"editor"`
	Extension string      `json:"extension"`
	Kind      OutcomeKind `json:"kind"`
	Reason    string      `json:"reason,omitempty"`
}

// Failed reports whether the outcome needs operator follow-up.
func (o ExtensionOutcome) Failed() bool {
	return o.Kind == OutcomeSoftFailure || o.Kind == OutcomeHardFailure
}

// RunReport is everything a run produced, in order.
type RunReport struct {
	Mode       Mode               `json:"mode"`
	DryRun     bool               `json:"dryRun"`
	BackupDir  string             `json:"backupDir"`
	Directives []SyncResult       `json:"directives"`
	Extensions []ExtensionOutcome `json:"extensions,omitempty"`
	StartTime  time.Time          `json:"startTime"`
	EndTime    time.Time          `json:"endTime"`
}

// CountActions tallies directive results by action.
func (r *RunReport) CountActions() map[SyncAction]int {
	counts := make(map[SyncAction]int)
	for _, res := range r.Directives {
		counts[res.Action]++
	}
	return counts
}

// CountOutcomes tallies extension outcomes by kind.
func (r *RunReport) CountOutcomes() map[OutcomeKind]int {
	counts := make(map[OutcomeKind]int)
	for _, o := range r.Extensions {
		counts[o.Kind]++
	}
	return counts
}

// BackedUp returns the backup paths written during the run.
func (r *RunReport) BackedUp() []string {
	var paths []string
	for _, res := range r.Directives {
		if res.BackupPath != "" {
			paths = append(paths, res.BackupPath)
		}
	}
	return paths
}
