// Package types defines the data shared by every dotsync component: the
// immutable ExecutionContext threaded through a run, the declarative
// SyncDirective produced by the rule set, the detected Mode, and the
// RunReport handed to the output layer.
package types
