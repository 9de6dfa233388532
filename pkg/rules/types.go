package rules

// Rule is one entry of the rule table.
type Rule struct {
	// Single-file form.
	Source string `toml:"source,omitempty"`
	Target string `toml:"target,omitempty"`

	// Glob form.
	SourceDir string   `toml:"source_dir,omitempty"`
	Patterns  []string `toml:"patterns,omitempty"`
	TargetDir string   `toml:"target_dir,omitempty"`

	Category         string `toml:"category,omitempty"`
	Mode             string `toml:"mode,omitempty"`
	PersonalOnly     bool   `toml:"personal_only,omitempty"`
	PreserveExisting bool   `toml:"preserve_existing,omitempty"`
}

// IsGlob reports whether the rule expands against a source directory.
func (r Rule) IsGlob() bool {
	return r.SourceDir != ""
}

// Table is the document layout of a rules file.
type Table struct {
	Rules []Rule `toml:"rule"`
}
