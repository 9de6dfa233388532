package types

import (
	"fmt"
	"os"
)

// Category groups directives by the kind of file they install.
type Category string

const (
	CategoryDotfile    Category = "dotfile"
	CategoryFont       Category = "font"
	CategoryTheme      Category = "theme"
	CategoryProfile    Category = "profile"
	CategorySSHConfig  Category = "ssh-config"
	CategoryKeybinding Category = "keybinding"
)

// SSHDirMode and SSHFileMode are enforced for ssh-config targets.
const (
	SSHDirMode  os.FileMode = 0700
	SSHFileMode os.FileMode = 0600
)

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryDotfile, CategoryFont, CategoryTheme, CategoryProfile, CategorySSHConfig, CategoryKeybinding:
		return c, nil
	case "":
		return CategoryDotfile, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// SyncDirective declares one source to target file synchronization.
// Directives are data; the engine decides what to do with them.
type SyncDirective struct {
	// Source is relative to the source root.
	Source string `json:"source"`

	// Target is absolute, under the home directory.
	Target string `json:"target"`

	Category Category `json:"category"`

	// Mode, when set, is applied to the target after copying.
	Mode *os.FileMode `json:"mode,omitempty"`

	// PersonalOnly directives are dropped in work mode.
	PersonalOnly bool `json:"personalOnly,omitempty"`

	// PreserveExisting directives never replace an existing target unless
	// the run is forced.
	PreserveExisting bool `json:"preserveExisting,omitempty"`
}

// EffectiveMode returns the permission mask to apply after copying, if any.
// ssh-config targets always get SSHFileMode.
func (d SyncDirective) EffectiveMode() (os.FileMode, bool) {
	if d.Category == CategorySSHConfig {
		return SSHFileMode, true
	}
	if d.Mode != nil {
		return *d.Mode, true
	}
	return 0, false
}

func (d SyncDirective) String() string {
	return fmt.Sprintf("%s -> %s (%s)", d.Source, d.Target, d.Category)
}

// FileMode is a helper for building directives with a permission mask.
func FileMode(m os.FileMode) *os.FileMode {
	return &m
}
