package core

import (
	"strings"

	"github.com/arthur-debert/dotsync/pkg/types"
)

// restartApps maps a target path fragment to the application that only
// picks up the change after a restart.
var restartApps = []struct {
	fragment string
	app      string
}{
	{"/Library/Developer/Xcode/", "Xcode"},
	{"/Library/Preferences/com.apple.dt.Xcode", "Xcode"},
	{"/Library/Application Support/iTerm2/", "iTerm2"},
	{"/Library/Preferences/com.googlecode.iterm2", "iTerm2"},
	{"/Library/Application Support/Cursor/", "your editors"},
	{"/Library/Application Support/Code/", "your editors"},
}

// restartHints returns one hint per application whose files were copied.
func restartHints(results []types.SyncResult) []string {
	var hints []string
	seen := make(map[string]bool)
	for _, res := range results {
		if res.Action != types.ActionCopied {
			continue
		}
		for _, ra := range restartApps {
			if seen[ra.app] || !strings.Contains(res.Directive.Target, ra.fragment) {
				continue
			}
			seen[ra.app] = true
			hints = append(hints, "Please restart "+ra.app+" to apply configuration changes")
		}
	}
	return hints
}
