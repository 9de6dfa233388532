// Package validate checks that structured source files are well formed
// before they are installed. Findings are warnings; a malformed editor
// settings file is still copied, since the editor reports a better error
// than we can.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// binaryPlistMagic starts every binary property list.
var binaryPlistMagic = []byte("bplist00")

// Validator inspects files on a filesystem.
type Validator struct {
	fs afero.Fs
}

// New creates a validator reading from fsys.
func New(fsys afero.Fs) *Validator {
	return &Validator{fs: fsys}
}

// Supported reports whether path has a format the validator understands.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".plist", ".xccolortheme", ".itermcolors", ".idekeybindings":
		return true
	}
	return false
}

// Check returns the problems found in path. Unsupported formats and
// readable, well-formed files yield no warnings.
func (v *Validator) Check(path string) []string {
	if !Supported(path) {
		return nil
	}

	data, err := afero.ReadFile(v.fs, path)
	if err != nil {
		return []string{fmt.Sprintf("cannot read %s: %v", filepath.Base(path), err)}
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return CheckJSONC(filepath.Base(path), data)
	}
	return CheckPlist(filepath.Base(path), data)
}

// CheckJSONC accepts JSON with comments and trailing commas, which is what
// VS Code, Cursor and iTerm2 dynamic profiles use.
func CheckJSONC(name string, data []byte) []string {
	if len(bytes.TrimSpace(data)) == 0 {
		return []string{fmt.Sprintf("%s is empty", name)}
	}

	var doc interface{}
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return []string{fmt.Sprintf("%s is not valid JSON: %v", name, err)}
	}

	switch doc.(type) {
	case map[string]interface{}, []interface{}:
		return nil
	default:
		return []string{fmt.Sprintf("%s holds a bare JSON value, expected an object or array", name)}
	}
}

// CheckPlist validates an XML property list. Binary plists are accepted
// as is.
func CheckPlist(name string, data []byte) []string {
	if bytes.HasPrefix(data, binaryPlistMagic) {
		return nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return []string{fmt.Sprintf("%s is not valid XML: %v", name, err)}
	}

	root := doc.Root()
	if root == nil {
		return []string{fmt.Sprintf("%s has no root element", name)}
	}
	if root.Tag != "plist" {
		return []string{fmt.Sprintf("%s has root <%s>, expected <plist>", name, root.Tag)}
	}
	if len(root.ChildElements()) == 0 {
		return []string{fmt.Sprintf("%s is an empty plist", name)}
	}
	return nil
}
