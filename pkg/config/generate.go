package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	dserrors "github.com/arthur-debert/dotsync/pkg/errors"
)

// Dump renders the effective configuration as TOML.
func Dump(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", dserrors.Wrap(err, dserrors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}

// GenerateConfigContent returns a user config template: the defaults with
// every value commented out.
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues comments out every assignment, keeping comments,
// blank lines and section headers.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	inArray := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if inArray {
			result = append(result, "# "+line)
			if strings.HasPrefix(trimmed, "]") {
				inArray = false
			}
			continue
		}

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		if strings.HasSuffix(trimmed, "[") {
			inArray = true
		}
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
