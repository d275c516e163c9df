// Package permissions provides utilities for parsing and handling file permissions
package permissions

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultFilePerms is the mode of written save and JSON files
const DefaultFilePerms = 0o644

// ParseOctalString parses an octal permission string into a file mode.
// Handles formats like "644", "0644", "0o644". An empty string selects
// DefaultFilePerms.
func ParseOctalString(s string) (os.FileMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultFilePerms, nil
	}

	digits := strings.TrimPrefix(strings.ToLower(s), "0o")

	val, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return DefaultFilePerms, fmt.Errorf("invalid permission string %q: %w", s, err)
	}
	if val > 0o777 {
		return DefaultFilePerms, fmt.Errorf("invalid permission string %q: only permission bits are allowed", s)
	}

	return os.FileMode(val), nil
}

// FormatOctal formats a permission value as an octal string
func FormatOctal(perm os.FileMode) string {
	return fmt.Sprintf("0%o", perm.Perm())
}
