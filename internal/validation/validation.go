// Package validation provides input validation helpers for operator-provided values.
package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidatePort parses s as a TCP port, checking the 1-65535 range.
func ValidatePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", s, err)
	}
	if err := CheckPortRange(port); err != nil {
		return 0, err
	}
	return port, nil
}

// CheckPortRange reports whether port falls within the valid TCP range.
func CheckPortRange(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", port)
	}
	return nil
}

// SplitKeys splits a comma-separated key list, discarding whitespace-only entries.
func SplitKeys(s string) []string {
	keys := []string{}
	for _, k := range strings.Split(s, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
