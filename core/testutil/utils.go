package testutil

import "strings"

// Lines splits written csv bytes into individual lines with the
// trailing newline stripped
func Lines(b []byte) []string {
	s := strings.TrimRight(string(b), "\n")

	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}
