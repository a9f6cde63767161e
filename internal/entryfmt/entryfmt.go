// Package entryfmt renders and applies log entries.
//
// Two entry kinds share one persistence path: commit-derived entries carry an
// abbreviated hash annotation, manual entries do not. De-duplication is by
// exact rendered line; a commit entry whose message matches an existing
// entry under a different hash replaces it, so amended commits do not pile
// up.
package entryfmt

import (
	"fmt"
	"strings"
)

const shortHashLen = 7

// FormatCommit renders a commit-derived entry line: "- (abc1234) subject".
// The hash is abbreviated to seven characters.
func FormatCommit(hash, message string) string {
	return fmt.Sprintf("- (%s) %s", ShortHash(hash), message)
}

// FormatManual renders a manual entry line: "- text".
func FormatManual(text string) string {
	return "- " + text
}

// ShortHash abbreviates a commit hash to seven characters.
func ShortHash(hash string) string {
	if len(hash) > shortHashLen {
		return hash[:shortHashLen]
	}
	return hash
}

// ParseCommit splits a rendered commit entry into hash and message.
// Lines without a hash annotation report ok=false.
func ParseCommit(line string) (hash, message string, ok bool) {
	if !strings.HasPrefix(line, "- (") {
		return "", "", false
	}
	rest := line[len("- ("):]
	end := strings.Index(rest, ") ")
	if end < 0 {
		return "", "", false
	}
	return rest[:end], rest[end+len(") "):], true
}

// ValidRef reports whether a commit ref is loggable. Hooks fired without a
// real commit pass placeholder refs prefixed "no-sha".
func ValidRef(ref string) bool {
	return ref != "" && !strings.HasPrefix(ref, "no-sha")
}
