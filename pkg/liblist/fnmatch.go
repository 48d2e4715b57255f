package liblist

import (
	"github.com/bmatcuk/doublestar/v4"
)

// FilterFnmatch returns the string elements of sequence that match the
// shell-glob pattern (`*`, `?`, `[set]`). Non-string elements are dropped.
func FilterFnmatch(sequence []interface{}, pattern string) (result []string) {
	result = []string{}
	for _, value := range sequence {
		if s, ok := value.(string); ok && matchesPattern(s, pattern) {
			result = append(result, s)
		}
	}
	return
}

// IsFnmatching reports whether any string element of sequence matches the
// shell-glob pattern.
func IsFnmatching(sequence []interface{}, pattern string) bool {
	for _, value := range sequence {
		if s, ok := value.(string); ok && matchesPattern(s, pattern) {
			return true
		}
	}
	return false
}

// IsFnmatchingOnePattern reports whether any pattern matches any string
// element of sequence. It stops at the first match.
func IsFnmatchingOnePattern(sequence []interface{}, patterns []string) bool {
	for _, pattern := range patterns {
		if IsFnmatching(sequence, pattern) {
			return true
		}
	}
	return false
}

// A malformed pattern matches nothing.
func matchesPattern(value, pattern string) bool {
	matched, err := doublestar.Match(pattern, value)
	return err == nil && matched
}
