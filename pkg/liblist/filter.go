package liblist

import (
	"strings"
)

// FilterContains returns the string elements of sequence that contain search
// as a substring. Non-string elements are dropped. An empty search matches
// every string element.
func FilterContains(sequence []interface{}, search string) (result []string) {
	result = []string{}
	for _, value := range sequence {
		if s, ok := value.(string); ok && strings.Contains(s, search) {
			result = append(result, s)
		}
	}
	return
}

// DelElementsContaining returns the elements of sequence that do not contain
// search. Non-string elements never contain anything, so they are kept.
// An empty search returns the input slice itself, untouched.
func DelElementsContaining(sequence []interface{}, search string) []interface{} {
	if search == "" {
		return sequence
	}

	result := make([]interface{}, 0, len(sequence))
	for _, value := range sequence {
		if s, ok := value.(string); ok && strings.Contains(s, search) {
			continue
		}
		result = append(result, value)
	}

	return result
}

// IsElementContaining reports whether any string element of sequence
// contains search as a substring. Non-string elements are skipped.
func IsElementContaining(sequence []interface{}, search string) bool {
	for _, value := range sequence {
		if s, ok := value.(string); ok && strings.Contains(s, search) {
			return true
		}
	}
	return false
}
