package liblist

import (
	"strings"
)

// LsElementsReplaceStrings replaces every occurrence of old with new in each
// string element. Non-string elements pass through unchanged.
func LsElementsReplaceStrings(sequence []interface{}, old, new string) (result []interface{}) {
	result = make([]interface{}, len(sequence))
	for i, value := range sequence {
		if s, ok := value.(string); ok {
			result[i] = strings.ReplaceAll(s, old, new)
		} else {
			result[i] = value
		}
	}
	return
}

// LsDoubleQuoteIfContainsBlank wraps any string element containing a space
// in double quotes. Strings without spaces and non-string elements are
// unchanged.
func LsDoubleQuoteIfContainsBlank(sequence []interface{}) (result []interface{}) {
	result = make([]interface{}, len(sequence))
	for i, value := range sequence {
		if s, ok := value.(string); ok && strings.Contains(s, " ") {
			result[i] = `"` + s + `"`
		} else {
			result[i] = value
		}
	}
	return
}

// StrInListToLower lowercases every element of sequence.
func StrInListToLower(sequence []string) (result []string) {
	result = make([]string, len(sequence))
	for i, s := range sequence {
		result[i] = strings.ToLower(s)
	}
	return
}

// StrInListLowerAndDeDouble lowercases every element, then removes
// duplicates keeping the order of first occurrence among the lowercased
// forms.
func StrInListLowerAndDeDouble(sequence []string) (result []string) {
	result = make([]string, 0, len(sequence))
	seen := make(map[string]struct{}, len(sequence))

	for _, s := range sequence {
		lowered := strings.ToLower(s)
		if _, ok := seen[lowered]; ok {
			continue
		}
		seen[lowered] = struct{}{}
		result = append(result, lowered)
	}

	return
}

// StrInListNonCaseSensitive reports whether needle matches any element of
// sequence, ignoring case.
func StrInListNonCaseSensitive(needle string, sequence []string) bool {
	for _, s := range sequence {
		if strings.EqualFold(needle, s) {
			return true
		}
	}
	return false
}
