package liblist

import (
	"strings"
	"unicode"
)

// LsDelEmptyElements returns the elements of sequence that are truthy.
// Empty strings, nil, numeric zero and false are dropped; whitespace-only
// strings are truthy and kept.
func LsDelEmptyElements(sequence []interface{}) (result []interface{}) {
	result = make([]interface{}, 0, len(sequence))
	for _, value := range sequence {
		if isTruthy(value) {
			result = append(result, value)
		}
	}
	return
}

// LsLstripList removes the contiguous run of leading elements equal to
// sentinel, stopping at the first element that differs.
func LsLstripList(sequence []interface{}, sentinel interface{}) []interface{} {
	start := 0
	for start < len(sequence) && sequence[start] == sentinel {
		start++
	}
	return sequence[start:]
}

// LsRstripList removes the contiguous run of trailing elements equal to
// sentinel.
func LsRstripList(sequence []interface{}, sentinel interface{}) []interface{} {
	end := len(sequence)
	for end > 0 && sequence[end-1] == sentinel {
		end--
	}
	return sequence[:end]
}

// LsStripList trims sentinel elements from both ends of sequence.
func LsStripList(sequence []interface{}, sentinel interface{}) []interface{} {
	return LsRstripList(LsLstripList(sequence, sentinel), sentinel)
}

// LsStripElements strips leading and trailing cutset characters from each
// string element. An empty cutset strips Unicode whitespace. Non-string
// elements pass through unchanged.
func LsStripElements(sequence []interface{}, cutset string) (result []interface{}) {
	result = make([]interface{}, len(sequence))
	for i, value := range sequence {
		if s, ok := value.(string); ok {
			result[i] = stripString(s, cutset)
		} else {
			result[i] = value
		}
	}
	return
}

// LsRstripElements strips trailing cutset characters from each string
// element. An empty cutset strips Unicode whitespace. Non-string elements
// pass through unchanged.
func LsRstripElements(sequence []interface{}, cutset string) (result []interface{}) {
	result = make([]interface{}, len(sequence))
	for i, value := range sequence {
		if s, ok := value.(string); ok {
			result[i] = rstripString(s, cutset)
		} else {
			result[i] = value
		}
	}
	return
}

// LsStripAfz strips whitespace from each string element, then removes one
// matching pair of surrounding quotes ("..." or '...'). Mismatched or
// absent quote pairs are left as they are. A nil sequence yields an empty
// result. Non-string elements pass through unchanged.
func LsStripAfz(sequence []interface{}) (result []interface{}) {
	result = make([]interface{}, len(sequence))
	for i, value := range sequence {
		if s, ok := value.(string); ok {
			result[i] = stripAfz(s)
		} else {
			result[i] = value
		}
	}
	return
}

func stripAfz(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

func stripString(s, cutset string) string {
	if cutset == "" {
		return strings.TrimSpace(s)
	}
	return strings.Trim(s, cutset)
}

func rstripString(s, cutset string) string {
	if cutset == "" {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	}
	return strings.TrimRight(s, cutset)
}

func isTruthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	}
	return true
}
