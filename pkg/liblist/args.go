package liblist

import (
	"strings"
)

// StripAndAddNonEmptyArgsToList strips whitespace from each string argument
// and returns the survivors in argument order. Nil arguments, non-string
// arguments and strings that become empty after stripping are discarded.
func StripAndAddNonEmptyArgsToList(args ...interface{}) (result []string) {
	result = []string{}
	for _, arg := range args {
		s, ok := arg.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		result = append(result, s)
	}
	return
}
