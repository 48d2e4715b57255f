// Package liblist provides small, independent helpers for manipulating
// in-memory sequences: deduplication, substring and glob filtering,
// subtraction, trimming, per-element string operations and chunking.
//
// Sequences are []interface{} so that callers can mix strings with other
// values. Helpers that match or transform text skip or pass through
// non-string elements; each function documents which.
package liblist

// Deduplicate returns the elements of sequence with duplicates removed,
// keeping the order of first occurrence. The input is not modified.
func Deduplicate(sequence []interface{}) (result []interface{}) {
	result = make([]interface{}, 0, len(sequence))
	seen := make(map[interface{}]struct{}, len(sequence))

	for _, value := range sequence {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}

	return
}
