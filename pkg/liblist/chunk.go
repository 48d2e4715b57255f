package liblist

import (
	"github.com/bitranox/lib-list/pkg/errors"
)

// SplitListIntoJunks splits sequence into consecutive chunks of at most
// junkSize elements. Every chunk except possibly the last has exactly
// junkSize elements. When junkSize covers the whole sequence (including an
// empty sequence), the single chunk is the input slice itself; chunks are
// subslices sharing the input's backing array either way. A junkSize below
// one is an invalid argument.
func SplitListIntoJunks(sequence []interface{}, junkSize int) (junks [][]interface{}, err error) {
	if junkSize < 1 {
		err = errors.Errorv("junk size must be positive", junkSize)
		return
	}

	if junkSize >= len(sequence) {
		junks = [][]interface{}{sequence}
		return
	}

	for start := 0; start < len(sequence); start += junkSize {
		end := start + junkSize
		if end > len(sequence) {
			end = len(sequence)
		}
		junks = append(junks, sequence[start:end])
	}

	return
}
