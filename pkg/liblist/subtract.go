package liblist

// SubstractAllKeepSorting removes every occurrence of every subtrahend
// element from minuend, preserving the relative order of the survivors.
// The minuend is filtered in place; the returned slice shares its backing
// array with the caller's slice.
func SubstractAllKeepSorting(minuend *[]interface{}, subtrahend []interface{}) []interface{} {
	remove := valueSet(subtrahend)

	kept := (*minuend)[:0]
	for _, value := range *minuend {
		if _, ok := remove[value]; !ok {
			kept = append(kept, value)
		}
	}
	*minuend = kept

	return *minuend
}

// SubstractAllUnsortedFast returns the elements of minuend that are not in
// subtrahend, deduplicated. The minuend is not modified and the order of the
// result is not specified.
func SubstractAllUnsortedFast(minuend, subtrahend []interface{}) (result []interface{}) {
	keep := valueSet(minuend)
	for _, value := range subtrahend {
		delete(keep, value)
	}

	result = make([]interface{}, 0, len(keep))
	for value := range keep {
		result = append(result, value)
	}

	return
}

// LsSubstract removes, for each subtrahend element, the first matching
// occurrence from minuend. Elements absent from minuend are ignored. The
// minuend is mutated in place and returned.
func LsSubstract(minuend *[]interface{}, subtrahend []interface{}) []interface{} {
	for _, value := range subtrahend {
		for i, candidate := range *minuend {
			if candidate == value {
				*minuend = append((*minuend)[:i], (*minuend)[i+1:]...)
				break
			}
		}
	}
	return *minuend
}

func valueSet(values []interface{}) (result map[interface{}]struct{}) {
	result = make(map[interface{}]struct{}, len(values))
	for _, value := range values {
		result[value] = struct{}{}
	}
	return
}
