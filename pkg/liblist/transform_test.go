package liblist_test

import (
	"testing"

	. "github.com/bitranox/lib-list/pkg/liblist"
	"github.com/stretchr/testify/assert"
)

//
// LsElementsReplaceStrings

func TestLsElementsReplaceStrings_ReplacesInStrings(t *testing.T) {
	// Fire
	result := LsElementsReplaceStrings([]interface{}{"abc", "xyz"}, "a", "z")

	assert.Equal(t, []interface{}{"zbc", "xyz"}, result)
}

func TestLsElementsReplaceStrings_ReplacesAllOccurrences(t *testing.T) {
	result := LsElementsReplaceStrings([]interface{}{"aaa"}, "a", "b")

	assert.Equal(t, []interface{}{"bbb"}, result)
}

func TestLsElementsReplaceStrings_NonStringsPassThrough(t *testing.T) {
	result := LsElementsReplaceStrings([]interface{}{"abc", 1}, "a", "z")

	assert.Equal(t, []interface{}{"zbc", 1}, result)
}

func TestLsElementsReplaceStrings_EmptyInput(t *testing.T) {
	assert.Empty(t, LsElementsReplaceStrings([]interface{}{}, "a", "z"))
}

//
// LsDoubleQuoteIfContainsBlank

func TestLsDoubleQuoteIfContainsBlank_QuotesStringsWithSpaces(t *testing.T) {
	result := LsDoubleQuoteIfContainsBlank([]interface{}{"has space"})

	assert.Equal(t, []interface{}{`"has space"`}, result)
}

func TestLsDoubleQuoteIfContainsBlank_QuotesOncePerString(t *testing.T) {
	result := LsDoubleQuoteIfContainsBlank([]interface{}{"a b c"})

	assert.Equal(t, []interface{}{`"a b c"`}, result)
}

func TestLsDoubleQuoteIfContainsBlank_SimpleStringsUnchanged(t *testing.T) {
	result := LsDoubleQuoteIfContainsBlank([]interface{}{"simple", ""})

	assert.Equal(t, []interface{}{"simple", ""}, result)
}

//
// StrInListToLower

func TestStrInListToLower_LowercasesAll(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StrInListToLower([]string{"A", "B"}))
}

func TestStrInListToLower_Idempotent(t *testing.T) {
	sequence := []string{"Hello", "WORLD", "mixed"}

	once := StrInListToLower(sequence)

	assert.Equal(t, once, StrInListToLower(once))
}

//
// StrInListLowerAndDeDouble

func TestStrInListLowerAndDeDouble_LowercasesAndDeduplicates(t *testing.T) {
	result := StrInListLowerAndDeDouble([]string{"A", "a", "B"})

	assert.Equal(t, []string{"a", "b"}, result)
}

func TestStrInListLowerAndDeDouble_EmptyInput(t *testing.T) {
	assert.Empty(t, StrInListLowerAndDeDouble([]string{}))
}

//
// StrInListNonCaseSensitive

func TestStrInListNonCaseSensitive_Cases(t *testing.T) {
	tests := []struct {
		name     string
		needle   string
		sequence []string
		expected bool
	}{
		{"match across case", "a", []string{"A", "b"}, true},
		{"no match", "c", []string{"A", "b"}, false},
		{"empty sequence", "a", []string{}, false},
		{"mixed case", "HeLLo", []string{"HELLO", "world"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StrInListNonCaseSensitive(tt.needle, tt.sequence))
		})
	}
}
