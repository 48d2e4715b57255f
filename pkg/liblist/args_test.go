package liblist_test

import (
	"testing"

	. "github.com/bitranox/lib-list/pkg/liblist"
	"github.com/stretchr/testify/assert"
)

func TestStripAndAddNonEmptyArgsToList_StripsWhitespace(t *testing.T) {
	// Fire
	result := StripAndAddNonEmptyArgsToList(" a ", "  b  ")

	assert.Equal(t, []string{"a", "b"}, result)
}

func TestStripAndAddNonEmptyArgsToList_DropsEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StripAndAddNonEmptyArgsToList("a", "", "b"))
}

func TestStripAndAddNonEmptyArgsToList_DropsNils(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StripAndAddNonEmptyArgsToList("a", nil, "b"))
}

func TestStripAndAddNonEmptyArgsToList_AllEmptyArgs(t *testing.T) {
	assert.Empty(t, StripAndAddNonEmptyArgsToList("", nil, "   "))
}

func TestStripAndAddNonEmptyArgsToList_NoArgs(t *testing.T) {
	assert.Empty(t, StripAndAddNonEmptyArgsToList())
}

func TestStripAndAddNonEmptyArgsToList_KeepsArgumentOrder(t *testing.T) {
	result := StripAndAddNonEmptyArgsToList("c", " b", nil, "a ")

	assert.Equal(t, []string{"c", "b", "a"}, result)
}
