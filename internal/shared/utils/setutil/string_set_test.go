package setutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSet_AddAndHas(t *testing.T) {
	s := NewStringSet()
	s.Add("a")
	s.Add("b")
	s.Add("a")

	assert.True(t, s.Has("a"))
	assert.True(t, s.Has("b"))
	assert.False(t, s.Has("c"))
	assert.Equal(t, 2, s.Len())
}

func TestStringSet_PreservesInsertionOrder(t *testing.T) {
	s := NewStringSetWithCap(4)
	s.AddAll([]string{"c", "a", "b", "a", "c"})

	assert.Equal(t, []string{"c", "a", "b"}, s.ToSlice())
}

func TestStringSet_EmptyToSlice(t *testing.T) {
	s := NewStringSet()
	assert.Empty(t, s.ToSlice())
	assert.Equal(t, 0, s.Len())
}
