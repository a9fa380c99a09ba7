package orderedmap_test

import (
	"testing"

	"github.com/lestrrat-go/charref/internal/orderedmap"
	"github.com/stretchr/testify/require"
)

func TestMapOrder(t *testing.T) {
	m := orderedmap.New[string, int](0)
	for i, k := range []string{"zeta", "alpha", "mu"} {
		require.NoError(t, m.Set(k, i), "Set(%q) should succeed", k)
	}
	require.Equal(t, 3, m.Len())

	var keys []string
	for k := range m.Range() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"zeta", "alpha", "mu"}, keys, "Range should follow insertion order")
}

func TestMapDuplicate(t *testing.T) {
	m := orderedmap.New[string, string](1)
	require.NoError(t, m.Set("amp;", "&"))
	require.ErrorIs(t, m.Set("amp;", "x"), orderedmap.ErrDuplicateEntry)

	v, ok := m.Get("amp;")
	require.True(t, ok)
	require.Equal(t, "&", v, "duplicate Set must not overwrite")
	require.Equal(t, 1, m.Len())
}

func TestMapRangeBreak(t *testing.T) {
	m := orderedmap.New[int, int](4)
	for i := range 4 {
		require.NoError(t, m.Set(i, i*i))
	}

	var seen int
	for range m.Range() {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}
