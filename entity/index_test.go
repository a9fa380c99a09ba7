package entity_test

import (
	"sync"
	"testing"

	"github.com/lestrrat-go/charref/entity"
	"github.com/stretchr/testify/require"
)

func TestBucket(t *testing.T) {
	data := map[byte]int{
		'A': 0,
		'Z': 25,
		'a': 26,
		'm': 38,
		'z': 51,
	}
	for c, expected := range data {
		b, ok := entity.Bucket(c)
		require.True(t, ok, "Bucket(%q) should succeed", c)
		require.Equal(t, expected, b, "Bucket(%q)", c)
	}

	for _, c := range []byte{'0', '9', '#', ';', '@', '[', '`', '{', 0x80} {
		_, ok := entity.Bucket(c)
		require.False(t, ok, "Bucket(%q) should fail", c)
	}
}

func TestHTMLIndex(t *testing.T) {
	idx := entity.HTML()
	require.Same(t, idx, entity.HTML(), "HTML() should be built once")
	require.Equal(t, 2231, idx.Len())
	require.Equal(t, len("CounterClockwiseContourIntegral;"), idx.MaxNameLength())

	data := map[string]string{
		"amp":                              "&",
		"amp;":                             "&",
		"AMP;":                             "&",
		"lt;":                              "<",
		"not":                              "\u00ac",
		"notin;":                           "\u2209",
		"NotEqualTilde;":                   "\u2242\u0338",
		"Afr;":                             "\U0001d504",
		"CounterClockwiseContourIntegral;": "\u2233",
	}
	for name, expected := range data {
		v, ok := idx.Lookup(name)
		require.True(t, ok, "Lookup(%q) should succeed", name)
		require.Equal(t, expected, v, "Lookup(%q)", name)
	}

	for _, name := range []string{"", "am", "Amp;", "notin", "unknownentity;", "amp;;"} {
		_, ok := idx.Lookup(name)
		require.False(t, ok, "Lookup(%q) should fail", name)
	}
}

func TestIndexWalk(t *testing.T) {
	idx := entity.HTML()

	n, ok := idx.Root('a')
	require.True(t, ok)
	_, terminal := idx.Value(n)
	require.False(t, terminal, "single letter prefix is not a name")

	for _, c := range []byte("mp") {
		n, ok = idx.Child(n, c)
		require.True(t, ok, "child %q should exist", c)
	}
	v, terminal := idx.Value(n)
	require.True(t, terminal, "amp is a legacy name")
	require.Equal(t, "&", v)

	semi, ok := idx.Child(n, ';')
	require.True(t, ok, "amp; continues below amp")
	v, terminal = idx.Value(semi)
	require.True(t, terminal)
	require.Equal(t, "&", v)

	_, ok = idx.Child(semi, ';')
	require.False(t, ok)

	_, ok = idx.Child(n, 'A')
	require.False(t, ok, "matching after the first letter is case sensitive")
}

func TestXMLIndex(t *testing.T) {
	idx := entity.XML()
	require.Equal(t, 5, idx.Len())

	for name, expected := range map[string]string{"lt;": "<", "gt;": ">", "amp;": "&", "apos;": "'", "quot;": `"`} {
		v, ok := idx.Lookup(name)
		require.True(t, ok, "Lookup(%q) should succeed", name)
		require.Equal(t, expected, v)
	}

	_, ok := idx.Lookup("amp")
	require.False(t, ok, "XML has no legacy names")

	_, ok = idx.Root('b')
	require.False(t, ok, "no XML entity starts with 'b'")
}

func TestIndexAll(t *testing.T) {
	defs := []entity.Definition{
		{Name: "zz;", Value: "1"},
		{Name: "aa", Value: "2"},
		{Name: "aa;", Value: "3"},
	}
	idx, err := entity.New(defs)
	require.NoError(t, err)

	var got []entity.Definition
	for name, value := range idx.All() {
		got = append(got, entity.Definition{Name: name, Value: value})
	}
	require.Equal(t, defs, got, "All should yield definitions in input order")
}

func TestNewErrors(t *testing.T) {
	data := map[string]struct {
		defs []entity.Definition
		err  error
	}{
		"duplicate": {
			defs: []entity.Definition{{Name: "amp;", Value: "&"}, {Name: "amp;", Value: "+"}},
			err:  entity.ErrDuplicateEntry,
		},
		"empty name": {
			defs: []entity.Definition{{Name: "", Value: "x"}},
			err:  entity.ErrEmptyName,
		},
		"empty value": {
			defs: []entity.Definition{{Name: "x;", Value: ""}},
			err:  entity.ErrEmptyValue,
		},
		"digit first": {
			defs: []entity.Definition{{Name: "1x;", Value: "x"}},
			err:  entity.ErrInvalidName,
		},
		"punctuation": {
			defs: []entity.Definition{{Name: "a-b;", Value: "x"}},
			err:  entity.ErrInvalidName,
		},
	}

	for name, tc := range data {
		t.Run(name, func(t *testing.T) {
			_, err := entity.New(tc.defs)
			require.ErrorIs(t, err, tc.err)
		})
	}

	require.Panics(t, func() {
		entity.MustNew([]entity.Definition{{Name: "", Value: "x"}})
	})
}

func TestIndexConcurrentReaders(t *testing.T) {
	idx := entity.HTML()

	var wg sync.WaitGroup
	errs := make([]bool, 16)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name, value := range idx.All() {
				v, ok := idx.Lookup(name)
				if !ok || v != value {
					errs[i] = true
					return
				}
			}
		}()
	}
	wg.Wait()

	for i, failed := range errs {
		require.False(t, failed, "reader %d saw an inconsistent index", i)
	}
}

func TestHTML5DefinitionsCopy(t *testing.T) {
	defs := entity.HTML5Definitions()
	require.Len(t, defs, 2231)
	defs[0].Value = "changed"

	v, ok := entity.HTML().Lookup(entity.HTML5Definitions()[0].Name)
	require.True(t, ok)
	require.NotEqual(t, "changed", v, "HTML5Definitions must hand out a copy")
}
