package charref

import (
	"testing"
	"unicode/utf8"

	"github.com/lestrrat-go/charref/entity"
	"github.com/stretchr/testify/require"
)

func TestAppendCodepoint(t *testing.T) {
	for _, cp := range []uint32{0, 0x41, 0x7F, 0x80, 0x7FF, 0x800, 0xFFFD, 0xFFFF, 0x10000, 0x1F600, MaxCodepoint} {
		expected := utf8.AppendRune(nil, rune(cp))
		require.Equal(t, expected, appendCodepoint(nil, cp), "appendCodepoint(%#x)", cp)
	}

	for _, cp := range []uint32{MaxCodepoint + 1, 0x7FFFFFFF, invalidCodepoint} {
		require.Equal(t, []byte("\ufffd"), appendCodepoint(nil, cp), "appendCodepoint(%#x) should be U+FFFD", cp)
	}

	// no surrogate checks
	require.Equal(t, []byte{0xED, 0xBF, 0xBF}, appendCodepoint(nil, 0xDFFF))
	require.Equal(t, []byte("ab\u00e9"), appendCodepoint([]byte("ab"), 0xE9), "appendCodepoint should append")
}

func TestDigitRun(t *testing.T) {
	push := func(r *digitRun, s string) {
		for i := 0; i < len(s); i++ {
			require.True(t, r.accepts(int(s[i])), "%q should be accepted", s[i])
			r.push(s[i])
		}
	}

	t.Run("decimal", func(t *testing.T) {
		var r digitRun
		r.reset(false)
		require.True(t, r.empty())
		require.Equal(t, uint32(invalidCodepoint), r.codepoint(), "an empty run has no value")

		push(&r, "0000000065")
		require.Equal(t, "065", string(r.bytes()), "leading zeros are collapsed")
		require.Equal(t, uint32(65), r.codepoint())

		require.False(t, r.accepts('a'))
		require.False(t, r.accepts(';'))
		require.False(t, r.accepts(endOfInput))
	})

	t.Run("leading zero", func(t *testing.T) {
		var r digitRun
		r.reset(false)
		push(&r, "01114111")
		require.Equal(t, "01114111", string(r.bytes()), "a leading zero does not count against the cap")
		require.Equal(t, uint32(MaxCodepoint), r.codepoint())

		push(&r, "1")
		require.Equal(t, "01114111", string(r.bytes()))
		require.Equal(t, uint32(invalidCodepoint), r.codepoint())
	})

	t.Run("zero", func(t *testing.T) {
		var r digitRun
		r.reset(false)
		push(&r, "0000")
		require.Equal(t, "0", string(r.bytes()))
		require.Equal(t, uint32(0), r.codepoint())
	})

	t.Run("decimal cap", func(t *testing.T) {
		var r digitRun
		r.reset(false)
		push(&r, "1114111")
		require.Equal(t, uint32(MaxCodepoint), r.codepoint())

		push(&r, "0")
		require.Equal(t, "1114111", string(r.bytes()), "digits past the cap are not stored")
		require.Equal(t, uint32(invalidCodepoint), r.codepoint(), "digits past the cap make the value invalid")
	})

	t.Run("hex", func(t *testing.T) {
		var r digitRun
		r.reset(true)
		require.True(t, r.accepts('f'))
		require.True(t, r.accepts('F'))
		require.False(t, r.accepts('g'))

		push(&r, "00aBcD")
		require.Equal(t, "0aBcD", string(r.bytes()))
		require.Equal(t, uint32(0xABCD), r.codepoint())
	})

	t.Run("hex cap", func(t *testing.T) {
		var r digitRun
		r.reset(true)
		push(&r, "10FFFF")
		require.Equal(t, uint32(MaxCodepoint), r.codepoint())
		push(&r, "F")
		require.Equal(t, 6, len(r.bytes()))
		require.Equal(t, uint32(invalidCodepoint), r.codepoint())
	})
}

func TestStepReprocess(t *testing.T) {
	s := newSession(entity.HTML(), false)

	out, again := s.step(nil, '&')
	require.False(t, again)
	require.Empty(t, out)
	require.Equal(t, stateAfterAmp, s.state)

	out, again = s.step(out, ' ')
	require.True(t, again, "a byte that breaks a reference must be handed back")
	require.Equal(t, stateDefault, s.state, "a handed back byte is processed from the default state")
	require.Equal(t, "&", string(out))

	out, again = s.step(out, ' ')
	require.False(t, again)
	require.Equal(t, "& ", string(out))
}

func TestStepStates(t *testing.T) {
	type transition struct {
		c     int
		state decodeState
		again bool
	}

	data := map[string]struct {
		steps  []transition
		output string
	}{
		"decimal": {
			steps: []transition{
				{'&', stateAfterAmp, false},
				{'#', stateAfterHash, false},
				{'6', stateDecimalDigits, false},
				{'5', stateDecimalDigits, false},
				{';', stateDefault, false},
			},
			output: "A",
		},
		"hex without terminator": {
			steps: []transition{
				{'&', stateAfterAmp, false},
				{'#', stateAfterHash, false},
				{'X', stateHexDigits, false},
				{'4', stateHexDigits, false},
				{'1', stateHexDigits, false},
				{'<', stateDefault, true},
				{'<', stateDefault, false},
			},
			output: "A<",
		},
		"hex without digits": {
			steps: []transition{
				{'&', stateAfterAmp, false},
				{'#', stateAfterHash, false},
				{'x', stateHexDigits, false},
				{';', stateDefault, true},
				{';', stateDefault, false},
			},
			output: "&#x;",
		},
		"named": {
			steps: []transition{
				{'&', stateAfterAmp, false},
				{'l', stateNameMatch, false},
				{'t', stateNameMatch, false},
				{';', stateNameMatch, false},
				{'x', stateDefault, true},
				{'x', stateDefault, false},
			},
			output: "<x",
		},
		"named at end of input": {
			steps: []transition{
				{'&', stateAfterAmp, false},
				{'g', stateNameMatch, false},
				{'t', stateNameMatch, false},
				{endOfInput, stateDefault, true},
				{endOfInput, stateDefault, false},
			},
			output: ">",
		},
		"unknown name": {
			steps: []transition{
				{'&', stateAfterAmp, false},
				{'b', stateNameMatch, false},
				{'=', stateDefault, true},
				{'=', stateDefault, false},
			},
			output: "&b=",
		},
	}

	for name, tc := range data {
		t.Run(name, func(t *testing.T) {
			s := newSession(entity.HTML(), false)
			var out []byte
			for i, tr := range tc.steps {
				var again bool
				out, again = s.step(out, tr.c)
				require.Equal(t, tr.state, s.state, "state after step %d", i)
				require.Equal(t, tr.again, again, "reprocess after step %d", i)
			}
			require.Equal(t, tc.output, string(out))
		})
	}
}

func TestSessionCounters(t *testing.T) {
	s := newSession(entity.HTML(), false)
	var out []byte
	for _, c := range []byte("&amp; &#65; &#x110000; &bogus; &#;") {
		out = s.feed(out, int(c))
	}
	out = s.finish(out)

	require.Equal(t, "& A \ufffd &bogus; &#;", string(out))
	require.Equal(t, counters{named: 1, numeric: 2, invalid: 1, abandoned: 2}, s.stats)

	s.reset()
	require.Equal(t, counters{}, s.stats)
	require.Equal(t, stateDefault, s.state)
}

func TestSessionNameBound(t *testing.T) {
	idx := entity.HTML()
	s := newSession(idx, false)
	var out []byte
	for _, c := range []byte("&CounterClockwiseContourIntegral;") {
		out = s.feed(out, int(c))
		require.LessOrEqual(t, len(s.name), idx.MaxNameLength())
	}
	out = s.finish(out)
	require.Equal(t, "\u2233", string(out))
	require.Equal(t, idx.MaxNameLength(), cap(s.name), "the name buffer never grows")
}
