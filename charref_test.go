package charref_test

import (
	"strings"
	"testing"

	"github.com/lestrrat-go/charref"
	"github.com/lestrrat-go/charref/entity"
	"github.com/stretchr/testify/require"
)

func TestDecodeString(t *testing.T) {
	data := map[string]string{
		// passthrough
		"":                    "",
		"plain text, no refs": "plain text, no refs",
		"\xff\xfe&amp;\x80":   "\xff\xfe&\x80",
		"a.png?x=1&b=2":       "a.png?x=1&b=2",
		"& amp;":              "& amp;",
		"&&amp;":              "&&",
		"&unknownentity;":     "&unknownentity;",
		"&Amp;":               "&Amp;",
		"&amp;amp;":           "&amp;",

		// named
		"&amp;":            "&",
		"&amp":             "&",
		"&amp;x":           "&x",
		"&ampx":            "&x",
		"&AMP;":            "&",
		"&lt;b&gt;":        "<b>",
		"&hellip;":         "\u2026",
		"&fjlig;":          "fj",
		"&NotEqualTilde;":  "\u2242\u0338",
		"a.png?x=1&copy=2": "a.png?x=1\u00a9=2",
		"&not":             "\u00ac",
		"&not;":            "\u00ac",
		"&notx":            "\u00acx",
		"&notin;":          "\u2209",
		"&notin":           "&notin",
		"&notit;":          "&notit;",
		"&noti;":           "&noti;",
		"&notin;;":         "\u2209;",

		// numeric
		"&#65;":           "A",
		"&#x41;":          "A",
		"&#X41;":          "A",
		"&#x4a;&#x4A;":    "JJ",
		"&#65 b":          "A b",
		"&#65;;":          "A;",
		"&#65&amp;":       "A&",
		"&#0000000065;":   "A",
		"&#x0041;":        "A",
		"&#0;":            "\x00",
		"&#00;":           "\x00",
		"&#128;":          "\u0080",
		"&#x7FF;":         "\u07ff",
		"&#x800;":         "\u0800",
		"&#xFFFF;":        "\uffff",
		"&#x10000;":       "\U00010000",
		"&#1114111;":      "\U0010ffff",
		"&#x10FFFF;":      "\U0010ffff",
		"&#xD800;":        "\xed\xa0\x80",
		"&#x110000;":      "\ufffd",
		"&#1114112;":      "\ufffd",
		"&#99999999;":     "\ufffd",
		"&#11141110;":     "\ufffd",
		"&#x0000001F600;": "\U0001f600",
		"&#01114111;":     "\U0010ffff",
		"&#x0010FFFF;":    "\U0010ffff",
		"&#011141110;":    "\ufffd",

		// abandoned numeric
		"&#;":      "&#;",
		"&#x;":     "&#x;",
		"&#X;":     "&#X;",
		"&#xg;":    "&#xg;",
		"&#a;":     "&#a;",
		"&#&#65;":  "&#A",
		"&#x&amp;": "&#x&",

		// end of input
		"&":     "&",
		"&#":    "&#",
		"&#x":   "&#x",
		"&#65":  "A",
		"&#x41": "A",
		"&lt":   "<",
		"&no":   "&no",
	}

	for input, expected := range data {
		require.Equal(t, expected, charref.DecodeString(input), "DecodeString(%q)", input)
		require.Equal(t, []byte(expected), charref.DecodeBytes([]byte(input)), "DecodeBytes(%q)", input)
	}
}

func TestDecodeLongDigitRun(t *testing.T) {
	long := "&#" + strings.Repeat("1", 10000) + ";"
	require.Equal(t, "\ufffd", charref.DecodeString(long), "over-long decimal runs are out of range")

	zeros := "&#x" + strings.Repeat("0", 10000) + "41;"
	require.Equal(t, "A", charref.DecodeString(zeros), "leading zeros do not count toward the digit limit")
}

func TestDecodeIdentity(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"<p class=\"x\">no references here</p>\n",
		"\x00\x01\x02\xff",
		strings.Repeat("abc;#x", 1000),
	}

	for _, input := range inputs {
		once := charref.DecodeString(input)
		require.Equal(t, input, once, "input without '&' must pass through")
		require.Equal(t, once, charref.DecodeString(once), "decoding plain text again is a no-op")
	}
}

func TestDecodeXMLTable(t *testing.T) {
	d, err := charref.NewDecoder(charref.WithIndex(entity.XML()))
	require.NoError(t, err)

	data := map[string]string{
		"&lt;&gt;&amp;&apos;&quot;": `<>&'"`,
		"&amp":                      "&amp",
		"&nbsp;":                    "&nbsp;",
		"&b;":                       "&b;",
		"&#x41;":                    "A",
	}
	for input, expected := range data {
		require.Equal(t, expected, d.DecodeString(input), "DecodeString(%q)", input)
	}
}

func TestDecodeStrictEOF(t *testing.T) {
	d, err := charref.NewDecoder(charref.WithStrictEOF(true))
	require.NoError(t, err)

	data := map[string]string{
		"&amp":      "&amp",
		"&amp;":     "&amp;",
		"x &#65":    "x &#65",
		"&#x41":     "&#x41",
		"&#0000":    "&#0",
		"&#01":      "&#01",
		"&#x00041":  "&#x041",
		"&":         "&",
		"&#x":       "&#x",
		"&amp; &lt": "& &lt",
		"&#65;":     "A",
		"&amp;x":    "&x",
	}
	for input, expected := range data {
		require.Equal(t, expected, d.DecodeString(input), "DecodeString(%q)", input)
	}
}

func TestNewDecoderErrors(t *testing.T) {
	_, err := charref.NewDecoder(charref.WithChunkSize(0))
	require.ErrorIs(t, err, charref.ErrInvalidChunkSize)

	_, err = charref.NewDecoder(charref.WithIndex(nil))
	require.ErrorIs(t, err, charref.ErrNilIndex)

	d, err := charref.NewDecoder()
	require.NoError(t, err)
	require.Same(t, entity.HTML(), d.Index(), "the HTML index is the default")
}
