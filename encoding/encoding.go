// Package encoding maps charset names to the decoders in
// golang.org/x/text/encoding, so that input in a legacy charset can be
// converted to UTF-8 before character references are decoded. It exists
// mostly to keep package names such as "unicode" from clashing with the
// standard library.
package encoding

import (
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

var encodings = map[string]enc.Encoding{
	"utf8":              unicode.UTF8,
	"utf-8":             unicode.UTF8,
	"utf-16le":          unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":          unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-16":            unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"euc-jp":            japanese.EUCJP,
	"shift_jis":         japanese.ShiftJIS,
	"shift-jis":         japanese.ShiftJIS,
	"shiftjis":          japanese.ShiftJIS,
	"cp932":             japanese.ShiftJIS,
	"jis":               japanese.ISO2022JP,
	"iso-2022-jp":       japanese.ISO2022JP,
	"big5":              traditionalchinese.Big5,
	"euc-kr":            korean.EUCKR,
	"gbk":               simplifiedchinese.GBK,
	"gb18030":           simplifiedchinese.GB18030,
	"hz-gb2312":         simplifiedchinese.HZGB2312,
	"cp437":             charmap.CodePage437,
	"cp866":             charmap.CodePage866,
	"iso-8859-1":        charmap.Windows1252,
	"latin1":            charmap.Windows1252,
	"iso-8859-2":        charmap.ISO8859_2,
	"iso-8859-3":        charmap.ISO8859_3,
	"iso-8859-4":        charmap.ISO8859_4,
	"iso-8859-5":        charmap.ISO8859_5,
	"iso-8859-6":        charmap.ISO8859_6,
	"iso-8859-7":        charmap.ISO8859_7,
	"iso-8859-8":        charmap.ISO8859_8,
	"iso-8859-10":       charmap.ISO8859_10,
	"iso-8859-13":       charmap.ISO8859_13,
	"iso-8859-14":       charmap.ISO8859_14,
	"iso-8859-15":       charmap.ISO8859_15,
	"iso-8859-16":       charmap.ISO8859_16,
	"koi8r":             charmap.KOI8R,
	"koi8-r":            charmap.KOI8R,
	"koi8u":             charmap.KOI8U,
	"koi8-u":            charmap.KOI8U,
	"macintosh":         charmap.Macintosh,
	"macintoshcyrillic": charmap.MacintoshCyrillic,
	"windows1250":       charmap.Windows1250,
	"windows1251":       charmap.Windows1251,
	"windows1252":       charmap.Windows1252,
	"windows1253":       charmap.Windows1253,
	"windows1254":       charmap.Windows1254,
	"windows1255":       charmap.Windows1255,
	"windows1256":       charmap.Windows1256,
	"windows1257":       charmap.Windows1257,
	"windows1258":       charmap.Windows1258,
	"windows874":        charmap.Windows874,
	"xuserdefined":      charmap.XUserDefined,
}

// Load returns the encoding registered under name, or nil. Names are
// matched case insensitively, and "windows-1252" is the same as
// "windows1252".
func Load(name string) enc.Encoding {
	name = strings.ToLower(strings.TrimSpace(name))
	if e, ok := encodings[name]; ok {
		return e
	}
	if strings.HasPrefix(name, "windows-") {
		return encodings["windows"+name[len("windows-"):]]
	}
	return nil
}

// Names returns every name Load accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewReader returns a reader that converts r from the named charset to
// UTF-8. UTF-8 input is returned untouched.
func NewReader(name string, r io.Reader) (io.Reader, error) {
	e := Load(name)
	if e == nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", name)
	}
	if e == unicode.UTF8 {
		return r, nil
	}
	return transform.NewReader(r, e.NewDecoder()), nil
}
