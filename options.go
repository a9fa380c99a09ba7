package charref

import (
	"github.com/lestrrat-go/charref/entity"
	"github.com/lestrrat-go/option"
)

type Option = option.Interface

type identChunkSize struct{}
type identIndex struct{}
type identStrictEOF struct{}

type DecoderOption interface {
	Option
	decoderOption()
}

type decoderOption struct{ Option }

func (*decoderOption) decoderOption() {}

// WithIndex specifies the set of named references to recognize. The
// default is entity.HTML().
func WithIndex(v *entity.Index) DecoderOption {
	return &decoderOption{option.New(identIndex{}, v)}
}

// WithStrictEOF controls what happens to a reference that is still open
// when the input ends. By default the end of input terminates it like any
// other non-matching byte, so "&amp" at the very end decodes to "&". In
// strict mode the pending bytes are written back undecoded.
//
// Named references only end at a byte that continues no name, and ';'
// is part of the name. A stream that ends right after "&amp;" therefore
// still has that reference open, and strict mode writes it back as
// "&amp;". Numeric references do end at ';' and are decoded.
func WithStrictEOF(v bool) DecoderOption {
	return &decoderOption{option.New(identStrictEOF{}, v)}
}

// WithChunkSize specifies how many bytes Decode reads from its source at
// a time.
func WithChunkSize(v int) DecoderOption {
	return &decoderOption{option.New(identChunkSize{}, v)}
}
