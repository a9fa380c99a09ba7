// Package charref decodes HTML and XML character references in arbitrary
// byte streams.
//
// Named references ("&amp;", "&not"), decimal references ("&#65;") and
// hexadecimal references ("&#x41;", "&#X41;") are replaced by their UTF-8
// text. Every other byte, including references that are unknown,
// malformed or cut short, is copied through exactly as it was read.
//
// Decoding is a single pass over the input, one byte at a time, with
// memory bounded by the longest entity name no matter how long the input
// or any digit run in it is.
package charref

import (
	"context"
	"io"
	"sync"
)

const Version = "v0.1.0"

var (
	defaultOnce    sync.Once
	defaultDecoder *Decoder
)

func getDefaultDecoder() *Decoder {
	defaultOnce.Do(func() {
		d, err := NewDecoder()
		if err != nil {
			panic(err)
		}
		defaultDecoder = d
	})
	return defaultDecoder
}

// Decode decodes src into dst using the HTML5 entity table.
func Decode(ctx context.Context, dst io.Writer, src io.Reader) error {
	return getDefaultDecoder().Decode(ctx, dst, src)
}

// DecodeBytes decodes b using the HTML5 entity table.
func DecodeBytes(b []byte) []byte {
	return getDefaultDecoder().DecodeBytes(b)
}

// DecodeString decodes s using the HTML5 entity table.
func DecodeString(s string) string {
	return getDefaultDecoder().DecodeString(s)
}
