package charref

// appendCodepoint appends the UTF-8 encoding of cp to dst. Values above
// MaxCodepoint become U+FFFD. Surrogates are encoded as they are.
func appendCodepoint(dst []byte, cp uint32) []byte {
	switch {
	case cp > MaxCodepoint:
		return append(dst, 0xEF, 0xBF, 0xBD)
	case cp <= 0x7F:
		return append(dst, byte(cp))
	case cp <= 0x7FF:
		return append(dst,
			0xC0|byte(cp>>6),
			0x80|byte(cp)&0x3F,
		)
	case cp <= 0xFFFF:
		return append(dst,
			0xE0|byte(cp>>12),
			0x80|byte(cp>>6)&0x3F,
			0x80|byte(cp)&0x3F,
		)
	default:
		return append(dst,
			0xF0|byte(cp>>18),
			0x80|byte(cp>>12)&0x3F,
			0x80|byte(cp>>6)&0x3F,
			0x80|byte(cp)&0x3F,
		)
	}
}
