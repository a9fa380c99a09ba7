package charref

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c int) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isHexMarker(c int) bool {
	return c == 'x' || c == 'X'
}

func (r *digitRun) reset(hex bool) {
	r.n = 0
	r.hex = hex
	r.overflow = false
}

func (r *digitRun) limit() int {
	if r.hex {
		return maxHexDigits
	}
	return maxDecimalDigits
}

// accepts reports whether c continues the run.
func (r *digitRun) accepts(c int) bool {
	if r.hex {
		return isHexDigit(c)
	}
	return isDigit(c)
}

// push adds one digit. A lone "0" absorbs further zeros, and the single
// leading zero that may remain does not count against the limit.
func (r *digitRun) push(c byte) {
	if r.n == 1 && r.buf[0] == '0' && c == '0' {
		return
	}
	limit := r.limit()
	if r.n > 0 && r.buf[0] == '0' {
		limit++
	}
	if r.n >= limit {
		r.overflow = true
		return
	}
	r.buf[r.n] = c
	r.n++
}

func (r *digitRun) empty() bool {
	return r.n == 0
}

func (r *digitRun) bytes() []byte {
	return r.buf[:r.n]
}

// codepoint returns the value of the run, or invalidCodepoint if the run
// is empty or overflowed.
func (r *digitRun) codepoint() uint32 {
	if r.n == 0 || r.overflow {
		return invalidCodepoint
	}

	var val uint32
	for _, c := range r.buf[:r.n] {
		if r.hex {
			val = val*16 + hexValue(c)
		} else {
			val = val*10 + uint32(c-'0')
		}
	}
	return val
}

func hexValue(c byte) uint32 {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0')
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10
	default:
		return uint32(c-'A') + 10
	}
}
