package charref

import (
	"github.com/lestrrat-go/charref/entity"
	"github.com/lestrrat-go/pdebug/v3"
)

func newSession(idx *entity.Index, strictEOF bool) *session {
	return &session{
		index:     idx,
		strictEOF: strictEOF,
		name:      make([]byte, 0, idx.MaxNameLength()),
	}
}

func (s *session) reset() {
	s.close()
	s.stats = counters{}
}

// open starts a new candidate reference at '&'.
func (s *session) open() {
	s.state = stateAfterAmp
	s.header[0] = entityBegin
	s.hlen = 1
	s.name = s.name[:0]
	s.digits.reset(false)
}

func (s *session) close() {
	s.state = stateDefault
	s.hlen = 0
	s.name = s.name[:0]
	s.digits.reset(false)
}

func (s *session) pushHeader(c byte) {
	s.header[s.hlen] = c
	s.hlen++
}

// abandon writes back everything the candidate reference consumed.
func (s *session) abandon(dst []byte) []byte {
	if pdebug.Enabled {
		pdebug.Printf("abandon reference %q%q%q", s.header[:s.hlen], s.name, s.digits.bytes())
	}
	dst = append(dst, s.header[:s.hlen]...)
	dst = append(dst, s.name...)
	dst = append(dst, s.digits.bytes()...)
	s.stats.abandoned++
	s.close()
	return dst
}

// step runs one transition for input unit c, a byte value or endOfInput.
// It returns dst with any output appended, and true if c was not consumed
// and must be fed again. A session that asks for c again is always back in
// stateDefault.
func (s *session) step(dst []byte, c int) ([]byte, bool) {
	switch s.state {
	case stateAfterAmp:
		if c == numericMarker {
			s.pushHeader(numericMarker)
			s.state = stateAfterHash
			return dst, false
		}
		if c != endOfInput {
			if n, ok := s.index.Root(byte(c)); ok {
				s.name = append(s.name, byte(c))
				s.node = n
				s.state = stateNameMatch
				return dst, false
			}
		}
		return s.abandon(dst), true

	case stateAfterHash:
		if isHexMarker(c) {
			s.pushHeader(byte(c))
			s.digits.reset(true)
			s.state = stateHexDigits
			return dst, false
		}
		if isDigit(c) {
			s.digits.reset(false)
			s.digits.push(byte(c))
			s.state = stateDecimalDigits
			return dst, false
		}
		return s.abandon(dst), true

	case stateDecimalDigits, stateHexDigits:
		if s.digits.accepts(c) {
			s.digits.push(byte(c))
			return dst, false
		}
		if s.digits.empty() {
			return s.abandon(dst), true
		}

		cp := s.digits.codepoint()
		if cp > MaxCodepoint {
			s.stats.invalid++
		}
		s.stats.numeric++
		dst = appendCodepoint(dst, cp)
		s.close()
		if c == entityTerminator {
			return dst, false
		}
		return dst, true

	case stateNameMatch:
		if c != endOfInput {
			if next, ok := s.index.Child(s.node, byte(c)); ok {
				s.name = append(s.name, byte(c))
				s.node = next
				return dst, false
			}
		}
		if v, ok := s.index.Value(s.node); ok {
			dst = append(dst, v...)
			s.stats.named++
			s.close()
		} else {
			dst = s.abandon(dst)
		}
		return dst, true

	default:
		switch c {
		case endOfInput:
		case entityBegin:
			s.open()
		default:
			dst = append(dst, byte(c))
		}
		return dst, false
	}
}

// feed runs c through the machine, feeding it again for as long as the
// machine hands it back.
func (s *session) feed(dst []byte, c int) []byte {
	for {
		var again bool
		dst, again = s.step(dst, c)
		if !again {
			return dst
		}
	}
}

// finish closes the stream. An open reference either meets endOfInput like
// any other non-matching input, or, in strict mode, is written back as it
// was read.
func (s *session) finish(dst []byte) []byte {
	if s.state == stateDefault {
		return dst
	}
	if s.strictEOF {
		return s.abandon(dst)
	}
	return s.feed(dst, endOfInput)
}
