package charref

import (
	"golang.org/x/text/transform"
)

// transformer adapts a session to transform.Transformer. Output that does
// not fit into dst is kept in pending and written out on the next call.
type transformer struct {
	s       *session
	scratch []byte
	pending []byte
}

// Transformer returns a transform.Transformer that decodes character
// references. References may be split across calls to Transform.
func (d *Decoder) Transformer() transform.Transformer {
	return &transformer{s: d.newSession()}
}

func (t *transformer) Reset() {
	t.s.reset()
	t.pending = t.pending[:0]
}

func (t *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if len(t.pending) > 0 {
		n := copy(dst, t.pending)
		t.pending = t.pending[n:]
		nDst = n
		if len(t.pending) > 0 {
			return nDst, 0, transform.ErrShortDst
		}
	}

	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		t.scratch = t.s.feed(t.scratch[:0], int(src[nSrc]))
		nSrc++
		if !t.emit(dst, &nDst) {
			return nDst, nSrc, transform.ErrShortDst
		}
	}

	if atEOF {
		t.scratch = t.s.finish(t.scratch[:0])
		if !t.emit(dst, &nDst) {
			return nDst, nSrc, transform.ErrShortDst
		}
	}
	return nDst, nSrc, nil
}

// emit copies scratch into dst, parking whatever does not fit. It returns
// false if anything was parked.
func (t *transformer) emit(dst []byte, nDst *int) bool {
	n := copy(dst[*nDst:], t.scratch)
	*nDst += n
	if n == len(t.scratch) {
		return true
	}
	t.pending = append(t.pending[:0], t.scratch[n:]...)
	return false
}
