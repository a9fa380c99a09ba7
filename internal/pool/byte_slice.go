// Package pool provides pools of reusable buffers.
package pool

import "sync"

const defaultCapacity = 64

// ByteSlicePool hands out zero length byte slices. Slices given back with
// Put may be handed out again by GetCapacity.
type ByteSlicePool struct {
	pool sync.Pool
}

var byteSlicePool = &ByteSlicePool{
	pool: sync.Pool{
		New: func() any {
			b := make([]byte, 0, defaultCapacity)
			return &b
		},
	},
}

// ByteSlice returns the process wide byte slice pool.
func ByteSlice() *ByteSlicePool {
	return byteSlicePool
}

// GetCapacity returns an empty slice with room for at least n bytes, and
// never less than the default capacity.
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	n = max(n, defaultCapacity)
	bp := p.pool.Get().(*[]byte)
	if cap(*bp) < n {
		return make([]byte, 0, n)
	}
	return (*bp)[:0]
}

func (p *ByteSlicePool) Put(b []byte) {
	b = b[:0]
	p.pool.Put(&b)
}
