package charref

import (
	"github.com/lestrrat-go/charref/entity"
	"github.com/pkg/errors"
)

type decodeState int

const (
	stateDefault decodeState = iota
	stateAfterAmp
	stateAfterHash
	stateHexDigits
	stateDecimalDigits
	stateNameMatch
)

// endOfInput is fed to the state machine once the source is exhausted.
const endOfInput = -1

const (
	entityBegin      = '&'
	numericMarker    = '#'
	entityTerminator = ';'
)

const (
	// MaxCodepoint is the largest valid Unicode codepoint.
	MaxCodepoint = 0x10FFFF

	// invalidCodepoint is what an overflowed run resolves to. Anything
	// above MaxCodepoint is encoded as U+FFFD.
	invalidCodepoint = 0xFFFFFFFF

	maxDecimalDigits = 7 // len("1114111")
	maxHexDigits     = 6 // len("10FFFF")
)

const defaultChunkSize = 32 * 1024

var (
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
	ErrNilIndex         = errors.New("entity index must not be nil")
)

// Decoder replaces character references in a byte stream with the UTF-8
// text they stand for. A Decoder holds no per-stream state, so one value
// may serve any number of concurrent streams.
type Decoder struct {
	index     *entity.Index
	strictEOF bool
	chunkSize int
}

// digitRun collects the digits of a numeric reference. It keeps at most
// maxDecimalDigits (or maxHexDigits) significant digits, plus one leading
// zero, and remembers whether more arrived.
type digitRun struct {
	buf      [maxDecimalDigits + 1]byte
	n        int
	hex      bool
	overflow bool
}

// counters tallies what a session did with each reference.
type counters struct {
	named     int
	numeric   int
	invalid   int
	abandoned int
}

// session is the state of one stream being decoded. header holds the
// literal marker bytes ("&", "&#", "&#x"), name the entity name matched so
// far and node the position reached in the index.
type session struct {
	index     *entity.Index
	strictEOF bool
	state     decodeState
	header    [3]byte
	hlen      int
	name      []byte
	digits    digitRun
	node      entity.NodeID
	stats     counters
}
