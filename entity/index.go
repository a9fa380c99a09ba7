package entity

import (
	"iter"
	"sync"

	"github.com/lestrrat-go/charref/internal/orderedmap"
	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"
)

// BucketCount is the number of root buckets: one per ASCII letter, upper
// case first.
const BucketCount = 52

// NodeID addresses a node inside an Index. It is only meaningful for the
// Index that handed it out.
type NodeID int32

const noNode NodeID = -1

type node struct {
	value    string
	terminal bool
	children map[byte]NodeID
}

// Index is a prefix tree over a set of definitions. Nodes live in a single
// arena and refer to their children by NodeID. An Index is never modified
// after New returns, so any number of goroutines may walk it at once.
type Index struct {
	nodes   []node
	buckets [BucketCount]NodeID
	defs    *orderedmap.Map[string, string]
	maxName int
}

var (
	htmlOnce  sync.Once
	htmlIndex *Index
	xmlOnce   sync.Once
	xmlIndex  *Index
)

// HTML returns the shared index over HTML5Definitions.
func HTML() *Index {
	htmlOnce.Do(func() {
		htmlIndex = MustNew(html5Definitions)
	})
	return htmlIndex
}

// XML returns the shared index over XMLDefinitions.
func XML() *Index {
	xmlOnce.Do(func() {
		xmlIndex = MustNew(XMLDefinitions())
	})
	return xmlIndex
}

// Bucket returns the root bucket for the first character of a name:
// 'A'..'Z' map to 0..25 and 'a'..'z' to 26..51.
func Bucket(c byte) (int, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 26, true
	default:
		return 0, false
	}
}

// New builds an Index from defs. Names must be unique.
func New(defs []Definition) (*Index, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	m := orderedmap.New[string, string](len(defs))
	for _, def := range defs {
		if err := validate(def); err != nil {
			return nil, err
		}
		if err := m.Set(def.Name, def.Value); err != nil {
			return nil, errors.Wrapf(ErrDuplicateEntry, "%q", def.Name)
		}
	}

	idx := &Index{
		nodes: make([]node, 0, len(defs)*2),
		defs:  m,
	}
	for i := range idx.buckets {
		idx.buckets[i] = noNode
	}
	for name, value := range m.Range() {
		idx.insert(name, value)
	}

	if pdebug.Enabled {
		pdebug.Printf("entity index: %d names, %d nodes, longest name %d", m.Len(), len(idx.nodes), idx.maxName)
	}
	return idx, nil
}

// MustNew is like New but panics on error. It is meant for tables that are
// compiled into the program.
func MustNew(defs []Definition) *Index {
	idx, err := New(defs)
	if err != nil {
		panic(err)
	}
	return idx
}

func (idx *Index) alloc() NodeID {
	idx.nodes = append(idx.nodes, node{})
	return NodeID(len(idx.nodes) - 1)
}

func (idx *Index) insert(name, value string) {
	b, _ := Bucket(name[0])
	cur := idx.buckets[b]
	if cur == noNode {
		cur = idx.alloc()
		idx.buckets[b] = cur
	}

	for i := 1; i < len(name); i++ {
		c := name[i]
		next, ok := idx.nodes[cur].children[c]
		if !ok {
			// alloc may move the arena; index into it again afterwards
			next = idx.alloc()
			if idx.nodes[cur].children == nil {
				idx.nodes[cur].children = make(map[byte]NodeID)
			}
			idx.nodes[cur].children[c] = next
		}
		cur = next
	}

	idx.nodes[cur].value = value
	idx.nodes[cur].terminal = true
	if len(name) > idx.maxName {
		idx.maxName = len(name)
	}
}

// Root returns the node for the one character prefix c. The second return
// value is false if c cannot start a name or no name starts with it.
func (idx *Index) Root(c byte) (NodeID, bool) {
	b, ok := Bucket(c)
	if !ok {
		return noNode, false
	}
	n := idx.buckets[b]
	return n, n != noNode
}

// Child returns the node reached from n by c.
func (idx *Index) Child(n NodeID, c byte) (NodeID, bool) {
	if n < 0 || int(n) >= len(idx.nodes) {
		return noNode, false
	}
	child, ok := idx.nodes[n].children[c]
	return child, ok
}

// Value returns the replacement text stored at n, if n ends a name.
func (idx *Index) Value(n NodeID) (string, bool) {
	if n < 0 || int(n) >= len(idx.nodes) {
		return "", false
	}
	nd := &idx.nodes[n]
	return nd.value, nd.terminal
}

// Lookup returns the replacement for an exact name.
func (idx *Index) Lookup(name string) (string, bool) {
	return idx.defs.Get(name)
}

// Len returns the number of definitions in the index.
func (idx *Index) Len() int {
	return idx.defs.Len()
}

// MaxNameLength returns the length of the longest name.
func (idx *Index) MaxNameLength() int {
	return idx.maxName
}

// All iterates over every definition in the order it was given to New.
func (idx *Index) All() iter.Seq2[string, string] {
	return idx.defs.Range()
}
