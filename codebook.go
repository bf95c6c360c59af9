package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// maxCodeBits is the longest code a Codebook can represent.
const maxCodeBits = 64

// Codebook maps every leaf symbol of a code tree to its Code.
//
// A symbol without a Codebook entry never appeared in the frequency
// table the tree was built from; that is a distinct condition from "not
// yet encoded", and Encoder reports it as ErrUnknownSymbol.
type Codebook struct {
	codes   map[Symbol]Code
	order   []Symbol
	minSize byte
	maxSize byte
}

// NewCodebook derives the code of every leaf reachable from root.  The
// derivation walks the tree depth-first: a left edge appends a 0 bit to
// the path, a right edge a 1 bit, and the accumulated path is recorded
// when a leaf carrying a real symbol is reached.  Symbols keep the
// order of table, which must be the table root was built from.
//
// The one-node tree is special: its root is a leaf with an empty path,
// and an empty code could neither be concatenated nor looked up, so the
// sole symbol is assigned the code "0" instead.
func NewCodebook(root *Node, table FrequencyTable) *Codebook {
	assert.Assertf(root != nil, "nil tree root")
	cb := &Codebook{
		codes: make(map[Symbol]Code, len(table)),
	}
	cb.walk(root, Code{})
	cb.order = make([]Symbol, 0, len(cb.codes))
	for _, entry := range table {
		if _, found := cb.codes[entry.Symbol]; found {
			cb.order = append(cb.order, entry.Symbol)
		}
	}
	return cb
}

func (cb *Codebook) walk(n *Node, path Code) {
	if n.Leaf() {
		if n.Symbol == InvalidSymbol {
			return
		}
		if path.Size == 0 {
			path = MakeCode(1, 0)
		}
		cb.record(n.Symbol, path)
		return
	}
	assert.Assertf(path.Size < maxCodeBits, "tree deeper than %d levels", maxCodeBits)
	if n.Left != nil {
		cb.walk(n.Left, path.Then0())
	}
	if n.Right != nil {
		cb.walk(n.Right, path.Then1())
	}
}

func (cb *Codebook) record(symbol Symbol, hc Code) {
	if len(cb.codes) == 0 {
		cb.minSize = hc.Size
		cb.maxSize = hc.Size
	} else if cb.minSize > hc.Size {
		cb.minSize = hc.Size
	} else if cb.maxSize < hc.Size {
		cb.maxSize = hc.Size
	}
	cb.codes[symbol] = hc
}

// Lookup returns the code for symbol.  found is false when symbol never
// appeared in the frequency table.
func (cb *Codebook) Lookup(symbol Symbol) (hc Code, found bool) {
	hc, found = cb.codes[symbol]
	return
}

// Symbols returns the known symbols in frequency-table order.
func (cb *Codebook) Symbols() []Symbol {
	out := make([]Symbol, len(cb.order))
	copy(out, cb.order)
	return out
}

// Len returns the number of symbols with assigned codes.
func (cb *Codebook) Len() int {
	return len(cb.codes)
}

// MinSize is the bit length of the shortest assigned code.
func (cb *Codebook) MinSize() byte {
	return cb.minSize
}

// MaxSize is the bit length of the longest assigned code.
func (cb *Codebook) MaxSize() byte {
	return cb.maxSize
}

// Dump writes one "<symbol>: <bitstring>" line per known symbol to the
// given writer, in frequency-table order rather than frequency order.
func (cb *Codebook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, symbol := range cb.order {
		fmt.Fprintf(&buf, "%c: %s\n", rune(symbol), cb.codes[symbol].Bitstring())
	}
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (cb *Codebook) DebugString() string {
	var buf bytes.Buffer
	_, _ = cb.Dump(&buf)
	return buf.String()
}

// MarshalJSON encodes the codebook as a JSON object mapping each symbol
// to its bitstring, with the keys in frequency-table order.
func (cb *Codebook) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, symbol := range cb.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(rune(symbol)))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(cb.codes[symbol].Bitstring())
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var _ json.Marshaler = (*Codebook)(nil)
