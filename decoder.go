package huffman

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// ErrCorruptStream is wrapped by Decoder.Decode when a code stream is
// truncated or contains data that does not fit the tree.
var ErrCorruptStream = errors.New("truncated or corrupt code stream")

// Decoder transforms a delimited code stream back into text.
type Decoder struct {
	root *Node
}

// NewDecoder returns a Decoder over the code tree rooted at root.
func NewDecoder(root *Node) *Decoder {
	assert.Assertf(root != nil, "nil tree root")
	return &Decoder{root: root}
}

// Decode walks the tree over stream: '0' moves the cursor to the left
// child, '1' to the right child, and the Delimiter is a structural
// separator that is consumed without moving the cursor.  A symbol is
// emitted exactly when the cursor lands on a leaf, and the cursor then
// resets to the root; the delimiter itself never triggers an emit, so a
// short code that reaches its leaf right before a delimiter cannot be
// emitted twice.
//
// A bit that walks into a missing child, a byte other than '0', '1' or
// the delimiter, or a stream that ends with the cursor mid-walk all
// abort with an error wrapping ErrCorruptStream.
func (d *Decoder) Decode(stream string) (string, error) {
	if d.root.Leaf() {
		return d.decodeSingle(stream)
	}

	var out strings.Builder
	cursor := d.root
	for i := 0; i < len(stream); i++ {
		switch stream[i] {
		case '0':
			cursor = cursor.Left
		case '1':
			cursor = cursor.Right
		case Delimiter:
			continue
		default:
			return "", fmt.Errorf("%w: unexpected byte %q at offset %d", ErrCorruptStream, stream[i], i)
		}
		if cursor == nil {
			return "", fmt.Errorf("%w: no path for bit at offset %d", ErrCorruptStream, i)
		}
		if cursor.Leaf() {
			out.WriteRune(rune(cursor.Symbol))
			cursor = d.root
		}
	}
	if cursor != d.root {
		return "", fmt.Errorf("%w: stream ends in the middle of a code", ErrCorruptStream)
	}
	return out.String(), nil
}

// decodeSingle handles the one-symbol tree, whose root is its only
// leaf.  No bit sequence can move the cursor off such a root, so the
// conventional code "0" assigned by NewCodebook is decoded directly:
// every '0' in the stream is one occurrence of the symbol.
func (d *Decoder) decodeSingle(stream string) (string, error) {
	var out strings.Builder
	for i := 0; i < len(stream); i++ {
		switch stream[i] {
		case '0':
			out.WriteRune(rune(d.root.Symbol))
		case Delimiter:
			// structural, skip
		default:
			return "", fmt.Errorf("%w: unexpected byte %q at offset %d", ErrCorruptStream, stream[i], i)
		}
	}
	return out.String(), nil
}
