package huffman

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Delimiter is the character separating codes in an encoded stream.
const Delimiter = ' '

// ErrUnknownSymbol is wrapped by Encoder.Encode when the input contains
// a character the codebook has no entry for.
var ErrUnknownSymbol = errors.New("symbol not in codebook")

// Encoder transforms text into a delimited code stream.
type Encoder struct {
	codebook *Codebook
}

// NewEncoder returns an Encoder over codebook.
func NewEncoder(codebook *Codebook) *Encoder {
	assert.Assertf(codebook != nil, "nil codebook")
	return &Encoder{codebook: codebook}
}

// Encode converts text into a stream of ASCII '0'/'1' codes, one code
// per input character in input order, each followed by one Delimiter.
// The output is at most len(text)×(MaxSize()+1) bytes long.
//
// A character without a codebook entry aborts the conversion with an
// error wrapping ErrUnknownSymbol; no partial output is returned.
func (e *Encoder) Encode(text string) (string, error) {
	var out strings.Builder
	out.Grow(len(text) * (int(e.codebook.MaxSize()) + 1))
	for _, r := range text {
		hc, found := e.codebook.Lookup(Symbol(r))
		if !found {
			return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
		}
		out.WriteString(hc.Bitstring())
		out.WriteByte(Delimiter)
	}
	return out.String(), nil
}
