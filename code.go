package huffman

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is the most significant valid bit of Bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Then0 returns this Code extended by one 0 bit.
func (hc Code) Then0() Code {
	return MakeCode(hc.Size+1, hc.Bits<<1)
}

// Then1 returns this Code extended by one 1 bit.
func (hc Code) Then1() Code {
	return MakeCode(hc.Size+1, hc.Bits<<1|1)
}

// Bitstring returns the code as a run of ASCII '0' and '1' bytes, first
// bit first.  This is the form codes take in an encoded stream.
func (hc Code) Bitstring() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.Bitstring())
}

var _ fmt.Stringer = Code{}
