package huffman

import (
	"math"
)

// addSaturating adds two weights, clamping at the maximum value instead
// of wrapping.
func addSaturating(a, b uint32) uint32 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint32
	}
	return sum
}
