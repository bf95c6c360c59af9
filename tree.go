package huffman

import (
	"errors"
)

// ErrEmptyAlphabet is returned by BuildTree when the frequency table
// has no entries at all.
var ErrEmptyAlphabet = errors.New("empty frequency table")

// BuildTree constructs a code tree from table and returns its root.
//
// One leaf per table entry is seeded into a priority queue in table
// order; while more than one node remains, the two lowest-weight nodes
// are merged under a fresh interior node whose weight is their sum, the
// first-extracted node becoming the left child.  A one-entry table
// skips the merge loop entirely and yields the lone leaf as the root.
//
// The resulting tree has exactly len(table) leaves and len(table)-1
// interior nodes, every interior node has two children, and therefore
// no leaf's root-to-leaf path is a prefix of another's.
func BuildTree(table FrequencyTable) (*Node, error) {
	if len(table) == 0 {
		return nil, ErrEmptyAlphabet
	}

	q := newNodeQueue(len(table))
	for _, entry := range table {
		q.Insert(&Node{Symbol: entry.Symbol, Weight: entry.Weight})
	}

	for q.Len() > 1 {
		left := q.ExtractMin()
		right := q.ExtractMin()
		q.Insert(&Node{
			Symbol: InvalidSymbol,
			Weight: addSaturating(left.Weight, right.Weight),
			Left:   left,
			Right:  right,
		})
	}
	return q.ExtractMin(), nil
}
