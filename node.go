package huffman

// Node is one node of a code tree.  Each node is exclusively owned by
// its parent (or, for the root, by the caller holding it), and the whole
// tree is immutable once BuildTree returns.
type Node struct {
	// Symbol is the leaf's alphabet symbol.  Interior nodes carry
	// InvalidSymbol.
	Symbol Symbol

	// Weight is the leaf's frequency, or the sum of both children's
	// weights for an interior node.
	Weight uint32

	// Left and Right are both nil on a leaf.  Trees built by BuildTree
	// never have exactly one of them nil, but code walking a tree must
	// not rely on that.
	Left  *Node
	Right *Node
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}
