package huffman

import (
	"errors"
	"testing"
)

// makeTestTable returns the shared test alphabet.
func makeTestTable() FrequencyTable {
	return FrequencyTable{
		{'a', 5},
		{'b', 9},
		{'c', 12},
		{'d', 13},
		{'e', 16},
		{'f', 45},
	}
}

func TestBuildTree_EmptyTable(t *testing.T) {
	root, err := BuildTree(nil)
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("expected ErrEmptyAlphabet, got %v", err)
	}
	if root != nil {
		t.Error("expected no root for an empty table")
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root, err := BuildTree(FrequencyTable{{'q', 7}})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if !root.Leaf() {
		t.Error("expected the lone leaf to be the root")
	}
	if root.Symbol != 'q' {
		t.Errorf("expected symbol 'q', got %q", rune(root.Symbol))
	}
	if root.Weight != 7 {
		t.Errorf("expected weight 7, got %d", root.Weight)
	}
}

func TestBuildTree_RootWeight(t *testing.T) {
	table := makeTestTable()
	root, err := BuildTree(table)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if uint64(root.Weight) != table.TotalWeight() {
		t.Errorf("expected root weight %d, got %d", table.TotalWeight(), root.Weight)
	}
	if root.Weight != 100 {
		t.Errorf("expected root weight 100, got %d", root.Weight)
	}
}

func TestBuildTree_Shape(t *testing.T) {
	root, err := BuildTree(makeTestTable())
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	var leaves, interior int
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Leaf() {
			leaves++
			if n.Symbol == InvalidSymbol {
				t.Error("leaf without a symbol")
			}
			return
		}
		interior++
		if n.Symbol != InvalidSymbol {
			t.Errorf("interior node carries symbol %q", rune(n.Symbol))
		}
		if n.Left == nil || n.Right == nil {
			t.Error("interior node with a single child")
			return
		}
		if n.Weight != n.Left.Weight+n.Right.Weight {
			t.Errorf("interior weight %d != %d + %d", n.Weight, n.Left.Weight, n.Right.Weight)
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	if leaves != 6 {
		t.Errorf("expected 6 leaves, got %d", leaves)
	}
	if interior != 5 {
		t.Errorf("expected 5 interior nodes, got %d", interior)
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	table := makeTestTable()

	first, err := BuildTree(table)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	second, err := BuildTree(table)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	expect := NewCodebook(first, table).DebugString()
	actual := NewCodebook(second, table).DebugString()
	if expect != actual {
		t.Errorf("non-deterministic codes:\n\tfirst:  %q\n\tsecond: %q", expect, actual)
	}
}
