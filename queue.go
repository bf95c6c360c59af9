package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// nodeQueue is a priority queue of tree nodes ordered by ascending
// weight.  Equal weights preserve relative insertion order: of two
// equal-weight nodes, the earlier-inserted one is extracted first.  The
// tie-break decides which subtree ends up as the left child of a merge,
// and with it the final code of every symbol, so it must stay stable.
type nodeQueue struct {
	list []queueEntry
	seq  uint32
	cap  int
}

type queueEntry struct {
	node *Node
	seq  uint32
}

// newNodeQueue returns an empty queue with room for capacity nodes.
// The tree builder holds at most one node per initial symbol at any
// time, so the capacity never needs to grow.
func newNodeQueue(capacity int) *nodeQueue {
	return &nodeQueue{list: make([]queueEntry, 0, capacity), cap: capacity}
}

// Insert adds node to the queue.  Exceeding the capacity is a contract
// violation, not a recoverable condition.
func (q *nodeQueue) Insert(node *Node) {
	assert.Assertf(len(q.list) < q.cap, "queue over capacity: %d nodes already held, capacity %d", len(q.list), q.cap)
	heap.Push(q, queueEntry{node, q.seq})
	q.seq++
}

// ExtractMin removes and returns the lowest-weight node, or nil when
// the queue is empty.
func (q *nodeQueue) ExtractMin() *Node {
	if len(q.list) == 0 {
		return nil
	}
	return heap.Pop(q).(queueEntry).node
}

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queueEntry))
}

func (q *nodeQueue) Pop() interface{} {
	last := len(q.list) - 1
	x := q.list[last]
	q.list[last] = queueEntry{}
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)
