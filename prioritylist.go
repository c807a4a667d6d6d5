package huffile

import (
	"container/heap"
)

// priorityList orders tree nodes by ascending weight.  Nodes of equal weight
// come out in the order they were pushed, which is what makes tree
// construction deterministic.
//
// The entries are lightweight handles: once a node has been popped and
// merged into its parent, only the tree refers to it.
type priorityList struct {
	list []listEntry
	next uint32
}

type listEntry struct {
	node   NodeID
	weight uint64
	seq    uint32
}

func (pl *priorityList) Init(capacity int) {
	*pl = priorityList{list: make([]listEntry, 0, capacity)}
}

func (pl *priorityList) PushNode(node NodeID, weight uint64) {
	heap.Push(pl, listEntry{node: node, weight: weight, seq: pl.next})
	pl.next++
}

func (pl *priorityList) PopNode() NodeID {
	return heap.Pop(pl).(listEntry).node
}

// type priorityList implements heap.Interface {{{

func (pl *priorityList) Len() int {
	return len(pl.list)
}

func (pl *priorityList) Swap(i, j int) {
	pl.list[i], pl.list[j] = pl.list[j], pl.list[i]
}

func (pl *priorityList) Less(i, j int) bool {
	a, b := pl.list[i], pl.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (pl *priorityList) Push(x interface{}) {
	pl.list = append(pl.list, x.(listEntry))
}

func (pl *priorityList) Pop() interface{} {
	last := uint(len(pl.list)) - 1
	x := pl.list[last]
	pl.list[last] = listEntry{}
	pl.list = pl.list[:last]
	return x
}

var _ heap.Interface = (*priorityList)(nil)

// }}}
