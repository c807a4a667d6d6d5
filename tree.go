package huffile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeID addresses a node within a Tree.
type NodeID int32

// NoNode marks an absent child.
const NoNode = NodeID(-1)

// Tree is a Huffman code tree.  All nodes live in a single arena owned by
// the Tree and refer to their children by NodeID.
type Tree struct {
	nodes []treeNode
	root  NodeID
}

type treeNode struct {
	weight uint64
	left   NodeID
	right  NodeID
	symbol Symbol
}

// BuildTree constructs the Huffman tree for a histogram.  It returns nil if
// every count is zero, meaning there is nothing to encode.
//
// The result depends only on the histogram: leaves are created in ascending
// byte order, and nodes of equal weight are merged in the order they entered
// the priority list.
//
// If only one byte value occurs, the root is a synthetic node whose left
// child is the sole leaf and whose right child is absent, so that the leaf
// still has the one-bit code "0".
func BuildTree(h *Histogram) *Tree {
	distinct := h.Distinct()
	if distinct == 0 {
		return nil
	}

	t := &Tree{nodes: make([]treeNode, 0, 2*distinct)}

	var pl priorityList
	pl.Init(distinct)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if count := h[symbol]; count != 0 {
			id := t.addNode(treeNode{weight: uint64(count), left: NoNode, right: NoNode, symbol: Symbol(symbol)})
			pl.PushNode(id, uint64(count))
		}
	}

	if distinct == 1 {
		leaf := pl.PopNode()
		t.root = t.addNode(treeNode{weight: t.nodes[leaf].weight, left: leaf, right: NoNode})
		return t
	}

	for pl.Len() > 1 {
		a := pl.PopNode()
		b := pl.PopNode()
		weight := t.nodes[a].weight + t.nodes[b].weight
		pl.PushNode(t.addNode(treeNode{weight: weight, left: a, right: b}), weight)
	}

	t.root = pl.PopNode()
	assert.Assertf(pl.Len() == 0, "priority list not drained: %d entries left", pl.Len())
	assert.Assertf(len(t.nodes) == 2*distinct-1, "expected %d nodes, built %d", 2*distinct-1, len(t.nodes))
	return t
}

func (t *Tree) addNode(n treeNode) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IsLeaf reports whether the node has no children.
func (t *Tree) IsLeaf(id NodeID) bool {
	n := &t.nodes[id]
	return n.left == NoNode && n.right == NoNode
}

// Symbol returns the byte value held by a leaf.
func (t *Tree) Symbol(id NodeID) Symbol {
	assert.Assertf(t.IsLeaf(id), "node %d is not a leaf", id)
	return t.nodes[id].symbol
}

// Weight returns the node's weight: a leaf's count, or the sum of an internal
// node's children.
func (t *Tree) Weight(id NodeID) uint64 {
	return t.nodes[id].weight
}

// Left returns the node's left child, or NoNode.
func (t *Tree) Left(id NodeID) NodeID {
	return t.nodes[id].left
}

// Right returns the node's right child, or NoNode.
func (t *Tree) Right(id NodeID) NodeID {
	return t.nodes[id].right
}

// Child follows one bit down from a node: 0 goes left, 1 goes right.
func (t *Tree) Child(id NodeID, bit uint8) NodeID {
	if bit == 0 {
		return t.nodes[id].left
	}
	return t.nodes[id].right
}

// Dump writes a programmer-readable debugging dump of the tree to w, one node
// per line, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")

	type stackItem struct {
		id    NodeID
		depth int
	}

	stack := []stackItem{{t.root, 1}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i := 0; i < top.depth; i++ {
			buf.WriteByte('\t')
		}
		if t.IsLeaf(top.id) {
			fmt.Fprintf(&buf, "Leaf(%d) = %d\n", t.nodes[top.id].symbol, t.nodes[top.id].weight)
			continue
		}
		fmt.Fprintf(&buf, "Node = %d\n", t.nodes[top.id].weight)

		if right := t.nodes[top.id].right; right != NoNode {
			stack = append(stack, stackItem{right, top.depth + 1})
		}
		if left := t.nodes[top.id].left; left != NoNode {
			stack = append(stack, stackItem{left, top.depth + 1})
		}
	}

	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
