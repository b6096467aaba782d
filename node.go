package radix

import "bytes"

// node is a unit of trie storage. Its label is the edge from its parent; the
// root carries an empty label.
type node struct {
	label    []byte
	terminal bool // root-to-node path is a member key
	// edges[i] is the first byte of children[i].label; edges is sorted
	// ascending and holds no duplicates.
	edges    []byte
	children []*node
}

func newLeaf(suffix []byte) *node {
	return &node{label: bytes.Clone(suffix), terminal: true}
}

// child returns the child whose label starts with byte b, together with its
// slot, or (nil, -1).
func (n *node) child(b byte) (*node, int) {
	i := bytes.IndexByte(n.edges, b)
	if i < 0 {
		return nil, -1
	}
	return n.children[i], i
}

// addChild inserts c, keeping edges sorted. There must not be a child
// starting with the same byte.
func (n *node) addChild(c *node) {
	assert(len(c.label) > 0, "addChild called with empty child label")
	b := c.label[0]
	i := 0
	for i < len(n.edges) && n.edges[i] < b {
		i++
	}
	assert(i == len(n.edges) || n.edges[i] != b, "addChild called for occupied edge")
	n.edges = append(n.edges, 0)
	copy(n.edges[i+1:], n.edges[i:])
	n.edges[i] = b
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
}

func (n *node) removeChildAt(slot int) {
	assert(slot >= 0 && slot < len(n.children), "removeChildAt slot out of range")
	n.edges = append(n.edges[:slot], n.edges[slot+1:]...)
	copy(n.children[slot:], n.children[slot+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
}

// split cuts c's label after at bytes. The returned intermediate node takes
// over c's edge with the shared part of the label; c keeps the rest and
// becomes the intermediate's only child.
func split(c *node, at int) *node {
	assert(at > 0 && at < len(c.label), "split position outside of label")
	mid := &node{label: c.label[:at:at]}
	c.label = c.label[at:]
	mid.edges = []byte{c.label[0]}
	mid.children = []*node{c}
	return mid
}

// mergeChild collapses n with its only child: n adopts the concatenated
// label, the child's membership and the child's children.
func (n *node) mergeChild() {
	assert(len(n.children) == 1, "mergeChild called for node without a single child")
	c := n.children[0]
	label := make([]byte, len(n.label)+len(c.label))
	copy(label, n.label)
	copy(label[len(n.label):], c.label)
	n.label = label
	n.terminal = c.terminal
	n.edges = c.edges
	n.children = c.children
}

// cloneNode deep-copies the subtree rooted at n.
//
// Labels are never written to after creation, so they are shared. Edge and
// child slices are owned per node and copied.
func cloneNode(n *node) *node {
	if n == nil {
		return nil
	}
	cloned := &node{
		label:    n.label,
		terminal: n.terminal,
	}
	if len(n.children) > 0 {
		cloned.edges = bytes.Clone(n.edges)
		cloned.children = make([]*node, len(n.children))
		for i, c := range n.children {
			cloned.children[i] = cloneNode(c)
		}
	}
	return cloned
}
