package bst

import (
	"strconv"
)

func (n *Node) Key() Key {
	return n.key
}

// HasKey reports whether the node carries a key. Only the zero Node does not.
func (n *Node) HasKey() bool {
	return n != nil && n.keyed
}

func (n *Node) Left() *Node {
	return n.left
}

func (n *Node) Right() *Node {
	return n.right
}

// Parent returns the node's parent, or nil for a root.
// It panics if the parent has already been unlinked from its tree.
func (n *Node) Parent() *Node {
	return n.up()
}

// IsNil reports whether n is nil or a bare node with no key, no parent and
// no children.
func (n *Node) IsNil() bool {
	if n == nil {
		return true
	}
	return !n.keyed && n.parent == nil && n.left == nil && n.right == nil
}

// Copy returns a new node holding the same key, children and parent as n.
// The copy is not linked from anywhere; the nodes it points at still belong
// to their tree.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

func (n *Node) String() string {
	if !n.HasKey() {
		return "<nil>"
	}
	return strconv.Itoa(int(n.key))
}

// AddLeftChild attaches a new node holding key as n's left child, replacing
// any previous left subtree. No ordering check is done.
func (n *Node) AddLeftChild(key Key) *Node {
	n.left = newNodeWithParent(n, key)
	return n.left
}

// AddRightChild is the mirror of AddLeftChild.
func (n *Node) AddRightChild(key Key) *Node {
	n.right = newNodeWithParent(n, key)
	return n.right
}

// Search looks for key in the subtree rooted at n and returns a copy of the
// matching node, or nil.
//
// When key is smaller than a node's key but that node has no left child,
// the search continues in the right subtree. Trees built with Tree.Insert
// never depend on that branch.
func (n *Node) Search(key Key) *Node {
	if !n.HasKey() {
		return nil
	}
	if n.key == key {
		return n.Copy()
	}
	if key < n.key && n.left != nil {
		return n.left.Search(key)
	} else if n.right != nil {
		return n.right.Search(key)
	}
	return nil
}

// Minimum returns a copy of the leftmost node under n.
func (n *Node) Minimum() *Node {
	if n == nil {
		return nil
	}
	if n.keyed && n.left != nil {
		return n.left.Minimum()
	}
	return n.Copy()
}

// Maximum returns a copy of the rightmost node under n.
func (n *Node) Maximum() *Node {
	if n == nil {
		return nil
	}
	if n.keyed && n.right != nil {
		return n.right.Maximum()
	}
	return n.Copy()
}

// Root follows parent references up from n and returns the topmost node
// itself, not a copy.
func (n *Node) Root() *Node {
	if n == nil {
		return nil
	}
	parent := n.up()
	if parent == nil {
		return n
	}
	return parent.Root()
}

// Successor returns the node holding the next key in order, or nil when n
// holds the largest key of its tree.
//
// With a right subtree the result is a copy of its minimum. Otherwise the
// ancestor reached from its left side is returned as is. Ancestors are
// matched by key, so n may itself be a copy; keys are expected to be unique.
func (n *Node) Successor() *Node {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return n.right.Minimum()
	}

	x, y := n, n.up()
	for y != nil {
		if y.left != nil && y.left.keyMatch(x) {
			return y
		}
		x, y = y, y.up()
	}
	return nil
}

func (n *Node) keyMatch(o *Node) bool {
	if n.keyed != o.keyed {
		return false
	}
	return n.key == o.key
}

// up dereferences the parent back-reference.
func (n *Node) up() *Node {
	p := n.parent
	if p != nil && p.released {
		panic(errReleasedParent)
	}
	return p
}

// min returns the leftmost node under n itself.
func (n *Node) min() *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// next is the identity based successor used by tree internals.
func (n *Node) next() *Node {
	if n.right != nil {
		return n.right.min()
	}
	x, y := n, n.up()
	for y != nil && y.right == x {
		x, y = y, y.up()
	}
	return y
}

// release detaches an unlinked node so stale handles cannot reach the tree.
func (n *Node) release() {
	n.left, n.right, n.parent = nil, nil, nil
	n.released = true
}
