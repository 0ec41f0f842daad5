package bst

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) Size() int {
	return t.size
}

func (t *Tree) Empty() bool {
	return t.Size() == 0
}

// Clear drops every node of the tree. Handles taken before Clear can no
// longer walk up into the dropped nodes.
func (t *Tree) Clear() {
	releaseAll(t.root)
	t.root = nil
	t.size = 0
}

// releaseAll releases a subtree children first.
func releaseAll(n *Node) {
	if n == nil {
		return
	}
	releaseAll(n.left)
	releaseAll(n.right)
	n.release()
}

// Insert links a new node holding key and returns it. Equal keys go to the
// right, so duplicates are kept in insertion order.
func (t *Tree) Insert(key Key) *Node {
	var y *Node
	x := t.root
	for x != nil {
		y = x
		if key < x.key {
			x = x.left
		} else {
			x = x.right
		}
	}

	z := newNode(key)
	switch {
	case y == nil:
		t.root = z
	case key < y.key:
		z.parent = y
		y.left = z
	default:
		z.parent = y
		y.right = z
	}
	t.size++

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op":     "insert",
			"key":    key,
			"parent": y,
		}).Debug("linked")
	}
	return z
}

// Delete unlinks the first node holding key found on the path from the
// root. It reports whether a node was removed; a missing key is a no-op.
func (t *Tree) Delete(key Key) bool {
	z := t.find(key)
	if z == nil {
		if Log.IsLevelEnabled(logrus.DebugLevel) {
			Log.WithFields(logrus.Fields{"op": "delete", "key": key}).Debug("not found")
		}
		return false
	}

	switch {
	case z.left == nil:
		t.transplant(z, z.right)
	case z.right == nil:
		t.transplant(z, z.left)
	default:
		y := z.right.min()
		if y != z.right {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
	}
	z.release()
	t.size--

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op":   "delete",
			"key":  key,
			"size": t.size,
		}).Debug("unlinked")
	}
	return true
}

// transplant puts the subtree v in the place of the subtree u. v may be nil.
func (t *Tree) transplant(u, v *Node) {
	p := u.up()
	switch {
	case p == nil:
		t.root = v
	case p.left == u:
		p.left = v
	default:
		p.right = v
	}
	if v != nil {
		v.parent = p
	}
}

// find returns the linked node holding key, not a copy.
func (t *Tree) find(key Key) *Node {
	x := t.root
	for x != nil && x.key != key {
		if key < x.key {
			x = x.left
		} else {
			x = x.right
		}
	}
	return x
}

// Search returns a copy of the node holding key, or nil.
func (t *Tree) Search(key Key) *Node {
	return t.root.Search(key)
}

// Minimum returns a copy of the node with the smallest key, or nil if the
// tree is empty.
func (t *Tree) Minimum() *Node {
	return t.root.Minimum()
}

// Maximum returns a copy of the node with the largest key, or nil if the
// tree is empty.
func (t *Tree) Maximum() *Node {
	return t.root.Maximum()
}

// ForEach calls callback on every node in key order until it returns false.
func (t *Tree) ForEach(callback Callback) {
	t.recursiveForEach(t.root, callback)
}

func (t *Tree) recursiveForEach(curr *Node, callback Callback) traverseAction {
	if curr == nil {
		return traverseContinue
	}
	if t.recursiveForEach(curr.left, callback) == traverseStop {
		return traverseStop
	}
	if !callback(curr) {
		return traverseStop
	}
	return t.recursiveForEach(curr.right, callback)
}

// Keys returns every key in non-decreasing order.
func (t *Tree) Keys() []Key {
	keys := make([]Key, 0, t.Size())
	t.ForEach(func(n *Node) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// Height is the number of nodes on the longest root to leaf path.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// String renders the tree as nested "(left key right)" groups.
func (t *Tree) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	render(&sb, t.root)
	sb.WriteByte(')')
	return sb.String()
}

func render(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.left != nil {
		sb.WriteByte('(')
		render(sb, n.left)
		sb.WriteByte(')')
	}
	sb.WriteString(n.String())
	if n.right != nil {
		sb.WriteByte('(')
		render(sb, n.right)
		sb.WriteByte(')')
	}
}

// Check walks the whole tree and returns an error describing the first
// broken invariant, or nil.
func (t *Tree) Check() error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree counts %d nodes", ErrSize, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v", ErrRootParent, t.root)
	}
	count, err := check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, recorded %d", ErrSize, count, t.size)
	}
	return nil
}

// check verifies that every key under n lies in [lo, hi) and that children
// point back at their parent. nil bounds are open.
func check(n *Node, lo, hi *Key) (int, error) {
	if n == nil {
		return 0, nil
	}
	if (lo != nil && n.key < *lo) || (hi != nil && n.key >= *hi) {
		return 0, fmt.Errorf("%w: key %d out of range", ErrOrdering, n.key)
	}
	for _, c := range []*Node{n.left, n.right} {
		if c != nil && c.parent != n {
			return 0, fmt.Errorf("%w: child %v of %v", ErrParentLink, c, n)
		}
	}
	l, err := check(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	r, err := check(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}

// Iterator returns an in-order iterator. The tree must not be modified while
// the iterator is in use.
func (t *Tree) Iterator() Iterator {
	it := &iterator{tree: t}
	if t.root != nil {
		it.nextNode = t.root.min()
	}
	return it
}

func (it *iterator) HasNext() bool {
	return it != nil && it.nextNode != nil
}

func (it *iterator) Next() (*Node, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	cur := it.nextNode
	it.nextNode = cur.next()
	return cur, nil
}
