package bst

import (
	"errors"

	"github.com/sirupsen/logrus"
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

// Log receives debug traces of tree mutations. It is silent above Info by default.
var Log = logrus.New()

var (
	ErrNoMoreNodes = errors.New("There are no more nodes in the tree")

	// errors reported by Check
	ErrOrdering   = errors.New("bst: ordering violated")
	ErrParentLink = errors.New("bst: parent back-reference mismatch")
	ErrRootParent = errors.New("bst: root has a parent")
	ErrSize       = errors.New("bst: size counter mismatch")

	// following a back-reference into an unlinked node is a programming error
	errReleasedParent = errors.New("bst: parent back-reference points to a released node")
)

type (
	// Key is the ordering key of a node.
	Key int

	// Tree owns the root of an unbalanced binary search tree.
	// The zero value is an empty tree ready to use.
	// A Tree must not be used from multiple goroutines without external locking.
	Tree struct {
		root *Node
		size int
	}

	// Node is a vertex of the tree. Children are owned through left and
	// right; parent is only used to walk upwards.
	Node struct {
		key         Key
		keyed       bool
		left, right *Node
		parent      *Node
		// set once the node has been unlinked by Delete
		released bool
	}

	Callback func(n *Node) bool

	traverseAction int

	iterator struct {
		tree     *Tree
		nextNode *Node
	}
)

func newNode(key Key) *Node {
	return &Node{key: key, keyed: true}
}

func newNodeWithParent(parent *Node, key Key) *Node {
	n := newNode(key)
	n.parent = parent
	return n
}
