package bst

// Iterator walks the nodes of a Tree in key order.
type Iterator interface {
	HasNext() bool
	Next() (*Node, error)
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}
