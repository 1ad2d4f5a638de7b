package matching

import "github.com/google/uuid"

// NodeID indexes a node inside a Forest.
type NodeID int

const noParent NodeID = -1

// Forest is an arena of union-find nodes. Parent links and identifiers are
// stored by index; nodes are never removed.
type Forest struct {
	parents []NodeID
	ids     []string
	newID   func() string
}

// ForestOption customizes a Forest.
type ForestOption func(*Forest)

// WithIdentifierFunc replaces the identifier generator. The generator must
// return a distinct value on every call.
func WithIdentifierFunc(fn func() string) ForestOption {
	return func(f *Forest) {
		if fn != nil {
			f.newID = fn
		}
	}
}

// NewForest returns an empty forest that names clusters with random UUIDs.
func NewForest(opts ...ForestOption) *Forest {
	f := &Forest{newID: uuid.NewString}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewNode appends a fresh root and returns its index.
func (f *Forest) NewNode() NodeID {
	f.parents = append(f.parents, noParent)
	f.ids = append(f.ids, "")
	return NodeID(len(f.parents) - 1)
}

// Len reports how many nodes have been created.
func (f *Forest) Len() int {
	return len(f.parents)
}

// Parent returns the parent of n, or false when n is a root.
func (f *Forest) Parent(n NodeID) (NodeID, bool) {
	p := f.parents[n]
	return p, p != noParent
}

// Root follows parent links until it reaches a node without a parent.
func (f *Forest) Root(n NodeID) NodeID {
	for f.parents[n] != noParent {
		n = f.parents[n]
	}
	return n
}

// RootIdentifier returns the identifier of n's current root, generating it on
// first access. An identifier cached on a node that was later merged away is
// never returned again.
func (f *Forest) RootIdentifier(n NodeID) string {
	root := f.Root(n)
	if f.ids[root] == "" {
		f.ids[root] = f.newID()
	}
	return f.ids[root]
}

// ChangeRoot hangs the cluster containing n under newRoot. Only the old root is
// reparented; nodes below it keep their parents.
func (f *Forest) ChangeRoot(n, newRoot NodeID) {
	root := f.Root(n)
	if root == f.Root(newRoot) {
		return
	}
	f.parents[root] = newRoot
}
