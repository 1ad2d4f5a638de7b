package matching

// MapperStats counts the work a Mapper has done so far.
type MapperStats struct {
	Nodes       int
	Merges      int
	Keys        int
	KeylessRows int
}

// Mapper assigns each row to a cluster node, merging clusters whose keys meet
// in the same row. A Mapper serves exactly one run.
type Mapper struct {
	keys       *KeyBuilder
	forest     *Forest
	nodesByKey map[Key]NodeID
	merges     int
	keyless    int
}

// MapperOption customizes a Mapper.
type MapperOption func(*mapperOptions)

type mapperOptions struct {
	columns map[FieldGroup][]string
	forest  []ForestOption
}

// WithColumns overrides the candidate columns of one or more field groups.
func WithColumns(columns map[FieldGroup][]string) MapperOption {
	return func(o *mapperOptions) {
		o.columns = columns
	}
}

// WithForestOptions passes options to the underlying Forest.
func WithForestOptions(opts ...ForestOption) MapperOption {
	return func(o *mapperOptions) {
		o.forest = append(o.forest, opts...)
	}
}

// NewMapper constructs a Mapper with an empty key table.
func NewMapper(groups []FieldGroup, opts ...MapperOption) *Mapper {
	var o mapperOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Mapper{
		keys:       NewKeyBuilder(groups, o.columns),
		forest:     NewForest(o.forest...),
		nodesByKey: make(map[Key]NodeID),
	}
}

// NodeFor returns the cluster node for row. Rows without keys always get a
// fresh node that nothing else can join.
func (m *Mapper) NodeFor(row Row) NodeID {
	keys := m.keys.Build(row)
	if len(keys) == 0 {
		m.keyless++
		return m.forest.NewNode()
	}

	roots := m.rootsFor(keys)
	switch len(roots) {
	case 0:
		node := m.forest.NewNode()
		m.setKeys(keys, node)
		return node
	case 1:
		m.setKeys(keys, roots[0])
		return roots[0]
	default:
		node := m.forest.NewNode()
		for _, root := range roots {
			m.forest.ChangeRoot(root, node)
		}
		m.merges++
		m.setKeys(keys, node)
		return node
	}
}

// RootIdentifier returns the current identifier of node's cluster.
func (m *Mapper) RootIdentifier(node NodeID) string {
	return m.forest.RootIdentifier(node)
}

// Root returns node's current root.
func (m *Mapper) Root(node NodeID) NodeID {
	return m.forest.Root(node)
}

// Stats reports counters accumulated so far.
func (m *Mapper) Stats() MapperStats {
	return MapperStats{
		Nodes:       m.forest.Len(),
		Merges:      m.merges,
		Keys:        len(m.nodesByKey),
		KeylessRows: m.keyless,
	}
}

// rootsFor returns the distinct current roots of the known keys, in the order
// the keys were produced.
func (m *Mapper) rootsFor(keys []Key) []NodeID {
	var roots []NodeID
	seen := make(map[NodeID]struct{}, len(keys))
	for _, key := range keys {
		node, ok := m.nodesByKey[key]
		if !ok {
			continue
		}
		root := m.forest.Root(node)
		if _, dup := seen[root]; dup {
			continue
		}
		seen[root] = struct{}{}
		roots = append(roots, root)
	}
	return roots
}

func (m *Mapper) setKeys(keys []Key, node NodeID) {
	for _, key := range keys {
		m.nodesByKey[key] = node
	}
}
